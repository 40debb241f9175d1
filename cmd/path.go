// path.go implements "isl path", printing where the log lives.

package cmd

import (
	"fmt"

	"github.com/jpl-au/isl/internal/config"
	"github.com/jpl-au/isl/internal/path"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path of the log file",
	Long: `Print the path of the log file without creating it.

  $EDITOR "$(isl path)"
  cp "$(isl path)" ~/backup/`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return PrintJSONError(err)
		}
		base, err := dataDir(cfg)
		if err != nil {
			return PrintJSONError(err)
		}
		p := path.Document(base)
		if JSON() {
			return PrintJSON(map[string]string{"path": p})
		}
		fmt.Fprintln(Out(), p)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
}
