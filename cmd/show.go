// show.go implements "isl show" (and "isl --show") for editing the log itself.

package cmd

import (
	"fmt"

	"github.com/jpl-au/isl/internal/log"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Open the log in the editor",
	Long: `Open the whole log in the editor.

Changes are saved directly; no validation or merging is applied. Use this to
fix typos in earlier entries.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func runShow(c *cobra.Command, _ []string) error {
	e, err := openStore()
	if err != nil {
		return PrintJSONError(err)
	}

	err = e.launcher()(c.Context(), e.store.Path())
	log.Event("log:show", "edit").Write(err)
	if err != nil {
		return PrintJSONError(fmt.Errorf("opening log: %w", err))
	}
	return PrintJSON(map[string]string{"path": e.store.Path()})
}

func init() {
	rootCmd.AddCommand(showCmd)
}
