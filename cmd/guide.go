// guide.go implements the "isl guide" command for documentation access.
//
// Design: Guides are embedded in the binary via the guide package, ensuring
// documentation is always available without external files. Terminal output
// gets glamour rendering for readability; pipe/redirect gets raw markdown
// for machine consumption and LLM context loading.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/isl/guide"
	"github.com/spf13/cobra"
)

var guideCmd = &cobra.Command{
	Use:   "guide [topic]",
	Short: "Show the isl usage guide",
	Long: `Outputs the isl guide for LLMs and humans.

  isl guide           # main guide
  isl guide entries   # how entries are merged
  isl guide mcp       # MCP server setup`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}

		content, err := guide.Get(name)
		if err != nil {
			available, listErr := guide.List()
			if listErr != nil {
				return listErr
			}
			return PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
		}

		if isTerminal(os.Stdout) {
			rendered, err := glamour.Render(content, "dark")
			if err == nil {
				fmt.Fprint(Out(), rendered)
				return nil
			}
		}

		fmt.Fprint(Out(), content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
