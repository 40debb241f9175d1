// add.go implements the "isl add" command for adding an entry without the
// editor.
//
// Design: text comes from the arguments, joined with spaces, or from stdin
// when stdin is a pipe. Either way it goes through the same pipeline as
// editor input, so "echo note | isl add" and "isl" followed by typing the
// same note produce identical documents.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jpl-au/isl/internal/add"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrNoInput is returned when add has no arguments and stdin is a terminal.
var ErrNoInput = errors.New("no entry text: pass it as arguments or pipe it on stdin")

var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Add an entry without opening the editor",
	Long: `Add an entry to today's section of the log.

  isl add "Fixed the flaky test"
  git log -1 --format=%s | isl add
  isl add --dry-run "note"   # show the merge, write nothing

Arguments are joined with spaces into a single line. Pipe multi-line
entries on stdin:

  isl add <<'EOF'
  ## 2024-01-02
  Release notes reviewed.
  EOF

The entry may not contain a level-1 heading and may contain at most one
level-2 heading, which must not sit inside a code block.`,
	RunE: runAdd,
}

func runAdd(c *cobra.Command, args []string) error {
	dryRun, _ := c.Flags().GetBool(flagDryRun)

	text, err := entryText(args, os.Stdin)
	if err != nil {
		return PrintJSONError(err)
	}

	e, err := openStore()
	if err != nil {
		return PrintJSONError(err)
	}

	w := Out()
	if JSON() {
		w = discard
	}

	r, err := add.Run(c.Context(), w, e.store, text, add.Options{
		DryRun:     dryRun,
		Colour:     !JSON() && isTerminal(os.Stdout),
		MaxContent: e.cfg.MaxContent(),
	})
	logAdd("entry:add", r, err)
	if err != nil {
		return PrintJSONError(fmt.Errorf("adding entry: %w", err))
	}
	return PrintJSON(r)
}

// entryText returns the entry from args, or from stdin when there are none.
func entryText(args []string, stdin *os.File) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if isTerminal(stdin) {
		return "", ErrNoInput
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func init() {
	addCmd.Flags().Bool(flagDryRun, false, "Show the merge as a diff without writing")
	rootCmd.AddCommand(addCmd)
}
