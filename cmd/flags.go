/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
//
// Design: Flags are defined as package-level variables and bound to the
// root command. The JSON() helper simplifies output format detection across
// all commands.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var validOutputFormats = []string{"json"}

// Local flag names.
const (
	flagShow   = "show"
	flagDryRun = "dry-run"
	flagDay    = "day"
	flagLast   = "last"
	flagSince  = "since"
	flagNumber = "number"
	flagRaw    = "raw"
	flagLong   = "long"
)

var (
	output     string
	dir        string
	editorFlag string
)

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// discard swallows human-readable output when JSON is requested.
var discard = io.Discard

// Out returns the output writer.
func Out() io.Writer { return out }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// Output returns the output format flag value.
func Output() string { return output }

// Dir returns the explicit data directory if set.
// Priority: --dir flag > ISL_DIR env var > empty (use config, then default).
func Dir() string {
	if dir != "" {
		return dir
	}
	return os.Getenv("ISL_DIR")
}

// Editor returns the --editor flag value.
func Editor() string { return editorFlag }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns nil if error was printed (suppressing Cobra error), or the original error if not.
//
// In JSON mode the process still has to exit non-zero, so the command is
// marked failed through errPrinted instead of returning nil.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return errPrinted
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().StringVar(&dir, "dir", "", "Data directory (the log lives in <dir>/isl/LOG.md)")
	rootCmd.PersistentFlags().StringVar(&editorFlag, "editor", "", "Editor command (overrides config, $VISUAL and $EDITOR)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
