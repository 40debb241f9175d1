/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Running isl with no arguments is the main workflow: open the editor on a
// scratch buffer and merge whatever was written into today's section. Every
// other behaviour hangs off a subcommand or a flag.
//
// Design: the document is bootstrapped lazily by openStore, only for the
// commands that touch it, so "isl config" and "isl guide" work on a machine
// where the data directory cannot be created yet.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/isl/internal/add"
	"github.com/jpl-au/isl/internal/log"
	"github.com/jpl-au/isl/internal/version"
	"github.com/spf13/cobra"
)

// unknownCommand is printed for arguments that are not a subcommand.
const unknownCommand = "Unknown command. Use --help for usage information."

// errPrinted marks a failure that was already reported as JSON.
var errPrinted = errors.New("error already printed")

var rootCmd = &cobra.Command{
	Use:   "isl",
	Short: "Append-only daily markdown log",
	Long: `isl keeps a single Markdown log, newest day first.

Run with no arguments to write an entry in your editor. Whatever you save is
filed under today's heading; quitting with an empty buffer changes nothing.

  isl              # write an entry in $EDITOR
  isl add "text"   # add an entry without the editor
  isl --show       # open the whole log in $EDITOR
  isl cat          # print the log`,
	Version:       version.Short(),
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}
		return nil
	},
}

func runRoot(c *cobra.Command, args []string) error {
	if len(args) > 0 {
		fmt.Fprintln(Out(), unknownCommand)
		return nil
	}

	if show, _ := c.Flags().GetBool(flagShow); show {
		return runShow(c, nil)
	}

	e, err := openStore()
	if err != nil {
		return PrintJSONError(err)
	}

	w := Out()
	if JSON() {
		w = discard
	}

	r, err := add.FromEditor(c.Context(), w, e.store, e.launcher(), add.Options{
		MaxContent: e.cfg.MaxContent(),
	})
	logAdd("entry:editor", r, err)
	if err != nil {
		return PrintJSONError(fmt.Errorf("adding entry: %w", err))
	}
	return PrintJSON(r)
}

// logAdd records an add operation in the audit log.
func logAdd(source string, r add.Result, err error) {
	action := "write"
	if r.Skipped {
		action = "skip"
	}
	log.Event(source, action).
		Date(r.Date).
		Lines(r.Lines).
		Detail("case", r.Case.String()).
		Detail("dry_run", r.DryRun).
		Write(err)
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, executes the command, and closes the log before exit.
// Exit code 1 indicates error.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}

	err := rootCmd.Execute()
	log.Close()

	if err != nil {
		if !errors.Is(err, errPrinted) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.SetVersionTemplate("isl {{.Version}}\n")
	rootCmd.Flags().Bool(flagShow, false, "Open the log itself in the editor")
}
