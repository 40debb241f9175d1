// cat.go implements the "isl cat" command for printing the log.
//
// Design: terminal output gets glamour markdown rendering; pipe/redirect
// gets raw markdown, the same split the guide command makes. Line numbers
// refer to the document, so "isl cat --day D -n" shows where the day sits in
// LOG.md and is never rendered.

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/isl/internal/cat"
	"github.com/jpl-au/isl/internal/duration"
	"github.com/jpl-au/isl/internal/log"
	"github.com/spf13/cobra"
)

var catCmd = &cobra.Command{
	Use:   "cat",
	Short: "Print the log",
	Long: `Print the log, or part of it.

  isl cat                  # whole log
  isl cat --day 2024-01-02 # one day
  isl cat --last 3         # the three newest days
  isl cat --since 2w       # the last fourteen days
  isl cat -n               # with line numbers`,
	Args: cobra.NoArgs,
	RunE: runCat,
}

func runCat(c *cobra.Command, _ []string) error {
	ctx := c.Context()
	day, _ := c.Flags().GetString(flagDay)
	last, _ := c.Flags().GetInt(flagLast)
	since, _ := c.Flags().GetString(flagSince)
	lineNums, _ := c.Flags().GetBool(flagNumber)
	raw, _ := c.Flags().GetBool(flagRaw)

	opts := cat.Options{Day: day, Last: last, LineNumbers: lineNums}
	if last < 0 {
		return PrintJSONError(fmt.Errorf("--last must not be negative: %d", last))
	}
	if since != "" {
		n, err := duration.Days(since)
		if err != nil {
			return PrintJSONError(err)
		}
		opts.Since = duration.Since(time.Now(), n)
	}

	e, err := openStore()
	if err != nil {
		return PrintJSONError(err)
	}

	var result cat.Result
	defer func() {
		log.Event("log:cat", "read").Date(day).Lines(len(result.Lines)).Write(err)
	}()

	if JSON() {
		result, err = cat.Run(ctx, io.Discard, e.store, opts)
		if err != nil {
			return PrintJSONError(fmt.Errorf("cat: %w", err))
		}
		return PrintJSON(result)
	}

	// Render with glamour if TTY and not --raw
	if !raw && !lineNums && isTerminal(os.Stdout) {
		var buf bytes.Buffer
		result, err = cat.Run(ctx, &buf, e.store, opts)
		if err != nil {
			return fmt.Errorf("cat: %w", err)
		}
		rendered, renderErr := glamour.Render(buf.String(), "dark")
		if renderErr == nil {
			fmt.Fprint(Out(), rendered)
			return nil
		}
	}

	result, err = cat.Run(ctx, Out(), e.store, opts)
	if err != nil {
		return fmt.Errorf("cat: %w", err)
	}
	return nil
}

func init() {
	catCmd.Flags().String(flagDay, "", "Only print this day (YYYY-MM-DD)")
	catCmd.Flags().Int(flagLast, 0, "Only print the newest N days")
	catCmd.Flags().String(flagSince, "", "Only print days inside this window (7d, 2w, 3m)")
	catCmd.Flags().BoolP(flagNumber, "n", false, "Number all output lines")
	catCmd.Flags().Bool(flagRaw, false, "Output raw markdown without rendering")
	rootCmd.AddCommand(catCmd)
}
