// days.go implements "isl days", listing the day sections in the log.

package cmd

import (
	"fmt"
	"time"

	"github.com/jpl-au/isl/internal/format"
	"github.com/jpl-au/isl/internal/journal"
	"github.com/jpl-au/isl/internal/log"
	"github.com/spf13/cobra"
)

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List the days in the log",
	Long: `List the days in the log, newest first.

  isl days      # one date per line
  isl days -l   # with line numbers, sizes and age`,
	Args: cobra.NoArgs,
	RunE: runDays,
}

func runDays(c *cobra.Command, _ []string) error {
	long, _ := c.Flags().GetBool(flagLong)

	e, err := openStore()
	if err != nil {
		return PrintJSONError(err)
	}

	lines, err := e.store.Read()
	log.Event("log:days", "list").Write(err)
	if err != nil {
		return PrintJSONError(fmt.Errorf("reading log: %w", err))
	}

	days := journal.Days(lines)
	if JSON() {
		if days == nil {
			days = []journal.Day{}
		}
		return PrintJSON(days)
	}
	if long {
		return format.DaysLong(Out(), lines, days, time.Now())
	}
	return format.Days(Out(), days)
}

func init() {
	daysCmd.Flags().BoolP(flagLong, "l", false, "Long format")
	rootCmd.AddCommand(daysCmd)
}
