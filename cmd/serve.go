// serve.go implements the "isl serve" command for MCP server operation.
//
// Unlike other commands that run and exit, serve blocks handling MCP
// requests over stdio until the client disconnects.

package cmd

import (
	"github.com/jpl-au/isl/internal/mcp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP server",
	Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

The server exposes the log as the isl://log resource and the tools
isl_add, isl_read and isl_days.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		e, err := openStore()
		if err != nil {
			return err
		}
		return mcp.Serve(e.store, mcp.Options{MaxContent: e.cfg.MaxContent()})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
