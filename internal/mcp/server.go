// Package mcp implements the Model Context Protocol server, exposing the log
// to LLM assistants. An assistant can read the log and add entries through
// the same validate, sanitise and merge pipeline the CLI uses.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/isl/internal/document"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// LogURI is the resource URI of the whole document.
const LogURI = "isl://log"

// Options configures the MCP server.
type Options struct {
	MaxContent int64 // entry size limit passed to the add pipeline
}

// Serve starts the MCP server over stdio.
// Uses stdio transport for compatibility with Claude Desktop and other MCP clients.
func Serve(store *document.Store, opts Options) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := NewServer(store, opts)

	slog.Info("isl MCP server ready", "version", Version, "transport", "stdio", "document", store.Path())

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the MCP server with all tools and resources registered.
func NewServer(store *document.Store, opts Options) *server.MCPServer {
	h := &handlers{store: store, maxContent: opts.MaxContent}

	s := server.NewMCPServer(
		"isl",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)
	return s
}

// handlers provides MCP request handlers with access to the document.
type handlers struct {
	store      *document.Store
	maxContent int64
}

// registerResources adds URI-based access to the document.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResource(
		mcp.NewResource(
			LogURI,
			"Log",
			mcp.WithResourceDescription("The whole log document, newest day first"),
			mcp.WithMIMEType("text/markdown"),
		),
		h.readLogResource,
	)
}

// registerTools exposes log operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("isl_add",
			mcp.WithDescription("Add an entry to today's section of the log. "+
				"The text must not contain a level-1 heading and may contain at most one level-2 heading."),
			mcp.WithString("text", mcp.Required(), mcp.Description("Entry text (Markdown)")),
			mcp.WithBoolean("dry_run", mcp.Description("Return the diff without writing")),
		),
		h.addEntry,
	)

	s.AddTool(
		mcp.NewTool("isl_read",
			mcp.WithDescription("Read the log, one day, or the newest days"),
			mcp.WithString("day", mcp.Description("Only this day (YYYY-MM-DD)")),
			mcp.WithNumber("last", mcp.Description("Only the newest N day sections")),
			mcp.WithString("since", mcp.Description("Only days inside this window: 7d, 2w or 3m")),
		),
		h.readLog,
	)

	s.AddTool(
		mcp.NewTool("isl_days",
			mcp.WithDescription("List the day sections in the log with their line counts"),
		),
		h.listDays,
	)
}
