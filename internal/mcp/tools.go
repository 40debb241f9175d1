// tools.go implements the MCP tool handlers.
//
// Errors return MCP tool error results rather than Go errors, so the LLM
// receives feedback it can act on (for example, removing a title line from
// its entry and retrying) instead of a protocol-level failure.

package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/jpl-au/isl/internal/add"
	"github.com/jpl-au/isl/internal/cat"
	"github.com/jpl-au/isl/internal/duration"
	"github.com/jpl-au/isl/internal/journal"
	"github.com/jpl-au/isl/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// addEntry handles isl_add tool calls.
func (h *handlers) addEntry(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text is required"), nil
	}
	dryRun := getBool(req, "dry_run", false)

	var out bytes.Buffer
	r, err := add.Run(ctx, &out, h.store, text, add.Options{
		DryRun:     dryRun,
		MaxContent: h.maxContent,
	})

	log.Event("mcp:add", "write").
		Date(r.Date).
		Lines(r.Lines).
		Detail("case", r.Case.String()).
		Detail("dry_run", dryRun).
		Detail("skipped", r.Skipped).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if dryRun {
		return mcp.NewToolResultText(out.String()), nil
	}
	return jsonResult(r)
}

// readLog handles isl_read tool calls.
func (h *handlers) readLog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := cat.Options{
		Day:  getString(req, "day", ""),
		Last: getInt(req, "last", 0),
	}
	if since := getString(req, "since", ""); since != "" {
		n, err := duration.Days(since)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		opts.Since = duration.Since(time.Now(), n)
	}

	r, err := cat.Run(ctx, io.Discard, h.store, opts)
	log.Event("mcp:read", "read").Date(opts.Day).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(r.Content), nil
}

// listDays handles isl_days tool calls.
func (h *handlers) listDays(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lines, err := h.store.Read()
	log.Event("mcp:days", "list").Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	days := journal.Days(lines)
	if days == nil {
		days = []journal.Day{}
	}
	return jsonResult(days)
}

// readLogResource handles isl://log resource requests.
func (h *handlers) readLogResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	r, err := cat.Run(ctx, io.Discard, h.store, cat.Options{})
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     r.Content,
		},
	}, nil
}

// jsonResult marshals v as the text content of a tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
