// tools_util.go provides helper functions for MCP tool parameter extraction.
//
// Optional parameters are extracted permissively: a missing or mistyped
// value yields the default rather than an error, since LLMs frequently omit
// optional parameters or send them in unexpected formats.

package mcp

import "github.com/mark3labs/mcp-go/mcp"

// getString extracts a string parameter, returning def if missing or not a string.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getBool extracts a boolean parameter from the raw argument map.
func getBool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// getInt extracts an integer parameter. JSON numbers decode as float64.
func getInt(req mcp.CallToolRequest, name string, def int) int {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(float64); ok {
		return int(v)
	}
	return def
}
