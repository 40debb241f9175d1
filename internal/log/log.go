// Package log provides audit logging for isl operations.
// Logs are stored in <data dir>/isl/log/isl-log.db and record every entry
// merge, document open and MCP tool call, including failures.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("entry:add", "write").
//		Date(r.Date).
//		Lines(r.Lines).
//		Detail("case", r.Case.String()).
//		Write(err)
//
// The source parameter follows the format "{area}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "entry:add",
// "log:show", "mcp:add".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "entry:add", "mcp:add"
	Action string // verb: write, read, edit, skip
	Date   string // day section affected (YYYY-MM-DD)
	Lines  int    // entry lines merged

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{area}:{command}" (e.g., "entry:add", "log:cat")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:add", "mcp:read")
//
// The action describes what operation was performed:
//   - "write", "read", "edit", "skip", "config", etc.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Date sets the day section the operation affected.
func (b *Builder) Date(date string) *Builder {
	b.entry.Date = date
	return b
}

// Lines sets the number of entry lines merged.
func (b *Builder) Lines(n int) *Builder {
	b.entry.Lines = n
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// merge case, dry-run flag, config key, etc. Can be called multiple times.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetDocument sets the document identifier for subsequent log entries.
// The p should be the absolute path of the log document.
func SetDocument(p string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.document = hash(p)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
