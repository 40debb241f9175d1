// Package editor runs the user's text editor and captures what was written.
//
// The editor is modelled as a Launcher: a function that takes a file path
// and returns when editing is finished. The CLI uses Command to spawn a real
// editor; tests and the MCP server supply their own Launcher so no
// subprocess is involved.
package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// DefaultEditor is used when no editor is configured anywhere.
const DefaultEditor = "nvim"

// ErrNoEditor is returned when the editor command is empty.
var ErrNoEditor = errors.New("no editor configured")

// Launcher opens path in an editor and blocks until editing is done.
type Launcher func(ctx context.Context, path string) error

// getenv is os.Getenv; tests replace it to control the environment.
var getenv = os.Getenv

// Resolve picks the editor command.
// Priority: flag > configured > $VISUAL > $EDITOR > DefaultEditor.
func Resolve(flag, configured string) string {
	for _, c := range []string{flag, configured, getenv("VISUAL"), getenv("EDITOR")} {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return DefaultEditor
}

// Command returns a Launcher that runs editor with the file path appended
// as its last argument. The editor string may carry arguments ("code -w").
// The editor inherits the terminal so full-screen editors work.
func Command(editor string) Launcher {
	return func(ctx context.Context, path string) error {
		fields := strings.Fields(editor)
		if len(fields) == 0 {
			return ErrNoEditor
		}

		args := append(fields[1:], path)
		c := exec.CommandContext(ctx, fields[0], args...)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr

		if err := c.Run(); err != nil {
			return fmt.Errorf("running editor %q: %w", fields[0], err)
		}
		return nil
	}
}
