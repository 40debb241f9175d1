// scratch.go manages the temporary file an entry is written into.
//
// The document is never opened by the editor for a new entry. Instead the
// user edits an empty scratch file, and only once the editor exits is its
// content read back and merged. Killing isl mid-edit therefore cannot
// corrupt the document.

package editor

import (
	"context"
	"fmt"
	"os"
)

// scratchPattern names scratch files; the .md suffix gives editors
// Markdown highlighting.
const scratchPattern = "isl-*.md"

// scratchDir is the directory scratch files are created in ("" means the
// system temp dir). Tests point it at a t.TempDir().
var scratchDir = ""

// Capture creates an empty scratch file, runs launch on it, and returns
// the content the editor left behind. The scratch file is always removed,
// including when the editor fails.
func Capture(ctx context.Context, launch Launcher) (string, error) {
	f, err := os.CreateTemp(scratchDir, scratchPattern)
	if err != nil {
		return "", fmt.Errorf("creating scratch file: %w", err)
	}
	p := f.Name()
	defer os.Remove(p)

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing scratch file: %w", err)
	}

	if err := launch(ctx, p); err != nil {
		return "", err
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return "", fmt.Errorf("reading scratch file %s: %w", p, err)
	}
	return string(data), nil
}
