// entry.go implements heading validation for new entries.
//
// Headings are counted line by line, the same way the merge engine finds
// the title and day headers: a "## 2024-01-02" line is a subtitle wherever
// it sits. Markdown parsing is used on top of that for what lines alone
// cannot show:
//   - setext titles ("Title" underlined with "==="), which render as a
//     second document title but never start with "#"
//   - subtitle lines inside code blocks, which the merge engine would still
//     take as a day header while the rendered log shows them as code

package validate

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jpl-au/isl/internal/journal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Entry validates the heading structure of a new entry.
//
// Validation rules:
//   - No level-1 heading line anywhere (the document has exactly one title)
//   - At most one level-2 heading line (an entry opens at most one day section)
//   - A level-2 heading line must be a real heading, not code
//
// Deeper headings (###...) are ordinary body content.
func Entry(content string) error {
	lines := journal.Lines(content)

	for i, l := range lines {
		if journal.IsTitle(heading(l)) {
			return fmt.Errorf("%w (line %d)", ErrTitleNotAllowed, i+1)
		}
	}

	src := []byte(content)
	md := parse(src)
	if md.title > 0 {
		return fmt.Errorf("%w (line %d)", ErrTitleNotAllowed, md.title)
	}

	var subtitles []int
	for i, l := range lines {
		if journal.IsSubtitle(heading(l)) {
			subtitles = append(subtitles, i+1)
		}
	}
	if len(subtitles) > 1 {
		return fmt.Errorf("%w; found %d", ErrTooManySubtitles, len(subtitles))
	}
	for _, n := range subtitles {
		if md.code[n] {
			return fmt.Errorf("%w (line %d)", ErrSubtitleInCode, n)
		}
	}
	return nil
}

// heading strips the indentation a Markdown heading may carry.
func heading(line string) string {
	return strings.TrimLeft(line, " \t")
}

// markdown holds what the parser found in an entry.
type markdown struct {
	title int          // 1-indexed line of the first setext level-1 heading, 0 if none
	code  map[int]bool // 1-indexed lines inside fenced or indented code blocks
}

func parse(src []byte) markdown {
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	md := markdown{code: make(map[int]bool)}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			if n.Level == 1 && md.title == 0 {
				md.title = lineOf(src, n)
			}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			segs := n.Lines()
			for i := 0; i < segs.Len(); i++ {
				md.code[lineAt(src, segs.At(i).Start)] = true
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return md
}

// lineOf returns the 1-indexed source line of a node's first text segment.
// Empty headings carry no text segment and report 0.
func lineOf(src []byte, n ast.Node) int {
	segs := n.Lines()
	if segs == nil || segs.Len() == 0 {
		return 0
	}
	return lineAt(src, segs.At(0).Start)
}

// lineAt returns the 1-indexed line containing byte offset off.
func lineAt(src []byte, off int) int {
	return bytes.Count(src[:off], []byte("\n")) + 1
}
