// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package analysisview

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// The parser configuration never changes and goldmark parsers are safe
// to share, so one instance serves all renders.
var (
	parserInstance goldmark.Markdown
	parserOnce     sync.Once
)

func parser() goldmark.Markdown {
	parserOnce.Do(func() {
		parserInstance = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return parserInstance
}

// RenderMarkdown turns markdown produced by the analysis model into
// styled terminal text wrapped to width. Soft line breaks become
// spaces so hard-wrapped model output reflows at any terminal width.
// Summaries use a narrow slice of markdown (paragraphs, headings,
// lists, emphasis, fenced code); anything fancier degrades to its
// plain text.
func RenderMarkdown(input string, theme Theme, width int) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	source := []byte(input)
	document := parser().Parser().Parse(text.NewReader(source))

	// Color profile is forced: this output always targets a terminal,
	// and auto-detection yields uncolored output under tests.
	lipRenderer := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	lipRenderer.SetColorProfile(termenv.ANSI256)

	walker := &markdownWalker{
		source: source,
		theme:  theme,
		width:  width,
		styles: lipRenderer,
	}
	ast.Walk(document, walker.walk)
	return strings.TrimRight(walker.output.String(), "\n") + "\n"
}

// markdownWalker accumulates inline content per block and flushes it
// word-wrapped when the block closes. A direct ast.Walk fits that
// accumulate-then-wrap shape better than goldmark's streaming renderer
// interface.
type markdownWalker struct {
	source []byte
	theme  Theme
	width  int
	styles *lipgloss.Renderer

	output strings.Builder
	inline strings.Builder

	indent      string
	bullet      string // replaces indent for the next flushed first line
	listDepth   int
	listCounter []int // per-depth ordered counter; 0 for unordered
	markerWidth []int // per-depth width of the current item marker

	bold   int
	italic int
}

func (w *markdownWalker) style() lipgloss.Style {
	return w.styles.NewStyle()
}

func (w *markdownWalker) contentWidth() int {
	width := w.width - len(w.indent)
	if width < 16 {
		width = 16
	}
	return width
}

// flush word-wraps the inline buffer, indents it, and appends it to
// the output followed by a blank line separator.
func (w *markdownWalker) flush(separate bool) {
	content := w.inline.String()
	w.inline.Reset()
	if content == "" {
		return
	}

	wrapped := ansi.Wrap(content, w.contentWidth(), " ,.;-")
	for i, line := range strings.Split(wrapped, "\n") {
		if i == 0 && w.bullet != "" {
			w.output.WriteString(w.bullet)
			w.bullet = ""
		} else {
			w.output.WriteString(w.indent)
		}
		w.output.WriteString(line)
		w.output.WriteString("\n")
	}
	if separate {
		w.output.WriteString("\n")
	}
}

func (w *markdownWalker) styledText(content string) string {
	style := w.style().Foreground(w.theme.Text)
	if w.bold > 0 {
		style = style.Bold(true)
	}
	if w.italic > 0 {
		style = style.Italic(true)
	}
	return style.Render(content)
}

func (w *markdownWalker) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch typed := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		if entering {
			w.inline.Reset()
		} else {
			w.flush(w.listDepth == 0)
		}

	case *ast.Heading:
		if entering {
			w.inline.Reset()
		} else {
			content := ansi.Strip(w.inline.String())
			w.inline.Reset()
			style := w.style().Bold(true).Foreground(w.theme.Heading)
			w.inline.WriteString(style.Render(content))
			w.flush(true)
		}

	case *ast.FencedCodeBlock:
		if entering {
			w.renderCode(typed)
			return ast.WalkSkipChildren, nil
		}

	case *ast.Blockquote:
		if entering {
			w.indent += "> "
		} else {
			w.indent = strings.TrimSuffix(w.indent, "> ")
			w.output.WriteString("\n")
		}

	case *ast.List:
		if entering {
			w.listDepth++
			start := 0
			if typed.IsOrdered() {
				start = typed.Start
			}
			w.listCounter = append(w.listCounter, start)
			w.markerWidth = append(w.markerWidth, 0)
		} else {
			w.listDepth--
			w.listCounter = w.listCounter[:len(w.listCounter)-1]
			w.markerWidth = w.markerWidth[:len(w.markerWidth)-1]
			if w.listDepth == 0 {
				w.output.WriteString("\n")
			}
		}

	case *ast.ListItem:
		if entering {
			marker := "- "
			if count := w.listCounter[len(w.listCounter)-1]; count > 0 {
				marker = fmt.Sprintf("%d. ", count)
				w.listCounter[len(w.listCounter)-1]++
			}
			w.bullet = w.indent + marker
			w.indent += strings.Repeat(" ", len(marker))
			w.markerWidth[len(w.markerWidth)-1] = len(marker)
		} else {
			width := w.markerWidth[len(w.markerWidth)-1]
			w.indent = w.indent[:len(w.indent)-width]
			w.bullet = ""
		}

	case *ast.ThematicBreak:
		if entering {
			rule := w.style().Foreground(w.theme.Border).
				Render(strings.Repeat("─", w.contentWidth()))
			w.output.WriteString(w.indent + rule + "\n\n")
		}

	case *ast.Text:
		if entering {
			w.inline.WriteString(w.styledText(string(typed.Segment.Value(w.source))))
			if typed.SoftLineBreak() {
				w.inline.WriteString(" ")
			}
			if typed.HardLineBreak() {
				w.inline.WriteString("\n")
			}
		}

	case *ast.String:
		if entering {
			w.inline.WriteString(w.styledText(string(typed.Value)))
		}

	case *ast.Emphasis:
		if typed.Level >= 2 {
			if entering {
				w.bold++
			} else {
				w.bold--
			}
		} else {
			if entering {
				w.italic++
			} else {
				w.italic--
			}
		}

	case *ast.CodeSpan:
		if entering {
			var code strings.Builder
			for child := node.FirstChild(); child != nil; child = child.NextSibling() {
				if textNode, ok := child.(*ast.Text); ok {
					code.Write(textNode.Segment.Value(w.source))
				}
			}
			w.inline.WriteString(w.style().Foreground(w.theme.Faint).Render(code.String()))
		}

	case *ast.Link:
		if entering {
			url := string(typed.Destination)
			w.inline.WriteString(w.style().Foreground(w.theme.Faint).Render(url))
			return ast.WalkSkipChildren, nil
		}

	case *ast.AutoLink:
		if entering {
			url := string(typed.URL(w.source))
			w.inline.WriteString(w.style().Foreground(w.theme.Faint).Render(url))
		}

	default:
		if _, ok := node.(*extast.Strikethrough); ok {
			// rendered as plain text; legal summaries never need it
			return ast.WalkContinue, nil
		}
	}

	return ast.WalkContinue, nil
}

// renderCode syntax-highlights a fenced block with Chroma, falling
// back to faint plain text for unknown languages.
func (w *markdownWalker) renderCode(node *ast.FencedCodeBlock) {
	var code strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		code.Write(segment.Value(w.source))
	}

	language := string(node.Language(w.source))
	var highlighted string
	if language != "" {
		var buffer strings.Builder
		if err := quick.Highlight(&buffer, code.String(), language, "terminal256", "monokai"); err == nil {
			highlighted = buffer.String()
		}
	}
	if highlighted == "" {
		highlighted = w.style().Foreground(w.theme.Faint).Render(code.String())
	}

	for _, line := range strings.Split(strings.TrimRight(highlighted, "\n"), "\n") {
		w.output.WriteString(w.indent + "  " + line + "\n")
	}
	w.output.WriteString("\n")
}
