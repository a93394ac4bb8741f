package outreach

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// DefaultRenderWidth is used when the terminal width is unknown
const DefaultRenderWidth = 80

// rendererCache holds one glamour renderer per wrap width
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// Markdown formats a draft as a markdown document with a heading
func Markdown(d Draft) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s: %s\n\n", capitalize(string(d.Kind)), d.Candidate.Name)
	fmt.Fprintf(&b, "*%s · %s tone*\n\n", d.Candidate.Role, d.Tone)
	b.WriteString(hardBreaks(d.Body))
	return b.String()
}

// BulkMarkdown formats the output of GenerateAll for rendering
func BulkMarkdown(text string) string {
	return hardBreaks(text)
}

// hardBreaks keeps the letter's own line breaks through markdown rendering
func hardBreaks(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = line + "  "
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Render renders markdown for the terminal. It falls back to the plain
// text if the renderer cannot be built.
func Render(markdown string, width int) string {
	if width <= 0 {
		width = DefaultRenderWidth
	}
	renderer, err := getRenderer(width)
	if err != nil {
		return markdown
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return strings.TrimSpace(out)
}
