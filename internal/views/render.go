package views

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

type markdownKey struct {
	width int
	text  string
}

// MarkdownRenderer renders window content with glamour, memoised per
// width since the desktop re-renders on every frame.
type MarkdownRenderer struct {
	style string

	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
	cache     map[markdownKey]string
}

// KnownMarkdownStyle reports whether glamour ships a style called name.
func KnownMarkdownStyle(name string) bool {
	_, ok := styles.DefaultStyles[name]
	return ok
}

func NewMarkdownRenderer(style string) *MarkdownRenderer {
	if style == "" {
		style = "dark"
	}
	return &MarkdownRenderer{
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
		cache:     make(map[markdownKey]string),
	}
}

func (r *MarkdownRenderer) Render(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	width = max(width, 10)

	r.mu.Lock()
	defer r.mu.Unlock()
	key := markdownKey{width: width, text: md}
	if out, ok := r.cache[key]; ok {
		return out
	}

	tr, ok := r.renderers[width]
	if !ok {
		var err error
		tr, err = glamour.NewTermRenderer(glamour.WithStandardStyle(r.style), glamour.WithWordWrap(width))
		if err != nil {
			return md
		}
		r.renderers[width] = tr
	}
	out, err := tr.Render(md)
	if err != nil {
		return md
	}
	out = strings.Trim(out, "\n")
	r.cache[key] = out
	return out
}
