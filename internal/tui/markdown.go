package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderers are cached per style and wrap width. WithAutoStyle is avoided: it
// can block on terminal background queries. Only the update loop renders, so
// the cache needs no lock.
var mdRenderers = map[string]*glamour.TermRenderer{}

func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}

	style := markdownStyle()
	key := style + ":" + strconv.Itoa(width)
	r := mdRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRenderers[key] = rr
		r = rr
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
