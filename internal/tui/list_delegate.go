package tui

import (
	"fmt"
	"io"
	"strings"

	"recetas-cli/internal/thumb"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const noThumbMarker = "[img]"

// entryDelegate draws one entry row: the thumbnail slot (only when the entry
// has an image) and the title, vertically centered. Rows have no action.
type entryDelegate struct {
	thumbs     map[string]*thumbEntry
	thumbsOn   bool
	thumbW     int
	thumbH     int
	listActive bool
}

func newEntryDelegate(thumbs map[string]*thumbEntry, thumbsOn bool, w, h int) *entryDelegate {
	if w <= 0 {
		w = thumb.DefaultWidth
	}
	if h <= 0 {
		h = thumb.DefaultHeight
	}
	return &entryDelegate{thumbs: thumbs, thumbsOn: thumbsOn, thumbW: w, thumbH: h}
}

func (d *entryDelegate) Height() int {
	if d.thumbsOn {
		return d.thumbH
	}
	return 1
}

func (d *entryDelegate) Spacing() int { return 1 }

func (d *entryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d *entryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(entryItem)
	if !ok {
		return
	}
	contentW := m.Width()
	if contentW < 4 {
		return
	}

	title := it.row.Title
	if d.listActive && index == m.Index() {
		title = styleSelectedRow().Render(" " + title + " ")
	} else {
		title = " " + title + " "
	}

	var row string
	switch {
	case !it.row.HasImage:
		row = title
	case !d.thumbsOn:
		row = styleMuted().Render(noThumbMarker) + " " + title
	default:
		row = lipgloss.JoinHorizontal(lipgloss.Center, d.thumbFor(it.row.ImageRef).Render(), " ", title)
	}

	lines := strings.Split(row, "\n")
	for i, line := range lines {
		if xansi.StringWidth(line) > contentW {
			lines[i] = xansi.Truncate(line, contentW, "…")
		}
	}
	fmt.Fprint(w, lipgloss.PlaceVertical(d.Height(), lipgloss.Center, strings.Join(lines, "\n")))
}

// thumbFor returns the loaded thumbnail, or a blank slot while loading or
// after a failed load.
func (d *entryDelegate) thumbFor(ref string) thumb.Thumbnail {
	if e := d.thumbs[ref]; e != nil && e.status == thumbReady && e.thumb.Height() > 0 {
		return e.thumb
	}
	return thumb.Blank(d.thumbW, d.thumbH)
}
