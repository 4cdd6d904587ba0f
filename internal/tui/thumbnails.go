package tui

import (
	"context"

	"recetas-cli/internal/recipes"

	tea "github.com/charmbracelet/bubbletea"
)

// scheduleThumbnailLoads starts one load per image reference not seen yet on
// this screen. Results are cached for the screen's lifetime; failures are not
// retried.
func (m *appModel) scheduleThumbnailLoads() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	var cmds []tea.Cmd
	for _, ref := range recipes.ImageRefs(m.state) {
		if _, ok := m.thumbs[ref]; ok {
			continue
		}
		m.thumbs[ref] = &thumbEntry{status: thumbLoading}
		cmds = append(cmds, loadThumbnailCmd(m.loader, ref))
	}
	return tea.Batch(cmds...)
}

func loadThumbnailCmd(l ImageLoader, ref string) tea.Cmd {
	return func() tea.Msg {
		th, err := l.Load(context.Background(), ref)
		return thumbLoadedMsg{ref: ref, thumb: th, err: err}
	}
}

func (m *appModel) applyThumbnail(msg thumbLoadedMsg) {
	e := m.thumbs[msg.ref]
	if e == nil {
		e = &thumbEntry{}
		m.thumbs[msg.ref] = e
	}
	if msg.err != nil {
		e.status = thumbFailed
		m.debugLogf("thumbnail ref=%q error=%q", msg.ref, msg.err.Error())
		return
	}
	e.status = thumbReady
	e.thumb = msg.thumb
}
