package tui

import (
	"context"

	"recetas-cli/internal/perm"

	tea "github.com/charmbracelet/bubbletea"
)

// permissionCmd issues the startup media permission request. Only the first
// call per screen returns a command.
func (m appModel) permissionCmd() tea.Cmd {
	g := m.gate
	if g == nil || g.issued {
		return nil
	}
	g.issued = true
	m.debugLogf("permission request id=%s", g.id)
	requester, id := g.requester, g.id
	return func() tea.Msg {
		return permissionResultMsg{result: perm.Ask(context.Background(), requester, id)}
	}
}

// applyPermissionResult handles the host's answer. A denial shows the notice
// at most once per screen; a grant changes nothing.
func (m *appModel) applyPermissionResult(res perm.Result) tea.Cmd {
	if res.Err != nil {
		m.debugLogf("permission id=%s error=%q", res.ID, res.Err.Error())
	} else {
		m.debugLogf("permission id=%s granted=%v", res.ID, res.Granted)
	}
	g := m.gate
	if g == nil || g.answered {
		return nil
	}
	g.answered = true
	if res.Granted || g.notified {
		return nil
	}
	g.notified = true
	return m.showNotice(perm.DeniedNotice)
}
