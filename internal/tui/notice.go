package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// showNotice replaces the current notice and schedules its dismissal. Each
// notice carries a sequence number so an older timer cannot clear a newer one.
func (m *appModel) showNotice(text string) tea.Cmd {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	m.noticeText = text
	m.noticeSeq++
	seq := m.noticeSeq
	m.debugLogf("notice seq=%d text=%q", seq, text)
	return tea.Tick(NoticeDuration, func(time.Time) tea.Msg { return noticeDoneMsg{seq: seq} })
}

func (m *appModel) clearNotice(seq int) {
	if seq == m.noticeSeq {
		m.noticeText = ""
	}
}

func (m appModel) viewNotice() string {
	if m.noticeText == "" {
		return ""
	}
	return styleNotice().Render(m.noticeText)
}
