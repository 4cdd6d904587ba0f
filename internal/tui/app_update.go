package tui

import (
	"recetas-cli/internal/recipes"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.permissionCmd(), textinput.Blink)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case permissionResultMsg:
		return m, m.applyPermissionResult(msg.result)

	case thumbLoadedMsg:
		m.applyThumbnail(msg)
		return m, nil

	case noticeDoneMsg:
		m.clearNotice(msg.seq)
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	// Cursor blink and other input-internal messages.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	cmds = append(cmds, cmd)
	m.imageInput, cmd = m.imageInput.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		case msg.String() == "esc", key.Matches(msg, m.keys.Help), msg.String() == "?":
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, m.keys.Save):
		return m, m.submit()
	}

	switch m.focus {
	case focusTitle, focusImage:
		if key.Matches(msg, m.keys.Submit) {
			return m, m.submit()
		}
		return m.updateInputs(msg)

	case focusSubmit:
		if key.Matches(msg, m.keys.Submit) || msg.String() == " " {
			return m, m.submit()
		}
		return m, nil

	case focusList:
		if msg.String() == "?" {
			m.showHelp = true
			return m, nil
		}
		if key.Matches(msg, m.keys.Submit) {
			// Rows are not actionable.
			return m, nil
		}
		var cmd tea.Cmd
		m.entriesList, cmd = m.entriesList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateInputs forwards a key to the focused field and mirrors its value into
// the draft.
func (m appModel) updateInputs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
		m.state = recipes.EditTitle(m.state, m.titleInput.Value())
	case focusImage:
		m.imageInput, cmd = m.imageInput.Update(msg)
		m.state = recipes.EditImage(m.state, m.imageInput.Value())
	}
	return m, cmd
}

func (m *appModel) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.titleInput.Blur()
	m.imageInput.Blur()
	m.delegate.listActive = f == focusList
	switch f {
	case focusTitle:
		return m.titleInput.Focus()
	case focusImage:
		return m.imageInput.Focus()
	}
	return nil
}

// submit commits the draft. An empty title changes nothing.
func (m *appModel) submit() tea.Cmd {
	next, ok := recipes.Submit(m.state)
	if !ok {
		return nil
	}
	m.state = next
	m.titleInput.SetValue(m.state.Draft.Title)
	m.imageInput.SetValue(m.state.Draft.Image)
	m.refreshEntries(true)
	m.debugLogf("submit entries=%d focus=%s", recipes.Len(m.state), focusToString(m.focus))
	return m.scheduleThumbnailLoads()
}
