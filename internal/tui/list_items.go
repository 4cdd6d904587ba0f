package tui

import (
	"recetas-cli/internal/recipes"

	"github.com/charmbracelet/bubbles/list"
)

type entryItem struct {
	row recipes.Row
}

func (i entryItem) Title() string       { return i.row.Title }
func (i entryItem) FilterValue() string { return i.row.Title }

func newEntriesList(d *entryDelegate) list.Model {
	l := list.New([]list.Item{}, d, 0, 0)
	l.Title = "Recetas"
	// The screen renders its own heading and key help.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("receta", "recetas")
	// q is plain text on this screen; quitting is handled by the app keymap.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)
	return l
}

// entryItems projects the entry list into list items, in display order.
func entryItems(st recipes.State) []list.Item {
	items := make([]list.Item, 0, recipes.Len(st))
	for _, row := range recipes.Rows(st) {
		items = append(items, entryItem{row: row})
	}
	return items
}

// refreshEntries re-projects the list from state and selects the newest row
// when selectLast is set.
func (m *appModel) refreshEntries(selectLast bool) {
	items := entryItems(m.state)
	_ = m.entriesList.SetItems(items)
	if selectLast && len(items) > 0 {
		m.entriesList.Select(len(items) - 1)
	}
}
