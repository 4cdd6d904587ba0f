package tui

import (
	"context"
	"time"

	"recetas-cli/internal/perm"
	"recetas-cli/internal/thumb"

	"github.com/charmbracelet/bubbles/key"
)

// NoticeDuration is how long a transient notice stays on screen.
const NoticeDuration = 2 * time.Second

// ImageLoader produces a thumbnail for an image reference.
type ImageLoader interface {
	Load(ctx context.Context, ref string) (thumb.Thumbnail, error)
}

type permissionResultMsg struct {
	result perm.Result
}

type thumbLoadedMsg struct {
	ref   string
	thumb thumb.Thumbnail
	err   error
}

type noticeDoneMsg struct{ seq int }

type focusArea int

const (
	focusTitle focusArea = iota
	focusImage
	focusSubmit
	focusList

	focusCount
)

func focusToString(f focusArea) string {
	switch f {
	case focusTitle:
		return "title"
	case focusImage:
		return "image"
	case focusSubmit:
		return "submit"
	case focusList:
		return "list"
	default:
		return "unknown"
	}
}

type thumbStatus int

const (
	thumbLoading thumbStatus = iota
	thumbReady
	thumbFailed
)

type thumbEntry struct {
	status thumbStatus
	thumb  thumb.Thumbnail
}

// permissionGate records that the startup request was issued. It is shared by
// pointer so every copy of the model sees the same answer.
type permissionGate struct {
	id        string
	requester perm.Requester

	issued   bool
	answered bool
	notified bool
}

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Save   key.Binding
	Up     key.Binding
	Down   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "agregar")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "agregar")),
		Up:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		Help:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Submit, k.Save},
		{k.Up, k.Down},
		{k.Help, k.Quit},
	}
}
