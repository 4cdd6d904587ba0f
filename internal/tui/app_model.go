package tui

import (
	"log"
	"strings"

	"recetas-cli/internal/perm"
	"recetas-cli/internal/recipes"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
)

// Options wires the screen to its host collaborators.
type Options struct {
	// PermissionID is the media permission requested once at startup. With a
	// nil Requester no request is made.
	PermissionID string
	Requester    perm.Requester

	// Loader renders thumbnails. Nil disables thumbnails; rows with an image
	// then show a marker instead.
	Loader      ImageLoader
	ThumbWidth  int
	ThumbHeight int

	// Logger receives debug records. Nil disables debug logging.
	Logger *log.Logger
}

type appModel struct {
	width  int
	height int

	state recipes.State

	titleInput textinput.Model
	imageInput textinput.Model
	focus      focusArea

	entriesList list.Model
	delegate    *entryDelegate

	gate *permissionGate

	loader ImageLoader
	thumbs map[string]*thumbEntry

	noticeText string
	noticeSeq  int

	showHelp bool
	keys     keyMap
	help     help.Model

	logger *log.Logger
}

func newAppModel(opts Options) appModel {
	m := appModel{
		focus:  focusTitle,
		loader: opts.Loader,
		thumbs: map[string]*thumbEntry{},
		keys:   defaultKeyMap(),
		help:   help.New(),
		logger: opts.Logger,
	}
	if opts.Requester != nil {
		m.gate = &permissionGate{
			id:        strings.TrimSpace(opts.PermissionID),
			requester: opts.Requester,
		}
	}

	m.titleInput = textinput.New()
	m.titleInput.Prompt = ""
	m.titleInput.Placeholder = "Título de Receta"
	m.titleInput.CharLimit = 0
	m.titleInput.Width = 48

	m.imageInput = textinput.New()
	m.imageInput.Prompt = ""
	m.imageInput.Placeholder = "https://… o ruta local"
	m.imageInput.CharLimit = 0
	m.imageInput.Width = 48

	m.titleInput.Focus()

	m.delegate = newEntryDelegate(m.thumbs, opts.Loader != nil, opts.ThumbWidth, opts.ThumbHeight)
	m.entriesList = newEntriesList(m.delegate)
	return m
}
