package tui

import (
	"strings"

	"recetas-cli/internal/docs"
	"recetas-cli/internal/recipes"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	screenTitle = "Lista de Recetas"
	titleLabel  = "Título de Receta"
	imageLabel  = "Enlace de Imagen"
	submitLabel = "Agregar"
	emptyList   = "Todavía no hay recetas."

	minBodyWidth = 24
)

func (m appModel) bodyWidth() int {
	w := m.width - 4
	if w < minBodyWidth {
		w = minBodyWidth
	}
	return w
}

func (m appModel) View() string {
	if m.showHelp {
		return m.viewHelp()
	}

	parts := []string{m.viewForm(), "", m.viewEntries()}
	if n := m.viewNotice(); n != "" {
		parts = append(parts, "", n)
	}
	parts = append(parts, "", m.help.View(m.keys))
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(parts, "\n"))
}

func (m appModel) viewForm() string {
	w := m.bodyWidth()
	lines := []string{
		styleHeading().Render(screenTitle),
		"",
		formField(w, titleLabel, m.focus == focusTitle, m.titleInput.View()),
		"",
		formField(w, imageLabel, m.focus == focusImage, m.imageInput.View()),
		"",
		styleButton(m.focus == focusSubmit).Render(submitLabel),
	}
	return strings.Join(lines, "\n")
}

// formField renders a label over a one-line input box of width w. The box
// never wraps: stray newlines are flattened and overflow is cut.
func formField(w int, label string, focused bool, in string) string {
	if w < 10 {
		w = 10
	}
	in = strings.NewReplacer("\n", " ", "\r", " ").Replace(in)

	box := lipgloss.PlaceHorizontal(
		w,
		lipgloss.Left,
		" "+in+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(box) > w {
		box = xansi.Cut(box, 0, w) + "\x1b[0m"
	}
	return styleLabel(focused).Render(label) + "\n" + box
}

func (m appModel) viewEntries() string {
	if recipes.Len(m.state) == 0 {
		return styleMuted().Render(emptyList)
	}
	return m.entriesList.View()
}

func (m appModel) viewHelp() string {
	w := m.bodyWidth()
	body, ok := docs.Get("keys")
	if !ok {
		body = "# " + docs.Title("keys")
	}
	footer := styleMuted().Render("esc/f1: close help")
	return lipgloss.NewStyle().Padding(1, 2).Render(renderMarkdown(body, w) + "\n\n" + footer)
}

// resize fits the entry list into the space left under the form.
func (m *appModel) resize() {
	w := m.bodyWidth()
	m.titleInput.Width = w - 3
	m.imageInput.Width = w - 3
	m.help.Width = w

	// Padding, form, blank lines, notice and help footer.
	reserved := 2 + lipgloss.Height(m.viewForm()) + 1 + 2 + 2
	h := m.height - reserved
	if minH := m.delegate.Height(); h < minH {
		h = minH
	}
	m.entriesList.SetSize(w, h)
}
