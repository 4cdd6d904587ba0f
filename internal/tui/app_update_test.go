package tui

import (
	"reflect"
	"strings"
	"testing"

	"recetas-cli/internal/model"
	"recetas-cli/internal/recipes"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	mm, cmd := m.Update(msg)
	out, ok := mm.(appModel)
	if !ok {
		t.Fatalf("expected appModel, got %T", mm)
	}
	return out, cmd
}

func typeText(t *testing.T, m appModel, s string) appModel {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func press(t *testing.T, m appModel, k tea.KeyType) (appModel, tea.Cmd) {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: k})
}

func assertDraftsEmpty(t *testing.T, m appModel) {
	t.Helper()
	if m.state.Draft != (model.Draft{}) {
		t.Fatalf("expected empty drafts, got %#v", m.state.Draft)
	}
	if m.titleInput.Value() != "" || m.imageInput.Value() != "" {
		t.Fatalf("expected empty inputs, got %q / %q", m.titleInput.Value(), m.imageInput.Value())
	}
}

// draftInSync reports whether the inputs show exactly the draft held in state.
func draftInSync(m appModel) bool {
	return m.titleInput.Value() == m.state.Draft.Title && m.imageInput.Value() == m.state.Draft.Image
}

func TestSubmit_LongInputsStoredWhole(t *testing.T) {
	m := newAppModel(Options{})
	title := strings.Repeat("ñ", 250)
	image := "https://cdn.example.com/p.png?sig=" + strings.Repeat("a", 3000)

	m = typeText(t, m, title)
	m, _ = press(t, m, tea.KeyTab)
	m = typeText(t, m, image)
	if !draftInSync(m) || m.state.Draft.Title != title || m.state.Draft.Image != image {
		t.Fatalf("expected drafts to hold the full text, got %d/%d runes",
			len([]rune(m.state.Draft.Title)), len(m.state.Draft.Image))
	}

	m, _ = press(t, m, tea.KeyEnter)
	entries := recipes.Entries(m.state)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	ref, ok := entries[0].Image()
	if entries[0].Title != title || !ok || ref != image {
		t.Fatalf("stored entry was cut: title %d runes, image %d bytes",
			len([]rune(entries[0].Title)), len(ref))
	}
}

func TestFormField_StaysOnOneLine(t *testing.T) {
	got := formField(20, titleLabel, true, "a\nb"+strings.Repeat("x", 40))
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected label and box lines, got %d: %q", len(lines), got)
	}
	if w := xansi.StringWidth(lines[1]); w != 20 {
		t.Fatalf("expected box width 20, got %d", w)
	}
}

func TestSubmit_TitleOnly_AddsEntryWithoutImage(t *testing.T) {
	m := newAppModel(Options{})
	m = typeText(t, m, "Pasta")
	if m.state.Draft.Title != "Pasta" || !draftInSync(m) {
		t.Fatalf("expected title draft to track input, got %#v", m.state.Draft)
	}

	m, cmd := press(t, m, tea.KeyEnter)
	if cmd != nil {
		t.Fatalf("expected no cmd without an image, got %v", cmd)
	}
	want := []model.Entry{{Title: "Pasta"}}
	if got := recipes.Entries(m.state); !reflect.DeepEqual(got, want) {
		t.Fatalf("entries:\n got: %#v\nwant: %#v", got, want)
	}
	assertDraftsEmpty(t, m)
}

func TestSubmit_EmptyTitle_LeavesListAndDraftsUnchanged(t *testing.T) {
	m := newAppModel(Options{})
	m, _ = press(t, m, tea.KeyTab)
	m = typeText(t, m, "http://x")

	m, cmd := press(t, m, tea.KeyEnter)
	if cmd != nil {
		t.Fatalf("expected no cmd for empty title")
	}
	if recipes.Len(m.state) != 0 {
		t.Fatalf("expected empty list, got %d entries", recipes.Len(m.state))
	}
	if m.state.Draft != (model.Draft{Image: "http://x"}) || !draftInSync(m) {
		t.Fatalf("expected drafts unchanged, got %#v (input %q)", m.state.Draft, m.imageInput.Value())
	}
	if m.noticeText != "" {
		t.Fatalf("empty title must not show a notice, got %q", m.noticeText)
	}
}

func TestSubmit_SequentialEntriesKeepOrder(t *testing.T) {
	m := newAppModel(Options{})
	for _, title := range []string{"A", "B"} {
		m = typeText(t, m, title)
		m, _ = press(t, m, tea.KeyEnter)
		assertDraftsEmpty(t, m)
	}
	want := []model.Entry{{Title: "A"}, {Title: "B"}}
	if got := recipes.Entries(m.state); !reflect.DeepEqual(got, want) {
		t.Fatalf("entries:\n got: %#v\nwant: %#v", got, want)
	}
	if got := len(m.entriesList.Items()); got != 2 {
		t.Fatalf("expected 2 list rows, got %d", got)
	}
	if m.entriesList.Index() != 1 {
		t.Fatalf("expected newest row selected, got %d", m.entriesList.Index())
	}
}

func TestSubmit_WithImage_StoresReference(t *testing.T) {
	m := newAppModel(Options{})
	m = typeText(t, m, "Tacos")
	m, _ = press(t, m, tea.KeyTab)
	m = typeText(t, m, "https://example.com/t.png")
	m, _ = press(t, m, tea.KeyEnter)

	entries := recipes.Entries(m.state)
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if ref, ok := entries[0].Image(); !ok || ref != "https://example.com/t.png" {
		t.Fatalf("unexpected image ref %q (present=%v)", ref, ok)
	}
	assertDraftsEmpty(t, m)
}

func TestSubmit_FromButtonAndCtrlS(t *testing.T) {
	m := newAppModel(Options{})
	m = typeText(t, m, "A")
	m, _ = press(t, m, tea.KeyTab)
	m, _ = press(t, m, tea.KeyTab)
	if m.focus != focusSubmit {
		t.Fatalf("expected submit focus, got %s", focusToString(m.focus))
	}
	m, _ = press(t, m, tea.KeyEnter)

	m, _ = press(t, m, tea.KeyShiftTab)
	m, _ = press(t, m, tea.KeyShiftTab)
	m = typeText(t, m, "B")
	m, _ = press(t, m, tea.KeyTab)
	m, _ = press(t, m, tea.KeyTab)
	m, _ = press(t, m, tea.KeyTab)
	if m.focus != focusList {
		t.Fatalf("expected list focus, got %s", focusToString(m.focus))
	}
	m, _ = press(t, m, tea.KeyCtrlS)

	if got := recipes.Len(m.state); got != 2 {
		t.Fatalf("expected 2 entries, got %d", got)
	}
	assertDraftsEmpty(t, m)
}

func TestEnterOnRow_IsInert(t *testing.T) {
	m := newAppModel(Options{})
	m = typeText(t, m, "A")
	m, _ = press(t, m, tea.KeyEnter)
	m, _ = press(t, m, tea.KeyShiftTab)
	if m.focus != focusList {
		t.Fatalf("expected list focus, got %s", focusToString(m.focus))
	}

	before := recipes.Entries(m.state)
	m, cmd := press(t, m, tea.KeyEnter)
	if cmd != nil {
		t.Fatalf("expected no cmd for row enter")
	}
	if !reflect.DeepEqual(recipes.Entries(m.state), before) || m.focus != focusList || m.showHelp {
		t.Fatalf("expected row enter to change nothing")
	}
}

func TestFocus_CyclesThroughAllAreas(t *testing.T) {
	m := newAppModel(Options{})
	want := []focusArea{focusImage, focusSubmit, focusList, focusTitle}
	for i, f := range want {
		m, _ = press(t, m, tea.KeyTab)
		if m.focus != f {
			t.Fatalf("tab %d: expected %s, got %s", i+1, focusToString(f), focusToString(m.focus))
		}
	}
	if !m.titleInput.Focused() || m.imageInput.Focused() {
		t.Fatalf("expected only title input focused")
	}
	m, _ = press(t, m, tea.KeyShiftTab)
	if m.focus != focusList || !m.delegate.listActive {
		t.Fatalf("expected shift+tab from title to reach the list")
	}
}

func TestTyping_QuestionMarkInFieldIsText(t *testing.T) {
	m := newAppModel(Options{})
	m = typeText(t, m, "¿Qué?")
	if m.showHelp {
		t.Fatalf("expected ? in a field to be typed, not open help")
	}
	if m.state.Draft.Title != "¿Qué?" {
		t.Fatalf("unexpected draft %q", m.state.Draft.Title)
	}
}

func TestHelp_ToggleAndQuit(t *testing.T) {
	m := newAppModel(Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	m, _ = press(t, m, tea.KeyF1)
	if !m.showHelp {
		t.Fatalf("expected help overlay")
	}
	if strings.TrimSpace(m.View()) == "" {
		t.Fatalf("expected help to render")
	}
	m = typeText(t, m, "x")
	if m.state.Draft.Title != "" {
		t.Fatalf("expected keys to be swallowed while help is shown")
	}

	m, cmd := press(t, m, tea.KeyEsc)
	if m.showHelp || cmd != nil {
		t.Fatalf("expected esc to close help without quitting")
	}

	m, _ = press(t, m, tea.KeyShiftTab)
	m = typeText(t, m, "?")
	if !m.showHelp {
		t.Fatalf("expected ? on the list to open help")
	}
	m, _ = press(t, m, tea.KeyF1)

	_, cmd = press(t, m, tea.KeyEsc)
	if cmd == nil {
		t.Fatalf("expected quit cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestView_ShowsFormAndRows(t *testing.T) {
	m := newAppModel(Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	v := m.View()
	for _, s := range []string{screenTitle, titleLabel, imageLabel, submitLabel, emptyList} {
		if !strings.Contains(v, s) {
			t.Fatalf("expected view to contain %q", s)
		}
	}

	m = typeText(t, m, "Paella")
	m, _ = press(t, m, tea.KeyEnter)
	v = m.View()
	if !strings.Contains(v, "Paella") || strings.Contains(v, emptyList) {
		t.Fatalf("expected row for Paella, got:\n%s", v)
	}
}
