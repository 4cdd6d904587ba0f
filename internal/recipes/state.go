package recipes

import (
	"iter"

	"recetas-cli/internal/model"
)

// State is the whole screen state owned by the form and the entry list.
//
// Operations take a State and return a new one; entries are append-only and
// a returned State never shares a backing array with the State it came from.
type State struct {
	Draft model.Draft

	entries []model.Entry
}

func EditTitle(st State, text string) State {
	st.Draft.Title = text
	return st
}

func EditImage(st State, text string) State {
	st.Draft.Image = text
	return st
}

// Submit commits the draft when the title is non-empty. An empty title is a
// silent no-op: the state (drafts included) is returned unchanged and ok is
// false. Whitespace-only titles count as non-empty.
func Submit(st State) (State, bool) {
	if st.Draft.Title == "" {
		return st, false
	}
	e := model.Entry{Title: st.Draft.Title}
	if st.Draft.Image != "" {
		ref := st.Draft.Image
		e.ImageRef = &ref
	}
	st = Append(st, e)
	st.Draft = model.Draft{}
	return st, true
}

// Append adds e to the end of the list.
func Append(st State, e model.Entry) State {
	next := make([]model.Entry, len(st.entries), len(st.entries)+1)
	copy(next, st.entries)
	st.entries = append(next, e)
	return st
}

func Len(st State) int { return len(st.entries) }

// Entries returns a copy of the entries in insertion order.
func Entries(st State) []model.Entry {
	out := make([]model.Entry, len(st.entries))
	copy(out, st.entries)
	return out
}

// Row is the display projection of one entry.
type Row struct {
	Title    string
	ImageRef string
	HasImage bool
}

func rowFor(e model.Entry) Row {
	ref, ok := e.Image()
	return Row{Title: e.Title, ImageRef: ref, HasImage: ok}
}

// Rows yields one row per entry in display order. The sequence is lazy and can
// be ranged over any number of times.
func Rows(st State) iter.Seq2[int, Row] {
	entries := st.entries
	return func(yield func(int, Row) bool) {
		for i, e := range entries {
			if !yield(i, rowFor(e)) {
				return
			}
		}
	}
}

// ImageRefs returns the distinct image references in first-seen order.
func ImageRefs(st State) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range Rows(st) {
		if !r.HasImage || seen[r.ImageRef] {
			continue
		}
		seen[r.ImageRef] = true
		out = append(out, r.ImageRef)
	}
	return out
}
