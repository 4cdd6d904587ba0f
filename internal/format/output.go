package format

import (
	"encoding/json"
	"io"
)

// WriteJSON writes one JSON document followed by a newline. HTML characters
// are not escaped so URLs print as typed.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
