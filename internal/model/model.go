package model

// Entry is one recipe row: a title and an optional image reference (URL, file
// URI or path). ImageRef is nil when no image was given; it never points to an
// empty string.
type Entry struct {
	Title    string  `json:"title"`
	ImageRef *string `json:"imageRef,omitempty"`
}

// Image returns the image reference and whether one is present.
func (e Entry) Image() (string, bool) {
	if e.ImageRef == nil {
		return "", false
	}
	return *e.ImageRef, true
}

// Draft is the uncommitted form text.
type Draft struct {
	Title string `json:"title"`
	Image string `json:"image"`
}
