package thumb

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

const (
	DefaultWidth    = 8
	DefaultHeight   = 4
	DefaultMaxBytes = 10 << 20
	// 24 megapixels; decoded as RGBA that is under 100 MB.
	DefaultMaxPixels = 24_000_000
	DefaultTimeout  = 10 * time.Second
)

var (
	ErrUnsupportedRef = errors.New("unsupported image reference")
	ErrTooLarge       = errors.New("image too large")
)

// Loader fetches an image reference and renders it as a small block of
// terminal cells. Width and Height are in cells; each cell carries two
// vertically stacked pixels.
type Loader struct {
	Client   *http.Client
	MaxBytes int64
	// MaxPixels caps width*height as declared by the image header, checked
	// before the pixels are decoded.
	MaxPixels int64
	Timeout   time.Duration
	Width     int
	Height    int
}

func NewLoader() *Loader {
	return &Loader{
		Client:    &http.Client{},
		MaxBytes:  DefaultMaxBytes,
		MaxPixels: DefaultMaxPixels,
		Timeout:   DefaultTimeout,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
	}
}

func (l *Loader) size() (int, int) {
	w, h := l.Width, l.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

func (l *Loader) maxBytes() int64 {
	if l.MaxBytes <= 0 {
		return DefaultMaxBytes
	}
	return l.MaxBytes
}

func (l *Loader) maxPixels() int64 {
	if l.MaxPixels <= 0 {
		return DefaultMaxPixels
	}
	return l.MaxPixels
}

// Load reads, decodes and renders ref.
func (l *Loader) Load(ctx context.Context, ref string) (Thumbnail, error) {
	b, err := l.read(ctx, ref)
	if err != nil {
		return Thumbnail{}, err
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return Thumbnail{}, fmt.Errorf("decode %s: %w", ref, err)
	}
	if px := int64(cfg.Width) * int64(cfg.Height); px > l.maxPixels() {
		return Thumbnail{}, fmt.Errorf("%w: %s is %dx%d", ErrTooLarge, ref, cfg.Width, cfg.Height)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return Thumbnail{}, fmt.Errorf("decode %s: %w", ref, err)
	}
	w, h := l.size()
	return Render(img, w, h), nil
}

func (l *Loader) read(ctx context.Context, ref string) ([]byte, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrUnsupportedRef
	}
	u, err := url.Parse(ref)
	if err != nil {
		// Not a URL; may still be a path.
		return l.readFile(ref)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return l.fetch(ctx, u.String())
	case "file":
		return l.readFile(u.Path)
	case "":
		return l.readFile(ref)
	default:
		// Windows drive letters parse as one-letter schemes.
		if len(u.Scheme) == 1 {
			return l.readFile(ref)
		}
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedRef, ref)
	}
}

func (l *Loader) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "image/*")
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: %s", rawURL, resp.Status)
	}
	return l.readLimited(resp.Body, rawURL)
}

func (l *Loader) readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return l.readLimited(f, path)
}

func (l *Loader) readLimited(r io.Reader, name string) ([]byte, error) {
	limit := l.maxBytes()
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if int64(len(b)) > limit {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, name, limit)
	}
	return b, nil
}

// Thumbnail is a rendered image, one string per terminal line.
type Thumbnail struct {
	Lines []string
}

func (t Thumbnail) Render() string { return strings.Join(t.Lines, "\n") }

func (t Thumbnail) Height() int { return len(t.Lines) }

// Blank is an empty w x h slot.
func Blank(w, h int) Thumbnail {
	if w < 0 {
		w = 0
	}
	lines := make([]string, h)
	for i := range lines {
		lines[i] = strings.Repeat(" ", w)
	}
	return Thumbnail{Lines: lines}
}

// Render scales img to fit w x h cells (aspect preserved, centered) and draws
// it with upper-half blocks.
func Render(img image.Image, w, h int) Thumbnail {
	if w <= 0 || h <= 0 {
		return Thumbnail{}
	}
	pxW, pxH := w, h*2
	src := img.Bounds()
	if src.Dx() <= 0 || src.Dy() <= 0 {
		return Blank(w, h)
	}

	fitW, fitH := pxW, src.Dy()*pxW/src.Dx()
	if fitH > pxH {
		fitW, fitH = src.Dx()*pxH/src.Dy(), pxH
	}
	if fitW < 1 {
		fitW = 1
	}
	if fitH < 1 {
		fitH = 1
	}

	canvas := image.NewRGBA(image.Rect(0, 0, pxW, pxH))
	offX, offY := (pxW-fitW)/2, (pxH-fitH)/2
	draw.ApproxBiLinear.Scale(canvas, image.Rect(offX, offY, offX+fitW, offY+fitH), img, src, draw.Over, nil)

	lines := make([]string, h)
	for row := 0; row < h; row++ {
		var line strings.Builder
		for x := 0; x < pxW; x++ {
			top := canvas.RGBAAt(x, row*2)
			bottom := canvas.RGBAAt(x, row*2+1)
			line.WriteString(cell(top, bottom))
		}
		lines[row] = line.String()
	}
	return Thumbnail{Lines: lines}
}

func cell(top, bottom color.RGBA) string {
	switch {
	case top.A == 0 && bottom.A == 0:
		return " "
	case bottom.A == 0:
		return lipgloss.NewStyle().Foreground(hex(top)).Render("▀")
	case top.A == 0:
		return lipgloss.NewStyle().Foreground(hex(bottom)).Render("▄")
	default:
		return lipgloss.NewStyle().Foreground(hex(top)).Background(hex(bottom)).Render("▀")
	}
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
