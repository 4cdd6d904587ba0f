package perm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	ReadMediaImages     = "android.permission.READ_MEDIA_IMAGES"
	ReadExternalStorage = "android.permission.READ_EXTERNAL_STORAGE"

	// MediaImagesMinLevel is the first platform level with the granular
	// media-images permission.
	MediaImagesMinLevel = 33

	DeniedNotice = "Permission denied"
)

// IdentifierFor picks the media-read permission for a platform level.
// Levels <= 0 are unknown and treated as current.
func IdentifierFor(level int) string {
	if level <= 0 || level >= MediaImagesMinLevel {
		return ReadMediaImages
	}
	return ReadExternalStorage
}

// Requester asks the host whether a permission is granted. Implementations
// answer once per call.
type Requester interface {
	Request(ctx context.Context, id string) (bool, error)
}

// Static always answers the same.
type Static bool

func (s Static) Request(context.Context, string) (bool, error) { return bool(s), nil }

// DirRequester grants media access when Dir is a directory the process can
// list.
type DirRequester struct {
	Dir string
}

func (r DirRequester) Request(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	dir := strings.TrimSpace(r.Dir)
	if dir == "" {
		return false, nil
	}
	fi, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
			return false, nil
		}
		return false, fmt.Errorf("%s: stat %s: %w", id, dir, err)
	}
	if !fi.IsDir() {
		return false, nil
	}
	f, err := os.Open(dir)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return false, nil
		}
		return false, fmt.Errorf("%s: open %s: %w", id, dir, err)
	}
	defer f.Close()
	if _, err := f.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		if errors.Is(err, os.ErrPermission) {
			return false, nil
		}
		return false, fmt.Errorf("%s: list %s: %w", id, dir, err)
	}
	return true, nil
}

type Result struct {
	ID      string
	Granted bool
	Err     error
}

// Ask runs one request. A requester error is reported as a denial with Err set.
func Ask(ctx context.Context, r Requester, id string) Result {
	if r == nil {
		return Result{ID: id}
	}
	ok, err := r.Request(ctx, id)
	if err != nil {
		return Result{ID: id, Err: err}
	}
	return Result{ID: id, Granted: ok}
}
