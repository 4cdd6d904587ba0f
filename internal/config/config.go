package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"recetas-cli/internal/perm"
	"recetas-cli/internal/thumb"
)

const (
	PermissionProbe = "probe"
	PermissionGrant = "grant"
	PermissionDeny  = "deny"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	// PlatformLevel selects which media permission is requested (see perm.IdentifierFor).
	// Zero means the current platform.
	PlatformLevel int `json:"platformLevel,omitempty"`

	// Permission is how the media permission is answered: "probe" checks MediaDir,
	// "grant"/"deny" answer without touching the filesystem.
	Permission string `json:"permission,omitempty"`

	MediaDir string `json:"mediaDir,omitempty"`

	Thumbnails ThumbnailConfig `json:"thumbnails"`
}

type ThumbnailConfig struct {
	Enabled        *bool `json:"enabled,omitempty"`
	Width          int   `json:"width,omitempty"`
	Height         int   `json:"height,omitempty"`
	TimeoutSeconds int   `json:"timeoutSeconds,omitempty"`
	MaxBytes       int64 `json:"maxBytes,omitempty"`
	MaxPixels      int64 `json:"maxPixels,omitempty"`
}

func (t ThumbnailConfig) IsEnabled() bool { return t.Enabled == nil || *t.Enabled }

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.recetas).
	if v := strings.TrimSpace(os.Getenv("RECETAS_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".recetas"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads config.json (missing file => defaults), then applies
// environment overrides and defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	b, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if err == nil {
		if err := json.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv("RECETAS_PLATFORM_LEVEL")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: RECETAS_PLATFORM_LEVEL=%q", ErrInvalid, v)
		}
		c.PlatformLevel = n
	}
	if v := strings.TrimSpace(os.Getenv("RECETAS_PERMISSION")); v != "" {
		c.Permission = v
	}
	if v := strings.TrimSpace(os.Getenv("RECETAS_MEDIA_DIR")); v != "" {
		c.MediaDir = v
	}
	return nil
}

func (c *Config) applyDefaults() {
	c.Permission = strings.ToLower(strings.TrimSpace(c.Permission))
	if c.Permission == "" {
		c.Permission = PermissionProbe
	}
	if strings.TrimSpace(c.MediaDir) == "" {
		c.MediaDir = DefaultMediaDir()
	}
	if c.Thumbnails.Width == 0 {
		c.Thumbnails.Width = thumb.DefaultWidth
	}
	if c.Thumbnails.Height == 0 {
		c.Thumbnails.Height = thumb.DefaultHeight
	}
	if c.Thumbnails.TimeoutSeconds == 0 {
		c.Thumbnails.TimeoutSeconds = int(thumb.DefaultTimeout / time.Second)
	}
	if c.Thumbnails.MaxBytes == 0 {
		c.Thumbnails.MaxBytes = thumb.DefaultMaxBytes
	}
	if c.Thumbnails.MaxPixels == 0 {
		c.Thumbnails.MaxPixels = thumb.DefaultMaxPixels
	}
}

// DefaultMediaDir is $XDG_PICTURES_DIR, else ~/Pictures.
func DefaultMediaDir() string {
	if v := strings.TrimSpace(os.Getenv("XDG_PICTURES_DIR")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Pictures")
}

func (c *Config) Validate() error {
	switch c.Permission {
	case PermissionProbe, PermissionGrant, PermissionDeny:
	default:
		return fmt.Errorf("%w: permission must be one of probe|grant|deny, got %q", ErrInvalid, c.Permission)
	}
	t := c.Thumbnails
	if t.Width < 0 || t.Height < 0 || t.TimeoutSeconds < 0 || t.MaxBytes < 0 || t.MaxPixels < 0 {
		return fmt.Errorf("%w: thumbnail sizes must not be negative", ErrInvalid)
	}
	return nil
}

// PermissionID is the media permission this configuration requests.
func (c *Config) PermissionID() string { return perm.IdentifierFor(c.PlatformLevel) }

func (c *Config) Requester() perm.Requester {
	switch c.Permission {
	case PermissionGrant:
		return perm.Static(true)
	case PermissionDeny:
		return perm.Static(false)
	default:
		return perm.DirRequester{Dir: c.MediaDir}
	}
}

func (c *Config) Loader() *thumb.Loader {
	l := thumb.NewLoader()
	l.Width = c.Thumbnails.Width
	l.Height = c.Thumbnails.Height
	l.Timeout = time.Duration(c.Thumbnails.TimeoutSeconds) * time.Second
	l.MaxBytes = c.Thumbnails.MaxBytes
	l.MaxPixels = c.Thumbnails.MaxPixels
	return l
}
