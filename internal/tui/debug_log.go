package tui

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// OpenDebugLog opens (appending) the debug log at path. An empty path returns
// a nil logger and a no-op close.
func OpenDebugLog(path string) (*log.Logger, func() error, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	return log.New(f, "recetas ", log.LstdFlags|log.Lmicroseconds), f.Close, nil
}

// debugLogf writes one record to the debug log. The screen owns the terminal,
// so nothing is ever written to stdout/stderr while it runs.
func (m appModel) debugLogf(format string, args ...any) {
	if m.logger == nil {
		return
	}
	m.logger.Printf(format, args...)
}
