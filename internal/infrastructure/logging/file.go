package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// OpenFile opens path for appending, creating parent directories as needed.
// The TUI logs here so entries never land on the alternate screen.
func OpenFile(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
