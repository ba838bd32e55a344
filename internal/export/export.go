// Package export writes rendered views to files, the planner's stand-in for
// a page screenshot. Capture hides chrome the snapshot should not contain
// and guarantees it comes back whether or not the render succeeds.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Exporter writes snapshots into a directory, one file per capture, named
// <prefix>_<yyyy-mm-dd>.txt.
type Exporter struct {
	dir string
	now func() time.Time
}

// Option customizes an Exporter during construction.
type Option func(*Exporter)

// WithClock overrides the clock used for snapshot file names.
func WithClock(clock func() time.Time) Option {
	return func(e *Exporter) {
		e.now = clock
	}
}

// New builds an exporter writing into dir.
func New(dir string, opts ...Option) *Exporter {
	exporter := &Exporter{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(exporter)
	}
	return exporter
}

// Capture renders a snapshot and writes it to disk, returning the file path.
// hide runs before the render and restore always runs afterwards, error or
// not, so no part of the UI stays hidden after a failed export.
func (e *Exporter) Capture(prefix string, hide, restore func(), render func() (string, error)) (path string, err error) {
	if hide != nil {
		hide()
	}
	if restore != nil {
		defer restore()
	}
	content, err := render()
	if err != nil {
		return "", fmt.Errorf("export: render snapshot: %w", err)
	}
	return e.write(prefix, content)
}

func (e *Exporter) write(prefix, content string) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("export: ensure export dir: %w", err)
	}
	name := fmt.Sprintf("%s_%s.txt", sanitize(prefix), e.now().Format("2006-01-02"))
	path := filepath.Join(e.dir, name)
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	return path, nil
}

// sanitize turns an arbitrary label (a project name, say) into a safe file
// name fragment.
func sanitize(label string) string {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return "snapshot"
	}
	var b strings.Builder
	for _, r := range trimmed {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
