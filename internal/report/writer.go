// Package report persists analytics results as JSON report files. Writing
// is an explicit step the caller opts into; the analytics engine itself
// never touches the filesystem.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Writer writes named reports into a directory, one timestamped JSON file
// per call.
type Writer struct {
	now func() time.Time
	Dir string
}

// NewWriter creates a report writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir, now: time.Now}
}

// Write marshals v as indented JSON and saves it under a
// "report_<name>_<timestamp>.json" file, creating the directory when
// needed. It returns the path of the written file.
func (w *Writer) Write(name string, v any) (string, error) {
	if err := os.MkdirAll(w.Dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create report directory %s: %w", w.Dir, err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to encode report %s: %w", name, err)
	}

	filename := fmt.Sprintf("report_%s_%s.json", name, w.now().Format("20060102_150405"))
	path := filepath.Join(w.Dir, filename)
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return "", fmt.Errorf("failed to write report file %s: %w", path, err)
	}

	return path, nil
}
