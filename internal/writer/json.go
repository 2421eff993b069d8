package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/insightdelivered/bank-notification-parser/internal/models"
)

// JSONWriter writes parse outcomes as a JSON array.
type JSONWriter struct {
	Indent bool
}

// WriteToFile writes outcomes to a JSON file at the given path.
func (w *JSONWriter) WriteToFile(path string, outcomes []models.Outcome) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, outcomes)
}

// Write encodes outcomes to out. A nil slice is written as [].
func (w *JSONWriter) Write(out io.Writer, outcomes []models.Outcome) error {
	if outcomes == nil {
		outcomes = []models.Outcome{}
	}

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	if w.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(outcomes); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
