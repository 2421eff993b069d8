package extractor

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/insightdelivered/bank-notification-parser/internal/models"
)

// Input formats understood by Read.
const (
	FormatText  = "text"
	FormatCSV   = "csv"
	FormatJSONL = "jsonl"
)

// maxLineSize bounds a single line of text or JSONL input.
const maxLineSize = 1 << 20

// FormatForPath picks the input format from the file extension.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".jsonl", ".ndjson":
		return FormatJSONL
	default:
		return FormatText
	}
}

// ReadFile reads the notifications stored in the file at path.
func ReadFile(path string) ([]models.Notification, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %q: %w", path, err)
	}
	defer f.Close()

	records, err := Read(f, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Read parses notifications from r in the given format.
//
// Text input holds one message per non-blank line. CSV input needs a header
// row with a "message" column and may carry "package" and "sender" columns.
// JSONL input holds one object per line with the fields of models.Notification.
func Read(r io.Reader, format string) ([]models.Notification, error) {
	switch format {
	case FormatCSV:
		return readCSV(r)
	case FormatJSONL:
		return readJSONL(r)
	case FormatText, "":
		return readText(r)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

func readText(r io.Reader) ([]models.Notification, error) {
	var records []models.Notification
	scanner := newScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		records = append(records, models.Notification{Message: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read text input: %w", err)
	}
	return records, nil
}

func readJSONL(r io.Reader) ([]models.Notification, error) {
	var records []models.Notification
	scanner := newScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var n models.Notification
		if err := json.Unmarshal([]byte(line), &n); err != nil {
			return nil, fmt.Errorf("line %d: invalid JSON: %w", lineNo, err)
		}
		if strings.TrimSpace(n.Message) == "" {
			continue
		}
		records = append(records, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read JSONL input: %w", err)
	}
	return records, nil
}

func readCSV(r io.Reader) ([]models.Notification, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	msgCol, pkgCol, senderCol := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case "message":
			msgCol = i
		case "package", "packagename":
			pkgCol = i
		case "sender", "sendercode":
			senderCol = i
		}
	}
	if msgCol < 0 {
		return nil, errors.New(`CSV header has no "message" column`)
	}

	var records []models.Notification
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		n := models.Notification{
			Message:     column(row, msgCol),
			PackageName: column(row, pkgCol),
			SenderCode:  column(row, senderCol),
		}
		if n.Message == "" {
			continue
		}
		records = append(records, n)
	}
	return records, nil
}

func column(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner
}
