package extract

import (
	"errors"
	"path/filepath"
	"strings"
)

// Review is a single guest review extracted from an uploaded file.
type Review struct {
	Text string `json:"review_text"`
}

// ErrUnsupportedFormat is returned when the file extension is not one of the
// supported review formats.
var ErrUnsupportedFormat = errors.New("unsupported file format: use CSV, XLSX, TXT, HTML or JSON")

// FromFile extracts reviews from an uploaded file, dispatching on the file
// extension. The content is raw file bytes; filename only supplies the
// extension.
func FromFile(filename string, content []byte) ([]Review, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return fromCSV(content)
	case ".xlsx", ".xls":
		return fromXLSX(content)
	case ".txt":
		return fromText(content), nil
	case ".html", ".htm":
		return fromHTML(content)
	case ".json":
		return fromJSON(content)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// cleanReview normalizes a candidate review cell. It returns the trimmed text
// and false for values that are empty or spreadsheet null markers.
func cleanReview(text string) (string, bool) {
	text = strings.TrimSpace(text)
	switch strings.ToLower(text) {
	case "", "nan", "none":
		return "", false
	}
	return text, true
}
