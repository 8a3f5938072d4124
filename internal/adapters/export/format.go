// Package export renders the board as a downloadable document in JSON, YAML,
// CSV or PDF.
package export

import (
	"strings"

	"github.com/jsamuelsen11/project-board/internal/domain"
)

// Format names an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

// Formats returns every supported format in the order they are advertised.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatCSV, FormatPDF}
}

// ParseFormat resolves a ?format= value, ignoring case and surrounding
// space. An empty value means JSON. Unknown values are a validation error
// on query.format.
func ParseFormat(raw string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(raw)))
	if f == "" {
		return FormatJSON, nil
	}
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", &domain.ValidationError{Fields: map[string]string{
		"query.format": "must be one of json, yaml, csv, pdf",
	}}
}

// ContentType returns the media type served for f.
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/json"
	}
}

// Filename returns the attachment name for f.
func (f Format) Filename() string {
	return "board." + string(f)
}
