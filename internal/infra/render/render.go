// Package render exports a finished brochure run as markdown, JSON or PDF.
package render

import (
	"fmt"
	"net/url"
	"strings"

	"company-brochure/internal/domain/entity"
)

// Output formats.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatPDF      = "pdf"
)

// Exporter turns a brochure run into file contents.
type Exporter interface {
	Export(run *entity.BrochureRequest) ([]byte, error)
	Extension() string
	ContentType() string
}

// New returns the exporter for format.
func New(format string) (Exporter, error) {
	switch strings.ToLower(format) {
	case FormatMarkdown, "md", "":
		return MarkdownExporter{}, nil
	case FormatJSON:
		return JSONExporter{}, nil
	case FormatPDF:
		return PDFExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want markdown, json or pdf)", format)
	}
}

// Filename derives a flat file name from the base URL,
// e.g. https://www.acme.test/en gives "www_acme_test_en_brochure.md".
func Filename(baseURL, ext string) string {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return sanitize(baseURL) + "_brochure" + ext
	}

	parts := []string{sanitize(parsed.Host)}
	if path := strings.Trim(parsed.Path, "/"); path != "" {
		for _, seg := range strings.Split(path, "/") {
			parts = append(parts, sanitize(seg))
		}
	}
	return strings.Join(parts, "_") + "_brochure" + ext
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
