package render

import "company-brochure/internal/domain/entity"

// MarkdownExporter writes the brochure text as-is.
type MarkdownExporter struct{}

// Export implements Exporter.
func (MarkdownExporter) Export(run *entity.BrochureRequest) ([]byte, error) {
	return []byte(run.Brochure.Markdown), nil
}

// Extension implements Exporter.
func (MarkdownExporter) Extension() string { return ".md" }

// ContentType implements Exporter.
func (MarkdownExporter) ContentType() string { return "text/markdown; charset=utf-8" }
