package render

import (
	"encoding/json"
	"fmt"
	"time"

	"company-brochure/internal/domain/entity"
)

// Document is the JSON form of a brochure run.
type Document struct {
	ID            string                     `json:"id"`
	BaseURL       string                     `json:"base_url"`
	CompanyName   string                     `json:"company_name"`
	Brochure      string                     `json:"company_brochure"`
	RelevantLinks []entity.RelevantLinkEntry `json:"relevant_links"`
	LinksFound    int                        `json:"links_found"`
	Degraded      bool                       `json:"degraded"`
	Errors        []string                   `json:"errors,omitempty"`
	GeneratedAt   time.Time                  `json:"generated_at"`
	DurationMS    int64                      `json:"duration_ms"`
}

// NewDocument builds the JSON form of run.
func NewDocument(run *entity.BrochureRequest) Document {
	doc := Document{
		ID:            run.ID,
		BaseURL:       run.BaseURL,
		CompanyName:   run.CompanyName,
		Brochure:      run.Brochure.Markdown,
		RelevantLinks: run.Relevant.Entries,
		LinksFound:    run.Links.Len(),
		Degraded:      run.Degraded(),
		GeneratedAt:   run.StartedAt.UTC(),
		DurationMS:    run.Duration.Milliseconds(),
	}
	if doc.RelevantLinks == nil {
		doc.RelevantLinks = []entity.RelevantLinkEntry{}
	}
	stages := []struct {
		name string
		err  error
	}{
		{"fetch_content", run.Content.Err},
		{"fetch_links", run.Links.Err},
		{"select_links", run.Relevant.Err},
		{"generate", run.Brochure.Err},
	}
	for _, st := range stages {
		if st.err != nil {
			doc.Errors = append(doc.Errors, st.name)
		}
	}
	return doc
}

// JSONExporter writes the run as indented JSON.
type JSONExporter struct{}

// Export implements Exporter.
func (JSONExporter) Export(run *entity.BrochureRequest) ([]byte, error) {
	data, err := json.MarshalIndent(NewDocument(run), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension implements Exporter.
func (JSONExporter) Extension() string { return ".json" }

// ContentType implements Exporter.
func (JSONExporter) ContentType() string { return "application/json" }
