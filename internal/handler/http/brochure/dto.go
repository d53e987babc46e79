// Package brochure provides the HTTP handlers of the brochure pipeline:
// brochure generation and link discovery.
package brochure

import "company-brochure/internal/domain/entity"

// GenerateRequest is the body of POST /generate_brochure.
type GenerateRequest struct {
	BaseURL string `json:"base_url" example:"https://www.acme.test"`
	// CompanyName is derived from the base URL host when empty.
	CompanyName string `json:"company_name,omitempty" example:"Acme"`
}

// GenerateResponse is the default JSON answer of POST /generate_brochure.
type GenerateResponse struct {
	CompanyBrochure string `json:"company_brochure" example:"# Acme\n\nAcme builds rockets..."`
}

// LinksRequest is the body of POST /fetch_links.
type LinksRequest struct {
	BaseURL string `json:"base_url" example:"https://www.acme.test"`
	// Relevant additionally asks the model which links belong in a brochure.
	Relevant bool `json:"relevant,omitempty"`
}

// LinksResponse is the answer of POST /fetch_links.
type LinksResponse struct {
	Links         []string                   `json:"links"`
	RelevantLinks []entity.RelevantLinkEntry `json:"relevant_links,omitempty"`
	// Error is set when the page could not be loaded; Links is then empty.
	Error string `json:"error,omitempty"`
}
