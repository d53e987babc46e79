// Package entity defines the core domain entities of the brochure pipeline:
// the links discovered on a company site, the text content of its landing page,
// the links a model judged relevant, and the generated brochure itself.
//
// Every stage result carries an Err field. A result with a nil Err and no data
// means the stage succeeded and legitimately found nothing; a result with a
// non-nil Err means the stage failed and degraded to empty.
package entity

import (
	"strings"
	"time"
)

// LinkSet is the deduplicated set of same-domain links found on a base URL.
// Links keeps discovery order so runs are reproducible, but callers must not
// attach meaning to it.
type LinkSet struct {
	BaseURL string
	Links   []string
	Err     error
}

// Failed reports whether link discovery failed and degraded to empty.
func (s LinkSet) Failed() bool {
	return s.Err != nil
}

// Len returns the number of discovered links.
func (s LinkSet) Len() int {
	return len(s.Links)
}

// Contains reports whether rawURL is one of the discovered links.
func (s LinkSet) Contains(rawURL string) bool {
	for _, l := range s.Links {
		if l == rawURL {
			return true
		}
	}
	return false
}

// PageContent holds the paragraph text of a single page joined by blank lines.
type PageContent struct {
	URL        string
	Text       string
	Paragraphs int
	Err        error
}

// Failed reports whether content extraction failed and degraded to empty.
func (c PageContent) Failed() bool {
	return c.Err != nil
}

// IsEmpty reports whether no text was extracted.
func (c PageContent) IsEmpty() bool {
	return c.Text == ""
}

// RelevantLinkEntry is a single link proposed by the model as brochure context.
// Only URL is used downstream; Type is kept for logging and the links endpoint.
type RelevantLinkEntry struct {
	Type string `json:"type"`
	URL  string `json:"url"`
	// Suspect marks a URL that was not part of the crawled LinkSet.
	Suspect bool `json:"suspect,omitempty"`
}

// Selection is the ordered result of relevant-link selection.
type Selection struct {
	Entries []RelevantLinkEntry
	Err     error
}

// Failed reports whether selection failed and degraded to empty.
func (s Selection) Failed() bool {
	return s.Err != nil
}

// URLs projects the selected entries to their URLs, preserving model order.
func (s Selection) URLs() []string {
	urls := make([]string, 0, len(s.Entries))
	for _, e := range s.Entries {
		urls = append(urls, e.URL)
	}
	return urls
}

// Text renders the selected URLs as a newline-separated block for prompting.
func (s Selection) Text() string {
	return strings.Join(s.URLs(), "\n")
}

// Brochure is the generated marketing text for one company.
// When generation failed, Markdown holds a human-readable error message and
// Err holds the underlying cause.
type Brochure struct {
	CompanyName string
	Markdown    string
	Err         error
}

// Failed reports whether Markdown is an error message rather than model output.
func (b Brochure) Failed() bool {
	return b.Err != nil
}

// BrochureRequest is the working record of a single orchestration run.
type BrochureRequest struct {
	ID          string
	BaseURL     string
	CompanyName string
	Links       LinkSet
	Content     PageContent
	Relevant    Selection
	Brochure    Brochure
	StartedAt   time.Time
	Duration    time.Duration
}

// Degraded reports whether any stage of the run fell back to an empty result.
func (r *BrochureRequest) Degraded() bool {
	return r.Links.Failed() || r.Content.Failed() || r.Relevant.Failed() || r.Brochure.Failed()
}
