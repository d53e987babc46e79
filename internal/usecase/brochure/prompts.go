package brochure

import (
	"fmt"
	"strings"
)

// PromptBuilder produces the instructions sent to the model.
type PromptBuilder interface {
	LinkSelectionSystemPrompt() string
	LinkSelectionUserPrompt(baseURL string, links []string) string
	BrochureSystemPrompt() string
	BrochureUserPrompt(companyName, pageContent, relevantLinks string) string
}

// DefaultPrompts is the stock PromptBuilder.
type DefaultPrompts struct{}

var _ PromptBuilder = DefaultPrompts{}

const linkSelectionSystemPrompt = `You are provided with a list of links found on a webpage.
You are able to decide which of the links would be most relevant to include in a brochure about the company,
such as links to an About page, or a Company page, or Careers/Jobs pages.
You should respond in JSON as in this example:

{
    "links": [
        {"type": "about page", "url": "https://full.url/goes/here/about"},
        {"type": "careers page", "url": "https://another.full.url/careers"}
    ]
}

Respond with the JSON document only.`

const brochureSystemPrompt = `You are an assistant that analyzes the contents of several relevant pages from a company website
and creates a short brochure about the company for prospective customers, investors and recruits.
Respond in markdown without code blocks.
Include details of company culture, customers and careers/jobs if you have the information.`

// LinkSelectionSystemPrompt asks for a JSON-only answer listing relevant links.
func (DefaultPrompts) LinkSelectionSystemPrompt() string {
	return linkSelectionSystemPrompt
}

// LinkSelectionUserPrompt embeds the base URL and every candidate link.
func (DefaultPrompts) LinkSelectionUserPrompt(baseURL string, links []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here is the list of links on the website %s - ", baseURL)
	b.WriteString("Please decide which of these are relevant web links for a brochure about the company, ")
	b.WriteString("respond with the full https URL in JSON format. ")
	b.WriteString("Do not include Terms of Service, Privacy, email links.\n\n")
	b.WriteString("Links (some might be relative links):\n")
	for _, l := range links {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// BrochureSystemPrompt asks for short markdown prose.
func (DefaultPrompts) BrochureSystemPrompt() string {
	return brochureSystemPrompt
}

// BrochureUserPrompt embeds the company name, landing page text and the
// selected links.
func (DefaultPrompts) BrochureUserPrompt(companyName, pageContent, relevantLinks string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are looking at a company called: %s\n", companyName)
	b.WriteString("Here are the contents of its landing page and a list of its relevant pages; ")
	b.WriteString("use this information to build a short brochure of the company in markdown.\n\n")
	b.WriteString("Landing page:\n")
	b.WriteString(pageContent)
	b.WriteString("\n\nRelevant links:\n")
	b.WriteString(relevantLinks)
	b.WriteByte('\n')
	return b.String()
}
