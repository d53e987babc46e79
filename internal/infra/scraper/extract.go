package scraper

import (
	"fmt"
	"net/url"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// paragraphSeparator joins extracted text blocks.
const paragraphSeparator = "\n\n"

// ExtractLinks returns the same-host links of doc resolved against base.
//
// Hrefs are trimmed; empty, mailto:, tel: and fragment-only hrefs are
// skipped. A link is kept when its host (including port) equals the base
// host exactly, so subdomains are excluded. Duplicates are dropped and
// first-seen order is kept.
func ExtractLinks(doc *goquery.Document, base *url.URL) []string {
	seen := make(map[string]struct{})
	links := make([]string, 0)

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if skipHref(href) {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		if resolved.Host != base.Host {
			return
		}

		abs := resolved.String()
		if _, dup := seen[abs]; dup {
			return
		}
		seen[abs] = struct{}{}
		links = append(links, abs)
	})

	return links
}

func skipHref(href string) bool {
	if href == "" || strings.HasPrefix(href, "#") {
		return true
	}
	lower := strings.ToLower(href)
	return strings.HasPrefix(lower, "mailto:") || strings.HasPrefix(lower, "tel:")
}

// ExtractParagraphs returns the trimmed text of every <p> element in
// document order, skipping paragraphs that are blank.
func ExtractParagraphs(doc *goquery.Document) []string {
	paragraphs := make([]string, 0)
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	return paragraphs
}

// ExtractReadable runs Readability over html and returns the main article
// as markdown blocks.
func ExtractReadable(html string, pageURL *url.URL) ([]string, error) {
	article, err := readability.FromReader(strings.NewReader(html), pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: readability: %v", ErrRenderFailed, err)
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, nil
	}

	markdown, err := htmltomarkdown.ConvertString(article.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: markdown conversion: %v", ErrRenderFailed, err)
	}

	blocks := make([]string, 0)
	for _, block := range strings.Split(markdown, paragraphSeparator) {
		if b := strings.TrimSpace(block); b != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks, nil
}
