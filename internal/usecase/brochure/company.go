package brochure

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CompanyNameFromURL guesses a display name from the base URL host:
// "https://www.acme-rockets.com/en" gives "Acme-rockets". When no host can
// be found the raw URL is returned.
func CompanyNameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return rawURL
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	label, _, _ := strings.Cut(host, ".")
	if label == "" {
		return rawURL
	}

	r, size := utf8.DecodeRuneInString(label)
	return string(unicode.ToUpper(r)) + label[size:]
}
