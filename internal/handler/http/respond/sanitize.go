package respond

import (
	"regexp"
)

var (
	// Applied most specific first so a masked key is not matched again.
	anthropicKeyPattern = regexp.MustCompile(`sk-ant-[a-zA-Z0-9\-_]+`)
	projectKeyPattern   = regexp.MustCompile(`sk-proj-[a-zA-Z0-9\-_]+`)
	openaiKeyPattern    = regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`)

	// Credentials embedded in URLs, e.g. a proxy base URL.
	urlPasswordPattern = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)
)

// SanitizeError returns err's message with API keys and URL passwords masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = anthropicKeyPattern.ReplaceAllString(msg, "sk-ant-****")
	msg = projectKeyPattern.ReplaceAllString(msg, "sk-proj-****")
	msg = openaiKeyPattern.ReplaceAllString(msg, "sk-****")
	msg = urlPasswordPattern.ReplaceAllString(msg, "://$1:****@")

	return msg
}
