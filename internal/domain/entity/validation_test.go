package entity

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "valid https URL", url: "https://example.com", wantErr: false},
		{name: "valid http URL with path", url: "http://example.com/about", wantErr: false},
		{name: "valid URL with port", url: "http://127.0.0.1:8080/", wantErr: false},
		{name: "empty URL", url: "", wantErr: true},
		{name: "whitespace URL", url: "   ", wantErr: true},
		{name: "invalid scheme - ftp", url: "ftp://example.com", wantErr: true},
		{name: "invalid scheme - javascript", url: "javascript:alert(1)", wantErr: true},
		{name: "no host", url: "https://", wantErr: true},
		{name: "no scheme", url: "example.com", wantErr: true},
		{name: "malformed URL", url: "ht!tp://example.com", wantErr: true},
		{name: "URL exceeding maximum length", url: "https://example.com/" + strings.Repeat("a", 2050), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBaseURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBaseURL() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateBaseURL_ReturnsValidationError(t *testing.T) {
	for _, raw := range []string{"", "ftp://example.com", "https://", "ht!tp://x"} {
		err := ValidateBaseURL(raw)
		if err == nil {
			t.Fatalf("ValidateBaseURL(%q) expected error, got nil", raw)
		}

		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("ValidateBaseURL(%q) expected ValidationError, got %T", raw, err)
		}
		if validationErr != nil && validationErr.Field != "base_url" {
			t.Errorf("Field = %q, want base_url", validationErr.Field)
		}
	}
}
