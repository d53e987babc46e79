package scraper

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		deny    bool
		wantErr error
	}{
		{name: "ftp scheme", url: "ftp://example.com", deny: false, wantErr: ErrInvalidURL},
		{name: "javascript scheme", url: "javascript:alert(1)", deny: false, wantErr: ErrInvalidURL},
		{name: "empty host", url: "http://", deny: false, wantErr: ErrInvalidURL},
		{name: "bad escape", url: "http://example.com/%zz", deny: false, wantErr: ErrInvalidURL},
		{name: "loopback denied", url: "http://127.0.0.1:8080/", deny: true, wantErr: ErrPrivateIP},
		{name: "private denied", url: "http://10.0.0.1/", deny: true, wantErr: ErrPrivateIP},
		{name: "link-local denied", url: "http://169.254.169.254/latest/meta-data", deny: true, wantErr: ErrPrivateIP},
		{name: "ipv6 loopback denied", url: "http://[::1]/", deny: true, wantErr: ErrPrivateIP},
		{name: "loopback allowed when not denying", url: "http://127.0.0.1:8080/", deny: false},
		{name: "public ip allowed", url: "https://8.8.8.8/", deny: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateURL(tt.url, tt.deny)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIsPrivateIP(t *testing.T) {
	tests := []struct {
		ip   string
		want bool
	}{
		{ip: "127.0.0.1", want: true},
		{ip: "10.1.2.3", want: true},
		{ip: "172.16.0.1", want: true},
		{ip: "192.168.1.1", want: true},
		{ip: "169.254.1.1", want: true},
		{ip: "0.0.0.0", want: true},
		{ip: "::1", want: true},
		{ip: "fd00::1", want: true},
		{ip: "fe80::1", want: true},
		{ip: "8.8.8.8", want: false},
		{ip: "2001:4860:4860::8888", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			assert.Equal(t, tt.want, isPrivateIP(net.ParseIP(tt.ip)))
		})
	}
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Timeout = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.MaxBodySize = 10
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.MaxRedirects = 11
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.ContentMode = "everything"
	assert.Error(t, cfg.Validate())
}
