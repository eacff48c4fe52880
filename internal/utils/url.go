package utils

import (
	"net/mail"
	"net/url"
	"strings"
)

// IsHTTPURL reports whether raw is an absolute http or https URL with a host.
func IsHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

func IsEmail(raw string) bool {
	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return false
	}
	return addr.Address == raw && strings.Contains(raw, "@")
}
