package services

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// ValidSessionID accepts the opaque client-chosen correlation token: any
// string of 8 to 128 characters. It is a correlation key, not an identity.
// Bounds count characters, not bytes.
func ValidSessionID(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= 8 && n <= 128
}

// ValidResourceURL requires an absolute http(s) URI with a host.
func ValidResourceURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	if u.Host == "" {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return true
	}
	return false
}
