package validator

import (
	"regexp"
	"strings"
)

var (
	urlRegex     = regexp.MustCompile(`^https?:\/\/(www\.)?[-a-zA-Z0-9@:%._\+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_\+.~#?&//=]*)$`)
	dataURIRegex = regexp.MustCompile(`^data:image\/[a-zA-Z0-9.+-]+;base64,[A-Za-z0-9+/=\s]+$`)
)

// IsBlank reports whether s is empty after trimming whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidURL checks if the URL format is valid
func IsValidURL(url string) bool {
	if IsBlank(url) {
		return false
	}
	return urlRegex.MatchString(url)
}

// IsImageDataURI checks for a base64 encoded data:image/... URI
func IsImageDataURI(uri string) bool {
	if IsBlank(uri) {
		return false
	}
	return dataURIRegex.MatchString(uri)
}
