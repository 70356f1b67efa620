// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root               = "/"
	Health             = "/up"
	StaticPrefix       = "/static/"
	Signup             = "/signup"
	SignupPrefix       = "/signup/"
	SignupFieldsPrefix = "/signup/fields/"
	SignupFieldPattern = SignupFieldsPrefix + "{field}"
	ActivationRoot     = "/activation"
	ActivationPrefix   = ActivationRoot + "/"
	ActivationPattern  = ActivationPrefix + "{token}"
)

// SignupField returns the edit endpoint for a single sign-up field.
func SignupField(field string) string {
	return SignupFieldsPrefix + escapeSegment(field)
}

// Activation returns the activation route for token.
func Activation(token string) string {
	return ActivationPrefix + escapeSegment(token)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}

// LogPath returns path with secret segments replaced by their route
// parameter, so activation tokens never reach access logs.
func LogPath(path string) string {
	if token := strings.TrimPrefix(path, ActivationPrefix); token != path && token != "" {
		return ActivationPattern
	}
	return path
}
