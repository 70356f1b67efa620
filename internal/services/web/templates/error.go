package templates

import "net/http"

const (
	errorTitleNotFoundKey   = "core.errorNotFoundTitle"
	errorTitleServerErrKey  = "core.errorServerTitle"
	errorMessageNotFoundKey = "core.errorNotFoundMessage"
	errorMessageServerKey   = "core.errorServerMessage"
	errorBackHomeKey        = "core.backHome"
)

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, errorTitleNotFoundKey)
	}
	return T(loc, errorTitleServerErrKey)
}

func errorMessage(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, errorMessageNotFoundKey)
	}
	return T(loc, errorMessageServerKey)
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
