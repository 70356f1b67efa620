package templates

import (
	"strings"

	"golang.org/x/text/language"
)

// MainID is the element swapped by boosted navigation.
const MainID = "main"

// LayoutData carries the document chrome inputs.
type LayoutData struct {
	Title     string
	Lang      language.Tag
	Loc       Localizer
	Languages []LanguageOption
}

// pageTitle suffixes the page title with the app name unless it already is
// the app name.
func pageTitle(data LayoutData) string {
	appName := T(data.Loc, "core.appName")
	title := strings.TrimSpace(data.Title)
	if title == "" || title == appName {
		return appName
	}
	return title + " | " + appName
}
