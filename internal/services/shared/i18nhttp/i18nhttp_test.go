package i18nhttp

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"golang.org/x/text/language"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		cookie     string
		accept     string
		wantTag    string
		wantSource Source
	}{
		{name: "default", target: "/", wantTag: "en", wantSource: SourceDefault},
		{name: "query", target: "/?lang=fa", wantTag: "fa", wantSource: SourceQuery},
		{name: "query beats cookie", target: "/?lang=en", cookie: "fa", wantTag: "en", wantSource: SourceQuery},
		{name: "cookie", target: "/", cookie: "fa", wantTag: "fa", wantSource: SourceCookie},
		{name: "cookie beats header", target: "/", cookie: "en", accept: "fa-IR", wantTag: "en", wantSource: SourceCookie},
		{name: "accept language", target: "/", accept: "fa-IR,fa;q=0.9", wantTag: "fa", wantSource: SourceHeader},
		{name: "unsupported header", target: "/", accept: "de-DE", wantTag: "en", wantSource: SourceHeader},
		{name: "bad query ignored", target: "/?lang=%21%21", cookie: "fa", wantTag: "fa", wantSource: SourceCookie},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "http://example.com"+tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			got := Resolve(req)
			if got.Tag.String() != tc.wantTag {
				t.Fatalf("Tag = %v, want %v", got.Tag, tc.wantTag)
			}
			if got.Source != tc.wantSource {
				t.Fatalf("Source = %v, want %v", got.Source, tc.wantSource)
			}
			if got.Persist() != (tc.wantSource == SourceQuery) {
				t.Fatalf("Persist() = %v for source %v", got.Persist(), got.Source)
			}
		})
	}
}

func TestResolveNilRequest(t *testing.T) {
	t.Parallel()

	got := Resolve(nil)
	if got.Tag != language.MustParse("en") || got.Persist() {
		t.Fatalf("Resolve(nil) = %+v", got)
	}
}

func TestRememberIsSessionScoped(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Remember(rec, language.MustParse("fa"))
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("len(cookies) = %d, want 1", len(cookies))
	}
	c := cookies[0]
	if c.Name != LangCookieName || c.Value != "fa" {
		t.Fatalf("cookie = %s=%s, want %s=fa", c.Name, c.Value, LangCookieName)
	}
	if c.MaxAge != 0 || !c.Expires.IsZero() {
		t.Fatalf("cookie should expire with the browser session, got MaxAge=%d Expires=%v", c.MaxAge, c.Expires)
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	u, _ := url.Parse("/signup?x=1")
	options := Options(u, language.MustParse("fa"), func(key string) string { return key + "!" })
	if len(options) != 2 {
		t.Fatalf("len(options) = %d, want 2", len(options))
	}
	if options[0].Active || !options[1].Active {
		t.Fatalf("active flags = %v, %v, want false, true", options[0].Active, options[1].Active)
	}
	if options[1].Label != "core.langFa!" {
		t.Fatalf("options[1].Label = %q, want %q", options[1].Label, "core.langFa!")
	}
	if options[1].URL != "/signup?lang=fa&x=1" {
		t.Fatalf("options[1].URL = %q, want %q", options[1].URL, "/signup?lang=fa&x=1")
	}
}

func TestOptionsWithoutLabelsUseTags(t *testing.T) {
	t.Parallel()

	options := Options(nil, language.MustParse("en"), nil)
	if options[0].Label != "en" || options[0].URL != "/?lang=en" {
		t.Fatalf("options[0] = %+v", options[0])
	}
}

func TestSwitchURLReplacesLang(t *testing.T) {
	t.Parallel()

	u, _ := url.Parse("/activation/1234?page=2&lang=en")
	if got := SwitchURL(u, language.MustParse("fa")); got != "/activation/1234?lang=fa&page=2" {
		t.Fatalf("SwitchURL() = %q", got)
	}
}

func TestLabelKey(t *testing.T) {
	t.Parallel()

	if got := LabelKey(language.MustParse("fa-IR")); got != "core.langFa" {
		t.Fatalf("LabelKey(fa-IR) = %q", got)
	}
	if got := LabelKey(language.MustParse("en")); got != "core.langEn" {
		t.Fatalf("LabelKey(en) = %q", got)
	}
}
