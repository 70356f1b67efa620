package modules

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/hoaxify/internal/services/web/routepath"
)

func TestFeatureModulesDoNotImportSiblingModules(t *testing.T) {
	t.Parallel()

	for _, imp := range featureImports(t) {
		if strings.Contains(imp.path, "/internal/services/web/modules/") {
			t.Fatalf("file %s imports sibling module path %q", imp.file, imp.path)
		}
	}
}

func TestFeatureModulesDoNotTalkHTTPUpstream(t *testing.T) {
	t.Parallel()

	for _, imp := range featureImports(t) {
		if strings.HasPrefix(imp.path, "resty.dev/") {
			t.Fatalf("file %s imports %q; upstream calls belong in integration packages", imp.file, imp.path)
		}
	}
}

func TestRoutePrefixesRemainUniqueConstants(t *testing.T) {
	t.Parallel()

	prefixes := []string{
		routepath.Root,
		routepath.StaticPrefix,
		routepath.SignupPrefix,
		routepath.ActivationPrefix,
	}
	seen := map[string]struct{}{}
	for _, prefix := range prefixes {
		if _, ok := seen[prefix]; ok {
			t.Fatalf("duplicate route prefix constant %q", prefix)
		}
		seen[prefix] = struct{}{}
	}
}

func TestFeatureModulesFollowTemplate(t *testing.T) {
	t.Parallel()

	areas := []string{"home", "signup", "activation"}
	requiredFiles := []string{"module.go", "routes.go", "handlers.go", "module_test.go"}
	for _, area := range areas {
		for _, file := range requiredFiles {
			path := filepath.Join(area, file)
			if _, err := os.Stat(path); err != nil {
				t.Fatalf("module %q missing required file %q: %v", area, file, err)
			}
		}
	}
}

type fileImport struct {
	file string
	path string
}

func featureImports(t *testing.T) []fileImport {
	t.Helper()

	entries, err := filepath.Glob(filepath.Join("*", "*.go"))
	if err != nil {
		t.Fatalf("glob module files: %v", err)
	}
	fset := token.NewFileSet()
	var out []fileImport
	for _, file := range entries {
		parsed, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse imports for %s: %v", file, err)
		}
		for _, imp := range parsed.Imports {
			out = append(out, fileImport{file: file, path: strings.Trim(imp.Path.Value, "\"")})
		}
	}
	return out
}
