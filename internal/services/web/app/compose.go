// Package app composes web modules into the root HTTP handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/hoaxify/internal/services/web/module"
	"github.com/louisbranch/hoaxify/internal/services/web/routepath"
)

// ComposeInput carries the modules to mount and any extra routes owned by
// the server itself.
type ComposeInput struct {
	Modules []module.Module
	// Extra mounts are registered as-is, for example static assets.
	Extra []module.Mount
}

// Compose builds a root HTTP handler from modules. Each non-root prefix is
// also mounted without its trailing slash so "/signup" reaches the module
// that owns "/signup/".
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, extra := range input.Extra {
		prefix := strings.TrimSpace(extra.Prefix)
		if err := validatePrefix(prefix); err != nil {
			return nil, fmt.Errorf("extra mount has invalid prefix %q: %w", extra.Prefix, err)
		}
		if extra.Handler == nil {
			return nil, fmt.Errorf("extra mount %q: handler is required", prefix)
		}
		if previous, ok := seen[prefix]; ok {
			return nil, fmt.Errorf("extra mount duplicates prefix %q owned by module %q", prefix, previous)
		}
		seen[prefix] = "server"
		root.Handle(prefix, extra.Handler)
	}

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		if err := mountModule(root, feature, mount, prefix, seen); err != nil {
			return nil, err
		}
		if alias := slashlessPrefixAlias(prefix); alias != "" {
			if err := mountModule(root, feature, mount, alias, seen); err != nil {
				return nil, err
			}
		}
	}

	return root, nil
}

func mountModule(root *http.ServeMux, feature module.Module, mount module.Mount, prefix string, seen map[string]string) error {
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
	}
	seen[prefix] = feature.ID()
	root.Handle(prefix, mount.Handler)
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := mount.Prefix
	if err := validatePrefix(prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}

func slashlessPrefixAlias(prefix string) string {
	if prefix == routepath.Root || !strings.HasSuffix(prefix, "/") {
		return ""
	}
	return strings.TrimSuffix(prefix, "/")
}
