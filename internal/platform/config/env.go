package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from the process environment.
func ParseEnv(target any) error {
	return parse(target, env.Options{})
}

// ParseEnvFrom loads configuration from environ instead of the process
// environment.
func ParseEnvFrom(target any, environ map[string]string) error {
	return parse(target, env.Options{Environment: environ})
}

func parse(target any, opts env.Options) error {
	if target == nil {
		return errors.New("config target is required")
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
