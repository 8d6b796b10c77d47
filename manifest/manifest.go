// Package manifest loads declarative route manifests from YAML and applies
// them to a routekit.Builder. A manifest names handlers symbolically;
// Apply resolves the names against a registry supplied by the embedding
// application, so the wiring stays in configuration while the handlers
// stay in code.
//
// Settings can be overridden through environment variables (a .env file is
// loaded automatically when present), which keeps per-environment tweaks
// out of the manifest file itself.
package manifest

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/routekit/routekit"
	"github.com/routekit/routekit/middleware"
)

var loadEnvOnce sync.Once

// Load reads a manifest from a YAML file, overlays settings from the
// environment, and validates it.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a manifest from raw YAML, overlays settings from the
// environment, and validates it.
func Parse(data []byte) (*Manifest, error) {
	loadEnvOnce.Do(func() {
		// Missing .env files are fine; explicit env vars still apply.
		_ = godotenv.Load()
	})

	m := &Manifest{
		Settings: Settings{Recovery: true},
	}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if err := env.Parse(&m.Settings); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	return m, nil
}

// Validate checks the manifest for structural problems before it touches a
// builder: every route needs a method, a path, and a handler name.
func (m *Manifest) Validate() error {
	if len(m.Routes) == 0 {
		return fmt.Errorf("at least one route must be defined")
	}

	for i, r := range m.Routes {
		if r.Method == "" {
			return fmt.Errorf("route %d: method cannot be empty", i)
		}
		if r.Path == "" || r.Path[0] != '/' {
			return fmt.Errorf("route %d: path must begin with '/'", i)
		}
		if r.Handler == "" {
			return fmt.Errorf("route %d (%s %s): handler name cannot be empty", i, r.Method, r.Path)
		}
	}

	return nil
}

// Apply resolves every route's handler name against the registry and
// registers it on the builder, after installing the middlewares the
// settings ask for. Registration stops at the first failure so the error
// points at the offending manifest entry.
func (m *Manifest) Apply(b *routekit.Builder, registry map[string]routekit.Handler) error {
	if m.Settings.Recovery {
		b.Use(middleware.Recovery())
	}
	if m.Settings.RequestID {
		b.Use(middleware.RequestID())
	}
	if m.Settings.Logging {
		b.Use(middleware.LoggingWithConfig(middleware.LoggingConfig{
			LogLevel: m.logLevel(),
		}))
	}

	for _, r := range m.Routes {
		h, ok := registry[r.Handler]
		if !ok {
			return fmt.Errorf("route %s %s references unknown handler %q", r.Method, r.Path, r.Handler)
		}
		if _, err := b.Register(r.Method, r.Path, h); err != nil {
			return fmt.Errorf("route %s %s: %w", r.Method, r.Path, err)
		}
	}

	return nil
}

func (m *Manifest) logLevel() slog.Level {
	switch m.Settings.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
