package manifest_test

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routekit/routekit"
	"github.com/routekit/routekit/manifest"
	"github.com/routekit/routekit/middleware"
)

const sampleManifest = `
settings:
  request_id: true
routes:
  - method: GET
    path: /users/:id
    handler: get_user
  - method: POST
    path: /users
    handler: create_user
`

func testRegistry() map[string]routekit.Handler {
	return map[string]routekit.Handler{
		"get_user": routekit.HandlerFunc(func(ctx context.Context, req *routekit.Request) (*routekit.Response, error) {
			id, _ := req.Params.PathParam("id")
			return routekit.Text(http.StatusOK, "user:"+id), nil
		}),
		"create_user": routekit.HandlerFunc(func(ctx context.Context, req *routekit.Request) (*routekit.Response, error) {
			return routekit.Text(http.StatusCreated, "created"), nil
		}),
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "routes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o644))

	m, err := manifest.Load(path)
	require.NoError(t, err)

	assert.True(t, m.Settings.RequestID)
	assert.True(t, m.Settings.Recovery, "recovery defaults to enabled")
	require.Len(t, m.Routes, 2)
	assert.Equal(t, "GET", m.Routes[0].Method)
	assert.Equal(t, "/users/:id", m.Routes[0].Path)
	assert.Equal(t, "get_user", m.Routes[0].Handler)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := manifest.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest file")
}

func TestParseValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"no_routes", `settings: {}`, "at least one route"},
		{"missing_method", "routes:\n  - path: /a\n    handler: h", "method cannot be empty"},
		{"missing_path", "routes:\n  - method: GET\n    handler: h", "path must begin with '/'"},
		{"relative_path", "routes:\n  - method: GET\n    path: users\n    handler: h", "path must begin with '/'"},
		{"missing_handler", "routes:\n  - method: GET\n    path: /a", "handler name cannot be empty"},
		{"malformed_yaml", `routes: [`, "failed to parse manifest"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := manifest.Parse([]byte(test.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.wantErr)
		})
	}
}

func TestSettingsEnvOverride(t *testing.T) {
	t.Setenv("ROUTEKIT_LOG_LEVEL", "debug")
	t.Setenv("ROUTEKIT_REQUEST_ID", "false")

	m, err := manifest.Parse([]byte(sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, "debug", m.Settings.LogLevel)
	assert.False(t, m.Settings.RequestID, "environment overrides the manifest value")
}

func TestApplyRegistersRoutes(t *testing.T) {
	t.Parallel()

	m, err := manifest.Parse([]byte(sampleManifest))
	require.NoError(t, err)

	b := routekit.New()
	require.NoError(t, m.Apply(b, testRegistry()))

	engine := b.Freeze()

	res := engine.Dispatch(context.Background(), &routekit.Request{Method: http.MethodGet, Path: "/users/9"})
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "user:9", string(res.Body))

	res = engine.Dispatch(context.Background(), &routekit.Request{Method: http.MethodPost, Path: "/users"})
	assert.Equal(t, http.StatusCreated, res.Status)

	// request_id: true installs the middleware.
	assert.NotEmpty(t, res.Headers[middleware.RequestIDHeader])
}

func TestApplyUnknownHandler(t *testing.T) {
	t.Parallel()

	m, err := manifest.Parse([]byte(sampleManifest))
	require.NoError(t, err)

	b := routekit.New()
	err = m.Apply(b, map[string]routekit.Handler{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown handler "get_user"`)
}

func TestApplyInvalidPattern(t *testing.T) {
	t.Parallel()

	m, err := manifest.Parse([]byte("routes:\n  - method: GET\n    path: /files/*/meta\n    handler: get_user"))
	require.NoError(t, err)

	b := routekit.New()
	err = m.Apply(b, testRegistry())
	require.Error(t, err)
	assert.ErrorIs(t, err, routekit.ErrInvalidPattern)
}
