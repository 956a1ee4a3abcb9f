package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

func TestFlagName(t *testing.T) {
	tests := map[string]string{
		"RepoRoot":       "repo-root",
		"CacheSize":      "cache-size",
		"ShowUnresolved": "show-unresolved",
		"Ext":            "ext",
		"JSONOutput":     "json-output",
	}
	for in, want := range tests {
		assert.Equal(t, want, flagName(in), in)
	}
}

func TestTemplateCheck(t *testing.T) {
	tpl, err := Template("check")
	require.NoError(t, err)

	assert.Equal(t, ".", tpl["repo-root"])
	assert.Equal(t, "packages/backend-rust/src/routes", tpl["routes-dir"])
	assert.Equal(t, "mod.rs", tpl["root-file"])
	assert.Equal(t, "text", tpl["parser"])
	assert.Equal(t, int64(512), tpl["cache-size"])
	assert.Equal(t, 0.0, tpl["fail-under"])
	assert.Equal(t, false, tpl["show-missing"])
	assert.Equal(t, "text", tpl["format"])
}

func TestTemplateRoutes(t *testing.T) {
	tpl, err := Template("routes")
	require.NoError(t, err)
	assert.Equal(t, false, tpl["json"])
	assert.Contains(t, tpl, "contract")
	assert.NotContains(t, tpl, "fail-under")

	_, err = Template("server")
	assert.Error(t, err)
}

func TestConfigInitFormats(t *testing.T) {
	tests := []struct {
		format string
		decode func([]byte, *map[string]any) error
	}{
		{"json", func(b []byte, v *map[string]any) error { return json.Unmarshal(b, v) }},
		{"yaml", func(b []byte, v *map[string]any) error { return yaml.Unmarshal(b, v) }},
		{"toml", func(b []byte, v *map[string]any) error { return toml.Unmarshal(b, v) }},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), "conf", "routecov."+tt.format)
			c := &ConfigInit{Command: "check", Format: tt.format, Output: dest}
			require.NoError(t, c.Run())

			data, err := os.ReadFile(dest)
			require.NoError(t, err)
			var got map[string]any
			require.NoError(t, tt.decode(data, &got))
			assert.Equal(t, "mod.rs", got["root-file"])
		})
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "routecov.json")
	require.NoError(t, os.WriteFile(dest, []byte("{}"), 0o644))

	c := &ConfigInit{Command: "routes", Format: "json", Output: dest}
	assert.ErrorContains(t, c.Run(), "destination exists")

	c.Force = true
	require.NoError(t, c.Run())
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"routes-dir"`)
}

func TestConfigInitBadFormat(t *testing.T) {
	c := &ConfigInit{Command: "check", Format: "ini", Output: filepath.Join(t.TempDir(), "x")}
	assert.ErrorContains(t, c.Run(), "unsupported format")
}
