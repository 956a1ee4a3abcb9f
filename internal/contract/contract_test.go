package contract_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/routecov/internal/contract"
	"github.com/Alia5/routecov/internal/endpoint"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadJSON(t *testing.T) {
	p := writeFile(t, "api-contract.json", `{
  "version": 3,
  "endpoints": [
    {"method": "get", "path": "/api/users/me", "auth": true},
    {"method": "PUT", "path": "/api/users/me"},
    {"method": "Get", "path": "/api/users/me"},
    {"method": "delete", "path": "/api/words/:id/"}
  ]
}`)
	set, err := contract.Load(p)
	require.NoError(t, err)
	assert.Equal(t, endpoint.NewSet(
		endpoint.New("GET", "/api/users/me"),
		endpoint.New("PUT", "/api/users/me"),
		endpoint.New("DELETE", "/api/words/:id/"),
	), set)
}

func TestLoadYAML(t *testing.T) {
	p := writeFile(t, "contract.yaml", `
endpoints:
  - method: post
    path: /api/logs
  - method: GET
    path: /health
`)
	set, err := contract.Load(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"POST /api/logs", "GET /health"}, set.Strings())
}

func TestLoadEmpty(t *testing.T) {
	set, err := contract.Load(writeFile(t, "c.json", `{}`))
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestLoadErrors(t *testing.T) {
	_, err := contract.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "read contract")

	_, err = contract.Load(writeFile(t, "broken.json", `{"endpoints": [`))
	assert.ErrorContains(t, err, "parse contract")
}

func TestParseUnknownFormat(t *testing.T) {
	_, err := contract.Parse([]byte(`{}`), "xml")
	assert.Error(t, err)
}
