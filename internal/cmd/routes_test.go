package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fixtures "github.com/Alia5/routecov/internal/testing"
)

func TestRoutesText(t *testing.T) {
	r := &Routes{Project: fixtureProject(t, fixtureContract), ShowUnresolved: true}
	var out bytes.Buffer
	require.NoError(t, r.Execute(context.Background(), quietLogger(), &out))

	endpointsPart, unresolvedPart, ok := strings.Cut(out.String(), "\nunresolved:\n")
	require.True(t, ok)

	lines := strings.Split(strings.TrimSuffix(endpointsPart, "\n"), "\n")
	assert.ElementsMatch(t, fixtures.RouterTreeEndpoints(), lines)
	assert.Equal(t, "/api/legacy crate::legacy (src/routes/mod.rs)\n"+
		"/api/ghost ghost (src/routes/mod.rs)\n", unresolvedPart)
}

func TestRoutesJSON(t *testing.T) {
	r := &Routes{Project: fixtureProject(t, fixtureContract), JSON: true}
	var out bytes.Buffer
	require.NoError(t, r.Execute(context.Background(), quietLogger(), &out))

	var got routesOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.ElementsMatch(t, fixtures.RouterTreeEndpoints(), got.Endpoints)
	assert.Equal(t, "src/routes/mod.rs", got.Files[0])
	assert.Empty(t, got.Unresolved)
}

func TestRoutesBadRepoRoot(t *testing.T) {
	r := &Routes{Project: Project{RepoRoot: "/definitely/not/here", RoutesDir: "src/routes", RootFile: "mod.rs"}}
	err := r.Execute(context.Background(), quietLogger(), &bytes.Buffer{})
	assert.ErrorContains(t, err, "repository root")
}
