package endpoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/routecov/internal/endpoint"
)

func TestNewNormalizesMethod(t *testing.T) {
	assert.Equal(t, endpoint.Endpoint{Method: endpoint.MethodGet, Path: "/a"}, endpoint.New("get", "/a"))
	assert.Equal(t, endpoint.Method("PATCH"), endpoint.New(" Patch ", "/a").Method)
	assert.Equal(t, "/A", endpoint.New("get", "/A").Path, "paths are case sensitive")
}

func TestRouterMethod(t *testing.T) {
	m, ok := endpoint.RouterMethod("delete")
	assert.True(t, ok)
	assert.Equal(t, endpoint.MethodDelete, m)

	_, ok = endpoint.RouterMethod("fallback")
	assert.False(t, ok)
	_, ok = endpoint.RouterMethod("GET")
	assert.False(t, ok)
}

func TestSetAlgebra(t *testing.T) {
	getA := endpoint.New("GET", "/a")
	postB := endpoint.New("POST", "/b")
	getC := endpoint.New("GET", "/c")

	contract := endpoint.NewSet(getA, postB)
	router := endpoint.NewSet(getA, getC, getA)

	assert.Equal(t, 2, router.Len())
	assert.Equal(t, endpoint.NewSet(getA), contract.Intersect(router))
	assert.Equal(t, endpoint.NewSet(postB), contract.Difference(router))
	assert.Equal(t, endpoint.NewSet(getA, postB, getC), contract.Union(router))
	assert.Equal(t, 2, contract.Len(), "union must not mutate the receiver")
}

func TestSortedByPathThenMethod(t *testing.T) {
	s := endpoint.NewSet(
		endpoint.New("POST", "/b"),
		endpoint.New("GET", "/b"),
		endpoint.New("PUT", "/a"),
		endpoint.New("DELETE", "/a/x"),
	)
	assert.Equal(t, []string{"PUT /a", "DELETE /a/x", "GET /b", "POST /b"}, s.Strings())
}
