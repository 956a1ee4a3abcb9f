package routescan

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func resolverTree() fstest.MapFS {
	file := &fstest.MapFile{Data: []byte("pub fn router() {}\n")}
	return fstest.MapFS{
		"src/routes/mod.rs":               file,
		"src/routes/words.rs":             file,
		"src/routes/admin/mod.rs":         file,
		"src/routes/admin/users.rs":       file,
		"src/routes/admin/users/audit.rs": file,
		"src/routes/shared/mod.rs":        file,
		"src/routes/v1/auth.rs":           file,
		"src/routes/v1/auth/mod.rs":       file,
		"src/routes/dir.rs/keep":          file,
		"src/middleware.rs":               file,
	}
}

func TestResolve(t *testing.T) {
	r := NewResolver(resolverTree(), "src/routes")

	tests := []struct {
		name    string
		current string
		module  string
		want    string
	}{
		{"sibling file", "src/routes/mod.rs", "words", "src/routes/words.rs"},
		{"directory module", "src/routes/mod.rs", "admin", "src/routes/admin/mod.rs"},
		{"nested path", "src/routes/mod.rs", "admin::users", "src/routes/admin/users.rs"},
		{"deep nested path", "src/routes/mod.rs", "admin::users::audit", "src/routes/admin/users/audit.rs"},
		{"file before mod", "src/routes/mod.rs", "v1::auth", "src/routes/v1/auth.rs"},
		{"self prefix", "src/routes/mod.rs", "self::words", "src/routes/words.rs"},
		{"relative to current dir", "src/routes/admin/mod.rs", "users", "src/routes/admin/users.rs"},
		{"tree root fallback", "src/routes/admin/mod.rs", "words", "src/routes/words.rs"},
		{"super", "src/routes/admin/users.rs", "super::words", "src/routes/words.rs"},
		{"super twice", "src/routes/admin/users/audit.rs", "super::super::shared", "src/routes/shared/mod.rs"},
		{"crate routes", "src/routes/admin/users.rs", "crate::routes::words", "src/routes/words.rs"},
		{"crate routes nested", "src/routes/words.rs", "crate::routes::admin::users", "src/routes/admin/users.rs"},
		{"surrounding whitespace", "src/routes/mod.rs", "  words ", "src/routes/words.rs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.current, tt.module)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveUnresolved(t *testing.T) {
	r := NewResolver(resolverTree(), "src/routes")

	tests := []struct {
		name    string
		current string
		module  string
	}{
		{"crate outside routes", "src/routes/mod.rs", "crate::middleware"},
		{"crate only", "src/routes/mod.rs", "crate"},
		{"crate routes only", "src/routes/mod.rs", "crate::routes"},
		{"self only", "src/routes/mod.rs", "self"},
		{"super only", "src/routes/admin/mod.rs", "super"},
		{"empty", "src/routes/mod.rs", ""},
		{"separators only", "src/routes/mod.rs", "::"},
		{"missing module", "src/routes/mod.rs", "ghost"},
		{"directory is not a file", "src/routes/mod.rs", "dir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.current, tt.module)
			assert.False(t, ok)
			assert.Empty(t, got)
		})
	}
}

func TestResolveCustomExtension(t *testing.T) {
	fsys := fstest.MapFS{
		"routes/index.txt": {Data: []byte("x")},
		"routes/users.txt": {Data: []byte("x")},
	}
	r := NewResolver(fsys, "routes")
	r.Ext = "txt"

	got, ok := r.Resolve("routes/index.txt", "users")
	assert.True(t, ok)
	assert.Equal(t, "routes/users.txt", got)
}

func TestResolveTreeModuleName(t *testing.T) {
	fsys := fstest.MapFS{"src/api/users.rs": {Data: []byte("x")}}
	r := NewResolver(fsys, "src/api")
	r.TreeModule = "api"

	got, ok := r.Resolve("src/api/mod.rs", "crate::api::users")
	assert.True(t, ok)
	assert.Equal(t, "src/api/users.rs", got)

	_, ok = r.Resolve("src/api/mod.rs", "crate::routes::users")
	assert.False(t, ok)
}
