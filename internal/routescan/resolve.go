package routescan

import (
	"io/fs"
	"path"
	"strings"
)

const (
	moduleSeparator = "::"
	crateSegment    = "crate"
	superSegment    = "super"
	selfSegment     = "self"
	dirModuleName   = "mod"
)

// Resolver maps module references found in router files to files inside the
// routes tree.
type Resolver struct {
	FS         fs.FS
	TreeRoot   string // slash path of the routes tree inside FS
	TreeModule string // name of the routes tree below the crate root
	Ext        string // source file extension without the dot
}

// NewResolver returns a Resolver for .rs files under treeRoot, reachable
// from the crate root as `crate::routes`.
func NewResolver(fsys fs.FS, treeRoot string) *Resolver {
	return &Resolver{FS: fsys, TreeRoot: path.Clean(treeRoot), TreeModule: "routes", Ext: "rs"}
}

// Resolve returns the file that module refers to when written in
// currentFile. References into the crate outside the routes tree are not
// followed.
func (r *Resolver) Resolve(currentFile, module string) (string, bool) {
	parts := splitModule(module)
	if len(parts) == 0 {
		return "", false
	}

	base := path.Dir(currentFile)
	switch {
	case len(parts) >= 2 && parts[0] == crateSegment && parts[1] == r.TreeModule:
		parts = parts[2:]
		base = r.TreeRoot
	case parts[0] == crateSegment:
		return "", false
	}

	for len(parts) > 0 && parts[0] == superSegment {
		parts = parts[1:]
		base = path.Dir(base)
	}
	for len(parts) > 0 && parts[0] == selfSegment {
		parts = parts[1:]
	}
	if len(parts) == 0 {
		return "", false
	}

	candidates := r.candidates(base, parts)
	if base != r.TreeRoot {
		candidates = append(candidates, r.candidates(r.TreeRoot, parts)...)
	}
	for _, c := range candidates {
		if r.isFile(c) {
			return c, true
		}
	}
	return "", false
}

// candidates lists `<dir>/a/b.rs` and `<dir>/a/b/mod.rs` for parts [a b].
func (r *Resolver) candidates(dir string, parts []string) []string {
	last := len(parts) - 1
	file := path.Join(append([]string{dir}, parts[:last]...)...)
	file = path.Join(file, parts[last]+"."+r.Ext)
	mod := path.Join(append([]string{dir}, parts...)...)
	mod = path.Join(mod, dirModuleName+"."+r.Ext)
	return []string{file, mod}
}

func (r *Resolver) isFile(name string) bool {
	info, err := fs.Stat(r.FS, name)
	return err == nil && info.Mode().IsRegular()
}

func splitModule(module string) []string {
	var parts []string
	for _, p := range strings.Split(strings.TrimSpace(module), moduleSeparator) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
