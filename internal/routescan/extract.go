package routescan

import (
	"regexp"

	"github.com/Alia5/routecov/internal/endpoint"
)

const (
	routeCall = ".route("
	nestCall  = ".nest("
)

// Delegation hands a path prefix over to the router of another module.
type Delegation struct {
	Prefix string `json:"prefix"` // raw literal, not normalized
	Module string `json:"module"` // e.g. "admin::users" or "super::health"
}

// ParsedFile is what a single router source file declares on its own.
type ParsedFile struct {
	Endpoints   endpoint.Set
	Delegations []Delegation
}

// SourceFile is a router file handed to an Extractor or DelegationRule.
type SourceFile struct {
	Path string // slash separated, relative to the scanned file system
	Text []byte
	Root bool // true for the root router file of the walk
}

// Extractor recovers the routes and delegations declared in one file.
type Extractor interface {
	Extract(src SourceFile) (*ParsedFile, error)
}

var (
	methodToken = regexp.MustCompile(`\b(get|post|put|patch|delete|head|options)\s*\(`)
	routerRef   = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*(?:::[A-Za-z_][A-Za-z0-9_]*)*)::router\s*\(`)
)

// TextExtractor works on raw source text with FindCalls and a couple of
// regular expressions. It does not build a syntax tree.
type TextExtractor struct{}

func (TextExtractor) Extract(src SourceFile) (*ParsedFile, error) {
	text := string(src.Text)
	parsed := &ParsedFile{Endpoints: endpoint.NewSet()}

	for _, args := range FindCalls(text, routeCall) {
		pathArg, expr, ok := SplitTopLevelComma(args)
		if !ok {
			continue
		}
		addRoute(parsed, pathArg, expr)
	}

	for _, args := range FindCalls(text, nestCall) {
		prefixArg, expr, ok := SplitTopLevelComma(args)
		if !ok {
			continue
		}
		addNest(parsed, prefixArg, expr)
	}

	return parsed, nil
}

// addRoute records one endpoint per method router found in expr.
func addRoute(parsed *ParsedFile, pathArg, expr string) {
	path, ok := ExtractStringLiteral(pathArg)
	if !ok {
		return
	}
	for _, m := range RouterMethods(expr) {
		parsed.Endpoints.Add(endpoint.Endpoint{Method: m, Path: path})
	}
}

func addNest(parsed *ParsedFile, prefixArg, expr string) {
	prefix, ok := ExtractStringLiteral(prefixArg)
	if !ok {
		return
	}
	module, ok := RouterModule(expr)
	if !ok {
		return
	}
	parsed.Delegations = append(parsed.Delegations, Delegation{Prefix: prefix, Module: module})
}

// RouterMethods lists the HTTP methods registered by a method-router
// expression such as `get(h).post(h2)`, in order of appearance.
func RouterMethods(expr string) []endpoint.Method {
	var out []endpoint.Method
	for _, m := range methodToken.FindAllStringSubmatch(expr, -1) {
		if method, ok := endpoint.RouterMethod(m[1]); ok {
			out = append(out, method)
		}
	}
	return out
}

// RouterModule returns the module path of the first `<module>::router(` call
// in expr.
func RouterModule(expr string) (string, bool) {
	m := routerRef.FindStringSubmatch(expr)
	if m == nil {
		return "", false
	}
	return m[1], true
}
