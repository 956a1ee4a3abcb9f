// Package endpoint holds the (method, path) pairs compared between a router
// tree and an API contract.
package endpoint

import (
	"sort"
	"strings"
)

// Method is an upper-case HTTP method name.
type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

// routerMethods maps the lower-case method router builders used in route
// declarations to their HTTP method.
var routerMethods = map[string]Method{
	"get":     MethodGet,
	"post":    MethodPost,
	"put":     MethodPut,
	"patch":   MethodPatch,
	"delete":  MethodDelete,
	"head":    MethodHead,
	"options": MethodOptions,
}

// RouterMethod returns the Method for a method-router builder name such as
// "get" or "delete".
func RouterMethod(name string) (Method, bool) {
	m, ok := routerMethods[name]
	return m, ok
}

// NormalizeMethod upper-cases a method name read from external input.
func NormalizeMethod(s string) Method {
	return Method(strings.ToUpper(strings.TrimSpace(s)))
}

// Endpoint is a single unit of API surface.
type Endpoint struct {
	Method Method `json:"method" yaml:"method"`
	Path   string `json:"path" yaml:"path"`
}

// New builds an Endpoint, normalizing the method.
func New(method, path string) Endpoint {
	return Endpoint{Method: NormalizeMethod(method), Path: path}
}

func (e Endpoint) String() string {
	return string(e.Method) + " " + e.Path
}

// Set is an unordered collection of endpoints without duplicates.
type Set map[Endpoint]struct{}

// NewSet returns a set containing eps.
func NewSet(eps ...Endpoint) Set {
	s := make(Set, len(eps))
	for _, e := range eps {
		s.Add(e)
	}
	return s
}

func (s Set) Add(e Endpoint) { s[e] = struct{}{} }

func (s Set) Has(e Endpoint) bool {
	_, ok := s[e]
	return ok
}

func (s Set) Len() int { return len(s) }

// AddAll adds every endpoint of other to s.
func (s Set) AddAll(other Set) {
	for e := range other {
		s[e] = struct{}{}
	}
}

// Union returns a new set with the endpoints of both sets.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	out.AddAll(s)
	out.AddAll(other)
	return out
}

// Intersect returns the endpoints present in both sets.
func (s Set) Intersect(other Set) Set {
	out := make(Set)
	for e := range s {
		if other.Has(e) {
			out.Add(e)
		}
	}
	return out
}

// Difference returns the endpoints of s that are not in other.
func (s Set) Difference(other Set) Set {
	out := make(Set)
	for e := range s {
		if !other.Has(e) {
			out.Add(e)
		}
	}
	return out
}

// Sorted returns the endpoints ordered by path, then method.
func (s Set) Sorted() []Endpoint {
	out := make([]Endpoint, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}

// Strings renders the sorted endpoints as "METHOD path" lines.
func (s Set) Strings() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, e := range sorted {
		out[i] = e.String()
	}
	return out
}
