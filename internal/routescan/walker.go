// Package routescan statically resolves the endpoints of an axum style router
// tree. Router files are read as text: `.route(...)` calls declare
// endpoints, `.nest(prefix, module::router(...))` calls hand a prefix to
// another file, and the walker follows those hand-offs from a root file,
// composing prefixes on the way down.
package routescan

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Alia5/routecov/internal/endpoint"
	"github.com/Alia5/routecov/internal/log"
)

// DefaultCacheSize bounds the number of parsed files kept during one walk.
const DefaultCacheSize = 512

// Options configures a Walker.
type Options struct {
	RoutesDir string // slash path of the routes tree inside the FS
	RootFile  string // root router file, relative to RoutesDir
	Ext       string // source extension, "rs" when empty
	Extractor Extractor
	Rules     []DelegationRule
	CacheSize int
}

// Unresolved is a delegation that could not be mapped to a file.
type Unresolved struct {
	File   string `json:"file"`
	Prefix string `json:"prefix"` // composed prefix the module would have been mounted at
	Module string `json:"module"`
}

// Result is the outcome of a walk.
type Result struct {
	Endpoints  endpoint.Set
	Files      []string // visited files in first-visit order
	Unresolved []Unresolved
}

// Walker resolves the endpoint set of a router tree. A Walker may be reused;
// every Walk starts with an empty parse cache.
type Walker struct {
	fsys      fs.FS
	resolver  *Resolver
	root      string
	extractor Extractor
	rules     []DelegationRule
	cacheSize int
	logger    *slog.Logger
}

// NewWalker builds a Walker over fsys.
func NewWalker(fsys fs.FS, opts Options, logger *slog.Logger) *Walker {
	if logger == nil {
		logger = slog.Default()
	}
	resolver := NewResolver(fsys, opts.RoutesDir)
	if opts.Ext != "" {
		resolver.Ext = opts.Ext
	}
	extractor := opts.Extractor
	if extractor == nil {
		extractor = TextExtractor{}
	}
	rules := opts.Rules
	if rules == nil {
		rules = DefaultRules()
	}
	cacheSize := opts.CacheSize
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	return &Walker{
		fsys:      fsys,
		resolver:  resolver,
		root:      path.Join(resolver.TreeRoot, opts.RootFile),
		extractor: extractor,
		rules:     rules,
		cacheSize: cacheSize,
		logger:    logger,
	}
}

// walk holds the per-run state.
type walk struct {
	*Walker
	ctx    context.Context
	cache  *lru.Cache[string, *ParsedFile]
	seen   map[string]bool
	result *Result
}

// Walk resolves every endpoint reachable from the root router file.
func (w *Walker) Walk(ctx context.Context) (*Result, error) {
	cache, err := lru.New[string, *ParsedFile](w.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create parse cache: %w", err)
	}
	run := &walk{
		Walker: w,
		ctx:    ctx,
		cache:  cache,
		seen:   map[string]bool{},
		result: &Result{},
	}
	eps, err := run.visit(w.root, "", map[string]bool{})
	if err != nil {
		return nil, err
	}
	run.result.Endpoints = eps
	w.logger.Debug("router tree resolved",
		"root", w.root,
		"files", len(run.result.Files),
		"endpoints", eps.Len(),
		"unresolved", len(run.result.Unresolved))
	return run.result, nil
}

// visit returns the endpoints of file mounted at prefix. visiting holds the
// files on the current delegation path.
func (r *walk) visit(file, prefix string, visiting map[string]bool) (endpoint.Set, error) {
	if visiting[file] {
		r.logger.Debug("delegation cycle, skipping", "file", file, "prefix", prefix)
		return endpoint.NewSet(), nil
	}
	if err := r.ctx.Err(); err != nil {
		return nil, err
	}
	visiting[file] = true
	defer delete(visiting, file)

	parsed, err := r.parse(file)
	if err != nil {
		return nil, err
	}

	out := endpoint.NewSet()
	for ep := range parsed.Endpoints {
		out.Add(endpoint.Endpoint{Method: ep.Method, Path: JoinPaths(prefix, ep.Path)})
	}
	for _, d := range parsed.Delegations {
		child := JoinPaths(prefix, d.Prefix)
		target, ok := r.resolver.Resolve(file, d.Module)
		if !ok {
			r.logger.Debug("unresolved router module", "file", file, "module", d.Module, "prefix", child)
			r.result.Unresolved = append(r.result.Unresolved, Unresolved{File: file, Prefix: child, Module: d.Module})
			continue
		}
		sub, err := r.visit(target, child, visiting)
		if err != nil {
			return nil, err
		}
		out.AddAll(sub)
	}
	return out, nil
}

func (r *walk) parse(file string) (*ParsedFile, error) {
	if parsed, ok := r.cache.Get(file); ok {
		return parsed, nil
	}
	text, err := fs.ReadFile(r.fsys, file)
	if err != nil {
		return nil, fmt.Errorf("read router file %s: %w", file, err)
	}
	src := SourceFile{Path: file, Text: text, Root: file == r.root}
	parsed, err := r.extractor.Extract(src)
	if err != nil {
		return nil, fmt.Errorf("extract routes from %s: %w", file, err)
	}
	for _, rule := range r.rules {
		parsed.Delegations = append(parsed.Delegations, rule.Delegations(src)...)
	}
	if !r.seen[file] {
		r.seen[file] = true
		r.result.Files = append(r.result.Files, file)
	}
	r.logger.Log(r.ctx, log.LevelTrace, "parsed router file",
		"file", file, "endpoints", parsed.Endpoints.Len(), "delegations", len(parsed.Delegations))
	r.cache.Add(file, parsed)
	return parsed, nil
}
