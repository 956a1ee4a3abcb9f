package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Alia5/routecov/internal/routescan"
)

// Project locates the router tree and the contract inside a repository.
type Project struct {
	RepoRoot  string `help:"Repository root; other paths are relative to it" default:"." type:"path" env:"ROUTECOV_REPO_ROOT"`
	RoutesDir string `help:"Routes tree, relative to the repository root" default:"packages/backend-rust/src/routes" env:"ROUTECOV_ROUTES_DIR"`
	RootFile  string `help:"Root router file, relative to the routes tree" default:"mod.rs" env:"ROUTECOV_ROOT_FILE"`
	Contract  string `help:"Contract manifest (json or yaml), relative to the repository root" default:"packages/backend/contract/api-contract.json" env:"ROUTECOV_CONTRACT"`
	Ext       string `help:"Router source file extension" default:"rs" env:"ROUTECOV_EXT"`
	Parser    string `help:"Route extraction backend" enum:"text,treesitter" default:"text" env:"ROUTECOV_PARSER"`
	CacheSize int    `help:"Parsed router files kept in memory during a walk" default:"512" env:"ROUTECOV_CACHE_SIZE"`
}

func (p *Project) extractor() routescan.Extractor {
	if p.Parser == "treesitter" {
		return routescan.TreeSitterExtractor{}
	}
	return routescan.TextExtractor{}
}

// ContractPath returns the contract path, resolved against the repository
// root unless it is absolute.
func (p *Project) ContractPath() string {
	if filepath.IsAbs(p.Contract) {
		return p.Contract
	}
	return filepath.Join(p.RepoRoot, p.Contract)
}

// Walk resolves the router tree of the project.
func (p *Project) Walk(ctx context.Context, logger *slog.Logger) (*routescan.Result, error) {
	info, err := os.Stat(p.RepoRoot)
	if err != nil {
		return nil, fmt.Errorf("repository root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("repository root %s is not a directory", p.RepoRoot)
	}

	w := routescan.NewWalker(os.DirFS(p.RepoRoot), routescan.Options{
		RoutesDir: filepath.ToSlash(filepath.Clean(p.RoutesDir)),
		RootFile:  filepath.ToSlash(p.RootFile),
		Ext:       p.Ext,
		Extractor: p.extractor(),
		CacheSize: p.CacheSize,
	}, logger)

	logger.Debug("walking router tree", "repo", p.RepoRoot, "routes", p.RoutesDir, "root", p.RootFile, "parser", p.Parser)
	res, err := w.Walk(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve router tree: %w", err)
	}
	return res, nil
}
