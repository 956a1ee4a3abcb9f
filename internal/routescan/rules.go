package routescan

import (
	"regexp"
)

// DelegationRule produces delegations that are not written as `.nest` calls.
// Rules run after the extractor and their results are appended to the
// file's delegations.
type DelegationRule interface {
	Delegations(src SourceFile) []Delegation
}

// AccumulatorRule matches string literals pushed onto a named collection,
// e.g. `health_paths.push("/health".to_string())`, and turns each literal
// into a delegation of that prefix to Module.
type AccumulatorRule struct {
	Accumulator string // collection name, e.g. "health_paths"
	Suffix      string // conversion call after the literal, e.g. ".to_string()"
	Module      string // module the prefixes are delegated to
	RootOnly    bool   // only apply to the root router file

	pattern *regexp.Regexp
}

// HealthPathsRule is the accumulator rule for health check prefixes
// registered on the root router.
func HealthPathsRule() *AccumulatorRule {
	return &AccumulatorRule{
		Accumulator: "health_paths",
		Suffix:      ".to_string()",
		Module:      "health",
		RootOnly:    true,
	}
}

// DefaultRules returns the rule set used when none is configured.
func DefaultRules() []DelegationRule {
	return []DelegationRule{HealthPathsRule()}
}

func (r *AccumulatorRule) compile() *regexp.Regexp {
	if r.pattern == nil {
		r.pattern = regexp.MustCompile(
			regexp.QuoteMeta(r.Accumulator) + `\.push\(\s*"((?:\\.|[^"\\])*)"\s*` +
				regexp.QuoteMeta(r.Suffix) + `\s*\)`,
		)
	}
	return r.pattern
}

func (r *AccumulatorRule) Delegations(src SourceFile) []Delegation {
	if r.RootOnly && !src.Root {
		return nil
	}
	var out []Delegation
	for _, m := range r.compile().FindAllSubmatch(src.Text, -1) {
		out = append(out, Delegation{Prefix: unescapeLiteral(string(m[1])), Module: r.Module})
	}
	return out
}
