// Package coverage compares the contract endpoint set with the endpoints
// resolved from the router tree.
package coverage

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Alia5/routecov/internal/endpoint"
)

// Report holds the comparison of one run.
type Report struct {
	Contract endpoint.Set
	Router   endpoint.Set
	Covered  endpoint.Set // contract ∩ router
	Missing  endpoint.Set // contract − router
	Extra    endpoint.Set // router − contract
	Percent  float64
}

// Compute builds the report for contract and router.
func Compute(contract, router endpoint.Set) Report {
	covered := contract.Intersect(router)
	return Report{
		Contract: contract,
		Router:   router,
		Covered:  covered,
		Missing:  contract.Difference(router),
		Extra:    router.Difference(contract),
		Percent:  percent(covered.Len(), contract.Len()),
	}
}

func percent(n, d int) float64 {
	if d == 0 {
		return 100.0
	}
	return float64(n) / float64(d) * 100.0
}

// Options selects the optional sections of the text report.
type Options struct {
	ShowMissing bool
	ShowExtra   bool
}

// WriteText writes the key/value report followed by the requested endpoint
// lists.
func (r Report) WriteText(w io.Writer, opts Options) error {
	var b strings.Builder
	fmt.Fprintf(&b, "contract_endpoints: %d\n", r.Contract.Len())
	fmt.Fprintf(&b, "router_endpoints:   %d\n", r.Router.Len())
	fmt.Fprintf(&b, "covered:            %d\n", r.Covered.Len())
	fmt.Fprintf(&b, "missing:            %d\n", r.Missing.Len())
	fmt.Fprintf(&b, "coverage_percent:   %.2f\n", r.Percent)

	if opts.ShowMissing && r.Missing.Len() > 0 {
		writeList(&b, "missing_endpoints", r.Missing)
	}
	if opts.ShowExtra && r.Extra.Len() > 0 {
		writeList(&b, "extra_endpoints", r.Extra)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeList(b *strings.Builder, title string, s endpoint.Set) {
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, line := range s.Strings() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

type jsonReport struct {
	ContractEndpoints int      `json:"contractEndpoints"`
	RouterEndpoints   int      `json:"routerEndpoints"`
	Covered           int      `json:"covered"`
	Missing           int      `json:"missing"`
	CoveragePercent   float64  `json:"coveragePercent"`
	MissingEndpoints  []string `json:"missingEndpoints"`
	ExtraEndpoints    []string `json:"extraEndpoints"`
}

// WriteJSON writes the report numbers and the sorted missing and extra
// endpoint lists as an indented JSON object.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		ContractEndpoints: r.Contract.Len(),
		RouterEndpoints:   r.Router.Len(),
		Covered:           r.Covered.Len(),
		Missing:           r.Missing.Len(),
		CoveragePercent:   r.Percent,
		MissingEndpoints:  r.Missing.Strings(),
		ExtraEndpoints:    r.Extra.Strings(),
	})
}

// ThresholdError reports a coverage below the configured minimum.
type ThresholdError struct {
	Percent   float64
	Threshold float64
}

func (e *ThresholdError) Error() string {
	return fmt.Sprintf("coverage %.2f%% < %.2f%%", e.Percent, e.Threshold)
}

// Check returns a *ThresholdError when coverage is below threshold.
func (r Report) Check(threshold float64) error {
	if r.Percent < threshold {
		return &ThresholdError{Percent: r.Percent, Threshold: threshold}
	}
	return nil
}
