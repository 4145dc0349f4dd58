package bench

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"testing"
	"text/tabwriter"
	"time"

	"github.com/vangoframework/clsx/pkg/clsx"
)

// ErrMismatch is returned when the generations disagree on the class set
// of the complex scenario.
var ErrMismatch = errors.New("generations produce different class sets")

// Generation is one resolver implementation under measurement.
type Generation struct {
	Name    string
	Resolve func(args ...any) (string, bool)
}

// Generations returns the current resolver followed by the legacy one.
func Generations() []Generation {
	return []Generation{
		{Name: "current", Resolve: clsx.Clsx},
		{Name: "legacy", Resolve: Legacy},
	}
}

// Result is the measurement of one scenario under one generation.
type Result struct {
	Scenario    string
	Generation  string
	NsPerOp     int64
	AllocsPerOp int64
	BytesPerOp  int64
}

// Options configures Run.
type Options struct {
	// BenchTime is the target duration of each measurement. Zero keeps the
	// testing package default.
	BenchTime time.Duration

	// Filter keeps only the scenarios whose name contains it.
	Filter string
}

// Verify checks that both generations produce the same class set for the
// complex scenario. Order is ignored: the legacy generation defers every
// mapping key to the end of the call.
func Verify() error {
	legacy := sortedTokens(Legacy(Complex...))
	current := sortedTokens(clsx.Clsx(Complex...))
	if legacy != current {
		return fmt.Errorf("%w: legacy %q, current %q", ErrMismatch, legacy, current)
	}
	return nil
}

// Run verifies the generations and measures every selected scenario with
// each of them.
func Run(opts Options) ([]Result, error) {
	if err := Verify(); err != nil {
		return nil, err
	}

	testing.Init()
	if opts.BenchTime > 0 {
		restore, err := setBenchTime(opts.BenchTime)
		if err != nil {
			return nil, err
		}
		defer restore()
	}

	var results []Result
	for _, sc := range Scenarios() {
		if opts.Filter != "" && !strings.Contains(sc.Name, opts.Filter) {
			continue
		}
		for _, g := range Generations() {
			args, resolve := sc.Args, g.Resolve
			r := testing.Benchmark(func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					resolve(args...)
				}
			})
			results = append(results, Result{
				Scenario:    sc.Name,
				Generation:  g.Name,
				NsPerOp:     r.NsPerOp(),
				AllocsPerOp: r.AllocsPerOp(),
				BytesPerOp:  r.AllocedBytesPerOp(),
			})
		}
	}
	return results, nil
}

// Write prints results as a table, with the speed of each generation
// relative to the legacy one.
func Write(w io.Writer, results []Result) error {
	legacy := make(map[string]int64)
	for _, r := range results {
		if r.Generation == "legacy" {
			legacy[r.Scenario] = r.NsPerOp
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tGENERATION\tNS/OP\tALLOCS/OP\tB/OP\tVS LEGACY")
	for _, r := range results {
		relative := "-"
		if base, ok := legacy[r.Scenario]; ok && r.NsPerOp > 0 {
			relative = fmt.Sprintf("%.2fx", float64(base)/float64(r.NsPerOp))
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n",
			r.Scenario, r.Generation, r.NsPerOp, r.AllocsPerOp, r.BytesPerOp, relative)
	}
	return tw.Flush()
}

func setBenchTime(d time.Duration) (func(), error) {
	f := flag.Lookup("test.benchtime")
	if f == nil {
		return func() {}, nil
	}
	old := f.Value.String()
	if err := f.Value.Set(d.String()); err != nil {
		return nil, fmt.Errorf("failed to set bench time: %w", err)
	}
	return func() { _ = f.Value.Set(old) }, nil
}

func sortedTokens(s string, _ bool) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
