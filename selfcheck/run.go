package selfcheck

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/goose-lang/std"
)

// Options controls a randomized run.
type Options struct {
	Seed            uint64
	Trials          int
	Workers         int
	Count           int // values inserted per trial
	MaxValue        int // values are drawn from [0, MaxValue)
	AllowDuplicates bool
}

// Failure is one trial that violated at least one property.
type Failure struct {
	Trial      int
	Values     []int
	Properties []string
}

type Report struct {
	Trials   uint64
	Passed   uint64
	Failures []Failure
}

// collector accumulates trial outcomes from several goroutines.
type collector struct {
	mu       *sync.Mutex
	passed   *Counter
	failures []Failure
}

func newCollector() *collector {
	return &collector{mu: new(sync.Mutex), passed: NewCounter()}
}

func (c *collector) record(trial int, values []int, props []string) {
	if len(props) == 0 {
		c.passed.Inc(1)
		return
	}
	c.mu.Lock()
	c.failures = append(c.failures, Failure{Trial: trial, Values: values, Properties: props})
	c.mu.Unlock()
}

// TrialValues returns the values trial i inserts. It depends only on the seed
// and i, so a failing trial can be replayed on its own. A MaxValue below 1 is
// treated as 1, so every value is then 0.
func TrialValues(opts Options, i int) []int {
	rng := rand.New(rand.NewPCG(opts.Seed, uint64(i)))
	bound := max(opts.MaxValue, 1)
	values := make([]int, max(opts.Count, 0))
	for j := range values {
		values[j] = rng.IntN(bound)
	}
	return values
}

// Run checks opts.Trials independent trees, spread over opts.Workers
// goroutines. Each trial owns its trees; only the report is shared.
func Run(opts Options) Report {
	workers := max(opts.Workers, 1)
	trials := max(opts.Trials, 0)
	c := newCollector()

	var handles []*std.JoinHandle
	for w := 0; w < workers; w++ {
		h := std.Spawn(func() {
			for i := w; i < trials; i += workers {
				values := TrialValues(opts, i)
				c.record(i, values, Check(values, opts.AllowDuplicates))
			}
		})
		handles = append(handles, h)
	}
	for _, h := range handles {
		h.Join()
	}
	slices.SortFunc(c.failures, func(a, b Failure) int {
		return cmp.Compare(a.Trial, b.Trial)
	})

	return Report{Trials: uint64(trials), Passed: c.passed.Get(), Failures: c.failures}
}
