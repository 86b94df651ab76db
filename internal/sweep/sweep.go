// Package sweep generates many seeds of one layout in parallel and
// aggregates their statistics.
package sweep

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"mapgen/internal/core"
)

// Result holds the measurements of one generated seed.
type Result struct {
	Seed  uint64
	Stats []core.Stat
	Err   error
}

// Summary aggregates one statistic over every successful seed.
type Summary struct {
	Key              string
	Min, Mean, Max   float64
	MinSeed, MaxSeed uint64
	Count            int
}

// Run generates every seed on a pool of workers. Each worker owns a layout
// built by factory, so layouts are never shared between goroutines. Results
// come back ordered by seed.
func Run(factory core.Factory, settings map[string]string, seeds []uint64, workers int) []Result {
	workers = max(1, min(workers, len(seeds)))

	jobs := make(chan uint64)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			layout := factory(settings)
			for seed := range jobs {
				results <- measure(layout, seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, seed := range seeds {
			jobs <- seed
		}
		close(jobs)
	}()

	all := make([]Result, 0, len(seeds))
	for res := range results {
		all = append(all, res)
	}
	slices.SortFunc(all, func(a, b Result) int {
		switch {
		case a.Seed < b.Seed:
			return -1
		case a.Seed > b.Seed:
			return 1
		}
		return 0
	})
	return all
}

func measure(layout core.Layout, seed uint64) Result {
	if err := layout.Generate(seed); err != nil {
		return Result{Seed: seed, Err: fmt.Errorf("seed %d: %w", seed, err)}
	}
	res := Result{Seed: seed}
	if provider, ok := layout.(core.StatsProvider); ok {
		res.Stats = provider.Stats()
	}
	return res
}

// Summarize folds results into one Summary per statistic key, in the order
// the keys first appear. Failed seeds are skipped.
func Summarize(results []Result) []Summary {
	var order []string
	byKey := map[string]*Summary{}
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		for _, s := range res.Stats {
			sum, ok := byKey[s.Key]
			if !ok {
				sum = &Summary{Key: s.Key, Min: math.Inf(1), Max: math.Inf(-1)}
				byKey[s.Key] = sum
				order = append(order, s.Key)
			}
			if s.Value < sum.Min {
				sum.Min, sum.MinSeed = s.Value, res.Seed
			}
			if s.Value > sum.Max {
				sum.Max, sum.MaxSeed = s.Value, res.Seed
			}
			sum.Mean += s.Value
			sum.Count++
		}
	}
	out := make([]Summary, len(order))
	for i, key := range order {
		sum := byKey[key]
		sum.Mean /= float64(sum.Count)
		out[i] = *sum
	}
	return out
}

// Seeds returns n consecutive seeds starting at from.
func Seeds(from uint64, n int) []uint64 {
	seeds := make([]uint64, max(n, 0))
	for i := range seeds {
		seeds[i] = from + uint64(i)
	}
	return seeds
}
