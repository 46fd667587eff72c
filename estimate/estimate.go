// Package estimate re-runs the planner across several seeds to report a
// duration estimate, and binary-searches WPM for a target duration
// (spec.md §4.7).
package estimate

import (
	"github.com/Nomadcxx/keyplan/config"
	"github.com/Nomadcxx/keyplan/planner"
)

// Result summarizes a multi-run duration estimate.
type Result struct {
	Min     float64
	Max     float64
	Mean    float64
	PerSeed []float64
}

// Estimate re-runs the planner with explicit seeds base, base+1, ...,
// base+runs-1 (base is *opts.Seed when set, otherwise 0) and summarizes
// plan.EstimatedSecs across runs.
func Estimate(text string, opts config.Options, runs int) Result {
	if runs < 1 {
		runs = 1
	}
	var base uint32
	if opts.Seed != nil {
		base = *opts.Seed
	}

	res := Result{PerSeed: make([]float64, 0, runs)}
	sum := 0.0
	for k := 0; k < runs; k++ {
		seed := base + uint32(k)
		runOpts := opts
		runOpts.Seed = &seed
		p := planner.Plan(text, runOpts)

		res.PerSeed = append(res.PerSeed, p.EstimatedSecs)
		sum += p.EstimatedSecs
		if k == 0 || p.EstimatedSecs < res.Min {
			res.Min = p.EstimatedSecs
		}
		if k == 0 || p.EstimatedSecs > res.Max {
			res.Max = p.EstimatedSecs
		}
	}
	res.Mean = sum / float64(runs)
	return res
}

// SolveWPM binary-searches for the base WPM (within [lo, hi]) whose mean
// estimated duration (over runs seeds) is closest to targetSeconds, per
// spec.md §4.7. Bracketing doubles the search interval outward up to 10
// times if targetSeconds falls outside [lo, hi]'s achievable range; the
// binary search itself runs up to 14 iterations.
func SolveWPM(text string, opts config.Options, targetSeconds float64, lo, hi float64, runs int) float64 {
	if lo <= 0 {
		lo = 10
	}
	if hi <= lo {
		hi = lo + 1
	}

	durationAt := func(wpm float64) float64 {
		o := opts
		o.Speed = wpm
		return Estimate(text, o, runs).Mean
	}

	durLo := durationAt(lo)
	durHi := durationAt(hi)

	// Duration is monotonically decreasing in WPM. Expand the bracket
	// outward while the target falls outside [durHi, durLo].
	for attempt := 0; attempt < 10 && targetSeconds > durLo; attempt++ {
		lo = lo / 2
		if lo < 1 {
			lo = 1
		}
		durLo = durationAt(lo)
	}
	for attempt := 0; attempt < 10 && targetSeconds < durHi; attempt++ {
		hi = hi * 2
		if hi > 9999 {
			hi = 9999
			break
		}
		durHi = durationAt(hi)
	}

	for iter := 0; iter < 14; iter++ {
		mid := (lo + hi) / 2
		durMid := durationAt(mid)
		if durMid > targetSeconds {
			lo = mid
		} else {
			hi = mid
		}
	}
	return clampFloat((lo+hi)/2, 10, 999)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
