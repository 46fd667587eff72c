package estimate

import (
	"testing"

	"github.com/Nomadcxx/keyplan/config"
)

func TestEstimateMeanWithinMinMax(t *testing.T) {
	opts := config.Defaults()
	res := Estimate("The quick brown fox jumps over the lazy dog.", opts, 5)
	if res.Mean < res.Min || res.Mean > res.Max {
		t.Fatalf("Mean %v outside [Min %v, Max %v]", res.Mean, res.Min, res.Max)
	}
	if len(res.PerSeed) != 5 {
		t.Fatalf("PerSeed has %d entries, want 5", len(res.PerSeed))
	}
}

func TestEstimateSingleRun(t *testing.T) {
	opts := config.Defaults()
	res := Estimate("hello", opts, 1)
	if res.Min != res.Max || res.Min != res.Mean {
		t.Fatalf("single-run estimate should have Min==Max==Mean, got %+v", res)
	}
}

func TestEstimateEmptyTextIsZero(t *testing.T) {
	res := Estimate("", config.Defaults(), 3)
	if res.Mean != 0 || res.Min != 0 || res.Max != 0 {
		t.Fatalf("estimate of empty text = %+v, want all zero", res)
	}
}

func TestSolveWPMIncreasesForShorterTarget(t *testing.T) {
	opts := config.Defaults()
	text := "This sentence is long enough to make the WPM solver's binary search meaningful."

	slow := SolveWPM(text, opts, 30, 10, 300, 2)
	fast := SolveWPM(text, opts, 5, 10, 300, 2)

	if fast <= slow {
		t.Fatalf("a shorter target duration should solve to a higher WPM: slow-target wpm=%v fast-target wpm=%v", slow, fast)
	}
}

func TestSolveWPMWithinBounds(t *testing.T) {
	opts := config.Defaults()
	wpm := SolveWPM("Some reasonably sized passage of text to type out.", opts, 10, 10, 300, 2)
	if wpm < 10 || wpm > 999 {
		t.Fatalf("SolveWPM() = %v, want within [10, 999]", wpm)
	}
}
