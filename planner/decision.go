package planner

import (
	"math"
	"strings"
	"unicode"
)

// clusteringMultiplier is the base multiplier applied while a recent typo
// is still within its clustering decay window (spec.md §4.6.3). The spec
// names the effect but leaves the base multiplier's value to the
// implementer; 1.6 keeps the clustering boost clearly visible without
// overwhelming the other modifiers.
const clusteringMultiplier = 1.6

// mistakeProbability computes p for typing ch at position i, per the
// modifier chain of spec.md §4.6.3.
func (r *runner) mistakeProbability(i int, ch rune) float64 {
	if ch == '\n' {
		return 0
	}
	if r.openMis != nil {
		return 0
	}

	p := r.opts.MistakeRate
	if unicode.IsSpace(ch) {
		p *= 0.25
	}

	if r.opts.Advanced.DynamicMistakes {
		if unicode.IsUpper(ch) {
			p *= 1.35
		}
		if strings.ContainsRune(".,!?;:", ch) {
			p *= 1.20
		}
		if wi := r.wordIdxAt[i]; wi != -1 {
			sp := r.spans[wi]
			wordLenSoFar := float64(i - sp.Start + 1)
			avg := math.Max(r.opts.Analysis.AvgWordLength, 3)
			relative := wordLenSoFar / avg
			switch {
			case relative >= 2.2:
				p *= 1.28
			case relative >= 1.6:
				p *= 1.15
			}
		}
	}

	if r.burstActive {
		p *= 1.08
	}

	if r.haveLastError {
		delta := i - r.lastErrorAt
		decay := r.opts.Advanced.ClusteringDecayChars
		if delta >= 0 && delta < decay {
			factor := 1 + (clusteringMultiplier-1)*(1-float64(delta)/float64(decay))
			p *= factor
		}
	}

	return clampFloat(p, 0, 0.75)
}

// drawMistakeKind performs the weighted choice of spec.md §4.6.3 over
// {nearby, random, double, skip}.
func (r *runner) drawMistakeKind() mistakeKind {
	w := r.opts.Advanced.MistakeWeights
	idx := r.src.WeightedChoice([]float64{w.Nearby, w.Random, w.Double, w.Skip})
	switch idx {
	case 0:
		return kindNearby
	case 1:
		return kindRandom
	case 2:
		return kindDouble
	default:
		return kindSkip
	}
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
