// Package timing samples keystroke delays and pauses from the behavior
// statistics in config.Options (spec.md §4.4). Every sample is a
// deterministic draw from the supplied rng.Source.
package timing

import (
	"math"
	"strings"

	"github.com/Nomadcxx/keyplan/config"
	"github.com/Nomadcxx/keyplan/rng"
)

// keystrokesPerWord is the conventional WPM divisor (average word length
// plus a trailing space), matching the standard "words per minute" typing
// metric definition.
const keystrokesPerWord = 5.0

const brackets = "()[]{}<>"
const punctuationSlow = ".,!?;:"
const huntAndPeckSymbols = "@#$%^&*~`|\\<>+=_/\"'"

// Sampler draws delays and pauses for a single plan.
type Sampler struct {
	opts config.Options
	src  *rng.Source
}

// New returns a Sampler bound to opts and src.
func New(opts config.Options, src *rng.Source) *Sampler {
	return &Sampler{opts: opts, src: src}
}

// KeyDelay samples the inter-key delay for typing ch at the given WPM, with
// progress in [0,1] through the target (used for fatigue) and an optional
// sigma override (<=0 means "use the effective sigma derived from the
// configured base sigma and speed variance").
func (s *Sampler) KeyDelay(wpm float64, ch rune, progress float64, sigmaOverride float64) float64 {
	a := s.opts.Advanced

	mean := 60.0 / (wpm * keystrokesPerWord)
	mean *= delayMultiplier(ch, a)

	if s.opts.FatigueMode {
		mean *= 1 + a.FatigueCoefficient*progress
	}

	sigma := sigmaOverride
	if sigma <= 0 {
		sigma = effectiveSigma(a.BaseSigma, s.opts.SpeedVariance)
	}

	delay := logNormalFromMean(mean, sigma, s.src.Normal())
	return clamp(delay, a.MinInterKeyS, a.MaxInterKeyS)
}

func delayMultiplier(ch rune, a config.Advanced) float64 {
	mult := 1.0
	if ch >= 'A' && ch <= 'Z' {
		mult *= 1.08
	}
	if ch >= '0' && ch <= '9' {
		mult *= 1.05
	}
	if strings.ContainsRune(brackets, ch) {
		mult *= 1.06
	}
	if strings.ContainsRune(punctuationSlow, ch) {
		mult *= 1.10
	}
	if a.HuntAndPeckEnabled && strings.ContainsRune(huntAndPeckSymbols, ch) {
		mult *= a.HuntAndPeckDelayMultiplier
	}
	return mult
}

func effectiveSigma(baseSigma, speedVariance float64) float64 {
	sigma := baseSigma * (0.35 + 0.9*speedVariance)
	return clamp(sigma, 0.05, 1.5)
}

// logNormalFromMean draws exp(ln(mean) - sigma^2/2 + sigma*z), the
// log-normal parameterization whose mean (not median) equals mean.
func logNormalFromMean(mean, sigma, z float64) float64 {
	if mean <= 0 {
		mean = 0.001
	}
	return math.Exp(math.Log(mean) - sigma*sigma/2 + sigma*z)
}

// BackspaceDelay samples a backspace keystroke delay.
func (s *Sampler) BackspaceDelay() float64 {
	a := s.opts.Advanced
	delay := logNormalFromMean(a.BackspaceDelayS, 0.18, s.src.Normal())
	return clamp(delay, 0.01, 0.35)
}

// MicroPause samples an optional short pause, returning 0 when the
// micro-pause roll fails.
func (s *Sampler) MicroPause() float64 {
	a := s.opts.Advanced
	if !s.src.Bool(a.MicroPauseChance) {
		return 0
	}
	lo, hi := a.MicroPauseMinS, a.MicroPauseMaxS
	return (lo + s.src.Float()*(hi-lo)) * a.PauseScale
}

// PunctuationPause samples the pause that follows ch, if any; the second
// return value is false when ch triggers no punctuation pause. nextCh is
// the character following ch in the target (0 if ch is the last one),
// used to add extra pause between consecutive newlines.
func (s *Sampler) PunctuationPause(ch rune, nextCh rune) (float64, bool) {
	a := s.opts.Advanced
	u := s.src.Float()
	switch {
	case strings.ContainsRune(".!?", ch):
		return (0.22 + u*0.85) * a.PauseScale, true
	case strings.ContainsRune(",:;", ch):
		return (0.10 + u*0.35) * a.PauseScale, true
	case ch == '\n':
		extra := 0.0
		if nextCh == '\n' {
			extra = 0.25 + s.src.Float()*0.35
		}
		return (0.22 + u*0.65 + extra) * a.PauseScale, true
	default:
		return 0, false
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
