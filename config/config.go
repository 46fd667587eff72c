// Package config normalizes partial, possibly nonsensical typing-behavior
// configuration into a fully clamped, internally consistent Options value.
// This is the planner's only sanitization path; every other package assumes
// its inputs have already passed through Normalize.
package config

import "math"

// SpeedMode selects how WPM evolves over the course of a plan.
type SpeedMode string

const (
	SpeedConstant SpeedMode = "constant"
	SpeedDynamic  SpeedMode = "dynamic"
)

// SynonymCorrectionMode selects how a synonym substitution gets corrected.
type SynonymCorrectionMode string

const (
	SynonymLive      SynonymCorrectionMode = "live"
	SynonymBacktrack SynonymCorrectionMode = "backtrack"
)

// MistakeWeights weights the four mistake-construction strategies of
// spec.md §4.6.3. Values are relative, not probabilities; WeightedChoice
// normalizes them.
type MistakeWeights struct {
	Nearby float64
	Random float64
	Double float64
	Skip   float64
}

// Advanced holds every fine-grained behavior knob beyond the top-level
// TypingOptions. Numeric fields are clamped by Normalize, and zero numeric
// values fall back to documented defaults; boolean fields are kept as given,
// so an unset flag reads as false.
type Advanced struct {
	// Mistake decision (§4.6.3)
	DynamicMistakes       bool
	CaseSensitiveTypos    bool
	ClusteringDecayChars  int
	MistakeWeights        MistakeWeights

	// Reflex / pending-fix / delete-retype strategy selection (§4.6.4)
	ReflexRate              float64
	ReflexMinS              float64
	ReflexMaxS              float64
	FixSessionsEnabled      bool
	DeletionBacktrackChance float64

	// Realization of an open mistake (§4.6.5)
	RealizationBase            float64
	RealizationMinDelayChars   int
	RealizationMaxDelayChars   int
	RealizationSensitivity     float64

	// Synonym substitution (§4.6.6)
	SynonymReplaceEnabled bool
	SynonymReplaceChance  float64
	SynonymCorrectionMode SynonymCorrectionMode
	MinBacktrackWords     int
	MaxBacktrackWords     int
	AllowMultiWordSynonym bool

	// Fix sessions (§4.6.7)
	FixSessionIntervalWords int
	FixSessionMaxFixes      int
	FixPauseMinS            float64
	FixPauseMaxS            float64

	// Bursts (§4.6.1)
	BurstsEnabled  bool
	BurstWordsMin  int
	BurstWordsMax  int
	BurstSpeedMult float64
	BurstThinkMinS float64
	BurstThinkMaxS float64

	// Timing sampler (§4.4)
	MinInterKeyS                 float64
	MaxInterKeyS                 float64
	BaseSigma                    float64
	BackspaceDelayS              float64
	HuntAndPeckEnabled           bool
	HuntAndPeckDelayMultiplier   float64
	FatigueCoefficient           float64
	MicroPauseChance             float64
	MicroPauseMinS               float64
	MicroPauseMaxS               float64
	PauseScale                   float64

	// Drift (§4.6.1) — fixed by spec but overridable for testing.
	DriftEveryChars     int
	DriftSmoothingAlpha float64
}

// Analysis carries the subset of external word-frequency analysis the
// planner actually consults.
type Analysis struct {
	WordCount       int
	AvgWordLength   float64
}

// Options is the fully-specified, public input to the planner.
type Options struct {
	Speed         float64
	SpeedMode     SpeedMode
	SpeedVariance float64
	MistakeRate   float64
	FatigueMode   bool
	Analysis      Analysis
	Seed          *uint32
	Advanced      Advanced
}

// Defaults returns the documented baseline configuration.
func Defaults() Options {
	return Options{
		Speed:         65,
		SpeedMode:     SpeedDynamic,
		SpeedVariance: 0.3,
		MistakeRate:   0.04,
		FatigueMode:   false,
		Analysis:      Analysis{WordCount: 0, AvgWordLength: 4.7},
		Seed:          nil,
		Advanced: Advanced{
			DynamicMistakes:      true,
			CaseSensitiveTypos:   true,
			ClusteringDecayChars: 40,
			MistakeWeights: MistakeWeights{
				Nearby: 0.55,
				Random: 0.2,
				Double: 0.15,
				Skip:   0.10,
			},

			ReflexRate:              0.55,
			ReflexMinS:              0.12,
			ReflexMaxS:              0.45,
			FixSessionsEnabled:      true,
			DeletionBacktrackChance: 0.5,

			RealizationBase:          0.08,
			RealizationMinDelayChars: 3,
			RealizationMaxDelayChars: 40,
			RealizationSensitivity:   0.03,

			SynonymReplaceEnabled: false,
			SynonymReplaceChance:  0.02,
			SynonymCorrectionMode: SynonymBacktrack,
			MinBacktrackWords:     1,
			MaxBacktrackWords:     4,
			AllowMultiWordSynonym: false,

			FixSessionIntervalWords: 8,
			FixSessionMaxFixes:      3,
			FixPauseMinS:            0.25,
			FixPauseMaxS:            0.75,

			BurstsEnabled:  true,
			BurstWordsMin:  3,
			BurstWordsMax:  9,
			BurstSpeedMult: 1.35,
			BurstThinkMinS: 0.4,
			BurstThinkMaxS: 1.6,

			MinInterKeyS:               0.03,
			MaxInterKeyS:               0.9,
			BaseSigma:                  0.35,
			BackspaceDelayS:            0.09,
			HuntAndPeckEnabled:         false,
			HuntAndPeckDelayMultiplier: 1.8,
			FatigueCoefficient:         0.28,
			MicroPauseChance:           0.08,
			MicroPauseMinS:             0.15,
			MicroPauseMaxS:             0.5,
			PauseScale:                 1.0,

			DriftEveryChars:     12,
			DriftSmoothingAlpha: 0.12,
		},
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func orderedFloat(lo, hi float64) (float64, float64) {
	if lo > hi {
		return hi, lo
	}
	return lo, hi
}

func orderedInt(lo, hi int) (int, int) {
	if lo > hi {
		return hi, lo
	}
	return lo, hi
}

// Normalize merges partial over Defaults() and clamps every field to its
// documented bounds. It never returns an error: nonsense input is coerced,
// never rejected (spec.md §7, "Configuration" severity).
func Normalize(partial Options) Options {
	d := Defaults()

	opts := partial
	if opts.Speed == 0 {
		opts.Speed = d.Speed
	}
	opts.Speed = clamp(opts.Speed, 10, 999)

	if opts.SpeedMode != SpeedConstant && opts.SpeedMode != SpeedDynamic {
		opts.SpeedMode = d.SpeedMode
	}
	opts.SpeedVariance = clamp(valueOr(opts.SpeedVariance, d.SpeedVariance), 0, 1)
	opts.MistakeRate = clamp(valueOr(opts.MistakeRate, d.MistakeRate), 0, 1)

	if opts.Analysis.AvgWordLength < 3 {
		opts.Analysis.AvgWordLength = d.Analysis.AvgWordLength
	}
	if opts.Analysis.WordCount < 0 {
		opts.Analysis.WordCount = 0
	}

	a := opts.Advanced
	da := d.Advanced

	a.ClusteringDecayChars = clampInt(valueOrInt(a.ClusteringDecayChars, da.ClusteringDecayChars), 1, 1000)

	a.MistakeWeights = normalizeWeights(a.MistakeWeights, da.MistakeWeights)

	a.ReflexRate = clamp(valueOr(a.ReflexRate, da.ReflexRate), 0, 1)
	a.ReflexMinS, a.ReflexMaxS = orderedFloat(
		clamp(valueOr(a.ReflexMinS, da.ReflexMinS), 0, 5),
		clamp(valueOr(a.ReflexMaxS, da.ReflexMaxS), 0, 5),
	)
	a.DeletionBacktrackChance = clamp(valueOr(a.DeletionBacktrackChance, da.DeletionBacktrackChance), 0, 1)

	a.RealizationBase = clamp(valueOr(a.RealizationBase, da.RealizationBase), 0, 1)
	a.RealizationMinDelayChars, a.RealizationMaxDelayChars = orderedInt(
		clampInt(valueOrInt(a.RealizationMinDelayChars, da.RealizationMinDelayChars), 0, 200),
		clampInt(valueOrInt(a.RealizationMaxDelayChars, da.RealizationMaxDelayChars), 0, 200),
	)
	a.RealizationSensitivity = clamp(valueOr(a.RealizationSensitivity, da.RealizationSensitivity), 0, 1)

	a.SynonymReplaceChance = clamp(valueOr(a.SynonymReplaceChance, da.SynonymReplaceChance), 0, 1)
	if a.SynonymCorrectionMode != SynonymLive && a.SynonymCorrectionMode != SynonymBacktrack {
		a.SynonymCorrectionMode = da.SynonymCorrectionMode
	}
	a.MinBacktrackWords, a.MaxBacktrackWords = orderedInt(
		clampInt(valueOrInt(a.MinBacktrackWords, da.MinBacktrackWords), 0, 50),
		clampInt(valueOrInt(a.MaxBacktrackWords, da.MaxBacktrackWords), 0, 50),
	)

	a.FixSessionIntervalWords = clampInt(valueOrInt(a.FixSessionIntervalWords, da.FixSessionIntervalWords), 1, 1000)
	a.FixSessionMaxFixes = clampInt(valueOrInt(a.FixSessionMaxFixes, da.FixSessionMaxFixes), 1, 100)
	a.FixPauseMinS, a.FixPauseMaxS = orderedFloat(
		clamp(valueOr(a.FixPauseMinS, da.FixPauseMinS), 0, 5),
		clamp(valueOr(a.FixPauseMaxS, da.FixPauseMaxS), 0, 5),
	)

	a.BurstWordsMin, a.BurstWordsMax = orderedInt(
		clampInt(valueOrInt(a.BurstWordsMin, da.BurstWordsMin), 1, 200),
		clampInt(valueOrInt(a.BurstWordsMax, da.BurstWordsMax), 1, 200),
	)
	a.BurstSpeedMult = clamp(valueOr(a.BurstSpeedMult, da.BurstSpeedMult), 0.5, 5)
	a.BurstThinkMinS, a.BurstThinkMaxS = orderedFloat(
		clamp(valueOr(a.BurstThinkMinS, da.BurstThinkMinS), 0, 10),
		clamp(valueOr(a.BurstThinkMaxS, da.BurstThinkMaxS), 0, 10),
	)

	a.MinInterKeyS, a.MaxInterKeyS = orderedFloat(
		clamp(valueOr(a.MinInterKeyS, da.MinInterKeyS), 0.001, 5),
		clamp(valueOr(a.MaxInterKeyS, da.MaxInterKeyS), 0.001, 5),
	)
	a.BaseSigma = clamp(valueOr(a.BaseSigma, da.BaseSigma), 0.01, 2)
	a.BackspaceDelayS = clamp(valueOr(a.BackspaceDelayS, da.BackspaceDelayS), 0.01, 1)
	a.HuntAndPeckDelayMultiplier = clamp(valueOr(a.HuntAndPeckDelayMultiplier, da.HuntAndPeckDelayMultiplier), 1, 10)
	a.FatigueCoefficient = clamp(valueOr(a.FatigueCoefficient, da.FatigueCoefficient), 0, 2)
	a.MicroPauseChance = clamp(valueOr(a.MicroPauseChance, da.MicroPauseChance), 0, 1)
	a.MicroPauseMinS, a.MicroPauseMaxS = orderedFloat(
		clamp(valueOr(a.MicroPauseMinS, da.MicroPauseMinS), 0, 5),
		clamp(valueOr(a.MicroPauseMaxS, da.MicroPauseMaxS), 0, 5),
	)
	a.PauseScale = clamp(valueOr(a.PauseScale, da.PauseScale), 0, 10)

	a.DriftEveryChars = clampInt(valueOrInt(a.DriftEveryChars, da.DriftEveryChars), 1, 1000)
	a.DriftSmoothingAlpha = clamp(valueOr(a.DriftSmoothingAlpha, da.DriftSmoothingAlpha), 0.001, 1)

	opts.Advanced = a
	return opts
}

func normalizeWeights(w, defaults MistakeWeights) MistakeWeights {
	if w.Nearby < 0 {
		w.Nearby = 0
	}
	if w.Random < 0 {
		w.Random = 0
	}
	if w.Double < 0 {
		w.Double = 0
	}
	if w.Skip < 0 {
		w.Skip = 0
	}
	if w.Nearby+w.Random+w.Double+w.Skip == 0 {
		return defaults
	}
	return w
}

func valueOr(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}

func valueOrInt(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}
