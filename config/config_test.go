package config

import "testing"

func TestNormalizeFillsZeroValueWithDefaults(t *testing.T) {
	got := Normalize(Options{})
	want := Defaults()
	if got.Speed != want.Speed {
		t.Errorf("Speed = %v, want %v", got.Speed, want.Speed)
	}
	if got.SpeedMode != want.SpeedMode {
		t.Errorf("SpeedMode = %v, want %v", got.SpeedMode, want.SpeedMode)
	}
	if got.Advanced.BurstSpeedMult != want.Advanced.BurstSpeedMult {
		t.Errorf("BurstSpeedMult = %v, want %v", got.Advanced.BurstSpeedMult, want.Advanced.BurstSpeedMult)
	}
}

func TestNormalizeClampsOutOfRange(t *testing.T) {
	got := Normalize(Options{Speed: 5000, MistakeRate: 2, SpeedVariance: -1})
	if got.Speed != 999 {
		t.Errorf("Speed = %v, want clamped to 999", got.Speed)
	}
	if got.MistakeRate != 1 {
		t.Errorf("MistakeRate = %v, want clamped to 1", got.MistakeRate)
	}
	if got.SpeedVariance != 0 {
		t.Errorf("SpeedVariance = %v, want clamped to 0", got.SpeedVariance)
	}
}

func TestNormalizeRejectsUnknownSpeedMode(t *testing.T) {
	got := Normalize(Options{SpeedMode: "nonsense"})
	if got.SpeedMode != Defaults().SpeedMode {
		t.Errorf("SpeedMode = %v, want default", got.SpeedMode)
	}
}

func TestNormalizeOrdersMinMaxPairs(t *testing.T) {
	got := Normalize(Options{Advanced: Advanced{ReflexMinS: 0.9, ReflexMaxS: 0.1}})
	if got.Advanced.ReflexMinS > got.Advanced.ReflexMaxS {
		t.Errorf("ReflexMinS (%v) > ReflexMaxS (%v) after normalize", got.Advanced.ReflexMinS, got.Advanced.ReflexMaxS)
	}
}

func TestNormalizeWeightsFallBackOnAllZero(t *testing.T) {
	got := Normalize(Options{Advanced: Advanced{MistakeWeights: MistakeWeights{}}})
	d := Defaults().Advanced.MistakeWeights
	if got.Advanced.MistakeWeights != d {
		t.Errorf("MistakeWeights = %+v, want defaults %+v", got.Advanced.MistakeWeights, d)
	}
}

func TestNormalizeWeightsDropsNegatives(t *testing.T) {
	got := Normalize(Options{Advanced: Advanced{MistakeWeights: MistakeWeights{Nearby: -5, Random: 1, Double: 1, Skip: 1}}})
	if got.Advanced.MistakeWeights.Nearby != 0 {
		t.Errorf("Nearby = %v, want 0 (negative clamped)", got.Advanced.MistakeWeights.Nearby)
	}
}

func TestNormalizeAvgWordLengthFloor(t *testing.T) {
	got := Normalize(Options{Analysis: Analysis{AvgWordLength: 1}})
	if got.Analysis.AvgWordLength != Defaults().Analysis.AvgWordLength {
		t.Errorf("AvgWordLength = %v, want default fallback for values below 3", got.Analysis.AvgWordLength)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	once := Normalize(Options{Speed: 120, Advanced: Advanced{BurstWordsMin: 2, BurstWordsMax: 8}})
	twice := Normalize(once)
	if once != twice {
		t.Errorf("Normalize is not idempotent:\n%+v\n%+v", once, twice)
	}
}
