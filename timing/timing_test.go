package timing

import (
	"testing"

	"github.com/Nomadcxx/keyplan/config"
	"github.com/Nomadcxx/keyplan/rng"
)

func TestKeyDelayClamped(t *testing.T) {
	opts := config.Normalize(config.Options{})
	s := New(opts, rng.New(1))
	for i := 0; i < 2000; i++ {
		d := s.KeyDelay(65, rune('a'+i%26), float64(i%100)/100, 0)
		if d < opts.Advanced.MinInterKeyS || d > opts.Advanced.MaxInterKeyS {
			t.Fatalf("KeyDelay() = %v, want within [%v, %v]", d, opts.Advanced.MinInterKeyS, opts.Advanced.MaxInterKeyS)
		}
	}
}

func TestKeyDelayFatigueIncreasesMean(t *testing.T) {
	opts := config.Normalize(config.Options{FatigueMode: true})
	opts.Advanced.BaseSigma = 0.001

	sum := func(progress float64) float64 {
		s := New(opts, rng.New(7))
		total := 0.0
		for i := 0; i < 500; i++ {
			total += s.KeyDelay(65, 'a', progress, 0)
		}
		return total
	}

	early := sum(0)
	late := sum(1)
	if late <= early {
		t.Fatalf("expected fatigue to increase mean delay late in the text: early=%v late=%v", early, late)
	}
}

func TestBackspaceDelayClamped(t *testing.T) {
	opts := config.Normalize(config.Options{})
	s := New(opts, rng.New(2))
	for i := 0; i < 1000; i++ {
		d := s.BackspaceDelay()
		if d < 0.01 || d > 0.35 {
			t.Fatalf("BackspaceDelay() = %v, want within [0.01, 0.35]", d)
		}
	}
}

func TestMicroPauseRespectsChance(t *testing.T) {
	opts := config.Normalize(config.Options{Advanced: config.Advanced{MicroPauseChance: 0}})
	s := New(opts, rng.New(3))
	for i := 0; i < 100; i++ {
		if s.MicroPause() != 0 {
			t.Fatalf("MicroPause() fired with chance 0")
		}
	}
}

func TestPunctuationPauseKinds(t *testing.T) {
	opts := config.Normalize(config.Options{})
	s := New(opts, rng.New(4))

	if _, ok := s.PunctuationPause('a', 'b'); ok {
		t.Fatalf("PunctuationPause('a') should not fire")
	}
	if p, ok := s.PunctuationPause('.', 'x'); !ok || p <= 0 {
		t.Fatalf("PunctuationPause('.') = (%v, %v), want a positive pause", p, ok)
	}
	const trials = 500
	var sum1, sum2 float64
	for i := 0; i < trials; i++ {
		p1, _ := s.PunctuationPause('\n', 'a')
		p2, _ := s.PunctuationPause('\n', '\n')
		sum1 += p1
		sum2 += p2
	}
	if sum2 <= sum1 {
		t.Fatalf("mean double-newline pause (%v) should exceed mean single-newline pause (%v)", sum2/trials, sum1/trials)
	}
}

func TestEffectiveSigmaClamped(t *testing.T) {
	if got := effectiveSigma(0, 0); got < 0.05 {
		t.Fatalf("effectiveSigma(0,0) = %v, want >= 0.05", got)
	}
	if got := effectiveSigma(100, 1); got > 1.5 {
		t.Fatalf("effectiveSigma(100,1) = %v, want <= 1.5", got)
	}
}

func TestLogNormalFromMeanNonPositiveMean(t *testing.T) {
	if got := logNormalFromMean(-1, 0.1, 0); got <= 0 {
		t.Fatalf("logNormalFromMean with non-positive mean = %v, want positive", got)
	}
}
