package keyboard

import (
	"testing"

	"github.com/Nomadcxx/keyplan/rng"
)

func TestRandomLetterRange(t *testing.T) {
	src := rng.New(1)
	for i := 0; i < 500; i++ {
		ch := RandomLetter(src)
		if ch < 'a' || ch > 'z' {
			t.Fatalf("RandomLetter produced %q, want a lowercase letter", ch)
		}
	}
}

func TestNearbyKnownLetters(t *testing.T) {
	src := rng.New(2)
	for _, ch := range []rune("qwertyasdfgzxcvb") {
		n := QWERTY.Nearby(src, ch)
		if n < 'a' || n > 'z' {
			t.Fatalf("Nearby(%q) = %q, want a lowercase letter", ch, n)
		}
	}
}

func TestNearbyUnknownLetterFallsBackToSelf(t *testing.T) {
	src := rng.New(3)
	if n := QWERTY.Nearby(src, '1'); n != '1' {
		t.Fatalf("Nearby('1') = %q, want '1' (not a layout member)", n)
	}
}

func TestNearbyStaysWithinLayout(t *testing.T) {
	src := rng.New(4)
	valid := map[rune]bool{}
	for _, row := range QWERTY.rows {
		for _, ch := range row {
			valid[ch] = true
		}
	}
	for i := 0; i < 500; i++ {
		n := QWERTY.Nearby(src, 'g')
		if !valid[n] {
			t.Fatalf("Nearby('g') produced %q, not in the layout", n)
		}
	}
}
