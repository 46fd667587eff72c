package synonym

import (
	"testing"

	"github.com/Nomadcxx/keyplan/rng"
)

func TestDetectCasing(t *testing.T) {
	cases := map[string]Casing{
		"hello": CasingLower,
		"HELLO": CasingUpper,
		"Hello": CasingTitle,
		"HeLLo": CasingMixed,
		"":      CasingLower,
	}
	for word, want := range cases {
		if got := DetectCasing(word); got != want {
			t.Errorf("DetectCasing(%q) = %v, want %v", word, got, want)
		}
	}
}

func TestApplyCasing(t *testing.T) {
	cases := []struct {
		alt    string
		casing Casing
		want   string
	}{
		{"fast", CasingUpper, "FAST"},
		{"fast", CasingTitle, "Fast"},
		{"FAST", CasingTitle, "Fast"},
		{"fast", CasingLower, "fast"},
		{"fAsT", CasingMixed, "fAsT"},
	}
	for _, c := range cases {
		if got := ApplyCasing(c.alt, c.casing); got != c.want {
			t.Errorf("ApplyCasing(%q, %v) = %q, want %q", c.alt, c.casing, got, c.want)
		}
	}
}

func TestChoosePrefersDistinctAlternative(t *testing.T) {
	d := New(map[string][]string{"x": {"x", "x", "y"}})
	src := rng.New(1)
	for i := 0; i < 50; i++ {
		got, ok := d.Choose(src, "x", true)
		if !ok {
			t.Fatalf("Choose returned ok=false")
		}
		if got != "y" {
			t.Fatalf("Choose() = %q, want the distinct alternative %q", got, "y")
		}
	}
}

func TestChooseFiltersMultiWord(t *testing.T) {
	d := New(map[string][]string{"x": {"multi word"}})
	src := rng.New(2)
	if _, ok := d.Choose(src, "x", false); ok {
		t.Fatalf("Choose should have filtered out the only (multi-word) alternative")
	}
	if got, ok := d.Choose(src, "x", true); !ok || got != "multi word" {
		t.Fatalf("Choose(allowMultiWord=true) = (%q, %v), want (%q, true)", got, ok, "multi word")
	}
}

func TestChooseReappliesCasing(t *testing.T) {
	d := New(map[string][]string{"quick": {"fast"}})
	src := rng.New(3)
	got, ok := d.Choose(src, "QUICK", true)
	if !ok || got != "FAST" {
		t.Fatalf("Choose(%q) = (%q, %v), want (%q, true)", "QUICK", got, ok, "FAST")
	}
}

func TestChooseUnknownWord(t *testing.T) {
	d := New(nil)
	src := rng.New(4)
	if _, ok := d.Choose(src, "nonexistent", true); ok {
		t.Fatalf("Choose should fail for a word with no entry")
	}
}

func TestDefaultDictionaryHasCommonWords(t *testing.T) {
	d := Default()
	if d.Lookup("quick") == nil {
		t.Fatalf("default dictionary missing entry for %q", "quick")
	}
}
