// Package synonym provides a dictionary-driven word substitution lookup
// with casing detection and reapplication, used by the planner to emit
// plausible "wrong word" typos that get corrected later.
package synonym

import (
	"strings"

	"github.com/Nomadcxx/keyplan/rng"
)

// Casing classifies how a word is capitalized.
type Casing int

const (
	CasingLower Casing = iota
	CasingUpper
	CasingTitle
	CasingMixed
)

// DetectCasing classifies word's casing.
func DetectCasing(word string) Casing {
	if word == "" {
		return CasingLower
	}
	hasUpper, hasLower := false, false
	for _, r := range word {
		if r >= 'A' && r <= 'Z' {
			hasUpper = true
		} else if r >= 'a' && r <= 'z' {
			hasLower = true
		}
	}
	switch {
	case hasUpper && !hasLower:
		return CasingUpper
	case !hasUpper && hasLower:
		return CasingLower
	}
	runes := []rune(word)
	if runes[0] >= 'A' && runes[0] <= 'Z' {
		rest := string(runes[1:])
		if rest == strings.ToLower(rest) {
			return CasingTitle
		}
	}
	return CasingMixed
}

// ApplyCasing reapplies casing to alt as detected from the original word.
func ApplyCasing(alt string, casing Casing) string {
	switch casing {
	case CasingUpper:
		return strings.ToUpper(alt)
	case CasingTitle:
		if alt == "" {
			return alt
		}
		runes := []rune(strings.ToLower(alt))
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		return string(runes)
	case CasingMixed:
		return alt
	default:
		return strings.ToLower(alt)
	}
}

// Dictionary maps a lowercase word to an ordered list of alternatives.
// Alternatives may contain spaces (multi-word substitutions); callers that
// cannot type a space mid-word should filter those out themselves.
type Dictionary struct {
	entries map[string][]string
}

// New builds a Dictionary from a lowercase-word -> alternatives map.
func New(entries map[string][]string) *Dictionary {
	d := &Dictionary{entries: make(map[string][]string, len(entries))}
	for word, alts := range entries {
		cp := make([]string, len(alts))
		copy(cp, alts)
		d.entries[strings.ToLower(word)] = cp
	}
	return d
}

// Lookup returns the alternatives for word (case-insensitive), or nil if
// none are registered.
func (d *Dictionary) Lookup(word string) []string {
	return d.entries[strings.ToLower(word)]
}

// Choose picks an alternative for word, preferring one whose lowercase form
// differs from the original; if every candidate is identical, any is
// accepted. allowMultiWord controls whether alternatives containing spaces
// may be chosen. Returns ("", false) if nothing is available.
func (d *Dictionary) Choose(src *rng.Source, word string, allowMultiWord bool) (string, bool) {
	alts := d.Lookup(word)
	if len(alts) == 0 {
		return "", false
	}

	lowerWord := strings.ToLower(word)
	var distinct []string
	var fallback []string
	for _, alt := range alts {
		if !allowMultiWord && strings.ContainsRune(alt, ' ') {
			continue
		}
		fallback = append(fallback, alt)
		if strings.ToLower(alt) != lowerWord {
			distinct = append(distinct, alt)
		}
	}

	pool := distinct
	if len(pool) == 0 {
		pool = fallback
	}
	if len(pool) == 0 {
		return "", false
	}

	casing := DetectCasing(word)
	chosen := pool[src.Int(0, len(pool)-1)]
	return ApplyCasing(chosen, casing), true
}

// Default returns a small built-in dictionary covering common words, enough
// to exercise synonym substitution in typical English prose.
func Default() *Dictionary {
	return New(map[string][]string{
		"quick":     {"fast", "speedy", "rapid"},
		"fox":       {"vixen"},
		"good":      {"great", "nice", "fine"},
		"bad":       {"poor", "awful"},
		"big":       {"large", "huge"},
		"small":     {"little", "tiny"},
		"happy":     {"glad", "pleased"},
		"sad":       {"unhappy", "down"},
		"fast":      {"quick", "speedy"},
		"slow":      {"sluggish", "unhurried"},
		"important": {"key", "crucial", "vital"},
		"help":      {"assist", "aid"},
		"make":      {"create", "build"},
		"use":       {"utilize", "employ"},
		"start":     {"begin", "commence"},
		"end":       {"finish", "conclude"},
		"show":      {"display", "demonstrate"},
		"think":     {"believe", "reckon"},
		"like":      {"enjoy", "appreciate"},
		"said":      {"stated", "remarked"},
	})
}
