package planner

import (
	"unicode"

	"github.com/Nomadcxx/keyplan/keyboard"
)

// constructMistake builds the wrong character sequence for kind typing ch,
// per spec.md §4.6.3. lengthPreserving is false only for double/skip.
// ok is false when a letter substitution exhausted its retry budget
// without finding a distinct character — the caller falls through to
// normal typing.
func (r *runner) constructMistake(kind mistakeKind, ch rune) (wrong []rune, lengthPreserving bool, ok bool) {
	switch kind {
	case kindDouble:
		return []rune{ch, ch}, false, true
	case kindSkip:
		return []rune{}, false, true
	default: // kindNearby, kindRandom
		switch {
		case unicode.IsLetter(ch):
			return r.constructLetterTypo(kind, ch)
		case ch >= '0' && ch <= '9':
			return r.constructDigitTypo(ch), true, true
		default:
			return []rune{keyboard.RandomLetter(r.src)}, true, true
		}
	}
}

func (r *runner) constructLetterTypo(kind mistakeKind, ch rune) (wrong []rune, lengthPreserving, ok bool) {
	lower := unicode.ToLower(ch)
	var sub rune
	for attempt := 0; attempt < 5; attempt++ {
		if kind == kindNearby {
			sub = r.kb.Nearby(r.src, lower)
		} else {
			sub = keyboard.RandomLetter(r.src)
		}
		if sub != lower {
			break
		}
	}
	if sub == lower {
		// Exhausted retries without finding a distinct letter: no mistake.
		return nil, true, false
	}
	if r.opts.Advanced.CaseSensitiveTypos && unicode.IsUpper(ch) {
		sub = unicode.ToUpper(sub)
	}
	return []rune{sub}, true, true
}

func (r *runner) constructDigitTypo(ch rune) []rune {
	d := int(ch - '0')
	delta := 1
	if r.src.Bool(0.5) {
		delta = -1
	}
	nd := d + delta
	if nd < 0 {
		nd = 0
	}
	if nd > 9 {
		nd = 9
	}
	return []rune{rune('0' + nd)}
}
