package planner

import "unicode"

// wordSpan is a half-open [Start, End) range in the target matching
// letter(letter|apostrophe)*letter? (spec.md §3).
type wordSpan struct {
	Start, End int
}

// enumerateWords scans target for word spans in order.
func enumerateWords(target []rune) []wordSpan {
	var spans []wordSpan
	n := len(target)
	i := 0
	for i < n {
		if !unicode.IsLetter(target[i]) {
			i++
			continue
		}
		start := i
		i++
		for i < n && (unicode.IsLetter(target[i]) || target[i] == '\'') {
			i++
		}
		spans = append(spans, wordSpan{Start: start, End: i})
	}
	return spans
}

// wordIndexAt maps every target position to the index of the word span
// containing it, or -1 if the position falls outside any word.
func wordIndexAt(target []rune, spans []wordSpan) []int {
	idx := make([]int, len(target))
	for i := range idx {
		idx[i] = -1
	}
	for wi, sp := range spans {
		for p := sp.Start; p < sp.End; p++ {
			idx[p] = wi
		}
	}
	return idx
}

// wordStartIndex maps a word-start position to its word-span index, for
// O(1) "is this a word start, and which word" lookups.
func wordStartIndex(spans []wordSpan) map[int]int {
	m := make(map[int]int, len(spans))
	for wi, sp := range spans {
		m[sp.Start] = wi
	}
	return m
}
