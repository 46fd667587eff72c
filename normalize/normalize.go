// Package normalize implements the text-normalization and speed-tag-parsing
// collaborators the planner depends on (spec.md §6). Normalization is a
// pure string transform; speed-tag parsing strips `[[N]]` markers from
// already-normalized text and records the WPM change at each marker's
// post-strip position.
package normalize

import "strings"

const (
	leftSingleQuote  = '‘'
	rightSingleQuote = '’'
	leftDoubleQuote  = '“'
	rightDoubleQuote = '”'
	enDash           = '–'
	emDash           = '—'
	ellipsis         = '…'
	nbsp             = ' '
	bom              = '\U0000FEFF'
	zeroWidthSpace   = '​'
	zeroWidthNonJoin = '‌'
	zeroWidthJoiner  = '‍'
)

var replacer = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	string(leftSingleQuote), "'",
	string(rightSingleQuote), "'",
	string(leftDoubleQuote), "\"",
	string(rightDoubleQuote), "\"",
	string(enDash), "-",
	string(emDash), "-",
	string(ellipsis), "...",
	string(nbsp), " ",
)

// droppedRunes are removed outright rather than replaced.
var droppedRunes = map[rune]bool{
	bom:              true,
	zeroWidthSpace:   true,
	zeroWidthNonJoin: true,
	zeroWidthJoiner:  true,
}

// Text applies the normalization contract of spec.md §6: CRLF/CR -> LF,
// smart quotes/dashes -> ASCII, ellipsis -> "...", NBSP -> space,
// zero-width and BOM characters removed.
func Text(raw string) string {
	s := replacer.Replace(raw)
	if !containsAny(s, droppedRunes) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if droppedRunes[r] {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func containsAny(s string, set map[rune]bool) bool {
	for _, r := range s {
		if set[r] {
			return true
		}
	}
	return false
}

// SpeedTag records a WPM change requested inline by a `[[N]]` marker, at
// the character index it occupied in the tag-free text.
type SpeedTag struct {
	AtIndex int
	WPM     int
}

// StripSpeedTags scans normalized text for `[[N]]` markers, removes them,
// and returns the tag-free text alongside the position (in the tag-free
// text, counted in runes) and target WPM of each marker, in order.
func StripSpeedTags(normalized string) (string, []SpeedTag) {
	var out strings.Builder
	var tags []SpeedTag
	runes := []rune(normalized)
	outRuneCount := 0

	for i := 0; i < len(runes); {
		if runes[i] == '[' && i+1 < len(runes) && runes[i+1] == '[' {
			end, wpm, ok := scanTag(runes, i+2)
			if ok {
				tags = append(tags, SpeedTag{AtIndex: outRuneCount, WPM: wpm})
				i = end
				continue
			}
		}
		out.WriteRune(runes[i])
		outRuneCount++
		i++
	}
	return out.String(), tags
}

// scanTag parses `\d+]]` starting at start (just past `[[`). Returns the
// index just past the closing `]]`, the parsed value, and whether a valid
// tag was found.
func scanTag(runes []rune, start int) (end int, wpm int, ok bool) {
	i := start
	digitsStart := i
	for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
		i++
	}
	if i == digitsStart {
		return 0, 0, false
	}
	if i+1 >= len(runes) || runes[i] != ']' || runes[i+1] != ']' {
		return 0, 0, false
	}
	n := 0
	for _, d := range runes[digitsStart:i] {
		n = n*10 + int(d-'0')
	}
	return i + 2, n, true
}
