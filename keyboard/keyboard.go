// Package keyboard models a physical keyboard layout for typo generation:
// nearby-key lookups for fat-finger typos and uniform random-letter draws.
package keyboard

import "github.com/Nomadcxx/keyplan/rng"

// Layout is a lowercase physical keyboard layout expressed as staggered
// rows, used to compute nearby-key neighborhoods. QWERTY is the only
// shipped instance, but the type generalizes to others.
type Layout struct {
	rows [][]rune
}

// QWERTY is the standard lowercase QWERTY layout.
var QWERTY = Layout{
	rows: [][]rune{
		[]rune("qwertyuiop"),
		[]rune("asdfghjkl"),
		[]rune("zxcvbnm"),
	},
}

// RandomLetter returns a uniform draw over a..z.
func RandomLetter(src *rng.Source) rune {
	return rune('a' + src.Int(0, 25))
}

// Nearby returns a uniform pick from the 8-neighborhood of ch in the
// layout (orthogonal and diagonal neighbors, bounded by row lengths). If ch
// is not found in the layout, or has no neighbors, ch itself is returned.
func (l Layout) Nearby(src *rng.Source, ch rune) rune {
	row, col, found := l.locate(ch)
	if !found {
		return ch
	}

	var neighbors []rune
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if r < 0 || r >= len(l.rows) {
				continue
			}
			if c < 0 || c >= len(l.rows[r]) {
				continue
			}
			neighbors = append(neighbors, l.rows[r][c])
		}
	}

	if len(neighbors) == 0 {
		return ch
	}
	return neighbors[src.Int(0, len(neighbors)-1)]
}

func (l Layout) locate(ch rune) (row, col int, found bool) {
	for r, rowRunes := range l.rows {
		for c, candidate := range rowRunes {
			if candidate == ch {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
