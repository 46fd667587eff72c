package planner

// openMistakeKind distinguishes the two open-mistake shapes of spec.md §3:
// a single erroneous insertion run, or a whole substituted word.
type openMistakeKind int

const (
	mistakeChar openMistakeKind = iota
	mistakeSynonym
)

// openMistake is the planner's single outstanding delete-and-retype
// correction. At most one may exist at a time (spec.md §3 invariant 1).
type openMistake struct {
	kind                 openMistakeKind
	targetStart          int
	bufferLengthAtStart  int
	createdAt            int
	triggerAtWordOrdinal int // mistakeSynonym only
	synonymWordEnd       int // mistakeSynonym only: end of the original word
}

// pendingFix is a queued single-character substitution awaiting a future
// fix session, located by buffer content rather than index (spec.md §3,
// DESIGN NOTE "context-based relocation vs. index arithmetic").
type pendingFix struct {
	id                    int
	wrongChar             rune
	correctChar           rune
	contextBefore         string
	contextAfter          string
	createdAtWordOrdinal  int
	insertedAtBufferIndex int // used only to detect overlap with a later delete-and-retype window
}

// mistakeKind is the weighted-choice outcome of spec.md §4.6.3.
type mistakeKind int

const (
	kindNearby mistakeKind = iota
	kindRandom
	kindDouble
	kindSkip
)
