package planner

import (
	"github.com/rs/zerolog"

	"github.com/Nomadcxx/keyplan/config"
	"github.com/Nomadcxx/keyplan/keyboard"
	"github.com/Nomadcxx/keyplan/rng"
	"github.com/Nomadcxx/keyplan/shadowbuf"
	"github.com/Nomadcxx/keyplan/synonym"
	"github.com/Nomadcxx/keyplan/timing"
	"github.com/Nomadcxx/keyplan/typing"
)

// contextWindow is the minimum size of a pending fix's relocation context,
// per spec.md §3 ("≥10 chars").
const contextWindow = 12

// syncPauseMinS and syncPauseMaxS bound the short pause the emitter inserts
// after any absolute caret move, modeling external-editor coalescing
// (spec.md §4.5).
const (
	syncPauseMinS = 0.05
	syncPauseMaxS = 0.15
	motionStepS   = 0.02
)

// runner holds all per-plan mutable state. A runner is used exactly once.
type runner struct {
	opts    config.Options
	src     *rng.Source
	kb      keyboard.Layout
	dict    *synonym.Dictionary
	sampler *timing.Sampler
	buf     *shadowbuf.Buffer
	log     zerolog.Logger

	target    []rune
	spans     []wordSpan
	wordIdxAt []int
	wordStart map[int]int

	events   []typing.Event
	warnings []string

	openMis      *openMistake
	pendingFixes []pendingFix
	nextFixID    int

	baseWPM     float64
	driftTarget float64
	currentWPM  float64
	charsSinceDrift int

	burstActive         bool
	burstWordsRemaining int

	wordsCompleted int
	haveLastError  bool
	lastErrorAt    int

	speedTags       []speedTagEntry
	nextSpeedTagIdx int
}

type speedTagEntry struct {
	atIndex int
	wpm     int
}

func (r *runner) progress(i int) float64 {
	if len(r.target) == 0 {
		return 0
	}
	return float64(i) / float64(len(r.target))
}

func (r *runner) effectiveWPM() float64 {
	wpm := r.currentWPM
	if r.burstActive {
		wpm *= r.opts.Advanced.BurstSpeedMult
	}
	return wpm
}

// emitChar inserts ch at the caret and records the event.
func (r *runner) emitChar(ch rune, delay float64) {
	r.buf.InsertAtCaret(ch)
	r.events = append(r.events, typing.CharEvent{Ch: ch, DelayAfter: delay})
}

// emitKey applies k's effect to the shadow buffer and records the event.
func (r *runner) emitKey(k typing.Key, delay float64) {
	switch k {
	case typing.Enter:
		r.buf.InsertAtCaret('\n')
	case typing.Backspace:
		r.buf.Backspace()
	case typing.Left:
		r.buf.Left()
	case typing.Right:
		r.buf.Right()
	case typing.Home:
		r.buf.LineHome()
	case typing.End:
		r.buf.LineEnd()
	case typing.CtrlHome:
		r.buf.Home()
	case typing.CtrlEnd:
		r.buf.End()
	}
	r.events = append(r.events, typing.KeyEvent{Key: k, DelayAfter: delay})
}

// emitPause records an idle interval with an observability tag.
func (r *runner) emitPause(seconds float64, reason string) {
	if seconds < 0 {
		seconds = 0
	}
	r.events = append(r.events, typing.PauseEvent{Seconds: seconds, Reason: reason})
}

func (r *runner) emitSyncPause() {
	p := syncPauseMinS + r.src.Float()*(syncPauseMaxS-syncPauseMinS)
	r.emitPause(p*r.opts.Advanced.PauseScale, "sync")
}

// moveCaretTo realizes an absolute caret move as single-step Left/Right
// events plus a trailing sync pause (spec.md §4.5).
func (r *runner) moveCaretTo(abs int) {
	steps := r.buf.MoveStepsFor(abs)
	if steps == 0 {
		return
	}
	dir := typing.Right
	n := steps
	if steps < 0 {
		dir = typing.Left
		n = -steps
	}
	for k := 0; k < n; k++ {
		r.emitKey(dir, motionStepS)
	}
	r.emitSyncPause()
}

// warn records a recoverable invariant violation: logs it, appends a
// human-readable note to Plan.Warnings, and lets the caller decide how to
// unwind the current corrective operation (spec.md §7).
func (r *runner) warn(err *InvariantError) {
	r.log.Warn().
		Str("operation", err.Operation).
		Int("position", err.Position).
		Str("cause", err.Cause).
		Msg("planner invariant violation recovered")
	r.warnings = append(r.warnings, err.Error())
}
