// Package planner implements the typing-plan state machine: the core
// per-character loop that decides typos, corrections, synonym
// substitutions, speed drift, and bursts, and emits the resulting event
// stream via the shared runner/emitter machinery (spec.md §4.6).
package planner

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Nomadcxx/keyplan/config"
	"github.com/Nomadcxx/keyplan/keyboard"
	"github.com/Nomadcxx/keyplan/normalize"
	"github.com/Nomadcxx/keyplan/rng"
	"github.com/Nomadcxx/keyplan/shadowbuf"
	"github.com/Nomadcxx/keyplan/synonym"
	"github.com/Nomadcxx/keyplan/timing"
	"github.com/Nomadcxx/keyplan/typing"
)

// Plan builds a complete, deterministic typing plan for rawText under opts.
// opts is passed through config.Normalize internally; callers do not need
// to normalize it themselves.
func Plan(rawText string, opts config.Options) typing.Plan {
	return plan(rawText, opts, synonym.Default())
}

// PlanWithDictionary is Plan with a caller-supplied synonym dictionary, for
// callers that want substitution behavior beyond the built-in word list.
func PlanWithDictionary(rawText string, opts config.Options, dict *synonym.Dictionary) typing.Plan {
	return plan(rawText, opts, dict)
}

func plan(rawText string, opts config.Options, dict *synonym.Dictionary) typing.Plan {
	opts = config.Normalize(opts)
	normalized := normalize.Text(rawText)

	tagFree := normalized
	var tags []normalize.SpeedTag
	if opts.SpeedMode == config.SpeedDynamic {
		tagFree, tags = normalize.StripSpeedTags(normalized)
	}

	var wallLow uint32
	if opts.Seed == nil {
		wallLow = uint32(time.Now().UnixNano())
	}
	seed := rng.HashSeed(tagFree, opts.Seed, wallLow)
	src := rng.New(seed)

	target := []rune(tagFree)
	spans := enumerateWords(target)

	r := &runner{
		opts:      opts,
		src:       src,
		kb:        keyboard.QWERTY,
		dict:      dict,
		sampler:   timing.New(opts, src),
		buf:       shadowbuf.New(),
		log:       log.Logger,
		target:    target,
		spans:     spans,
		wordIdxAt: wordIndexAt(target, spans),
		wordStart: wordStartIndex(spans),
		baseWPM:   opts.Speed,
	}
	r.driftTarget = r.baseWPM
	r.currentWPM = r.baseWPM
	for _, t := range tags {
		r.speedTags = append(r.speedTags, speedTagEntry{atIndex: t.AtIndex, wpm: t.WPM})
	}
	r.initBurst()

	r.run()

	return typing.Plan{
		NormalizedText: tagFree,
		Events:         r.events,
		EstimatedSecs:  sumDelays(r.events),
		Seed:           seed,
		Warnings:       r.warnings,
	}
}

// run executes the main per-character state machine of spec.md §4.6 to
// completion.
func (r *runner) run() {
	i := 0
	for i < len(r.target) {
		r.applySpeedTagIfAny(i)
		r.updateDrift()
		r.maybeRealize(i)

		if wi, ok := r.wordStart[i]; ok {
			r.maybeRealizeSynonym(wi)
			if resumeAt, handled := r.maybeSubstituteSynonym(wi); handled {
				i = resumeAt
				r.completeWord(wi)
				continue
			}
		}

		ch := r.target[i]
		p := r.mistakeProbability(i, ch)
		mistakeMade := false
		if r.src.Bool(p) {
			kind := r.drawMistakeKind()
			wrong, lengthPreserving, ok := r.constructMistake(kind, ch)
			if ok {
				r.applyMistake(i, ch, kind, wrong, lengthPreserving)
				mistakeMade = true
			}
		}
		if !mistakeMade {
			r.typeChar(i, ch)
		}

		if wi := r.wordIdxAt[i]; wi != -1 && i+1 == r.spans[wi].End {
			r.completeWord(wi)
		}

		i++
	}

	r.finish()
}

// completeWord runs the word-boundary bookkeeping of spec.md §4.6.1 and
// §4.6.7: burst progression and periodic fix sessions. When wi is the last
// word in the text, it also re-checks a pending synonym realization against
// the post-completion ordinal: no further word start will ever reach run()
// to trigger it, since none remains.
func (r *runner) completeWord(wi int) {
	r.wordsCompleted = wi + 1
	r.onWordCompleted()
	if wi+1 == len(r.spans) {
		r.maybeRealizeSynonym(wi + 1)
	}
	if r.shouldRunFixSession() {
		r.runFixSession(false)
	}
}

// finish implements the end-of-plan reconciliation of spec.md §4.6.8.
func (r *runner) finish() {
	if r.openMis != nil {
		r.correctOpenMistake(len(r.target), "forced-realization")
	}
	if len(r.pendingFixes) > 0 {
		r.runFixSession(true)
	}
	if r.buf.String() != string(r.target) {
		r.safetyNetRetype()
	}
}

// safetyNetRetype is the last-resort convergence guarantee of spec.md
// §4.6.8 and §7: clear the buffer entirely and retype the target with a
// careful, clamp-respecting cadence.
func (r *runner) safetyNetRetype() {
	r.warn(&InvariantError{Operation: "finish", Position: r.buf.Len(), Cause: "buffer diverged from target at end of plan"})

	r.moveCaretTo(r.buf.Len())
	for r.buf.Len() > 0 {
		r.emitKey(typing.Backspace, r.sampler.BackspaceDelay())
	}
	careful := r.opts.Advanced.BaseSigma
	for p, ch := range r.target {
		delay := r.sampler.KeyDelay(r.opts.Speed, ch, r.progress(p), careful)
		if ch == '\n' {
			r.emitKey(typing.Enter, delay)
		} else {
			r.emitChar(ch, delay)
		}
	}
}

func (r *runner) peek(i int) rune {
	if i < 0 || i >= len(r.target) {
		return 0
	}
	return r.target[i]
}

// typeChar emits ch as ordinary correct typing, followed by whatever
// punctuation or micro pause applies.
func (r *runner) typeChar(i int, ch rune) {
	delay := r.sampler.KeyDelay(r.effectiveWPM(), ch, r.progress(i), 0)
	if ch == '\n' {
		r.emitKey(typing.Enter, delay)
	} else {
		r.emitChar(ch, delay)
	}
	if pause, ok := r.sampler.PunctuationPause(ch, r.peek(i+1)); ok {
		r.emitPause(pause, "punctuation")
	} else if mp := r.sampler.MicroPause(); mp > 0 {
		r.emitPause(mp, "micro")
	}
}

// applySpeedTagIfAny resets WPM state at a marker's position, per spec.md
// §4.6.2.
func (r *runner) applySpeedTagIfAny(i int) {
	if r.opts.SpeedMode != config.SpeedDynamic {
		return
	}
	for r.nextSpeedTagIdx < len(r.speedTags) && r.speedTags[r.nextSpeedTagIdx].atIndex == i {
		wpm := clampFloat(float64(r.speedTags[r.nextSpeedTagIdx].wpm), 10, 999)
		r.baseWPM = wpm
		r.driftTarget = wpm
		r.currentWPM = wpm
		r.emitSyncPause()
		r.nextSpeedTagIdx++
	}
}

// updateDrift advances WPM drift per spec.md §4.6.1.
func (r *runner) updateDrift() {
	a := r.opts.Advanced
	if r.opts.SpeedMode != config.SpeedDynamic {
		r.currentWPM = r.baseWPM
		return
	}
	if r.charsSinceDrift >= a.DriftEveryChars {
		u := -1 + 2*r.src.Float()
		r.driftTarget = r.baseWPM * (1 + u*r.opts.SpeedVariance)
		r.charsSinceDrift = 0
	}
	r.currentWPM += a.DriftSmoothingAlpha * (r.driftTarget - r.currentWPM)
	r.charsSinceDrift++
}

// initBurst starts the first burst window, if bursts are enabled.
func (r *runner) initBurst() {
	if !r.opts.Advanced.BurstsEnabled {
		return
	}
	r.burstActive = true
	r.resampleBurstLength()
}

func (r *runner) resampleBurstLength() {
	a := r.opts.Advanced
	r.burstWordsRemaining = r.src.Int(a.BurstWordsMin, a.BurstWordsMax)
}

// onWordCompleted progresses burst state at a word boundary, per spec.md
// §4.6.1: bursts alternate continuously with a thinking pause between them.
func (r *runner) onWordCompleted() {
	if !r.opts.Advanced.BurstsEnabled {
		return
	}
	r.burstWordsRemaining--
	if r.burstWordsRemaining <= 0 {
		a := r.opts.Advanced
		think := a.BurstThinkMinS + r.src.Float()*(a.BurstThinkMaxS-a.BurstThinkMinS)
		r.emitPause(think*a.PauseScale, "burst-think")
		r.resampleBurstLength()
	}
}

// applyMistake dispatches to one of the three correction strategies of
// spec.md §4.6.4.
func (r *runner) applyMistake(i int, ch rune, kind mistakeKind, wrong []rune, lengthPreserving bool) {
	a := r.opts.Advanced
	forceReflex := kind == kindDouble || kind == kindSkip
	if forceReflex || r.src.Bool(a.ReflexRate) {
		r.reflexCorrect(i, ch, kind, wrong)
		return
	}
	if lengthPreserving && a.FixSessionsEnabled && r.src.Float() >= a.DeletionBacktrackChance {
		r.pendingFixCorrect(i, ch, wrong[0])
		return
	}
	r.deleteRetypeCorrect(i, wrong)
}

// reflexCorrect implements the immediate-correction strategy of spec.md
// §4.6.4. skip never types a wrong character, so it has no backspace to
// emit; every other kind emits its wrong run then a single backspace
// (double's doubled wrong characters collapse to the correct one with
// exactly one backspace, since both are the intended character).
func (r *runner) reflexCorrect(i int, ch rune, kind mistakeKind, wrong []rune) {
	a := r.opts.Advanced
	if kind == kindSkip {
		pause := a.ReflexMinS + r.src.Float()*(a.ReflexMaxS-a.ReflexMinS)
		r.emitPause(pause*a.PauseScale, "reflex")
		delay := r.sampler.KeyDelay(r.effectiveWPM(), ch, r.progress(i), 0)
		r.emitChar(ch, delay)
		r.markError(i)
		return
	}

	for _, w := range wrong {
		delay := r.sampler.KeyDelay(r.effectiveWPM(), w, r.progress(i), 0)
		r.emitChar(w, delay)
	}
	pause := a.ReflexMinS + r.src.Float()*(a.ReflexMaxS-a.ReflexMinS)
	r.emitPause(pause*a.PauseScale, "reflex")
	r.emitKey(typing.Backspace, r.sampler.BackspaceDelay())

	if kind == kindDouble {
		// wrong is {ch, ch}; the single backspace above already leaves the
		// correct character behind. Typing ch again would insert a second,
		// spurious copy.
		r.markError(i)
		return
	}

	delay := r.sampler.KeyDelay(r.effectiveWPM(), ch, r.progress(i), 0)
	r.emitChar(ch, delay)
	r.markError(i)
}

// pendingFixCorrect implements the deferred in-place strategy of spec.md
// §4.6.4: emit the wrong character and queue it for a future fix session.
func (r *runner) pendingFixCorrect(i int, correct rune, wrong rune) {
	delay := r.sampler.KeyDelay(r.effectiveWPM(), wrong, r.progress(i), 0)
	r.emitChar(wrong, delay)

	insertedAt := r.buf.Len() - 1
	before, after := r.snapshotContext(insertedAt)
	r.pendingFixes = append(r.pendingFixes, pendingFix{
		id:                    r.nextFixID,
		wrongChar:             wrong,
		correctChar:           correct,
		contextBefore:         before,
		contextAfter:          after,
		createdAtWordOrdinal:  r.wordsCompleted,
		insertedAtBufferIndex: insertedAt,
	})
	r.nextFixID++
	r.markError(i)
}

// deleteRetypeCorrect implements the delayed-backtrack strategy of spec.md
// §4.6.4: emit the wrong run and open a Char mistake for later correction.
func (r *runner) deleteRetypeCorrect(i int, wrong []rune) {
	bufferLenAtStart := r.buf.Len()
	for _, w := range wrong {
		delay := r.sampler.KeyDelay(r.effectiveWPM(), w, r.progress(i), 0)
		r.emitChar(w, delay)
	}
	r.openMis = &openMistake{
		kind:                mistakeChar,
		targetStart:         i,
		bufferLengthAtStart: bufferLenAtStart,
		createdAt:           i,
	}
	r.markError(i)
}

func (r *runner) markError(i int) {
	r.haveLastError = true
	r.lastErrorAt = i
}

func sumDelays(events []typing.Event) float64 {
	total := 0.0
	for _, e := range events {
		total += e.DelaySeconds()
	}
	return math.Round(total*1e6) / 1e6
}
