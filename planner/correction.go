package planner

import "github.com/Nomadcxx/keyplan/typing"

// maybeRealize runs the pre-position realization check of spec.md §4.6.5
// for an active Char open mistake, correcting it if the check fires.
func (r *runner) maybeRealize(i int) {
	if r.openMis == nil || r.openMis.kind != mistakeChar {
		return
	}
	a := r.opts.Advanced
	delta := i - r.openMis.createdAt

	if delta < a.RealizationMinDelayChars {
		return
	}
	if delta >= a.RealizationMaxDelayChars {
		r.correctOpenMistake(i, "forced-realization")
		return
	}
	p := clampFloat(a.RealizationBase+a.RealizationSensitivity*float64(delta-a.RealizationMinDelayChars+1), 0, 0.95)
	if r.src.Bool(p) {
		r.correctOpenMistake(i, "realization")
	}
}

// maybeRealizeSynonym fires a Synonym open mistake's correction purely on
// word ordinal, per spec.md §4.6.6. The retype runs up to the current
// position: the start of word wordOrdinal, or the end of the last word once
// every word is complete, so words typed after the synonym are retyped too.
func (r *runner) maybeRealizeSynonym(wordOrdinal int) {
	if r.openMis == nil || r.openMis.kind != mistakeSynonym {
		return
	}
	if wordOrdinal >= r.openMis.triggerAtWordOrdinal {
		upto := len(r.target)
		if wordOrdinal < len(r.spans) {
			upto = r.spans[wordOrdinal].Start
		} else if len(r.spans) > 0 {
			upto = r.spans[len(r.spans)-1].End
		}
		r.correctOpenMistake(upto, "synonym-realization")
	}
}

// correctOpenMistake implements the delete-and-retype correction procedure
// of spec.md §4.6.5: pause, jump to end, backspace back to the recorded
// pre-error buffer length (grounded in the shadow buffer, not the target
// span), then retype the correct substring with a reduced sigma. uptoIndex
// is the target index the retyped substring runs up to (exclusive).
func (r *runner) correctOpenMistake(uptoIndex int, reason string) {
	mis := r.openMis
	if mis == nil {
		return
	}

	pause := 0.12 + r.src.Float()*(0.50-0.12)
	r.emitPause(pause*r.opts.Advanced.PauseScale, reason)

	r.emitKey(typing.CtrlEnd, motionStepS)
	r.emitSyncPause()

	deleteCount := r.buf.Len() - mis.bufferLengthAtStart
	if deleteCount < 0 {
		r.warn(&InvariantError{Operation: "correctOpenMistake", Position: uptoIndex, Cause: "buffer shorter than recorded pre-error length"})
		r.openMis = nil
		return
	}
	for k := 0; k < deleteCount; k++ {
		r.emitKey(typing.Backspace, r.sampler.BackspaceDelay())
	}

	if mis.targetStart < 0 || uptoIndex > len(r.target) || mis.targetStart > uptoIndex {
		r.warn(&InvariantError{Operation: "correctOpenMistake", Position: uptoIndex, Cause: "invalid retype span"})
		r.openMis = nil
		return
	}

	careful := r.opts.Advanced.BaseSigma * 0.6
	for p := mis.targetStart; p < uptoIndex; p++ {
		ch := r.target[p]
		delay := r.sampler.KeyDelay(r.effectiveWPM(), ch, r.progress(p), careful)
		if ch == '\n' {
			r.emitKey(typing.Enter, delay)
		} else {
			r.emitChar(ch, delay)
		}
	}

	windowStart, windowEnd := mis.bufferLengthAtStart, mis.bufferLengthAtStart+deleteCount
	r.discardPendingFixesInWindow(windowStart, windowEnd)

	r.haveLastError = true
	r.lastErrorAt = uptoIndex
	r.openMis = nil
}

// discardPendingFixesInWindow drops any pending fix whose originating
// buffer index fell inside [start, end) — that span was deleted and
// retyped correctly by the correction that just ran.
func (r *runner) discardPendingFixesInWindow(start, end int) {
	kept := r.pendingFixes[:0]
	for _, pf := range r.pendingFixes {
		if pf.insertedAtBufferIndex >= start && pf.insertedAtBufferIndex < end {
			continue
		}
		kept = append(kept, pf)
	}
	r.pendingFixes = kept
}
