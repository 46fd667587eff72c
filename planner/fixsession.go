package planner

import (
	"sort"

	"github.com/Nomadcxx/keyplan/typing"
)

// shouldRunFixSession reports whether a periodic fix session should fire
// at this word boundary, per spec.md §4.6.7.
func (r *runner) shouldRunFixSession() bool {
	if r.opts.Advanced.FixSessionIntervalWords <= 0 {
		return false
	}
	return r.wordsCompleted > 0 &&
		r.wordsCompleted%r.opts.Advanced.FixSessionIntervalWords == 0 &&
		r.openMis == nil &&
		len(r.pendingFixes) > 0
}

type resolvedFix struct {
	fix pendingFix
	pos int
}

// runFixSession implements spec.md §4.6.7. final sessions take every
// resolvable fix; periodic sessions cap at FixSessionMaxFixes.
func (r *runner) runFixSession(final bool) {
	if len(r.pendingFixes) == 0 {
		return
	}

	pause := r.opts.Advanced.FixPauseMinS + r.src.Float()*(r.opts.Advanced.FixPauseMaxS-r.opts.Advanced.FixPauseMinS)
	r.emitPause(pause*r.opts.Advanced.PauseScale, "fix-session")

	r.emitKey(typing.CtrlEnd, motionStepS)
	r.emitSyncPause()

	var resolved []resolvedFix
	var unresolved []pendingFix
	for _, pf := range r.pendingFixes {
		if pos, ok := r.locate(pf); ok {
			resolved = append(resolved, resolvedFix{fix: pf, pos: pos})
		} else {
			unresolved = append(unresolved, pf)
		}
	}

	sort.Slice(resolved, func(a, b int) bool { return resolved[a].pos > resolved[b].pos })

	limit := len(resolved)
	if !final && limit > r.opts.Advanced.FixSessionMaxFixes {
		limit = r.opts.Advanced.FixSessionMaxFixes
	}

	applied := resolved[:limit]
	deferred := resolved[limit:]

	aborted := false
	for _, rf := range applied {
		ch, ok := r.buf.RuneAt(rf.pos)
		if !ok || ch != rf.fix.wrongChar {
			// Already fixed or shifted out from under us; skip silently.
			continue
		}
		lenBefore := r.buf.Len()
		r.moveCaretTo(rf.pos + 1)
		r.emitKey(typing.Backspace, r.sampler.BackspaceDelay())
		r.emitChar(rf.fix.correctChar, r.sampler.KeyDelay(r.effectiveWPM(), rf.fix.correctChar, r.progress(rf.pos), r.opts.Advanced.BaseSigma))
		if r.buf.Len() != lenBefore {
			r.warn(&InvariantError{Operation: "runFixSession", Position: rf.pos, Cause: "buffer length changed unexpectedly during substitution"})
			aborted = true
			break
		}
	}

	r.emitKey(typing.CtrlEnd, motionStepS)
	r.emitSyncPause()

	if aborted {
		r.pendingFixes = nil
		return
	}

	remaining := make([]pendingFix, 0, len(deferred)+len(unresolved))
	for _, rf := range deferred {
		remaining = append(remaining, rf.fix)
	}
	remaining = append(remaining, unresolved...)
	r.pendingFixes = remaining
}

// locate finds pf's wrong_char in the current shadow buffer by matching its
// context snapshot, per spec.md §4.6.7 step 3: left+right context, then
// left-context-only, then first occurrence of wrong_char.
func (r *runner) locate(pf pendingFix) (int, bool) {
	text := r.buf.Runes()

	if pos, ok := findByContext(text, pf.wrongChar, pf.contextBefore, pf.contextAfter); ok {
		return pos, true
	}
	if pos, ok := findByContext(text, pf.wrongChar, pf.contextBefore, ""); ok {
		return pos, true
	}
	for i, ch := range text {
		if ch == pf.wrongChar {
			return i, true
		}
	}
	return 0, false
}

// findByContext searches text for an occurrence of want whose surrounding
// context matches before/after. An empty after matches any right context.
func findByContext(text []rune, want rune, before, after string) (int, bool) {
	beforeRunes := []rune(before)
	afterRunes := []rune(after)

	for i, ch := range text {
		if ch != want {
			continue
		}
		if len(beforeRunes) > 0 {
			start := i - len(beforeRunes)
			if start < 0 {
				continue
			}
			if string(text[start:i]) != before {
				continue
			}
		}
		if after != "" {
			end := i + 1 + len(afterRunes)
			if end > len(text) {
				continue
			}
			if string(text[i+1:end]) != after {
				continue
			}
		}
		return i, true
	}
	return 0, false
}

// snapshotContext captures the contextWindow-sized windows before and after
// position pos in the current buffer, for later relocation.
func (r *runner) snapshotContext(pos int) (before, after string) {
	text := r.buf.Runes()
	start := pos - contextWindow
	if start < 0 {
		start = 0
	}
	end := pos + 1 + contextWindow
	if end > len(text) {
		end = len(text)
	}
	before = string(text[start:pos])
	if pos+1 <= end {
		after = string(text[pos+1 : end])
	}
	return before, after
}
