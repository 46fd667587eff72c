package planner

import (
	"github.com/Nomadcxx/keyplan/config"
	"github.com/Nomadcxx/keyplan/typing"
)

// maybeSubstituteSynonym implements spec.md §4.6.6. Called when i is the
// start of a word span. Returns the target index to resume the main loop
// at (the word's end, since the whole word was already emitted here) and
// true if a substitution was made.
func (r *runner) maybeSubstituteSynonym(wi int) (resumeAt int, handled bool) {
	a := r.opts.Advanced
	if !a.SynonymReplaceEnabled || r.openMis != nil {
		return 0, false
	}
	sp := r.spans[wi]
	word := string(r.target[sp.Start:sp.End])

	if !r.src.Bool(a.SynonymReplaceChance) {
		return 0, false
	}
	alt, ok := r.dict.Choose(r.src, word, a.AllowMultiWordSynonym)
	if !ok {
		return 0, false
	}

	bufferLenAtStart := r.buf.Len()
	altRunes := []rune(alt)
	for _, ch := range altRunes {
		delay := r.sampler.KeyDelay(r.effectiveWPM(), ch, r.progress(sp.Start), 0)
		r.emitChar(ch, delay)
	}

	if a.SynonymCorrectionMode == config.SynonymLive {
		pause := a.ReflexMinS + r.src.Float()*(a.ReflexMaxS-a.ReflexMinS)
		r.emitPause(pause*a.PauseScale, "synonym-reflex")
		for k := 0; k < len(altRunes); k++ {
			r.emitKey(typing.Backspace, r.sampler.BackspaceDelay())
		}
		for _, ch := range r.target[sp.Start:sp.End] {
			delay := r.sampler.KeyDelay(r.effectiveWPM(), ch, r.progress(sp.Start), 0)
			r.emitChar(ch, delay)
		}
		r.haveLastError = true
		r.lastErrorAt = sp.End
		return sp.End, true
	}

	lo, hi := a.MinBacktrackWords, a.MaxBacktrackWords
	delayWords := r.src.Int(lo, hi)
	r.openMis = &openMistake{
		kind:                 mistakeSynonym,
		targetStart:          sp.Start,
		bufferLengthAtStart:  bufferLenAtStart,
		createdAt:            sp.Start,
		triggerAtWordOrdinal: wi + 1 + delayWords,
		synonymWordEnd:       sp.End,
	}
	return sp.End, true
}
