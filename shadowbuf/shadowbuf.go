// Package shadowbuf mirrors the text buffer and caret of the external
// editor the planner's events will eventually be replayed against. Every
// emitted event is grounded in this mirror (spec.md §3, §4.5); every
// operation bounds-checks rather than panicking. An out-of-range motion is
// a no-op reported only through its false return value; nothing records it
// as a warning.
package shadowbuf

// Buffer is a mutable ordered sequence of characters plus an integer caret
// in [0, len(text)].
type Buffer struct {
	text  []rune
	caret int
}

// New returns an empty buffer with the caret at 0.
func New() *Buffer {
	return &Buffer{}
}

// Len returns the current character count.
func (b *Buffer) Len() int { return len(b.text) }

// Caret returns the current caret position.
func (b *Buffer) Caret() int { return b.caret }

// String returns a snapshot of the buffer contents.
func (b *Buffer) String() string { return string(b.text) }

// Runes returns the buffer's contents as a rune slice. Callers must treat
// it as read-only; it aliases the buffer's internal storage.
func (b *Buffer) Runes() []rune { return b.text }

// RuneAt returns the character at index i and whether i was in bounds.
func (b *Buffer) RuneAt(i int) (rune, bool) {
	if i < 0 || i >= len(b.text) {
		return 0, false
	}
	return b.text[i], true
}

// InsertAtCaret inserts ch at the caret and advances the caret by one.
func (b *Buffer) InsertAtCaret(ch rune) {
	b.text = append(b.text, 0)
	copy(b.text[b.caret+1:], b.text[b.caret:])
	b.text[b.caret] = ch
	b.caret++
}

// Backspace deletes the character immediately before the caret. A no-op
// (reported via the returned bool) when the caret is already at 0.
func (b *Buffer) Backspace() (ok bool) {
	if b.caret == 0 {
		return false
	}
	b.text = append(b.text[:b.caret-1], b.text[b.caret:]...)
	b.caret--
	return true
}

// Left moves the caret one position left. No-op at the start.
func (b *Buffer) Left() (ok bool) {
	if b.caret == 0 {
		return false
	}
	b.caret--
	return true
}

// Right moves the caret one position right. No-op at the end.
func (b *Buffer) Right() (ok bool) {
	if b.caret >= len(b.text) {
		return false
	}
	b.caret++
	return true
}

// Home moves the caret to the absolute start of the buffer (CtrlHome).
func (b *Buffer) Home() { b.caret = 0 }

// End moves the caret to the absolute end of the buffer (CtrlEnd).
func (b *Buffer) End() { b.caret = len(b.text) }

// LineHome moves the caret to the start of its current line (the Home key).
func (b *Buffer) LineHome() {
	for b.caret > 0 && b.text[b.caret-1] != '\n' {
		b.caret--
	}
}

// LineEnd moves the caret to the end of its current line (the End key).
func (b *Buffer) LineEnd() {
	for b.caret < len(b.text) && b.text[b.caret] != '\n' {
		b.caret++
	}
}

// TruncateTo shrinks the buffer to exactly n characters, moving the caret
// to n if it now exceeds the new length. No-op (reports false) if n is out
// of [0, len(text)]; n equal to the current length is a no-op that reports
// true.
func (b *Buffer) TruncateTo(n int) (ok bool) {
	if n < 0 || n > len(b.text) {
		return false
	}
	b.text = b.text[:n]
	if b.caret > n {
		b.caret = n
	}
	return true
}

// MoveStepsFor returns the signed number of single-step Left/Right motions
// needed to move the caret from its current position to abs, clamped into
// [0, len(text)]. Positive means Right steps, negative means Left steps.
func (b *Buffer) MoveStepsFor(abs int) int {
	if abs < 0 {
		abs = 0
	}
	if abs > len(b.text) {
		abs = len(b.text)
	}
	return abs - b.caret
}
