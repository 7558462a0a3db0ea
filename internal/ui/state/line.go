package state

import "unicode"

// Line is a single-line text buffer with a cursor measured in runes. Every
// edit reports whether it changed anything.
type Line struct {
	text []rune
	pos  int
}

// NewLine returns a line holding text with the cursor at the end.
func NewLine(text string) Line {
	r := []rune(text)
	return Line{text: r, pos: len(r)}
}

func (ln Line) String() string { return string(ln.text) }

// Pos is the cursor offset in runes.
func (ln Line) Pos() int { return ln.pos }

// Empty reports whether the line holds no text.
func (ln Line) Empty() bool { return len(ln.text) == 0 }

// Split cuts the line around the cursor. At the end of the line the rune
// under the cursor is a space.
func (ln Line) Split() (before, at, after string) {
	if ln.pos >= len(ln.text) {
		return string(ln.text), " ", ""
	}
	return string(ln.text[:ln.pos]), string(ln.text[ln.pos]), string(ln.text[ln.pos+1:])
}

// Set replaces the text and moves the cursor to the end.
func (ln *Line) Set(text string) bool {
	if text == string(ln.text) && ln.pos == len(ln.text) {
		return false
	}
	*ln = NewLine(text)
	return true
}

// Clear empties the line.
func (ln *Line) Clear() bool { return ln.Set("") }

// Insert places text at the cursor.
func (ln *Line) Insert(text string) bool {
	add := []rune(text)
	if len(add) == 0 {
		return false
	}
	out := make([]rune, 0, len(ln.text)+len(add))
	out = append(out, ln.text[:ln.pos]...)
	out = append(out, add...)
	out = append(out, ln.text[ln.pos:]...)
	ln.text = out
	ln.pos += len(add)
	return true
}

// Backspace removes the rune before the cursor.
func (ln *Line) Backspace() bool {
	return ln.cut(ln.pos - 1)
}

// DeleteWord removes from the start of the previous word to the cursor.
func (ln *Line) DeleteWord() bool {
	return ln.cut(wordStart(ln.text, ln.pos))
}

func (ln *Line) cut(from int) bool {
	if from < 0 || from >= ln.pos {
		return false
	}
	ln.text = append(ln.text[:from:from], ln.text[ln.pos:]...)
	ln.pos = from
	return true
}

func (ln *Line) Home() bool      { return ln.moveTo(0) }
func (ln *Line) End() bool       { return ln.moveTo(len(ln.text)) }
func (ln *Line) Left() bool      { return ln.moveTo(ln.pos - 1) }
func (ln *Line) Right() bool     { return ln.moveTo(ln.pos + 1) }
func (ln *Line) WordLeft() bool  { return ln.moveTo(wordStart(ln.text, ln.pos)) }
func (ln *Line) WordRight() bool { return ln.moveTo(wordEnd(ln.text, ln.pos)) }

func (ln *Line) moveTo(pos int) bool {
	if pos < 0 || pos > len(ln.text) || pos == ln.pos {
		return false
	}
	ln.pos = pos
	return true
}

// wordStart skips spaces then a word, walking left from pos.
func wordStart(text []rune, pos int) int {
	for pos > 0 && unicode.IsSpace(text[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(text[pos-1]) {
		pos--
	}
	return pos
}

// wordEnd skips a word then spaces, walking right from pos.
func wordEnd(text []rune, pos int) int {
	for pos < len(text) && !unicode.IsSpace(text[pos]) {
		pos++
	}
	for pos < len(text) && unicode.IsSpace(text[pos]) {
		pos++
	}
	return pos
}
