package state

// Scroll moves Offset so the cursor sits inside a window of size rows. A
// non-positive size shows every item.
func (l *Level) Scroll(size int) {
	n := len(l.Items)
	l.Cursor = min(max(l.Cursor, 0), max(n-1, 0))
	if size <= 0 || n <= size {
		l.Offset = 0
		return
	}
	l.Offset = min(max(l.Offset, 0), n-size)
	if l.Cursor < l.Offset {
		l.Offset = l.Cursor
	}
	if l.Cursor >= l.Offset+size {
		l.Offset = l.Cursor - size + 1
	}
}

// Window scrolls and returns the bounds of the visible rows.
func (l *Level) Window(size int) (start, end int) {
	l.Scroll(size)
	if size <= 0 || size > len(l.Items) {
		return 0, len(l.Items)
	}
	return l.Offset, l.Offset + size
}
