package ui

import (
	"l2lo/ds"
	"l2lo/unr"
)

// removeEntry returns entries without the row at index. The input slice is
// left untouched.
func removeEntry(entries []unr.Entry, index int) []unr.Entry {
	if index < 0 || index >= len(entries) {
		return entries
	}
	result := ds.Clone(entries[:index], len(entries)-index-1)
	return append(result, entries[index+1:]...)
}

func appendEntry(entries []unr.Entry, entry unr.Entry) []unr.Entry {
	result := ds.Clone(entries, 1)
	return append(result, entry)
}

func clamp(cursor int, length int) int {
	if cursor >= length {
		cursor = length - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

// visibleRange returns the [start, end) window of rows to draw so that the
// cursor stays on screen.
func visibleRange(cursor int, length int, rows int) (int, int) {
	if rows <= 0 || length <= rows {
		return 0, length
	}
	start := cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > length {
		start = length - rows
	}
	return start, start + rows
}
