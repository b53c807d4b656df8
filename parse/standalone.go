package parse

import (
	"strings"

	"github.com/robfig/stache/ast"
)

// trimStandalone removes the lines occupied only by a structural tag.
//
// A tag stands alone when the text before it on its line and the text after it
// up to the line break (or end of input) is blank.  For such tags the leading
// blanks, the trailing blanks and the line break are cut from the neighboring
// text items.  Every decision is made against the untrimmed items, and then
// all of the cuts are applied, so that two standalone tags on consecutive
// lines may share the text item between them.
func trimStandalone(items []item) {
	var (
		head = make(map[int]int) // text item index => bytes to cut from the front
		tail = make(map[int]int) // text item index => offset from which to cut
	)
	for i := range items {
		if !items[i].typ.standalone() {
			continue
		}
		var tailIdx, tailFrom, indent, ok = lineBefore(items, i)
		if !ok {
			continue
		}
		var headIdx, headLen, ok2 = lineAfter(items, i)
		if !ok2 {
			continue
		}
		if tailIdx >= 0 {
			tail[tailIdx] = tailFrom
		}
		if headIdx >= 0 {
			head[headIdx] = headLen
		}
		items[i].indent = indent
	}

	for i := range items {
		if items[i].typ != itemText {
			continue
		}
		var from, to = 0, len(items[i].val)
		if n, ok := head[i]; ok {
			from = n
		}
		if n, ok := tail[i]; ok {
			to = n
		}
		if from > to {
			from = to
		}
		items[i].val = items[i].val[from:to]
		items[i].pos += ast.Pos(from)
	}
}

// lineBefore checks that only blanks precede items[i] on its line.  It returns
// the index of the text item holding those blanks (-1 if none) and the offset
// at which they begin.
func lineBefore(items []item, i int) (idx, from int, indent string, ok bool) {
	if i == 0 {
		return -1, 0, "", true
	}
	var prev = items[i-1]
	if prev.typ != itemText {
		return 0, 0, "", false
	}
	var nl = strings.LastIndexByte(prev.val, '\n')
	var blanks = prev.val[nl+1:]
	if !isBlank(blanks) {
		return 0, 0, "", false
	}
	if nl == -1 && i-1 != 0 {
		// another tag precedes this one on the same line
		return 0, 0, "", false
	}
	return i - 1, nl + 1, blanks, true
}

// lineAfter checks that only blanks and a line break (or the end of input)
// follow items[i].  It returns the index of the text item holding them (-1 if
// none) and how many bytes to cut from its front.
func lineAfter(items []item, i int) (idx, n int, ok bool) {
	var next = items[i+1]
	switch next.typ {
	case itemEOF:
		return -1, 0, true
	case itemText:
	default:
		return 0, 0, false
	}
	var nl = strings.IndexByte(next.val, '\n')
	if nl == -1 {
		if isBlank(next.val) && items[i+2].typ == itemEOF {
			return i + 1, len(next.val), true
		}
		return 0, 0, false
	}
	if !isBlank(strings.TrimSuffix(next.val[:nl], "\r")) {
		return 0, 0, false
	}
	return i + 1, nl + 1, true
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return false
		}
	}
	return true
}
