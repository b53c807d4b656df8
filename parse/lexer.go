package parse

import (
	"fmt"
	"strings"

	"github.com/robfig/stache/ast"
	"github.com/robfig/stache/errortypes"
)

// Lexer design from text/template, reduced to mustache's single-token tags.

// Tokens ---------------------------------------------------------------------

// item represents a tag or text string returned from the scanner.
type item struct {
	typ itemType // The type of this item.
	pos ast.Pos  // The starting position, in bytes, of this item in the input string.
	end ast.Pos  // The position just past the end of this item.
	val string   // Text, or the trimmed tag name, or the comment body.

	ldelim, rdelim string // delimiters in effect when the tag was scanned
	indent         string // leading whitespace of a standalone tag
	kind           error  // for itemError, the errortypes kind
}

func (i item) String() string {
	switch {
	case i.typ == itemEOF:
		return "EOF"
	case i.typ == itemError:
		return i.val
	case i.typ == itemText && len(i.val) > 10:
		return fmt.Sprintf("%.10q...", i.val)
	case i.typ == itemText:
		return fmt.Sprintf("%q", i.val)
	}
	return i.ldelim + i.typ.sigil() + i.val + i.rdelim
}

// itemType identifies the type of lexical items.
type itemType int

// All items.
const (
	itemInvalid itemType = iota // not used
	itemEOF                     // EOF
	itemError                   // error occurred; value is text of error
	itemText                    // plain text

	itemVariable  // {{name}}
	itemUnescaped // {{{name}}} or {{&name}}
	itemSection   // {{#name}}
	itemInverted  // {{^name}}
	itemClose     // {{/name}}
	itemComment   // {{! comment }}
	itemPartial   // {{>name}}
	itemSetDelim  // {{=<% %>=}}
)

// standalone reports whether a tag of this type is removed together with its
// line when it is the only thing on that line.
func (t itemType) standalone() bool {
	switch t {
	case itemSection, itemInverted, itemClose, itemComment, itemPartial, itemSetDelim:
		return true
	}
	return false
}

func (t itemType) sigil() string {
	switch t {
	case itemUnescaped:
		return "&"
	case itemSection:
		return "#"
	case itemInverted:
		return "^"
	case itemClose:
		return "/"
	case itemComment:
		return "!"
	case itemPartial:
		return ">"
	case itemSetDelim:
		return "="
	}
	return ""
}

var sigils = map[byte]itemType{
	'&': itemUnescaped,
	'#': itemSection,
	'^': itemInverted,
	'/': itemClose,
	'!': itemComment,
	'>': itemPartial,
}

// Lexer ----------------------------------------------------------------------

const (
	defaultLeftDelim  = "{{"
	defaultRightDelim = "}}"
)

// stateFn represents the state of the lexer as a function that returns the
// next state.
type stateFn func(*lexer) stateFn

// lexer holds the state of the lexical scanning.  The delimiters are part of
// this state: a {{=...=}} tag changes them for the rest of the input.
type lexer struct {
	name   string  // the name of the input; used only during errors.
	input  string  // the string being scanned.
	state  stateFn // the next lexing function to enter.
	pos    ast.Pos // current position in the input.
	start  ast.Pos // start position of this item.
	ldelim string  // current left delimiter
	rdelim string  // current right delimiter
	items  []item  // scanned items
}

// lex scans the whole input using the given delimiters.  The returned items
// end in either itemEOF or itemError.
func lex(name, input, ldelim, rdelim string) []item {
	l := &lexer{
		name:   name,
		input:  input,
		ldelim: ldelim,
		rdelim: rdelim,
		state:  lexText,
	}
	l.run()
	return l.items
}

// run runs the state machine for the lexer.
func (l *lexer) run() {
	for l.state != nil {
		l.state = l.state(l)
	}
}

// emit records an item spanning start..pos.
func (l *lexer) emit(t itemType, val string) {
	l.items = append(l.items, item{
		typ:    t,
		pos:    l.start,
		end:    l.pos,
		val:    val,
		ldelim: l.ldelim,
		rdelim: l.rdelim,
	})
	l.start = l.pos
}

// errorf records an error item and terminates the scan.
func (l *lexer) errorf(kind error, format string, args ...interface{}) stateFn {
	l.items = append(l.items, item{
		typ:  itemError,
		pos:  l.start,
		end:  l.pos,
		val:  fmt.Sprintf(format, args...),
		kind: kind,
	})
	return nil
}

// lexText scans until the next left delimiter.
func lexText(l *lexer) stateFn {
	var i = strings.Index(l.input[l.pos:], l.ldelim)
	if i == -1 {
		l.pos = ast.Pos(len(l.input))
		if l.pos > l.start {
			l.emit(itemText, l.input[l.start:l.pos])
		}
		l.emit(itemEOF, "")
		return nil
	}
	l.pos += ast.Pos(i)
	if l.pos > l.start {
		l.emit(itemText, l.input[l.start:l.pos])
	}
	return lexTag
}

// lexTag scans a tag.  The left delimiter is at l.pos.
func lexTag(l *lexer) stateFn {
	var inner = l.pos + ast.Pos(len(l.ldelim))
	if int(inner) < len(l.input) {
		switch l.input[inner] {
		case '{':
			return l.lexTagUntil(itemUnescaped, inner+1, "}"+l.rdelim)
		case '=':
			return lexSetDelim(l, inner+1)
		}
	}
	var typ = itemVariable
	if int(inner) < len(l.input) {
		if t, ok := sigils[l.input[inner]]; ok {
			typ = t
			inner++
		}
	}
	return l.lexTagUntil(typ, inner, l.rdelim)
}

// lexTagUntil finishes a tag whose content begins at from and which is
// terminated by closer.
func (l *lexer) lexTagUntil(typ itemType, from ast.Pos, closer string) stateFn {
	var i = strings.Index(l.input[from:], closer)
	if i == -1 {
		return l.errorf(errortypes.ErrUnclosedTag, "%q has no closing %q", l.snippet(), closer)
	}
	var content = l.input[from : int(from)+i]
	l.pos = from + ast.Pos(i+len(closer))
	if typ == itemComment {
		l.emit(typ, content)
		return lexText
	}
	var name = strings.TrimSpace(content)
	if name == "" {
		return l.errorf(errortypes.ErrEmptyName, "%q", l.input[l.start:l.pos])
	}
	l.emit(typ, name)
	return lexText
}

// lexSetDelim scans {{=<% %>=}}.  The content begins at from.
func lexSetDelim(l *lexer, from ast.Pos) stateFn {
	var closer = "=" + l.rdelim
	var i = strings.Index(l.input[from:], closer)
	if i == -1 {
		return l.errorf(errortypes.ErrUnclosedTag, "%q has no closing %q", l.snippet(), closer)
	}
	var content = l.input[from : int(from)+i]
	l.pos = from + ast.Pos(i+len(closer))
	var delims = strings.Fields(content)
	if len(delims) != 2 || strings.Contains(content, "=") {
		return l.errorf(errortypes.ErrBadDelimiter, "%q (expected two delimiters separated by whitespace)",
			l.input[l.start:l.pos])
	}
	l.emit(itemSetDelim, delims[0]+" "+delims[1])
	l.ldelim, l.rdelim = delims[0], delims[1]
	return lexText
}

// snippet returns the beginning of the current tag, for error messages.
func (l *lexer) snippet() string {
	var s = l.input[l.start:]
	if i := strings.IndexByte(s, '\n'); i != -1 {
		s = s[:i]
	}
	if len(s) > 20 {
		s = s[:20]
	}
	return s
}
