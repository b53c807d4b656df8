// Package parse converts a mustache template into its in-memory representation
// (AST).
package parse

import (
	"runtime"

	"github.com/robfig/stache/ast"
	"github.com/robfig/stache/errortypes"
)

// tree holds the state of a single parse.
type tree struct {
	name  string // name provided for the input
	text  string // the full input text
	items []item // scanned items, standalone lines already removed
	pos   int    // index of the next item
}

// Template parses the input into a Tree using the default {{ }} delimiters.
// Any error is an *errortypes.ParseError; no partial tree is returned.
func Template(name, text string) (*ast.Tree, error) {
	return TemplateDelims(name, text, defaultLeftDelim, defaultRightDelim)
}

// TemplateDelims parses the input, starting with the given delimiters.  It is
// used to parse the text returned by a section lambda, which is interpreted
// with the delimiters in effect around that section.
func TemplateDelims(name, text, ldelim, rdelim string) (tr *ast.Tree, err error) {
	var t = &tree{
		name: name,
		text: text,
	}
	defer t.recover(&err)

	t.items = lex(name, text, ldelim, rdelim)
	if last := t.items[len(t.items)-1]; last.typ == itemError {
		t.errorf(last.kind, last.pos, "%s", last.val)
	}
	trimStandalone(t.items)

	var root, _ = t.itemList(nil)
	return &ast.Tree{
		Name: name,
		Text: text,
		Root: root,
	}, nil
}

// itemList collects nodes until the close tag matching open, or the end of
// input when open is nil.  It returns the list and the close tag.
func (t *tree) itemList(open *item) (*ast.ListNode, item) {
	var list = &ast.ListNode{Pos: t.peek().pos}
	for {
		var token = t.next()
		switch token.typ {
		case itemEOF:
			if open != nil {
				t.errorf(errortypes.ErrUnclosedSection, open.pos, "%v is never closed", *open)
			}
			return list, token

		case itemText:
			if token.val != "" {
				list.Nodes = append(list.Nodes, &ast.TextNode{Pos: token.pos, Text: []byte(token.val)})
			}

		case itemVariable, itemUnescaped:
			list.Nodes = append(list.Nodes, &ast.VariableNode{
				Pos:    token.pos,
				Name:   token.val,
				Path:   ast.SplitPath(token.val),
				Escape: token.typ == itemVariable,
			})

		case itemSection, itemInverted:
			list.Nodes = append(list.Nodes, t.parseSection(token))

		case itemClose:
			if open == nil {
				t.errorf(errortypes.ErrUnexpectedClose, token.pos, "%v has no matching open tag", token)
			}
			if token.val != open.val {
				t.errorf(errortypes.ErrMismatchedSection, token.pos, "%v does not close %v", token, *open)
			}
			return list, token

		case itemComment:
			list.Nodes = append(list.Nodes, &ast.CommentNode{Pos: token.pos, Text: token.val})

		case itemPartial:
			list.Nodes = append(list.Nodes, &ast.PartialNode{
				Pos:    token.pos,
				Name:   token.val,
				Indent: token.indent,
			})

		case itemSetDelim:
			// the lexer has already switched delimiters

		default:
			t.errorf(errortypes.ErrUnclosedTag, token.pos, "unexpected %v", token)
		}
	}
}

// parseSection parses the body of a section whose open tag was just read.
func (t *tree) parseSection(open item) ast.Node {
	var body, closeTag = t.itemList(&open)
	return &ast.SectionNode{
		Pos:        open.pos,
		Name:       open.val,
		Path:       ast.SplitPath(open.val),
		Inverted:   open.typ == itemInverted,
		Body:       body,
		Text:       t.text[open.end:closeTag.pos],
		LeftDelim:  open.ldelim,
		RightDelim: open.rdelim,
	}
}

func (t *tree) next() item {
	var tok = t.items[t.pos]
	if t.pos < len(t.items)-1 {
		t.pos++
	}
	return tok
}

// peek returns but does not consume the next item.
func (t *tree) peek() item {
	return t.items[t.pos]
}

// recover is the handler that turns panics into returns from the top level of Parse.
func (t *tree) recover(errp *error) {
	e := recover()
	if e == nil {
		return
	}
	if _, ok := e.(runtime.Error); ok {
		panic(e)
	}
	t.items = nil
	*errp = e.(error)
}

// errorf formats the error and terminates processing.
func (t *tree) errorf(kind error, pos ast.Pos, format string, args ...interface{}) {
	var line, col = ast.LineCol(t.text, pos)
	panic(errortypes.NewParseError(kind, t.name, line, col, format, args...))
}
