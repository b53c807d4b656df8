// Package ast contains definitions for the in-memory representation of a
// mustache template.
package ast

import (
	"bytes"
	"fmt"
	"strings"
)

// Node represents any singular piece of a template.  For example, a sequence
// of raw text or a variable tag.
type Node interface {
	String() string // String returns the template source representation of this node.
	Position() Pos  // byte position of start of node in full original input string
}

// ParentNode is any Node that has descendent nodes.  For example, the body of a
// section.
type ParentNode interface {
	Node
	Children() []Node
}

// Pos represents a byte position in the original input text from which this
// template was parsed.  It is useful to construct helpful error messages.
type Pos int

// Position returns this position.  It is implemented as a method so that Nodes
// may embed a Pos and fulfill this part of the Node interface for free.
func (p Pos) Position() Pos {
	return p
}

// Tree is the parsed representation of a single template.  A Tree is never
// modified after parsing, so it may be rendered by many goroutines at once.
type Tree struct {
	Name string    // name provided for the input; used in error messages
	Text string    // the full input text
	Root *ListNode // top-level node list
}

func (t *Tree) String() string {
	return t.Root.String()
}

// LineCol returns the 1-based line and column of the given byte position.
func (t *Tree) LineCol(pos Pos) (line, col int) {
	return LineCol(t.Text, pos)
}

// LineCol returns the 1-based line and column of pos within text.
func LineCol(text string, pos Pos) (line, col int) {
	if int(pos) > len(text) {
		pos = Pos(len(text))
	}
	var before = text[:pos]
	line = 1 + strings.Count(before, "\n")
	col = 1 + int(pos) - (strings.LastIndex(before, "\n") + 1)
	return line, col
}

// ListNode holds a sequence of nodes.
type ListNode struct {
	Pos
	Nodes []Node // The element nodes in lexical order.
}

func (l *ListNode) String() string {
	b := new(bytes.Buffer)
	for _, n := range l.Nodes {
		fmt.Fprint(b, n)
	}
	return b.String()
}

func (l *ListNode) Children() []Node {
	return l.Nodes
}

// TextNode is a run of literal template text.
type TextNode struct {
	Pos
	Text []byte // The text; may span newlines.
}

func (t *TextNode) String() string {
	return string(t.Text)
}

// VariableNode is an interpolation tag: {{name}}, {{{name}}} or {{&name}}.
type VariableNode struct {
	Pos
	Name   string   // the trimmed name as written, e.g. "a.b" or "."
	Path   []string // Name split on dots; nil for the implicit iterator
	Escape bool     // false for the triple mustache and ampersand forms
}

func (n *VariableNode) String() string {
	if n.Escape {
		return "{{" + n.Name + "}}"
	}
	return "{{&" + n.Name + "}}"
}

// SectionNode is a {{#name}}...{{/name}} or {{^name}}...{{/name}} block.
type SectionNode struct {
	Pos
	Name     string
	Path     []string
	Inverted bool
	Body     *ListNode

	// Text is the raw, unrendered template text between the open and close
	// tags, and LeftDelim / RightDelim are the delimiters in effect at the
	// open tag.  Lambdas receive Text and their result is parsed using the
	// same delimiters.
	Text       string
	LeftDelim  string
	RightDelim string
}

func (n *SectionNode) String() string {
	var sigil = "#"
	if n.Inverted {
		sigil = "^"
	}
	return "{{" + sigil + n.Name + "}}" + n.Body.String() + "{{/" + n.Name + "}}"
}

func (n *SectionNode) Children() []Node {
	return []Node{n.Body}
}

// CommentNode is a {{! ... }} tag.  It never produces output.
type CommentNode struct {
	Pos
	Text string
}

func (n *CommentNode) String() string {
	return "{{!" + n.Text + "}}"
}

// PartialNode is a {{>name}} tag.
type PartialNode struct {
	Pos
	Name   string
	Indent string // whitespace preceding a standalone partial tag
}

func (n *PartialNode) String() string {
	return n.Indent + "{{>" + n.Name + "}}"
}

// SplitPath splits a tag name into the path used for context lookups.  The
// implicit iterator "." has a nil path.
func SplitPath(name string) []string {
	if name == "." {
		return nil
	}
	return strings.Split(name, ".")
}

// Walk calls fn for node and every descendant of node, depth first.
func Walk(node Node, fn func(Node)) {
	fn(node)
	if parent, ok := node.(ParentNode); ok {
		for _, child := range parent.Children() {
			Walk(child, fn)
		}
	}
}
