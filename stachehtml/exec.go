package stachehtml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"runtime"
	"runtime/debug"

	"github.com/microcosm-cc/bluemonday"
	"github.com/robfig/stache/ast"
	"github.com/robfig/stache/data"
	"github.com/robfig/stache/errortypes"
	"github.com/robfig/stache/parse"
	"github.com/robfig/stache/template"
)

// Logger receives a line for each partial that could not be found, when
// partials are not required.  It is nil (silent) by default.
var Logger *log.Logger

// DefaultMaxPartialDepth bounds the nesting of partials, so that a template
// including itself unconditionally fails rather than overflowing the stack.
const DefaultMaxPartialDepth = 100

// ErrPartialDepth is reported when partials nest more deeply than allowed.
var ErrPartialDepth = errors.New("partials nested too deeply")

// state represents the state of an execution.
type state struct {
	tree     *ast.Tree // template being walked, for errors
	wr       io.Writer
	node     ast.Node // current node, for errors
	context  scope    // context stack
	loader   template.Loader
	strict   bool               // missing partials are errors
	policy   *bluemonday.Policy // applied to unescaped output, if set
	depth    int                // partials entered
	maxDepth int
}

// at marks the state to be on node n, for error reporting.
func (s *state) at(node ast.Node) {
	s.node = node
}

// errorf wraps the error with the current position and terminates processing.
func (s *state) errorf(err error) {
	var line, col int
	if s.node != nil {
		line, col = s.tree.LineCol(s.node.Position())
	}
	panic(errortypes.NewRenderError(err, s.tree.Name, line, col))
}

// errRecover is the handler that turns panics into returns from the top
// level of Execute.
func (s *state) errRecover(errp *error) {
	if e := recover(); e != nil {
		var line int
		if s.node != nil {
			line, _ = s.tree.LineCol(s.node.Position())
		}
		switch e := e.(type) {
		case runtime.Error:
			*errp = fmt.Errorf("template %s:%d: %v\n%v", s.tree.Name, line, e, string(debug.Stack()))
		case error:
			*errp = e
		default:
			*errp = fmt.Errorf("template %s:%d: %v", s.tree.Name, line, e)
		}
	}
}

// execute walks the whole template.
func (s *state) execute() (err error) {
	defer s.errRecover(&err)
	s.walk(s.tree.Root)
	return nil
}

// walk recursively goes through each node and writes its output.
func (s *state) walk(node ast.Node) {
	s.at(node)
	switch node := node.(type) {
	case *ast.ListNode:
		for _, node := range node.Nodes {
			s.walk(node)
		}
	case *ast.TextNode:
		s.write(node.Text)
	case *ast.CommentNode:
	case *ast.VariableNode:
		s.evalVariable(node)
	case *ast.SectionNode:
		s.evalSection(node)
	case *ast.PartialNode:
		s.evalPartial(node)
	default:
		s.errorf(fmt.Errorf("unknown node: %T", node))
	}
}

func (s *state) write(b []byte) {
	if _, err := s.wr.Write(b); err != nil {
		s.errorf(err)
	}
}

func (s *state) evalVariable(node *ast.VariableNode) {
	var val, _ = s.context.lookup(node.Path)
	var str string
	if fn, ok := val.(data.Lambda); ok {
		if fn == nil {
			return
		}
		// the result is rendered as a template with the default delimiters
		var buf bytes.Buffer
		s.renderText(&buf, fn(""), "", "")
		str = buf.String()
	} else {
		str = val.String()
	}

	switch {
	case node.Escape:
		str = EscapeString(str)
	case s.policy != nil:
		str = s.policy.Sanitize(str)
	}
	s.at(node)
	s.write([]byte(str))
}

func (s *state) evalSection(node *ast.SectionNode) {
	var val, _ = s.context.lookup(node.Path)
	if node.Inverted {
		if !val.Truthy() {
			s.walk(node.Body)
		}
		return
	}

	switch val := val.(type) {
	case data.Lambda:
		if val == nil {
			return
		}
		s.renderText(s.wr, val(node.Text), node.LeftDelim, node.RightDelim)
	case data.List:
		for _, item := range val {
			s.context.push(item)
			s.walk(node.Body)
			s.context.pop()
		}
	case data.Map:
		s.context.push(val)
		s.walk(node.Body)
		s.context.pop()
	default:
		if !val.Truthy() {
			return
		}
		// names are never found in a scalar frame, only {{.}} sees it
		s.context.push(val)
		s.walk(node.Body)
		s.context.pop()
	}
}

// renderText parses the text returned by a lambda and renders it against the
// current context.  Empty delimiters mean the defaults.
func (s *state) renderText(wr io.Writer, text, ldelim, rdelim string) {
	var name = s.tree.Name + " (lambda)"
	var tree *ast.Tree
	var err error
	if ldelim == "" {
		tree, err = parse.Template(name, text)
	} else {
		tree, err = parse.TemplateDelims(name, text, ldelim, rdelim)
	}
	if err != nil {
		s.errorf(err)
	}

	var origTree, origWriter, origNode = s.tree, s.wr, s.node
	s.tree, s.wr = tree, wr
	s.walk(tree.Root)
	s.tree, s.wr, s.node = origTree, origWriter, origNode
}

func (s *state) evalPartial(node *ast.PartialNode) {
	var tree *ast.Tree
	if s.loader != nil {
		var err error
		if tree, err = s.loader.Load(node.Name); err != nil {
			s.errorf(err)
		}
	}
	if tree == nil {
		if s.strict {
			s.errorf(fmt.Errorf("partial %q: %w", node.Name, template.ErrTemplateNotFound))
		}
		if Logger != nil {
			Logger.Printf("%s: partial %q not found", s.tree.Name, node.Name)
		}
		return
	}

	if s.depth >= s.maxDepth {
		s.errorf(fmt.Errorf("partial %q: %w (limit %d)", node.Name, ErrPartialDepth, s.maxDepth))
	}
	if node.Indent != "" {
		var err error
		if tree, err = parse.Template(tree.Name, indentLines(tree.Text, node.Indent)); err != nil {
			s.errorf(err)
		}
	}

	var origTree, origNode = s.tree, s.node
	s.tree = tree
	s.depth++
	s.walk(tree.Root)
	s.depth--
	s.tree, s.node = origTree, origNode
}
