package parsepasses

import (
	"github.com/robfig/stache/ast"
)

// Messages returns the sections of the tree whose name is lambda, in
// document order.  Their raw text is what a translation lambda of that name
// receives, so it is also the message id to extract.
func Messages(tree *ast.Tree, lambda string) []*ast.SectionNode {
	var msgs []*ast.SectionNode
	collectMsgs(tree.Root, lambda, &msgs)
	return msgs
}

func collectMsgs(node ast.Node, lambda string, msgs *[]*ast.SectionNode) {
	switch node := node.(type) {
	case *ast.SectionNode:
		if !node.Inverted && node.Name == lambda {
			*msgs = append(*msgs, node)
			// the lambda receives the body unrendered
			return
		}
	}
	if parent, ok := node.(ast.ParentNode); ok {
		for _, child := range parent.Children() {
			collectMsgs(child, lambda, msgs)
		}
	}
}
