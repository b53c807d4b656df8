// Package parsepasses contains checks and queries that run over parsed
// templates, after parsing and before rendering.
package parsepasses

import (
	"fmt"
	"sort"
	"strings"

	"github.com/robfig/stache/ast"
	"github.com/robfig/stache/template"
)

// MissingPartialsError lists the partial references that no template in a
// registry satisfies.
type MissingPartialsError struct {
	Refs []PartialRef
}

// PartialRef is a {{>name}} tag and the template it appears in.
type PartialRef struct {
	Template string
	Line     int
	Name     string
}

func (e *MissingPartialsError) Error() string {
	var lines []string
	for _, ref := range e.Refs {
		lines = append(lines, fmt.Sprintf("template %s:%d: partial %q: %v",
			ref.Template, ref.Line, ref.Name, template.ErrTemplateNotFound))
	}
	return strings.Join(lines, "\n")
}

func (e *MissingPartialsError) Unwrap() error {
	return template.ErrTemplateNotFound
}

// CheckPartials validates that every partial referenced by a template in the
// registry is itself in the registry.  The returned error, if any, is a
// *MissingPartialsError.
func CheckPartials(reg *template.Registry) error {
	var missing []PartialRef
	for _, tree := range reg.Templates() {
		for _, node := range Partials(tree) {
			if reg.Template(node.Name) != nil {
				continue
			}
			var line, _ = tree.LineCol(node.Pos)
			missing = append(missing, PartialRef{tree.Name, line, node.Name})
		}
	}
	if len(missing) > 0 {
		return &MissingPartialsError{missing}
	}
	return nil
}

// Partials returns the partial tags in the tree, in document order.
func Partials(tree *ast.Tree) []*ast.PartialNode {
	var partials []*ast.PartialNode
	ast.Walk(tree.Root, func(node ast.Node) {
		if node, ok := node.(*ast.PartialNode); ok {
			partials = append(partials, node)
		}
	})
	return partials
}

// Names returns the distinct names referenced by variable and section tags
// in the tree, sorted.  The implicit iterator is reported as ".".
func Names(tree *ast.Tree) []string {
	var seen = make(map[string]struct{})
	ast.Walk(tree.Root, func(node ast.Node) {
		switch node := node.(type) {
		case *ast.VariableNode:
			seen[node.Name] = struct{}{}
		case *ast.SectionNode:
			seen[node.Name] = struct{}{}
		}
	})
	var names = make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
