package template

import (
	"fmt"
	"sort"

	"github.com/robfig/stache/ast"
)

// Registry is a set of parsed templates keyed by name.  The zero value is
// empty and ready to use.  A Registry must not be modified while it is being
// rendered from.
type Registry struct {
	templates map[string]*ast.Tree
}

// Add adds the given template to the registry.  Names must be unique.
func (r *Registry) Add(tree *ast.Tree) error {
	if r.templates == nil {
		r.templates = make(map[string]*ast.Tree)
	}
	if _, ok := r.templates[tree.Name]; ok {
		return fmt.Errorf("template %q is already defined", tree.Name)
	}
	r.templates[tree.Name] = tree
	return nil
}

// Template returns the named template, or nil if there is none.
func (r *Registry) Template(name string) *ast.Tree {
	return r.templates[name]
}

// Load implements Loader.
func (r *Registry) Load(name string) (*ast.Tree, error) {
	return r.Template(name), nil
}

// Names returns the names of all templates, sorted.
func (r *Registry) Names() []string {
	var names = make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Templates returns all templates, sorted by name.
func (r *Registry) Templates() []*ast.Tree {
	var trees []*ast.Tree
	for _, name := range r.Names() {
		trees = append(trees, r.templates[name])
	}
	return trees
}

// LineNumber returns the line within the named template at which node begins.
func (r *Registry) LineNumber(templateName string, node ast.Node) int {
	var tree = r.Template(templateName)
	if tree == nil || node == nil {
		return 0
	}
	var line, _ = tree.LineCol(node.Position())
	return line
}
