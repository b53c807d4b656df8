// Package template holds parsed templates and supplies them as partials.
package template

import (
	"errors"

	"github.com/robfig/stache/ast"
	"github.com/robfig/stache/parse"
)

// ErrTemplateNotFound is reported when a template is required by name but no
// loader has it.
var ErrTemplateNotFound = errors.New("template not found")

// Loader supplies templates by name, typically to satisfy {{>partial}} tags.
type Loader interface {
	// Load returns the named template.  It returns nil, nil if the template
	// does not exist; errors are reserved for templates that exist but could
	// not be read or parsed.
	Load(name string) (*ast.Tree, error)
}

// Strings is a Loader over raw template text, parsed when loaded.
type Strings map[string]string

func (s Strings) Load(name string) (*ast.Tree, error) {
	var text, ok = s[name]
	if !ok {
		return nil, nil
	}
	return parse.Template(name, text)
}

// Chain is a Loader that consults each of its loaders in turn.
type Chain []Loader

func (c Chain) Load(name string) (*ast.Tree, error) {
	for _, l := range c {
		var tree, err = l.Load(name)
		if err != nil || tree != nil {
			return tree, err
		}
	}
	return nil, nil
}
