// Package stachehtml renders parsed mustache templates to HTML.
package stachehtml

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/microcosm-cc/bluemonday"
	"github.com/robfig/stache/ast"
	"github.com/robfig/stache/data"
	"github.com/robfig/stache/errortypes"
	"github.com/robfig/stache/template"
)

// Renderer provides parameters to template execution.  Its setters return the
// Renderer so that they may be chained.  A configured Renderer may be executed
// any number of times, from any number of goroutines.
type Renderer struct {
	tree     *ast.Tree       // template to render, if given directly
	tofu     *Tofu           // else a registry of templates and
	name     string          // the name of the template within it
	loader   template.Loader // source of partials
	strict   bool
	policy   *bluemonday.Policy
	maxDepth int
}

// New returns a Renderer for the given parsed template.  Partials are not
// available unless a loader is supplied with Partials.
func New(tree *ast.Tree) *Renderer {
	return &Renderer{tree: tree, maxDepth: DefaultMaxPartialDepth}
}

// Partials sets the loader consulted for {{>name}} tags.
func (r *Renderer) Partials(loader template.Loader) *Renderer {
	r.loader = loader
	return r
}

// RequirePartials makes a partial that cannot be found an error, instead of
// rendering as nothing.
func (r *Renderer) RequirePartials(require bool) *Renderer {
	r.strict = require
	return r
}

// Sanitize filters the output of unescaped variables through the given
// policy.  Escaped variables are unaffected.
func (r *Renderer) Sanitize(policy *bluemonday.Policy) *Renderer {
	r.policy = policy
	return r
}

// MaxPartialDepth sets how deeply partials may nest.
func (r *Renderer) MaxPartialDepth(n int) *Renderer {
	r.maxDepth = n
	return r
}

// Execute renders the template against root and writes the result to wr.
// Nothing is written unless the whole template renders.
func (r Renderer) Execute(wr io.Writer, root data.Value) error {
	var tree = r.tree
	if tree == nil {
		if r.tofu == nil || r.tofu.registry == nil {
			return errors.New("template registry required")
		}
		if tree = r.tofu.registry.Template(r.name); tree == nil {
			return fmt.Errorf("%q: %w", r.name, template.ErrTemplateNotFound)
		}
	}
	if root == nil {
		root = data.Map{}
	}

	var buf bytes.Buffer
	state := &state{
		tree:     tree,
		wr:       &buf,
		context:  newScope(root),
		loader:   r.loader,
		strict:   r.strict,
		policy:   r.policy,
		maxDepth: r.maxDepth,
	}
	if err := state.execute(); err != nil {
		return err
	}
	if _, err := buf.WriteTo(wr); err != nil {
		return errortypes.NewRenderError(err, tree.Name, 0, 0)
	}
	return nil
}
