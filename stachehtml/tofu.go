package stachehtml

import (
	"bytes"
	"io"

	"github.com/microcosm-cc/bluemonday"
	"github.com/robfig/stache/data"
	"github.com/robfig/stache/template"
)

// Tofu is a bundle of compiled templates, ready to render to HTML.  Each
// template may include any other as a partial.
type Tofu struct {
	registry *template.Registry
	strict   bool
	policy   *bluemonday.Policy
	maxDepth int
}

// NewTofu returns a new instance that is ready to provide HTML rendering
// services for the given templates.
func NewTofu(registry *template.Registry) *Tofu {
	return &Tofu{registry: registry, maxDepth: DefaultMaxPartialDepth}
}

// RequirePartials sets the default for renderers created from this Tofu.
func (tofu *Tofu) RequirePartials(require bool) *Tofu {
	tofu.strict = require
	return tofu
}

// Sanitize sets the default for renderers created from this Tofu.
func (tofu *Tofu) Sanitize(policy *bluemonday.Policy) *Tofu {
	tofu.policy = policy
	return tofu
}

// Render is a convenience function that executes the template of the given
// name, using the given object (converted with data.New) as the root context,
// and writes the results to the given Writer.
func (tofu *Tofu) Render(wr io.Writer, name string, obj interface{}) error {
	return tofu.NewRenderer(name).Execute(wr, data.New(obj))
}

// RenderString is like Render but returns the output.
func (tofu *Tofu) RenderString(name string, obj interface{}) (string, error) {
	var buf bytes.Buffer
	var err = tofu.Render(&buf, name, obj)
	return buf.String(), err
}

// NewRenderer returns a new renderer for the named template.  The template is
// looked up when the renderer is executed.
func (tofu *Tofu) NewRenderer(name string) *Renderer {
	return &Renderer{
		tofu:     tofu,
		name:     name,
		loader:   tofu.registry,
		strict:   tofu.strict,
		policy:   tofu.policy,
		maxDepth: tofu.maxDepth,
	}
}
