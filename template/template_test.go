package template

import (
	"errors"
	"testing"

	"github.com/robfig/stache/ast"
	"github.com/robfig/stache/errortypes"
	"github.com/robfig/stache/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, name, text string) *ast.Tree {
	t.Helper()
	tree, err := parse.Template(name, text)
	require.NoError(t, err)
	return tree
}

func TestRegistry(t *testing.T) {
	t.Run("should return added templates by name", func(t *testing.T) {
		var reg Registry
		require.NoError(t, reg.Add(mustParse(t, "b", "B")))
		require.NoError(t, reg.Add(mustParse(t, "a", "A")))

		assert.Equal(t, []string{"a", "b"}, reg.Names())
		assert.Equal(t, "A", reg.Template("a").Text)
		assert.Nil(t, reg.Template("missing"))
		require.Len(t, reg.Templates(), 2)
		assert.Equal(t, "a", reg.Templates()[0].Name)
	})

	t.Run("should reject duplicate names", func(t *testing.T) {
		var reg Registry
		require.NoError(t, reg.Add(mustParse(t, "a", "A")))
		assert.Error(t, reg.Add(mustParse(t, "a", "again")))
	})

	t.Run("should load nil for missing templates", func(t *testing.T) {
		var reg Registry
		tree, err := reg.Load("missing")
		assert.NoError(t, err)
		assert.Nil(t, tree)
	})

	t.Run("should report line numbers of nodes", func(t *testing.T) {
		var reg Registry
		var tree = mustParse(t, "page", "line one\n{{name}}\n")
		require.NoError(t, reg.Add(tree))
		assert.Equal(t, 2, reg.LineNumber("page", tree.Root.Nodes[1]))
		assert.Equal(t, 0, reg.LineNumber("other", tree.Root.Nodes[1]))
	})
}

func TestStrings(t *testing.T) {
	var loader = Strings{
		"ok":     "Hello {{name}}",
		"broken": "{{#open}}",
	}

	tree, err := loader.Load("ok")
	require.NoError(t, err)
	assert.Equal(t, "ok", tree.Name)

	tree, err = loader.Load("missing")
	assert.NoError(t, err)
	assert.Nil(t, tree)

	_, err = loader.Load("broken")
	assert.True(t, errors.Is(err, errortypes.ErrUnclosedSection))
}

func TestChain(t *testing.T) {
	var reg Registry
	require.NoError(t, reg.Add(mustParse(t, "shared", "from registry")))
	var loader = Chain{&reg, Strings{"shared": "from strings", "extra": "extra"}}

	tree, err := loader.Load("shared")
	require.NoError(t, err)
	assert.Equal(t, "from registry", tree.Text)

	tree, err = loader.Load("extra")
	require.NoError(t, err)
	assert.Equal(t, "extra", tree.Text)

	tree, err = loader.Load("none")
	assert.NoError(t, err)
	assert.Nil(t, tree)
}
