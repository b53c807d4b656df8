package i18n

import (
	"bytes"
	"testing"

	"github.com/robfig/stache/data"
	"github.com/robfig/stache/parse"
	"github.com/robfig/stache/stachehtml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	prov, err := Dir("testdata")
	require.NoError(t, err)

	var fr = prov.Catalog("fr")
	require.NotNil(t, fr)
	assert.Equal(t, "fr", fr.Locale())

	var tests = []struct {
		msgid    string
		n        int
		expected string
	}{
		{"Hello {{name}}!", 1, "Bonjour {{name}} !"},
		{"{{count}} file", 0, "{{count}} fichier"},
		{"{{count}} file", 1, "{{count}} fichier"},
		{"{{count}} file", 2, "{{count}} fichiers"},
		{"Untranslated", 1, "Untranslated"},
		{"Not in the catalog", 1, "Not in the catalog"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, fr.TranslatePlural(test.msgid, test.n), "%q n=%d", test.msgid, test.n)
	}
}

func TestCatalogFallback(t *testing.T) {
	prov, err := Dir("testdata")
	require.NoError(t, err)

	assert.Equal(t, "fr", prov.Catalog("fr_CA").Locale())
	assert.Equal(t, "de_AT", prov.Catalog("de_AT").Locale())
	assert.Nil(t, prov.Catalog("de"))
	assert.Nil(t, prov.Catalog("xx"))

	var none *Catalog
	assert.Equal(t, "text", none.Translate("text"))
}

func TestLambda(t *testing.T) {
	prov, err := Dir("testdata")
	require.NoError(t, err)
	var fr = prov.Catalog("fr")

	var tests = []struct {
		input    string
		data     data.Map
		expected string
	}{
		{"{{#i18n}}Hello {{name}}!{{/i18n}}",
			data.Map{"i18n": fr.Lambda(), "name": data.String("<Rob>")},
			"Bonjour &lt;Rob&gt; !"},
		{"{{#files}}{{count}} file{{/files}}",
			data.Map{"files": fr.Plural(3), "count": data.String("3")},
			"3 fichiers"},
		{"{{#i18n}}Untranslated{{/i18n}}",
			data.Map{"i18n": fr.Lambda()},
			"Untranslated"},
	}
	for _, test := range tests {
		tree, err := parse.Template("test", test.input)
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, stachehtml.New(tree).Execute(&buf, test.data))
		assert.Equal(t, test.expected, buf.String())
	}
}
