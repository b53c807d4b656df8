package parsepasses

import (
	"errors"
	"reflect"
	"testing"

	"github.com/robfig/stache/parse"
	"github.com/robfig/stache/template"
)

func newRegistry(t *testing.T, templates map[string]string) *template.Registry {
	var reg template.Registry
	for name, text := range templates {
		var tree, err = parse.Template(name, text)
		if err != nil {
			t.Fatal(err)
		}
		if err = reg.Add(tree); err != nil {
			t.Fatal(err)
		}
	}
	return &reg
}

func TestCheckPartials(t *testing.T) {
	type test struct {
		templates map[string]string
		missing   []PartialRef
	}
	var tests = []test{
		{map[string]string{"a": "no partials"}, nil},
		{map[string]string{"a": "{{>b}}", "b": "{{>a}}"}, nil},
		{map[string]string{"a": "x\n{{#s}}{{>b}}{{/s}}"}, []PartialRef{{"a", 2, "b"}}},
		{map[string]string{"a": "{{>c}}", "b": "\n\n{{>d}}"},
			[]PartialRef{{"a", 1, "c"}, {"b", 3, "d"}}},
	}

	for _, test := range tests {
		var err = CheckPartials(newRegistry(t, test.templates))
		if test.missing == nil {
			if err != nil {
				t.Errorf("%v: unexpected error: %v", test.templates, err)
			}
			continue
		}
		var mpe *MissingPartialsError
		if !errors.As(err, &mpe) {
			t.Errorf("%v: expected MissingPartialsError, got %v", test.templates, err)
			continue
		}
		if !reflect.DeepEqual(mpe.Refs, test.missing) {
			t.Errorf("%v: expected %v, got %v", test.templates, test.missing, mpe.Refs)
		}
		if !errors.Is(err, template.ErrTemplateNotFound) {
			t.Errorf("expected error to match ErrTemplateNotFound")
		}
	}
}

func TestNames(t *testing.T) {
	var tree, err = parse.Template("t", "{{a}} {{#b.c}}{{.}}{{{d}}}{{/b.c}}{{^e}}{{a}}{{/e}}{{!f}}{{>g}}")
	if err != nil {
		t.Fatal(err)
	}
	var expected = []string{".", "a", "b.c", "d", "e"}
	if actual := Names(tree); !reflect.DeepEqual(actual, expected) {
		t.Errorf("expected %v, got %v", expected, actual)
	}
}

func TestMessages(t *testing.T) {
	var tree, err = parse.Template("t",
		"{{#i18n}}Hello {{name}}{{/i18n}}\n{{#list}}{{#i18n}}Item{{/i18n}}{{/list}}{{^i18n}}no{{/i18n}}")
	if err != nil {
		t.Fatal(err)
	}
	var msgs = Messages(tree, "i18n")
	var texts []string
	for _, msg := range msgs {
		texts = append(texts, msg.Text)
	}
	var expected = []string{"Hello {{name}}", "Item"}
	if !reflect.DeepEqual(texts, expected) {
		t.Errorf("expected %q, got %q", expected, texts)
	}
}
