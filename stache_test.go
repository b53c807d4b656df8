package stache

import (
	"errors"
	"strings"
	"testing"

	"github.com/robfig/stache/data"
	"github.com/robfig/stache/errortypes"
)

func TestRenderString(t *testing.T) {
	type test struct {
		input    string
		data     interface{}
		expected string
	}
	var tests = []test{
		{"Hello {{name}}!", map[string]string{"name": "<Rob>"}, "Hello &lt;Rob&gt;!"},
		{"{{#items}}{{.}},{{/items}}", map[string][]int{"items": {1, 2}}, "1,2,"},
		{"{{#person}}{{Name}}{{/person}}", map[string]interface{}{"person": struct{ Name string }{"Joe"}}, "Joe"},
		{"{{#wrap}}hi{{/wrap}}", data.NewMap().SetLambda("wrap", strings.ToUpper), "HI"},
		{"[{{^missing}}X{{/missing}}]", nil, "[X]"},
	}
	for _, test := range tests {
		var actual, err = RenderString(test.input, test.data)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if actual != test.expected {
			t.Errorf("%q: expected %q, got %q", test.input, test.expected, actual)
		}
	}
}

func TestRenderParseError(t *testing.T) {
	var out strings.Builder
	var err = Render(&out, "before {{#a}}{{/b}}", nil)
	if !errors.Is(err, errortypes.ErrMismatchedSection) {
		t.Errorf("expected mismatched section, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}
