package data

import (
	"reflect"
	"testing"
)

func TestBuilder(t *testing.T) {
	var m = NewMap().
		Set("name", "Joe").
		Set("context", NewMap().Set("admin", true)).
		Set("list", NewList().
			Push(NewMap().Set("n", 1)).
			Push(NewMap().Set("n", 2))).
		Set("name", "Jane").
		Build()

	var expected = Map{
		"name":    String("Jane"),
		"context": Map{"admin": Bool(true)},
		"list": List{
			Map{"n": String("1")},
			Map{"n": String("2")},
		},
	}
	if !reflect.DeepEqual(expected, m) {
		t.Errorf("got %#v, expected %#v", m, expected)
	}
}

func TestBuilderBuildIsolated(t *testing.T) {
	var b = NewMap().Set("a", "1")
	var first = b.Build()
	b.Set("a", "2")
	if first["a"] != String("1") {
		t.Errorf("mutating the builder changed a built map: %#v", first)
	}

	var lb = NewList()
	if l := lb.Build(); l == nil || len(l) != 0 {
		t.Errorf("empty list builder => %#v, expected empty List", l)
	}
}

func TestBuilderLambda(t *testing.T) {
	var m = NewMap().SetLambda("wrap", func(text string) string {
		return "<b>" + text + "</b>"
	}).Build()
	if got := m["wrap"].(Lambda)("x"); got != "<b>x</b>" {
		t.Errorf("got %q", got)
	}
}

func TestBuilderAsGoValue(t *testing.T) {
	var m = New(map[string]interface{}{
		"inner": NewMap().Set("k", "v"),
	})
	var expected = Map{"inner": Map{"k": String("v")}}
	if !reflect.DeepEqual(expected, m) {
		t.Errorf("got %#v, expected %#v", m, expected)
	}
}
