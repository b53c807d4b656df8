package stache

import (
	"bytes"
	"io"

	"github.com/robfig/stache/data"
	"github.com/robfig/stache/parse"
	"github.com/robfig/stache/stachehtml"
)

// Render parses text as a template and renders it against obj, converted
// with data.New.  No output is written if the template does not parse.
func Render(wr io.Writer, text string, obj interface{}) error {
	var tree, err = parse.Template("", text)
	if err != nil {
		return err
	}
	return stachehtml.New(tree).Execute(wr, data.New(obj))
}

// RenderString is like Render but returns the output.
func RenderString(text string, obj interface{}) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, text, obj); err != nil {
		return "", err
	}
	return buf.String(), nil
}
