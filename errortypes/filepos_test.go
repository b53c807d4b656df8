package errortypes_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/robfig/stache/errortypes"
)

func TestIsErrFilePos(t *testing.T) {
	var tests = []struct {
		name string
		in   error
		out  bool
	}{
		{
			name: "nil",
			out:  false,
		},
		{
			name: "errors.New",
			in:   errors.New("an error"),
			out:  false,
		},
		{
			name: "wrapped parse error",
			in:   fmt.Errorf("loading: %w", errortypes.NewParseError(errortypes.ErrEmptyName, "file.mustache", 1, 2, "{{ }}")),
			out:  true,
		},
		{
			name: "parse error",
			in:   errortypes.NewParseError(errortypes.ErrEmptyName, "file.mustache", 3, 4, "{{ }}"),
			out:  true,
		},
		{
			name: "render error",
			in:   errortypes.NewRenderError(errors.New("closed pipe"), "file.mustache", 3, 4),
			out:  true,
		},
	}
	for _, test := range tests {
		got := errortypes.IsErrFilePos(test.in)
		if got != test.out {
			t.Errorf("%s: Expected %v, got %v", test.name, test.out, got)
		}
	}
}

func TestToErrFilePos(t *testing.T) {
	var tests = []struct {
		name             string
		in               error
		expectNil        bool
		expectedFilename string
		expectedLine     int
		expectedCol      int
	}{
		{
			name:      "nil",
			expectNil: true,
		},
		{
			name:      "errors.New",
			in:        errors.New("an error"),
			expectNil: true,
		},
		{
			name:             "wrapped render error",
			in:               fmt.Errorf("page: %w", errortypes.NewRenderError(errors.New("closed pipe"), "file.mustache", 1, 2)),
			expectNil:        false,
			expectedFilename: "file.mustache",
			expectedLine:     1,
			expectedCol:      2,
		},
		{
			name:             "parse error",
			in:               errortypes.NewParseError(errortypes.ErrUnclosedTag, "page", 7, 9, "{{name"),
			expectNil:        false,
			expectedFilename: "page",
			expectedLine:     7,
			expectedCol:      9,
		},
	}
	for _, test := range tests {
		got := errortypes.ToErrFilePos(test.in)
		if test.expectNil && got != nil {
			t.Errorf("%s: expected ErrFilePos to be nil", test.name)
		}
		if !test.expectNil {
			if got == nil {
				t.Errorf("%s: expected ErrFilePos to be non-nil", test.name)
				return
			}
			if got.File() != test.expectedFilename {
				t.Errorf("%s: expected file '%s', got '%s'", test.name, test.expectedFilename, got.File())
			}
			if got.Line() != test.expectedLine {
				t.Errorf("%s: expected line %d, got %d", test.name, test.expectedLine, got.Line())
			}
			if got.Col() != test.expectedCol {
				t.Errorf("%s: expected col %d, got %d", test.name, test.expectedCol, got.Col())
			}
		}
	}
}

func TestErrorKinds(t *testing.T) {
	var err error = errortypes.NewParseError(errortypes.ErrMismatchedSection, "t", 1, 12, "{{/b}} closes {{#a}}")
	if !errors.Is(err, errortypes.ErrMismatchedSection) {
		t.Errorf("expected %v to be a mismatched section error", err)
	}
	if errors.Is(err, errortypes.ErrUnclosedSection) {
		t.Errorf("did not expect %v to be an unclosed section error", err)
	}
	if got, want := err.Error(), "template t:1:12: mismatched section: {{/b}} closes {{#a}}"; got != want {
		t.Errorf("got %q, expected %q", got, want)
	}

	var cause = errors.New("short write")
	err = errortypes.NewRenderError(cause, "t", 2, 1)
	if !errors.Is(err, cause) {
		t.Errorf("expected render error to wrap its cause")
	}
	var renderErr *errortypes.RenderError
	if !errors.As(err, &renderErr) {
		t.Errorf("expected a *RenderError")
	}
}
