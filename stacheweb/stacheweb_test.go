package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	var dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.mustache"), []byte("Hello {{name}}!"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a", "b.mustache"), []byte("{{>index}}"), 0644))

	var tests = []struct {
		target string
		code   int
		body   string
	}{
		{"/?name=%3CRob%3E", 200, "Hello &lt;Rob&gt;!"},
		{"/a/b?name=Joe", 200, "Hello Joe!"},
		{"/missing", 500, ""},
	}
	for _, test := range tests {
		var rec = httptest.NewRecorder()
		handler{dir, false}.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, test.target, nil))
		assert.Equal(t, test.code, rec.Code, test.target)
		if test.code == 200 {
			assert.Equal(t, test.body, rec.Body.String(), test.target)
		}
	}
}

func TestHandlerFile(t *testing.T) {
	var file = filepath.Join(t.TempDir(), "page.mustache")
	require.NoError(t, os.WriteFile(file, []byte("{{#x}}yes{{/x}}"), 0644))

	var rec = httptest.NewRecorder()
	handler{file, false}.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/anything?x=1", nil))
	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "yes", rec.Body.String())
}

func TestHandlerErrorPosition(t *testing.T) {
	var dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.mustache"), []byte("ok\n{{#a}}"), 0644))

	var rec = httptest.NewRecorder()
	handler{dir, false}.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, 500, rec.Code)
	assert.Equal(t, "index:2:1", rec.Header().Get("X-Template-Position"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.mustache"), []byte("fine"), 0644))
	rec = httptest.NewRecorder()
	handler{dir, false}.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, 500, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Template-Position"))
}
