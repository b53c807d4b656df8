/*
Package stacheweb is a simple development server that serves the given
templates.

Invoke it like so:

	go install github.com/robfig/stache/stacheweb
	stacheweb views/

Each request renders the template named by the URL path, relative to the
directory: /account/overview renders views/account/overview.mustache.  The
templates are re-read on every request.  A file may be given instead of a
directory, in which case it is rendered for every path.

Parameters may be provided to the template in the URL query string.
*/
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/robfig/stache"
	"github.com/robfig/stache/data"
	"github.com/robfig/stache/errortypes"
)

var (
	port   = flag.Int("port", 9812, "port on which to listen")
	strict = flag.Bool("strict", false, "fail on missing partials")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: stacheweb [flags] DIR|FILE")
		os.Exit(2)
	}
	fmt.Print("Listening on :", *port, "...")
	log.Fatal(http.ListenAndServe(
		fmt.Sprintf(":%d", *port),
		handler{flag.Arg(0), *strict}))
}

type handler struct {
	path   string
	strict bool
}

func (h handler) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	var bundle = stache.NewBundle().RequirePartials(h.strict)
	var name = strings.Trim(req.URL.Path, "/")
	if info, err := os.Stat(h.path); err == nil && !info.IsDir() {
		bundle.AddTemplateFile(h.path)
		name = strings.TrimSuffix(filepath.Base(h.path), filepath.Ext(h.path))
	} else {
		bundle.AddTemplateDir(h.path)
	}
	if name == "" {
		name = "index"
	}

	var tofu, err = bundle.CompileToTofu()
	if err != nil {
		httpError(res, err)
		return
	}

	var m = make(data.Map)
	for k, v := range req.URL.Query() {
		m[k] = data.String(v[0])
	}

	var buf bytes.Buffer
	err = tofu.NewRenderer(name).Execute(&buf, m)
	if err != nil {
		httpError(res, err)
		return
	}

	io.Copy(res, &buf)
}

// httpError reports err, adding the template position of parse and render
// failures as the X-Template-Position header.
func httpError(res http.ResponseWriter, err error) {
	if pos := errortypes.ToErrFilePos(err); pos != nil {
		res.Header().Set("X-Template-Position",
			fmt.Sprintf("%s:%d:%d", pos.File(), pos.Line(), pos.Col()))
	}
	http.Error(res, err.Error(), 500)
}
