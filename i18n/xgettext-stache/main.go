// xgettext-stache is a tool to extract messages from mustache templates in the
// PO (gettext) file format.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/robfig/gettext/po"
	"github.com/robfig/stache"
	"github.com/robfig/stache/ast"
	"github.com/robfig/stache/i18n"
	"github.com/robfig/stache/parse"
	"github.com/robfig/stache/parsepasses"
)

func usage() {
	fmt.Fprintln(os.Stderr, `xgettext-stache is a tool to extract messages from mustache templates.

Usage:

	./xgettext-stache [-lambda NAME] [INPUTPATH]...

INPUTPATH elements may be files or directories. Input directories will be
recursively searched for *.mustache files.  The body of each {{#NAME}}
section (by default {{#i18n}}) is extracted as a message.

The resulting PO template file is written to STDOUT`)
}

var lambda = flag.String("lambda", i18n.DefaultLambda, "name of the translation section")

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	var e = newExtractor(*lambda)
	for _, src := range flag.Args() {
		err := filepath.Walk(src, e.walkSource)
		if err != nil {
			exit(err)
		}
	}
	e.file.WriteTo(os.Stdout)
}

type extractor struct {
	lambda string
	file   *po.File
	index  map[string]int // msgid => index in file.Messages
}

func newExtractor(lambda string) *extractor {
	return &extractor{lambda, &po.File{}, make(map[string]int)}
}

func (e *extractor) walkSource(path string, info os.FileInfo, err error) error {
	if err != nil {
		return err
	}
	if info.IsDir() || !strings.HasSuffix(path, stache.Extension) {
		return nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	tree, err := parse.Template(path, string(content))
	if err != nil {
		return err
	}
	e.extract(tree)
	return nil
}

// extract adds the messages of the tree.  A message used in several places
// is listed once, with a reference to each.
func (e *extractor) extract(tree *ast.Tree) {
	for _, node := range parsepasses.Messages(tree, e.lambda) {
		var line, _ = tree.LineCol(node.Pos)
		var ref = fmt.Sprintf("%s:%d", tree.Name, line)
		if i, ok := e.index[node.Text]; ok {
			e.file.Messages[i].References = append(e.file.Messages[i].References, ref)
			continue
		}
		e.index[node.Text] = len(e.file.Messages)
		e.file.Messages = append(e.file.Messages, po.Message{
			Comment: po.Comment{
				References: []string{ref},
			},
			Id: node.Text,
		})
	}
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
