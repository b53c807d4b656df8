package stache

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/stache/parse"
	"github.com/robfig/stache/parsepasses"
	"github.com/robfig/stache/stachehtml"
	"github.com/robfig/stache/template"
)

// Logger is used to print notifications and compile errors when using the
// "WatchFiles" feature.
var Logger = log.New(os.Stderr, "[stache] ", 0)

// Extension is the file extension of templates loaded by AddTemplateDir.
const Extension = ".mustache"

type templateFile struct {
	name     string // template name, used for partials
	filename string // source file, if any
	content  string
}

// Bundle is a collection of mustache templates.  It acts as input for the
// compiler.
type Bundle struct {
	files                 []templateFile
	strict                bool
	err                   error
	watcher               *fsnotify.Watcher
	recompilationCallback func(*template.Registry)
}

// NewBundle returns an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{}
}

// WatchFiles tells stache to watch any template files added to this bundle,
// re-compile as necessary, and propagate the updates to your tofu.  It should
// be called once, before adding any files.
func (b *Bundle) WatchFiles(watch bool) *Bundle {
	if watch && b.err == nil && b.watcher == nil {
		b.watcher, b.err = fsnotify.NewWatcher()
	}
	return b
}

// RequirePartials makes Compile fail if any template includes a partial that
// is not in the bundle, and makes the compiled Tofu report missing partials as
// errors.
func (b *Bundle) RequirePartials(require bool) *Bundle {
	b.strict = require
	return b
}

// AddTemplateDir adds all *.mustache files found within the given directory
// (including sub-directories) to the bundle.  Each is named by its slash
// separated path relative to root, without the extension.
func (b *Bundle) AddTemplateDir(root string) *Bundle {
	var err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, Extension) {
			return nil
		}
		var rel, _ = filepath.Rel(root, path)
		b.addFile(filepath.ToSlash(strings.TrimSuffix(rel, Extension)), path)
		return nil
	})
	if err != nil {
		b.err = err
	}
	return b
}

// AddTemplateFile adds the given template file to this bundle, named by its
// base name without the extension.  If WatchFiles is on, it will be
// subsequently watched for updates.
func (b *Bundle) AddTemplateFile(filename string) *Bundle {
	var base = filepath.Base(filename)
	return b.addFile(strings.TrimSuffix(base, filepath.Ext(base)), filename)
}

func (b *Bundle) addFile(name, filename string) *Bundle {
	content, err := os.ReadFile(filename)
	if err != nil && b.err == nil {
		b.err = err
	}
	if b.err == nil && b.watcher != nil {
		b.err = b.watcher.Add(filename)
	}
	b.files = append(b.files, templateFile{name, filename, string(content)})
	return b
}

// AddTemplateString adds the given template text to the bundle under the
// given name.
func (b *Bundle) AddTemplateString(name, text string) *Bundle {
	b.files = append(b.files, templateFile{name, "", text})
	return b
}

// SetRecompilationCallback assigns the bundle a function to call after
// recompilation.  This is called before updating the in-use registry.
func (b *Bundle) SetRecompilationCallback(c func(*template.Registry)) *Bundle {
	b.recompilationCallback = c
	return b
}

// Compile parses all of the templates in this bundle and returns the completed
// template registry.
func (b *Bundle) Compile() (*template.Registry, error) {
	if b.err != nil {
		return nil, b.err
	}

	var registry = template.Registry{}
	for _, file := range b.files {
		var tree, err = parse.Template(file.name, file.content)
		if err != nil {
			return nil, err
		}
		if err = registry.Add(tree); err != nil {
			return nil, err
		}
	}

	if b.strict {
		if err := parsepasses.CheckPartials(&registry); err != nil {
			return nil, err
		}
	}

	if b.watcher != nil {
		go b.recompiler(&registry)
	}
	return &registry, nil
}

// CompileToTofu returns a stachehtml.Tofu object that allows you to render
// templates to HTML.
func (b *Bundle) CompileToTofu() (*stachehtml.Tofu, error) {
	var registry, err = b.Compile()
	if err != nil {
		return nil, err
	}
	return stachehtml.NewTofu(registry).RequirePartials(b.strict), nil
}

// reload returns a new bundle with the same templates, re-read from disk.
func (b *Bundle) reload() *Bundle {
	var bundle = NewBundle().RequirePartials(b.strict)
	for _, file := range b.files {
		if file.filename == "" {
			bundle.AddTemplateString(file.name, file.content)
		} else {
			bundle.addFile(file.name, file.filename)
		}
	}
	return bundle
}

func (b *Bundle) recompiler(reg *template.Registry) {
	for {
		select {
		case ev, ok := <-b.watcher.Events:
			if !ok {
				return
			}
			// If it's a rename, then fsnotify has removed the watch.
			// Add it back, after a delay.
			if ev.Op&(fsnotify.Rename|fsnotify.Remove) != 0 {
				time.Sleep(10 * time.Millisecond)
				if err := b.watcher.Add(ev.Name); err != nil {
					Logger.Println(err)
				}
			}

			var registry, err = b.reload().Compile()
			if err != nil {
				Logger.Println(err)
				continue
			}

			if b.recompilationCallback != nil {
				b.recompilationCallback(registry)
			}

			// update the existing template registry.
			// (this is not goroutine-safe, but that seems ok for a development aid,
			// as long as it works in practice)
			*reg = *registry
			Logger.Printf("update successful (%v)", ev)

		case err, ok := <-b.watcher.Errors:
			if !ok {
				return
			}
			Logger.Println(err)
		}
	}
}
