/*
stacherender renders a template with data from a YAML or JSON file.

Usage:

	stacherender [flags] TEMPLATE
	stacherender --data page.yml --js lambdas.js --lambdas bold,upper page.mustache

The rendered output is written to STDOUT.  Partials are loaded from the
directory given by -partials, or from the template's own directory.

Lambdas may be written in JavaScript: -js names a file of function
definitions, and each name in -lambdas is bound as a lambda.  With -po and
-locale, the "i18n" section translates its body.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/robfig/stache"
	"github.com/robfig/stache/data"
	"github.com/robfig/stache/i18n"
	"github.com/robfig/stache/jslambda"
	"github.com/spf13/cobra"
)

type options struct {
	template string
	data     string
	partials string
	strict   bool
	sanitize bool
	js       string
	lambdas  []string
	po       string
	locale   string
}

func newCommand() *cobra.Command {
	var opts options
	var cmd = &cobra.Command{
		Use:   "stacherender [flags] TEMPLATE",
		Short: "Render a mustache template with data from a YAML or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.template = args[0]
			return run(cmd.OutOrStdout(), opts)
		},
		SilenceUsage: true,
	}
	var flags = cmd.Flags()
	flags.StringVarP(&opts.data, "data", "d", "", "YAML or JSON data file (default: empty)")
	flags.StringVar(&opts.partials, "partials", "", "directory of *.mustache partials (default: the template's directory)")
	flags.BoolVar(&opts.strict, "strict", false, "fail on missing partials")
	flags.BoolVar(&opts.sanitize, "sanitize", false, "sanitize unescaped output with a user-generated-content policy")
	flags.StringVar(&opts.js, "js", "", "JavaScript file of lambda definitions")
	flags.StringSliceVar(&opts.lambdas, "lambdas", nil, "names of JavaScript lambdas to bind")
	flags.StringVar(&opts.po, "po", "", "directory of <locale>.po translation catalogs")
	flags.StringVar(&opts.locale, "locale", "", "locale for the i18n section")
	return cmd
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(w io.Writer, opts options) error {
	var dir = opts.partials
	if dir == "" {
		dir = filepath.Dir(opts.template)
	}
	var name = strings.TrimSuffix(filepath.Base(opts.template), filepath.Ext(opts.template))
	var bundle = stache.NewBundle().RequirePartials(opts.strict)
	bundle.AddTemplateDir(dir)
	if !sameFile(filepath.Join(dir, name+stache.Extension), opts.template) {
		bundle.AddTemplateFile(opts.template)
	}
	tofu, err := bundle.CompileToTofu()
	if err != nil {
		return err
	}
	if opts.sanitize {
		tofu.Sanitize(bluemonday.UGCPolicy())
	}

	root, err := loadData(opts)
	if err != nil {
		return err
	}
	return tofu.NewRenderer(name).Execute(w, root)
}

func sameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	return err == nil && os.SameFile(ai, bi)
}

func loadData(opts options) (data.Value, error) {
	var root data.Value = data.Map{}
	if opts.data != "" {
		f, err := os.Open(opts.data)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if root, err = data.FromYAML(f); err != nil {
			return nil, err
		}
	}

	var extra = make(data.Map)
	if opts.js != "" {
		src, err := os.ReadFile(opts.js)
		if err != nil {
			return nil, err
		}
		var vm = jslambda.New()
		if err = vm.Run(string(src)); err != nil {
			return nil, fmt.Errorf("%s: %w", opts.js, err)
		}
		fns, err := vm.Lambdas(opts.lambdas...)
		if err != nil {
			return nil, err
		}
		for k, v := range fns {
			extra[k] = v
		}
	}
	if opts.po != "" {
		prov, err := i18n.Dir(opts.po)
		if err != nil {
			return nil, err
		}
		extra[i18n.DefaultLambda] = prov.Catalog(opts.locale).Lambda()
	}
	if len(extra) == 0 {
		return root, nil
	}

	m, ok := root.(data.Map)
	if !ok {
		return nil, errors.New("lambdas require the data to be a map")
	}
	for k, v := range extra {
		m[k] = v
	}
	return m, nil
}
