/*
Package stache is an implementation of mustache, the logic-less template
language.

See the mustache manual for syntax:

https://mustache.github.io/mustache.5.html

Supported tags: variables ({{name}}, {{a.b.c}}, {{.}}), unescaped variables
({{{name}}} and {{&name}}), sections ({{#name}}), inverted sections
({{^name}}), comments ({{! text }}), partials ({{>name}}) and delimiter
changes ({{=<% %>=}}).  Lambdas are Go functions of type func(string) string.

# Usage example

Typically in a web application you have a directory containing views for all of
your pages.  For example:

	app/views/
	app/views/account/overview.mustache
	app/views/partials/header.mustache
	...

This code snippet will parse all templates within app/views, and provide back a
Tofu instance that can be used to render any of them.  Each template is named
by its path relative to the directory, without the extension, and may include
any other as a partial: {{>partials/header}}.  (Error checking is skipped.)

On startup:

	tofu, _ := stache.NewBundle().
	    WatchFiles(mode == "dev").  // watch template files, reload on changes (in dev)
	    RequirePartials(true).      // every {{>partial}} must exist
	    AddTemplateDir("views").    // load *.mustache in all sub-directories
	    CompileToTofu()

To render a page:

	var obj = data.Map{
	  "user":    data.New(user),
	  "account": data.New(account),
	}
	tofu.NewRenderer("account/overview").Execute(resp, obj)

Any Go value may be converted with data.New, which is also what Tofu.Render
does with its argument:

	tofu.Render(resp, "account/overview", obj)

For a single template, Render and RenderString parse and render in one step.

Missing data is never an error: a missing variable renders as nothing and a
missing section is skipped.  Missing partials also render as nothing unless
partials are required.

# Advanced Usage

The stache package provides a friendly interface to its sub-packages.  Advanced
usages like template analysis will be better served by using e.g. stache/parse
and stache/parsepasses directly.
*/
package stache
