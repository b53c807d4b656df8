// Package jslambda provides lambdas written in JavaScript.
//
// A lambda is a JavaScript function of one string argument, the raw text of
// the section it decorates (or "" for a variable).  Its result, converted to
// a string, is rendered in place of the tag:
//
//	var vm = jslambda.New()
//	vm.Run(`function bold(text) { return "<b>" + text + "</b>"; }`)
//	bold, _ := vm.Lambda("bold")
//	data.Map{"bold": bold, "name": data.String("Rob")}
//
// An exception thrown by the function fails the render.
package jslambda

import (
	"fmt"
	"sync"

	"github.com/robertkrimen/otto"
	"github.com/robfig/stache/data"
)

// VM is a JavaScript interpreter holding lambda definitions.  The
// interpreter is not safe for concurrent use, so calls into it are
// serialized; lambdas from one VM may still be used by concurrent renders.
type VM struct {
	mu sync.Mutex
	js *otto.Otto
}

// New returns a VM with an empty global scope.
func New() *VM {
	return &VM{js: otto.New()}
}

// Run evaluates the given source, typically function definitions.
func (vm *VM) Run(src string) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	_, err := vm.js.Run(src)
	return err
}

// Set binds a Go value to a global name, for use by lambdas.
func (vm *VM) Set(name string, value interface{}) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.js.Set(name, value)
}

// Lambda returns the global function of the given name as a lambda.
func (vm *VM) Lambda(name string) (data.Lambda, error) {
	vm.mu.Lock()
	fn, err := vm.js.Get(name)
	vm.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if !fn.IsFunction() {
		return nil, fmt.Errorf("jslambda: %s is not a function", name)
	}
	return vm.lambda(name, fn), nil
}

// Compile evaluates a function expression and returns it as a lambda.
func (vm *VM) Compile(src string) (data.Lambda, error) {
	vm.mu.Lock()
	fn, err := vm.js.Run("(" + src + ")")
	vm.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if !fn.IsFunction() {
		return nil, fmt.Errorf("jslambda: %q is not a function", src)
	}
	return vm.lambda("<anonymous>", fn), nil
}

// Lambdas returns a map of each of the named global functions, ready to be
// merged into template data.
func (vm *VM) Lambdas(names ...string) (data.Map, error) {
	var m = make(data.Map, len(names))
	for _, name := range names {
		fn, err := vm.Lambda(name)
		if err != nil {
			return nil, err
		}
		m[name] = fn
	}
	return m, nil
}

func (vm *VM) lambda(name string, fn otto.Value) data.Lambda {
	return func(text string) string {
		vm.mu.Lock()
		defer vm.mu.Unlock()
		result, err := fn.Call(otto.UndefinedValue(), text)
		if err != nil {
			panic(fmt.Errorf("jslambda: %s: %w", name, err))
		}
		if result.IsUndefined() || result.IsNull() {
			return ""
		}
		str, err := result.ToString()
		if err != nil {
			panic(fmt.Errorf("jslambda: %s: %w", name, err))
		}
		return str
	}
}
