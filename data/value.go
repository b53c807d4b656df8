// Package data defines the values a template is rendered against.
package data

import (
	"sort"
	"strconv"
	"strings"
)

// Value represents a template data value, which may be one of the enumerated
// types.  The zero value represents an Undefined value.
type Value interface {
	// Truthy returns true unless the value is false, undefined, or an empty
	// list.  Sections render only for truthy values.
	Truthy() bool

	// String formats this value for interpolation in a template.
	String() string
}

// Value types
type (
	// Undefined is the result of a failed lookup.  Nulls in converted data
	// are also represented as Undefined, since the two render identically.
	Undefined struct{}
	Bool      bool
	String    string
	List      []Value
	Map       map[string]Value

	// Lambda is a callable value.  In a section it receives the raw inner
	// text of the section; as a variable it receives "".  The returned text
	// is rendered as a template before it is written.
	Lambda func(text string) string
)

// Index retrieves a value from this list, or Undefined if out of bounds.
func (v List) Index(i int) Value {
	if !(0 <= i && i < len(v)) {
		return Undefined{}
	}
	return v[i]
}

// Key retrieves a value under the named key, or Undefined if it doesn't exist.
func (v Map) Key(k string) Value {
	var result, ok = v[k]
	if !ok {
		return Undefined{}
	}
	return result
}

// Lookup retrieves a value under the named key and reports whether the key
// is present.  A present key may still hold Undefined.
func (v Map) Lookup(k string) (Value, bool) {
	var result, ok = v[k]
	if ok && result == nil {
		result = Undefined{}
	}
	return result, ok
}

// Truthy ----------

func (v Undefined) Truthy() bool { return false }
func (v Bool) Truthy() bool      { return bool(v) }
func (v String) Truthy() bool    { return true }
func (v List) Truthy() bool      { return len(v) > 0 }
func (v Map) Truthy() bool       { return true }
func (v Lambda) Truthy() bool    { return v != nil }

// String ----------

func (v Undefined) String() string { return "" }
func (v Bool) String() string      { return strconv.FormatBool(bool(v)) }
func (v String) String() string    { return string(v) }
func (v Lambda) String() string    { return "" }

func (v List) String() string {
	var items = make([]string, len(v))
	for i, item := range v {
		items[i] = item.String()
	}
	return strings.Join(items, ",")
}

func (v Map) String() string {
	var keys = make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var items = make([]string, len(keys))
	for i, k := range keys {
		items[i] = k + ": " + v[k].String()
	}
	return "{" + strings.Join(items, ", ") + "}"
}

// IsUndefined reports whether v is nil or Undefined.
func IsUndefined(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Undefined)
	return ok
}
