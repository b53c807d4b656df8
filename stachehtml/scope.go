package stachehtml

import "github.com/robfig/stache/data"

// scope is the context stack.  The root data is at the bottom and the value
// of the innermost section being rendered is at the top.
type scope []data.Value

func newScope(root data.Value) scope {
	if root == nil {
		root = data.Undefined{}
	}
	return scope{root}
}

// push enters a section with the given value.  A nil value is pushed as
// Undefined.
func (s *scope) push(v data.Value) {
	if v == nil {
		v = data.Undefined{}
	}
	*s = append(*s, v)
}

// pop discards the last value pushed.
func (s *scope) pop() {
	*s = (*s)[:len(*s)-1]
}

// top returns the innermost value.
func (s scope) top() data.Value {
	return s[len(s)-1]
}

// lookup resolves a dotted name, already split into path.  A nil path is the
// implicit iterator and resolves to the top of the stack.
//
// The first name is looked up in each frame, innermost first; only maps
// contain names.  The remaining names are then looked up within the value
// found, and a break in that chain is a miss: lookup does not fall back to
// outer frames once the first name has been found.
func (s scope) lookup(path []string) (data.Value, bool) {
	if path == nil {
		return s.top(), true
	}
	var val data.Value
	for i := len(s) - 1; i >= 0; i-- {
		if m, ok := s[i].(data.Map); ok {
			if v, ok := m.Lookup(path[0]); ok {
				val = v
				break
			}
		}
	}
	if val == nil {
		return data.Undefined{}, false
	}
	for _, name := range path[1:] {
		var m, ok = val.(data.Map)
		if !ok {
			return data.Undefined{}, false
		}
		if val, ok = m.Lookup(name); !ok {
			return data.Undefined{}, false
		}
	}
	return val, true
}
