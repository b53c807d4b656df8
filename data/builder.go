package data

// MapBuilder assembles a Map with chained calls:
//
//	data.NewMap().
//	    Set("name", "Joe").
//	    Set("items", data.NewList().Push("a").Push("b")).
//	    Build()
//
// Values are converted with New, so builders, Go values and Values may be
// mixed freely.  Setting a key twice keeps the last value.
type MapBuilder struct {
	m Map
}

// NewMap returns an empty MapBuilder.
func NewMap() *MapBuilder {
	return &MapBuilder{make(Map)}
}

// Set binds key to value, replacing any earlier binding.
func (b *MapBuilder) Set(key string, value interface{}) *MapBuilder {
	b.m[key] = build(value)
	return b
}

// SetLambda binds key to a Lambda.
func (b *MapBuilder) SetLambda(key string, fn func(text string) string) *MapBuilder {
	b.m[key] = Lambda(fn)
	return b
}

// Build returns the assembled Map.  The builder may be reused afterwards
// without affecting the returned value.
func (b *MapBuilder) Build() Map {
	var m = make(Map, len(b.m))
	for k, v := range b.m {
		m[k] = v
	}
	return m
}

// MarshalValue allows a MapBuilder to be used wherever a Go value is
// converted with New.
func (b *MapBuilder) MarshalValue() Value {
	return b.Build()
}

// ListBuilder assembles a List with chained calls.
type ListBuilder struct {
	l List
}

// NewList returns an empty ListBuilder.
func NewList() *ListBuilder {
	return &ListBuilder{List{}}
}

// Push appends value to the list.
func (b *ListBuilder) Push(value interface{}) *ListBuilder {
	b.l = append(b.l, build(value))
	return b
}

// Build returns the assembled List.
func (b *ListBuilder) Build() List {
	return append(List{}, b.l...)
}

func (b *ListBuilder) MarshalValue() Value {
	return b.Build()
}

func build(value interface{}) Value {
	switch v := value.(type) {
	case *MapBuilder:
		return v.Build()
	case *ListBuilder:
		return v.Build()
	}
	return New(value)
}
