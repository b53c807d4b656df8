package data

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
	"unicode"
	"unicode/utf8"
)

var timeType = reflect.TypeOf(time.Time{})

// Marshaler is implemented by types that convert themselves into a Value.
type Marshaler interface {
	MarshalValue() Value
}

// New converts the given data into a template data value, using
// DefaultStructOptions for structs.
func New(value interface{}) Value {
	return NewWith(DefaultStructOptions, value)
}

// NewWith converts the given data value to a template data value, using the
// provided StructOptions for any structs encountered.
//
// Numbers become Strings holding their decimal representation, nil becomes
// Undefined, and functions of type func(string) string become Lambdas.
func NewWith(convert StructOptions, value interface{}) Value {
	// quick return if we're passed an existing data.Value
	switch val := value.(type) {
	case Value:
		return val
	case Marshaler:
		return val.MarshalValue()
	case func(string) string:
		return Lambda(val)
	case nil:
		return Undefined{}
	}

	// drill through pointers and interfaces to the underlying type
	var v = reflect.ValueOf(value)
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return Undefined{}
		}
		v = v.Elem()
		if v.CanInterface() {
			if m, ok := v.Interface().(Marshaler); ok {
				return m.MarshalValue()
			}
		}
	}
	if !v.IsValid() {
		return Undefined{}
	}

	if v.Type() == timeType {
		var format = convert.TimeFormat
		if format == "" {
			format = time.RFC3339
		}
		return String(v.Interface().(time.Time).Format(format))
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return String(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return String(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32:
		return String(strconv.FormatFloat(v.Float(), 'g', -1, 32))
	case reflect.Float64:
		return String(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case reflect.Bool:
		return Bool(v.Bool())
	case reflect.String:
		return String(v.String())
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return Undefined{}
		}
		slice := List{}
		for i := 0; i < v.Len(); i++ {
			slice = append(slice, NewWith(convert, v.Index(i).Interface()))
		}
		return slice
	case reflect.Map:
		var m = make(Map, v.Len())
		for _, key := range v.MapKeys() {
			var k string
			if key.Kind() == reflect.String {
				k = key.String()
			} else {
				k = fmt.Sprint(key.Interface())
			}
			m[k] = NewWith(convert, v.MapIndex(key).Interface())
		}
		return m
	case reflect.Struct:
		return convert.Data(v.Interface())
	default:
		panic(fmt.Errorf("unexpected data type: %T (%v)", value, value))
	}
}

var DefaultStructOptions = StructOptions{
	LowerCamel: false,
	TimeFormat: time.RFC3339,
}

// StructOptions provides flexibility in conversion of structs to the
// data.Map format.
type StructOptions struct {
	LowerCamel bool   // if true, convert field names to lowerCamel.
	TimeFormat string // format string for time.Time. (if empty, use ISO-8601)
}

// Data converts the exported fields of the given struct.  A `stache:"name"`
// field tag overrides the key; `stache:"-"` skips the field.
func (c StructOptions) Data(obj interface{}) Map {
	var m = make(Map)
	var v = reflect.ValueOf(obj)
	var valType = v.Type()
	for i := 0; i < valType.NumField(); i++ {
		if !v.Field(i).CanInterface() {
			continue
		}
		var field = valType.Field(i)
		var key = field.Name
		switch tag := field.Tag.Get("stache"); {
		case tag == "-":
			continue
		case tag != "":
			key = tag
		case c.LowerCamel:
			var firstRune, size = utf8.DecodeRuneInString(key)
			key = string(unicode.ToLower(firstRune)) + key[size:]
		}
		m[key] = NewWith(c, v.Field(i).Interface())
	}
	return m
}
