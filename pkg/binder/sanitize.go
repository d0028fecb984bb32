package binder

import (
	"reflect"

	"github.com/nudostudio/nudo/pkg/sanitizer"
)

// sanitizeStruct walks v and runs every reachable string through
// sanitizer.Sanitize. Struct fields tagged `sanitize:"-"` are left as decoded.
func sanitizeStruct(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return
	}
	sanitizeValue(rv.Elem())
}

func sanitizeValue(rv reflect.Value) {
	switch rv.Kind() {
	case reflect.String:
		if rv.CanSet() {
			rv.SetString(sanitizer.Sanitize(rv.String()))
		}

	case reflect.Struct:
		rt := rv.Type()
		for i := range rv.NumField() {
			if rt.Field(i).Tag.Get("sanitize") == "-" {
				continue
			}
			if field := rv.Field(i); field.CanSet() {
				sanitizeValue(field)
			}
		}

	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			sanitizeValue(rv.Index(i))
		}

	case reflect.Map:
		if rv.IsNil() {
			return
		}
		// Map entries are not addressable: sanitize a copy and store it back.
		iter := rv.MapRange()
		for iter.Next() {
			value := reflect.New(iter.Value().Type()).Elem()
			value.Set(iter.Value())
			sanitizeValue(value)
			rv.SetMapIndex(iter.Key(), value)
		}

	case reflect.Ptr:
		if !rv.IsNil() {
			sanitizeValue(rv.Elem())
		}

	case reflect.Interface:
		if rv.IsNil() || !rv.CanSet() {
			return
		}
		elem := reflect.New(rv.Elem().Type()).Elem()
		elem.Set(rv.Elem())
		sanitizeValue(elem)
		rv.Set(elem)
	}
}
