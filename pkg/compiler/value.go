/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package compiler

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// Stringify converts a bound value into the text written in place of its
// expression. Strings are written verbatim, nil as "null" and slices as
// their elements joined by commas.
func Stringify(v interface{}) string {
	if v == nil {
		return "null"
	}

	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return "null"
		}
	case reflect.Slice, reflect.Array:
		items := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items[i] = Stringify(rv.Index(i).Interface())
		}
		return strings.Join(items, ",")
	}

	if s, err := cast.ToStringE(v); err == nil {
		return s
	}

	return fmt.Sprint(v)
}

// lookupField selects a named field from a map with string keys or from an
// exported struct field. Pointers are followed.
func lookupField(v interface{}, name string) (interface{}, bool) {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		item := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !item.IsValid() {
			return nil, false
		}
		return item.Interface(), true

	case reflect.Struct:
		field, ok := rv.Type().FieldByName(name)
		if !ok || !field.IsExported() {
			return nil, false
		}
		// Promoted fields of a nil embedded pointer are unbound.
		item, err := rv.FieldByIndexErr(field.Index)
		if err != nil || !item.CanInterface() {
			return nil, false
		}
		return item.Interface(), true
	}

	return nil, false
}
