// File: set.go
// Title: Field Access by Name
// Description: Sets and reads struct fields by external name, coercing
//              text and typed values to the declared field type.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package reflectx

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/msto63/lu/core/errors"
	"github.com/msto63/lu/utils/stringx"
)

// SetFieldByName assigns value to the field called name in the struct that
// instance points to. Dotted names reach into nested structs.
//
// Strings are parsed into the field's type; other values are assigned when
// assignable or when they convert without loss within the same kind. The
// result is false for an unknown or read-only field, a non-pointer instance
// or a value that cannot be coerced. A false result never leaves a partial
// write behind.
func SetFieldByName(instance any, name string, value any) bool {
	target, field, ok := resolve(instance, name)
	if !ok || field.ReadOnly {
		return false
	}

	fv := target.FieldByIndex(field.Index)
	if !fv.CanSet() {
		return false
	}

	nv, ok := coerce(value, field.Type, field.Separator)
	if !ok {
		return false
	}

	fv.Set(nv)
	return true
}

// GetFieldByName returns the text form of the named field, as it would be
// written to a settings file
func GetFieldByName(instance any, name string) (string, bool) {
	rv := reflect.ValueOf(instance)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return "", false
	}

	path := name
	for {
		d, err := Describe(rv.Type())
		if err != nil {
			return "", false
		}
		segment, _ := stringx.AdvancePastOrInherit(&path, '.', stringx.ScanRaw)
		f, ok := d.Lookup(segment)
		if !ok {
			return "", false
		}
		fv := rv.FieldByIndex(f.Index)
		if path == "" {
			return FormatValue(fv, f.Separator), true
		}
		if f.Kind != KindStruct {
			return "", false
		}
		rv = fv
	}
}

// ToMap returns the non-hidden fields of instance keyed by external name.
// Nested structs become nested maps and durations become strings.
func ToMap(instance any) (map[string]any, error) {
	rv := reflect.ValueOf(instance)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, errors.InvalidArgument(errors.ModuleReflectx, "to_map", fmt.Sprintf("%T", instance), "struct or pointer to struct")
	}
	return toMap(rv)
}

func toMap(rv reflect.Value) (map[string]any, error) {
	d, err := Describe(rv.Type())
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, len(d.Fields))
	for i := range d.Fields {
		f := &d.Fields[i]
		if f.Hidden {
			continue
		}
		fv := rv.FieldByIndex(f.Index)
		switch {
		case f.Kind == KindStruct:
			nested, err := toMap(fv)
			if err != nil {
				return nil, err
			}
			out[f.Name] = nested
		case f.Type == durationType:
			out[f.Name] = time.Duration(fv.Int()).String()
		default:
			out[f.Name] = fv.Interface()
		}
	}
	return out, nil
}

// resolve walks a dotted name down to the struct holding the final field
func resolve(instance any, name string) (reflect.Value, *Field, bool) {
	rv := reflect.ValueOf(instance)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return reflect.Value{}, nil, false
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, nil, false
	}

	path := name
	for {
		d, err := Describe(rv.Type())
		if err != nil {
			return reflect.Value{}, nil, false
		}
		segment, _ := stringx.AdvancePastOrInherit(&path, '.', stringx.ScanRaw)
		f, ok := d.Lookup(segment)
		if !ok {
			return reflect.Value{}, nil, false
		}
		if path == "" {
			return rv, f, true
		}
		if f.Kind != KindStruct || f.ReadOnly {
			return reflect.Value{}, nil, false
		}
		rv = rv.FieldByIndex(f.Index)
	}
}

// FormatValue renders v as text. Arrays are joined with sep and pointers
// are followed; a nil pointer is empty.
func FormatValue(v reflect.Value, sep string) string {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return ""
		}
		return FormatValue(v.Elem(), sep)
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 && v.Kind() == reflect.Slice {
			return stringx.EncodeBase64(v.Bytes())
		}
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = FormatValue(v.Index(i), sep)
		}
		return strings.Join(parts, sep)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case reflect.Invalid:
		return ""
	}
	if !v.CanInterface() {
		return ""
	}
	return fmt.Sprint(v.Interface())
}

// coerce turns value into a reflect.Value of type t
func coerce(value any, t reflect.Type, sep string) (reflect.Value, bool) {
	if s, ok := value.(string); ok {
		return parseText(s, t, sep)
	}

	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return reflect.Value{}, false
	}
	if v.Type().AssignableTo(t) {
		out := reflect.New(t).Elem()
		out.Set(v)
		return out, true
	}
	return convert(v, t, sep)
}

// convert performs lossless conversions within one kind
func convert(v reflect.Value, t reflect.Type, sep string) (reflect.Value, bool) {
	out := reflect.New(t).Elem()
	from := KindOf(v.Type())

	switch KindOf(t) {
	case KindString:
		if from != KindString {
			return out, false
		}
		out.SetString(v.String())

	case KindBool:
		if from != KindBool {
			return out, false
		}
		out.SetBool(v.Bool())

	case KindInteger:
		if from != KindInteger {
			return out, false
		}
		if isUnsigned(t) {
			var u uint64
			if isUnsigned(v.Type()) {
				u = v.Uint()
			} else {
				if v.Int() < 0 {
					return out, false
				}
				u = uint64(v.Int())
			}
			if out.OverflowUint(u) {
				return out, false
			}
			out.SetUint(u)
		} else {
			var i int64
			if isUnsigned(v.Type()) {
				if v.Uint() > math.MaxInt64 {
					return out, false
				}
				i = int64(v.Uint())
			} else {
				i = v.Int()
			}
			if out.OverflowInt(i) {
				return out, false
			}
			out.SetInt(i)
		}

	case KindFloat:
		if from != KindFloat || out.OverflowFloat(v.Float()) {
			return out, false
		}
		out.SetFloat(v.Float())

	case KindArray:
		if from != KindArray || t.Kind() != reflect.Slice {
			return out, false
		}
		elems := reflect.MakeSlice(t, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			e, ok := coerce(v.Index(i).Interface(), t.Elem(), sep)
			if !ok {
				return out, false
			}
			elems = reflect.Append(elems, e)
		}
		out.Set(elems)

	default:
		if !v.Type().ConvertibleTo(t) || KindOf(v.Type()) != KindOf(t) {
			return out, false
		}
		out.Set(v.Convert(t))
	}

	return out, true
}

func isUnsigned(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

// parseText parses the text form of a value of type t
func parseText(s string, t reflect.Type, sep string) (reflect.Value, bool) {
	out := reflect.New(t).Elem()

	if t == durationType {
		d, err := time.ParseDuration(strings.TrimSpace(s))
		if err != nil {
			return out, false
		}
		out.SetInt(int64(d))
		return out, true
	}

	switch t.Kind() {
	case reflect.String:
		out.SetString(s)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(strings.TrimSpace(s), 10, t.Bits())
		if err != nil {
			return out, false
		}
		out.SetInt(i)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(strings.TrimSpace(s), 10, t.Bits())
		if err != nil {
			return out, false
		}
		out.SetUint(u)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), t.Bits())
		if err != nil {
			return out, false
		}
		out.SetFloat(f)

	case reflect.Bool:
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "1":
			out.SetBool(true)
		case "false", "0":
			out.SetBool(false)
		default:
			return out, false
		}

	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			data, err := stringx.DecodeBase64(strings.TrimSpace(s))
			if err != nil {
				return out, false
			}
			out.SetBytes(data)
			return out, true
		}
		parts := splitArray(s, sep)
		elems := reflect.MakeSlice(t, 0, len(parts))
		for _, p := range parts {
			e, ok := parseText(p, t.Elem(), sep)
			if !ok {
				return out, false
			}
			elems = reflect.Append(elems, e)
		}
		out.Set(elems)

	case reflect.Array:
		parts := splitArray(s, sep)
		if len(parts) > t.Len() {
			return out, false
		}
		for i, p := range parts {
			e, ok := parseText(p, t.Elem(), sep)
			if !ok {
				return out, false
			}
			out.Index(i).Set(e)
		}

	default:
		return out, false
	}

	return out, true
}

// EscapeElement escapes one array element so that splitArray reads it back
// unchanged: backslashes, sep, double quotes and control characters get a
// backslash escape.
func EscapeElement(element, sep string) string {
	return strings.NewReplacer(
		`\`, `\\`,
		sep, `\`+sep,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
		"\x00", `\0`,
	).Replace(element)
}

func elementUnescaper(sep string) *strings.Replacer {
	return strings.NewReplacer(
		`\\`, `\`,
		`\`+sep, sep,
		`\"`, `"`,
		`\n`, "\n",
		`\r`, "\r",
		`\t`, "\t",
		`\0`, "\x00",
	)
}

// splitArray splits the text form of an array at every sep not escaped
// with a backslash. Elements are trimmed, unquoted and unescaped; blank
// text is an empty array.
func splitArray(s, sep string) []string {
	if stringx.IsBlank(s) {
		return nil
	}

	unescape := elementUnescaper(sep)
	element := func(raw string) string {
		return unescape.Replace(stringx.Unquoted(stringx.Trim(raw)))
	}

	var parts []string
	start := 0
	for i := 0; i < len(s); {
		switch {
		case s[i] == '\\' && i+1 < len(s):
			if strings.HasPrefix(s[i+1:], sep) {
				i += 1 + len(sep)
			} else {
				i += 2
			}
		case strings.HasPrefix(s[i:], sep):
			parts = append(parts, element(s[start:i]))
			i += len(sep)
			start = i
		default:
			i++
		}
	}
	if start < len(s) {
		parts = append(parts, element(s[start:]))
	}
	return parts
}
