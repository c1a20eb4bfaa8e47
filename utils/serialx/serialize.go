// File: serialize.go
// Title: Settings Serialisation
// Description: Writes structs as [TypeName] sections of aligned key/value
//              lines.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package serialx

import (
	"bufio"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/msto63/lu/core/errors"
	"github.com/msto63/lu/utils/reflectx"
	"github.com/msto63/lu/utils/stringx"
)

// Padding is the minimum gap between the longest key and its value
const Padding = 4

type entry struct {
	key       string
	value     string
	commented bool

	// raw lines are emitted unchanged
	raw   string
	isRaw bool
}

// Serialize writes one section per thing. Each thing is a struct or a
// pointer to one. Empty strings and empty arrays are written as commented
// keys so the file still lists them.
func Serialize(w io.Writer, things ...any) error {
	bw := bufio.NewWriter(w)

	for i, thing := range things {
		rv := reflect.ValueOf(thing)
		for rv.Kind() == reflect.Pointer && !rv.IsNil() {
			rv = rv.Elem()
		}
		if rv.Kind() != reflect.Struct {
			return errors.InvalidArgument(errors.ModuleSerialx, "serialize", fmt.Sprintf("%T", thing), "struct or pointer to struct")
		}

		d, err := reflectx.Describe(rv.Type())
		if err != nil {
			return err
		}

		entries, err := collect(rv, "")
		if err != nil {
			return err
		}

		if i > 0 {
			bw.WriteByte('\n')
		}
		fmt.Fprintf(bw, "[%s]\n", d.Name)
		for _, line := range align(entries) {
			bw.WriteString(line)
			bw.WriteByte('\n')
		}
	}

	if err := bw.Flush(); err != nil {
		return errors.OperationFailed(errors.ModuleSerialx, "serialize", err)
	}
	return nil
}

// collect flattens the serialisable fields of rv into entries. Nested
// structs contribute dotted keys.
func collect(rv reflect.Value, prefix string) ([]entry, error) {
	d, err := reflectx.Describe(rv.Type())
	if err != nil {
		return nil, err
	}

	var entries []entry
	for i := range d.Fields {
		f := &d.Fields[i]
		if f.Hidden {
			continue
		}

		key := f.Name
		if prefix != "" {
			key = prefix + "." + f.Name
		}
		fv := rv.FieldByIndex(f.Index)

		switch {
		case f.Kind == reflectx.KindStruct:
			nested, err := collect(fv, key)
			if err != nil {
				return nil, err
			}
			entries = append(entries, nested...)

		case f.Kind == reflectx.KindArray:
			if fv.Len() == 0 {
				entries = append(entries, entry{key: key, commented: true})
				continue
			}
			entries = append(entries, entry{key: key, value: formatArray(fv, f)})

		case f.Kind.IsScalar():
			value := reflectx.FormatValue(fv, f.Separator)
			if f.Kind == reflectx.KindString && value == "" {
				entries = append(entries, entry{key: key, commented: true})
				continue
			}
			if f.Quoted || (f.Kind == reflectx.KindString && needsQuotes(value)) {
				value = quoteValue(value)
			}
			entries = append(entries, entry{key: key, value: value})
		}
	}
	return entries, nil
}

func formatArray(fv reflect.Value, f *reflectx.Field) string {
	if fv.Kind() == reflect.Slice && fv.Type().Elem().Kind() == reflect.Uint8 {
		return reflectx.FormatValue(fv, f.Separator)
	}

	parts := make([]string, fv.Len())
	for i := range parts {
		part := reflectx.EscapeElement(reflectx.FormatValue(fv.Index(i), f.Separator), f.Separator)
		if f.Quoted || part == "" || strings.Contains(part, " ") {
			part = `"` + part + `"`
		}
		parts[i] = part
	}
	return strings.Join(parts, f.Separator)
}

var (
	valueEscaper   = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	valueUnescaper = strings.NewReplacer(`\\`, `\`, `\"`, `"`, `\n`, "\n", `\r`, "\r", `\t`, "\t", `\0`, "\x00")
)

// needsQuotes reports whether a string value would read back differently
// if written bare
func needsQuotes(value string) bool {
	if value != strings.TrimSpace(value) || strings.ContainsAny(value, "\n\r\x00") {
		return true
	}
	return len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"'
}

// quoteValue encloses value in double quotes. Backslashes, quotes and
// control characters inside are escaped.
func quoteValue(value string) string {
	return `"` + stringx.EscapeControlCharacters(valueEscaper.Replace(value)) + `"`
}

// unquoteValue reverses quoteValue. A value that is not exactly one quoted
// string, such as an array of quoted elements, is returned unchanged.
func unquoteValue(value string) string {
	inner := stringx.Unquoted(value)
	if len(inner) == len(value) {
		return value
	}
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '\\':
			i++
		case '"':
			return value
		}
	}
	return valueUnescaper.Replace(inner)
}

// align renders entries with values starting in a common column
func align(entries []entry) []string {
	width := 0
	for _, e := range entries {
		if !e.commented && !e.isRaw {
			width = max(width, len(e.key))
		}
	}
	width += Padding

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.isRaw {
			lines = append(lines, e.raw)
			continue
		}
		if e.commented {
			lines = append(lines, "#"+e.key)
			continue
		}
		if e.value == "" {
			lines = append(lines, e.key)
			continue
		}
		lines = append(lines, e.key+strings.Repeat(" ", width-len(e.key))+e.value)
	}
	return lines
}
