// File: delta.go
// Title: Struct Deltas
// Description: Computes the ordered list of fields that differ between two
//              values of one struct type and renders it as Go statements.
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
	"reflect"
	"strconv"
	"strings"

	"github.com/msto63/lu/core/errors"
)

// DeltaEntry is one changed field. Old and New are text forms.
type DeltaEntry struct {
	Path string
	Old  string
	New  string
	Kind Kind
}

// ComputeDelta lists the fields whose text form differs between before and
// after, in declaration order. Nested structs are walked and their fields
// reported as parent.field. An optional pathPrefix is put in front of every
// path. Both arguments must be of the same struct type, or pointers to it.
func ComputeDelta(before, after any, pathPrefix ...string) ([]DeltaEntry, error) {
	bv, ok := structValue(before)
	if !ok {
		return nil, errors.InvalidArgument(errors.ModuleReflectx, "compute_delta", fmt.Sprintf("%T", before), "struct or pointer to struct")
	}
	av, ok := structValue(after)
	if !ok {
		return nil, errors.InvalidArgument(errors.ModuleReflectx, "compute_delta", fmt.Sprintf("%T", after), "struct or pointer to struct")
	}
	if bv.Type() != av.Type() {
		return nil, errors.InvalidArgument(errors.ModuleReflectx, "compute_delta",
			fmt.Sprintf("%s vs %s", bv.Type(), av.Type()), "values of the same type")
	}

	prefix := strings.Join(pathPrefix, ".")

	var entries []DeltaEntry
	if err := delta(bv, av, prefix, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func delta(bv, av reflect.Value, prefix string, entries *[]DeltaEntry) error {
	d, err := Describe(bv.Type())
	if err != nil {
		return err
	}

	for i := range d.Fields {
		f := &d.Fields[i]
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}

		bf := bv.FieldByIndex(f.Index)
		af := av.FieldByIndex(f.Index)

		if f.Kind == KindStruct {
			if err := delta(bf, af, path, entries); err != nil {
				return err
			}
			continue
		}

		oldText := FormatValue(bf, f.Separator)
		newText := FormatValue(af, f.Separator)
		if oldText != newText {
			*entries = append(*entries, DeltaEntry{Path: path, Old: oldText, New: newText, Kind: f.Kind})
		}
	}
	return nil
}

func structValue(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, rv.Kind() == reflect.Struct
}

// DeltaStyle selects the statement form produced by FormatDelta
type DeltaStyle int

const (
	// DeltaAssignments renders "target.path = value"
	DeltaAssignments DeltaStyle = iota

	// DeltaAsserts renders "assert.Equal(t, value, target.path)"
	DeltaAsserts
)

// FormatDelta renders entries as one Go statement per line. target names
// the variable the paths hang off; it may be empty.
func FormatDelta(entries []DeltaEntry, style DeltaStyle, target string) string {
	var b strings.Builder
	for _, e := range entries {
		path := e.Path
		if target != "" {
			path = target + "." + e.Path
		}

		value := e.New
		if !e.Kind.IsScalar() || e.Kind == KindString {
			value = strconv.Quote(e.New)
		}

		if style == DeltaAsserts {
			fmt.Fprintf(&b, "assert.Equal(t, %s, %s)\n", value, path)
		} else {
			fmt.Fprintf(&b, "%s = %s\n", path, value)
		}
	}
	return b.String()
}
