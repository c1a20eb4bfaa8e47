// File: meld.go
// Title: Struct Melding
// Description: Merges the fields of one struct value into another of the
//              same type under a fill or overwrite policy.
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

	"github.com/msto63/lu/core/errors"
)

// MeldPolicy decides which side wins when both have a value
type MeldPolicy int

const (
	// FillOnlyIfTargetIsDefault copies a source value only into target
	// fields that still hold their default
	FillOnlyIfTargetIsDefault MeldPolicy = iota

	// OverwriteSourceWins copies every source value that is not a default
	OverwriteSourceWins
)

// String returns the name of the policy
func (p MeldPolicy) String() string {
	if p == OverwriteSourceWins {
		return "overwrite"
	}
	return "fill"
}

// Meld merges source into target. source is a struct or a pointer to one;
// target must be a non-nil pointer to the same struct type.
//
// Scalars follow the policy. Slices become the target's elements followed by
// those source elements the result does not already contain. Maps get every
// missing key; on a shared key the policy picks the value as for scalars.
// Nested structs are melded field by field and read-only fields are left
// alone.
func Meld(source, target any, policy MeldPolicy) error {
	sv, ok := structValue(source)
	if !ok {
		return errors.InvalidArgument(errors.ModuleReflectx, "meld", fmt.Sprintf("%T", source), "struct or pointer to struct")
	}

	tv := reflect.ValueOf(target)
	if tv.Kind() != reflect.Pointer || tv.IsNil() || tv.Elem().Kind() != reflect.Struct {
		return errors.InvalidArgument(errors.ModuleReflectx, "meld", fmt.Sprintf("%T", target), "non-nil pointer to struct")
	}
	tv = tv.Elem()

	if sv.Type() != tv.Type() {
		return errors.InvalidArgument(errors.ModuleReflectx, "meld",
			fmt.Sprintf("%s into %s", sv.Type(), tv.Type()), "values of the same type")
	}

	return meldStruct(sv, tv, policy)
}

func meldStruct(sv, tv reflect.Value, policy MeldPolicy) error {
	d, err := Describe(tv.Type())
	if err != nil {
		return err
	}

	for i := range d.Fields {
		f := &d.Fields[i]
		if f.ReadOnly {
			continue
		}

		sf := sv.FieldByIndex(f.Index)
		tf := tv.FieldByIndex(f.Index)
		if !tf.CanSet() {
			continue
		}

		switch {
		case f.Kind == KindStruct:
			if err := meldStruct(sf, tf, policy); err != nil {
				return err
			}
		case f.Type.Kind() == reflect.Slice:
			meldSlice(sf, tf)
		case f.Type.Kind() == reflect.Map:
			meldMap(sf, tf, policy)
		default:
			if takeSource(f, sf, tf, policy) {
				tf.Set(sf)
			}
		}
	}
	return nil
}

func takeSource(f *Field, sf, tf reflect.Value, policy MeldPolicy) bool {
	if policy == OverwriteSourceWins {
		return !f.IsDefault(sf)
	}
	return f.IsDefault(tf) && !f.IsDefault(sf)
}

func meldSlice(sf, tf reflect.Value) {
	if sf.Len() == 0 {
		return
	}

	result := tf
	changed := false
	for i := 0; i < sf.Len(); i++ {
		elem := sf.Index(i)
		if containsValue(result, elem) {
			continue
		}
		if !changed {
			result = reflect.MakeSlice(tf.Type(), tf.Len(), tf.Len()+sf.Len())
			reflect.Copy(result, tf)
			changed = true
		}
		result = reflect.Append(result, elem)
	}

	if changed {
		tf.Set(result)
	}
}

func containsValue(slice, elem reflect.Value) bool {
	for i := 0; i < slice.Len(); i++ {
		if reflect.DeepEqual(slice.Index(i).Interface(), elem.Interface()) {
			return true
		}
	}
	return false
}

func meldMap(sf, tf reflect.Value, policy MeldPolicy) {
	if sf.Len() == 0 {
		return
	}
	if tf.IsNil() {
		tf.Set(reflect.MakeMapWithSize(tf.Type(), sf.Len()))
	}

	iter := sf.MapRange()
	for iter.Next() {
		key, value := iter.Key(), iter.Value()
		existing := tf.MapIndex(key)

		switch {
		case !existing.IsValid():
			tf.SetMapIndex(key, value)
		case policy == OverwriteSourceWins:
			if !value.IsZero() {
				tf.SetMapIndex(key, value)
			}
		default:
			if existing.IsZero() && !value.IsZero() {
				tf.SetMapIndex(key, value)
			}
		}
	}
}
