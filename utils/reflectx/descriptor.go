// File: descriptor.go
// Title: Field Descriptors
// Description: Derives, caches and registers the ordered field tables that
//              drive setting, diffing and melding of structs by field name.
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
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/msto63/lu/core/errors"
)

// TagName is the struct tag read by Describe:
//
//	WrapWidth int      `lu:"wrapWidth"`
//	Version   string   `lu:",readonly"`
//	Channels  []string `lu:"channels,sep=;"`
//
// Recognised options are readonly, hidden, quoted, nocomments and sep=X.
// A name of "-" excludes the field.
const TagName = "lu"

// DefaultSeparator joins and splits array fields without a sep option
const DefaultSeparator = ","

// Kind classifies a field for coercion and traversal
type Kind int

const (
	KindOther Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBool
	KindStruct
	KindArray
	KindMap
)

var kindNames = [...]string{"other", "string", "integer", "float", "bool", "struct", "array", "map"}

// String returns the name of the kind
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "other"
	}
	return kindNames[k]
}

// IsScalar reports whether values of this kind are leaves
func (k Kind) IsScalar() bool {
	return k == KindString || k == KindInteger || k == KindFloat || k == KindBool
}

var durationType = reflect.TypeOf(time.Duration(0))

// KindOf classifies a Go type. Structs without exported fields, such as
// time.Time, are opaque leaves of KindOther.
func KindOf(t reflect.Type) Kind {
	switch t.Kind() {
	case reflect.String:
		return KindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInteger
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.Bool:
		return KindBool
	case reflect.Struct:
		if hasExportedFields(t) {
			return KindStruct
		}
		return KindOther
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map:
		return KindMap
	default:
		return KindOther
	}
}

func hasExportedFields(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			return true
		}
	}
	return false
}

// Field describes one settable member of a struct
type Field struct {
	// Name is the external name used in settings files and paths
	Name string

	// GoName is the struct field name
	GoName string

	Kind  Kind
	Type  reflect.Type
	Index []int

	// ReadOnly fields reject every set and are skipped by Meld
	ReadOnly bool

	// Hidden fields are left out of serialised output
	Hidden bool

	// Quoted values are always written in double quotes
	Quoted bool

	// CannotContainComments values are cut at the first '#'
	CannotContainComments bool

	// Separator joins array elements in text form
	Separator string

	// Default is the value the field has before anything is configured. Nil
	// means the zero value of Type.
	Default any

	def reflect.Value
}

// IsDefault reports whether v, a value of the field's type, equals the
// field's default. Empty and nil containers are the same.
func (f *Field) IsDefault(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map:
		if f.def.Len() == 0 {
			return v.Len() == 0
		}
	}
	return reflect.DeepEqual(v.Interface(), f.def.Interface())
}

// DefaultValue returns the default as a reflect.Value
func (f *Field) DefaultValue() reflect.Value {
	return f.def
}

// Descriptor is the ordered field table of one struct type
type Descriptor struct {
	// Name is the section name, normally the Go type name
	Name   string
	Type   reflect.Type
	Fields []Field

	byName map[string]int
}

// Lookup finds a field by external name, falling back to a case-insensitive
// match
func (d *Descriptor) Lookup(name string) (*Field, bool) {
	if i, ok := d.byName[name]; ok {
		return &d.Fields[i], true
	}
	for i := range d.Fields {
		if strings.EqualFold(d.Fields[i].Name, name) {
			return &d.Fields[i], true
		}
	}
	return nil, false
}

// DefaultsSetter is implemented by types whose defaults are not all zero.
// SetDefaults is called on a fresh zero value when the descriptor is built.
type DefaultsSetter interface {
	SetDefaults()
}

var descriptors sync.Map // reflect.Type -> *Descriptor

func structType(v any) (reflect.Type, bool) {
	if v == nil {
		return nil, false
	}
	t, ok := v.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(v)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t, t.Kind() == reflect.Struct
}

// Describe returns the descriptor of v's struct type. v may be a struct, a
// pointer to one or a reflect.Type. Registered descriptors take precedence
// over derived ones; derived ones are cached.
func Describe(v any) (*Descriptor, error) {
	t, ok := structType(v)
	if !ok {
		return nil, errors.InvalidArgument(errors.ModuleReflectx, "describe", fmt.Sprintf("%T", v), "struct or pointer to struct")
	}

	if d, ok := descriptors.Load(t); ok {
		return d.(*Descriptor), nil
	}

	d, err := Derive(t)
	if err != nil {
		return nil, err
	}

	actual, _ := descriptors.LoadOrStore(t, d)
	return actual.(*Descriptor), nil
}

// Derive builds a descriptor from struct tags without caching it. Use it as
// a starting point for Register.
func Derive(v any) (*Descriptor, error) {
	t, ok := structType(v)
	if !ok {
		return nil, errors.InvalidArgument(errors.ModuleReflectx, "derive", fmt.Sprintf("%T", v), "struct or pointer to struct")
	}

	d := &Descriptor{Name: t.Name(), Type: t}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		f := Field{
			Name:      lowerFirst(sf.Name),
			GoName:    sf.Name,
			Kind:      KindOf(sf.Type),
			Type:      sf.Type,
			Index:     sf.Index,
			Separator: DefaultSeparator,
		}

		if tag, ok := sf.Tag.Lookup(TagName); ok {
			if tag == "-" {
				continue
			}
			parseTag(tag, &f)
		}

		d.Fields = append(d.Fields, f)
	}

	if reflect.PointerTo(t).Implements(reflect.TypeOf((*DefaultsSetter)(nil)).Elem()) {
		fresh := reflect.New(t)
		fresh.Interface().(DefaultsSetter).SetDefaults()
		for i := range d.Fields {
			d.Fields[i].Default = fresh.Elem().FieldByIndex(d.Fields[i].Index).Interface()
		}
	}

	if err := d.finalize(); err != nil {
		return nil, err
	}
	return d, nil
}

// Register installs d as the descriptor for d.Type, replacing any derived
// or previously registered one.
func Register(d *Descriptor) error {
	if d == nil || d.Type == nil || d.Type.Kind() != reflect.Struct {
		return errors.InvalidArgument(errors.ModuleReflectx, "register", d, "descriptor of a struct type")
	}
	if err := d.finalize(); err != nil {
		return err
	}
	descriptors.Store(d.Type, d)
	return nil
}

// finalize validates the field table and builds the name index
func (d *Descriptor) finalize() error {
	if d.Name == "" {
		d.Name = d.Type.Name()
	}

	d.byName = make(map[string]int, len(d.Fields))
	for i := range d.Fields {
		f := &d.Fields[i]
		if f.Name == "" {
			return errors.InvalidArgument(errors.ModuleReflectx, "register", f.GoName, "named field")
		}
		if _, dup := d.byName[f.Name]; dup {
			return errors.InvalidArgument(errors.ModuleReflectx, "register", f.Name, "unique field names")
		}

		sf, err := fieldByIndex(d.Type, f.Index)
		if err != nil {
			return err
		}
		if f.Type == nil {
			f.Type = sf.Type
		}
		if f.Type != sf.Type {
			return errors.TypeMismatch(errors.ModuleReflectx, "register", f.Type, sf.Type)
		}
		if f.Kind == KindOther {
			f.Kind = KindOf(f.Type)
		}
		if f.GoName == "" {
			f.GoName = sf.Name
		}
		if f.Separator == "" {
			f.Separator = DefaultSeparator
		}

		f.def = reflect.Zero(f.Type)
		if f.Default != nil {
			dv := reflect.ValueOf(f.Default)
			if !dv.Type().ConvertibleTo(f.Type) {
				return errors.TypeMismatch(errors.ModuleReflectx, "register", dv.Type(), f.Type)
			}
			f.def = dv.Convert(f.Type)
		}

		d.byName[f.Name] = i
	}
	return nil
}

func fieldByIndex(t reflect.Type, index []int) (reflect.StructField, error) {
	if len(index) == 0 {
		return reflect.StructField{}, errors.InvalidArgument(errors.ModuleReflectx, "register", index, "non-empty field index")
	}
	var sf reflect.StructField
	for i, x := range index {
		if i > 0 {
			t = sf.Type
		}
		if t.Kind() != reflect.Struct || x < 0 || x >= t.NumField() {
			return sf, errors.InvalidArgument(errors.ModuleReflectx, "register", index, "field index inside "+t.String())
		}
		sf = t.Field(x)
	}
	if !sf.IsExported() {
		return sf, errors.InvalidArgument(errors.ModuleReflectx, "register", sf.Name, "exported field")
	}
	return sf, nil
}

func parseTag(tag string, f *Field) {
	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		f.Name = parts[0]
	}

	for _, opt := range parts[1:] {
		switch {
		case opt == "readonly":
			f.ReadOnly = true
		case opt == "hidden":
			f.Hidden = true
		case opt == "quoted":
			f.Quoted = true
		case opt == "nocomments":
			f.CannotContainComments = true
		case strings.HasPrefix(opt, "sep="):
			// "sep=," splits into "sep=" and "", both meaning the default
			if sep := strings.TrimPrefix(opt, "sep="); sep != "" {
				f.Separator = sep
			}
		}
	}
}

// lowerFirst turns a Go field name into its external name: WrapWidth
// becomes wrapWidth and URLPath becomes urlPath.
func lowerFirst(name string) string {
	runes := []rune(name)
	for i := range runes {
		if !unicode.IsUpper(runes[i]) {
			break
		}
		if i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			break
		}
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
