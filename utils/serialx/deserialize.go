// File: deserialize.go
// Title: Settings Deserialisation
// Description: Reads [TypeName] sections of key/value lines back into
//              structs and reports what was missing, invalid or unknown.
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
	"sort"
	"strings"

	"github.com/msto63/lu/core/errors"
	"github.com/msto63/lu/core/log"
	"github.com/msto63/lu/utils/reflectx"
	"github.com/msto63/lu/utils/stringx"
)

// Result describes what a document did not apply. Maps are keyed by section
// name.
type Result struct {
	// Missing lists settable keys the document did not mention
	Missing map[string][]string

	// Invalid lists keys that were present but could not be applied
	Invalid map[string][]string

	// UnknownSections lists headers that matched no target
	UnknownSections []string

	// Malformed lists lines that were neither comments, headers nor entries
	Malformed []string
}

// Clean reports whether everything in the document was applied and every
// setting was present
func (r Result) Clean() bool {
	return len(r.Missing) == 0 && len(r.Invalid) == 0 && len(r.UnknownSections) == 0 && len(r.Malformed) == 0
}

// Options control deserialisation
type Options struct {
	// Logger receives debug messages about ignored entries. Nil is silent.
	Logger *log.Logger
}

type target struct {
	value reflect.Value
	desc  *reflectx.Descriptor
	seen  map[string]bool
}

// Deserialize reads a document from r into things, which must be pointers
// to structs
func Deserialize(r io.Reader, things ...any) (Result, error) {
	return DeserializeWithOptions(r, Options{}, things...)
}

// DeserializeWithOptions is Deserialize with explicit options
func DeserializeWithOptions(r io.Reader, opts Options, things ...any) (Result, error) {
	logger := log.OrDiscard(opts.Logger).WithName("serialx")

	targets := make(map[string]*target, len(things))
	order := make([]string, 0, len(things))
	for _, thing := range things {
		rv := reflect.ValueOf(thing)
		if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return Result{}, errors.InvalidArgument(errors.ModuleSerialx, "deserialize", fmt.Sprintf("%T", thing), "non-nil pointer to struct")
		}
		d, err := reflectx.Describe(rv.Type())
		if err != nil {
			return Result{}, err
		}
		targets[d.Name] = &target{value: rv, desc: d, seen: make(map[string]bool)}
		order = append(order, d.Name)
	}

	result := Result{
		Missing: make(map[string][]string),
		Invalid: make(map[string][]string),
	}

	var (
		current     *target
		sectionName string
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := stringx.Trim(scanner.Text())

		switch {
		case line == "" || isComment(line):
			continue

		case stringx.BeginsWith(line, '['):
			if !strings.HasSuffix(line, "]") {
				result.Malformed = append(result.Malformed, line)
				logger.LogError(errors.InvalidFormat(errors.ModuleSerialx, line, "[Section]"))
				current = nil
				continue
			}
			sectionName = stringx.Trim(line[1 : len(line)-1])
			current = targets[sectionName]
			if current == nil {
				result.UnknownSections = appendUnique(result.UnknownSections, sectionName)
				logger.Debug("unknown section", log.Fields{"section": sectionName})
			}

		case current == nil:
			logger.Debug("entry outside known section", log.Fields{"section": sectionName, "line": line})

		default:
			key, value := splitEntry(line)
			canonical, ok := apply(current, key, value)
			if canonical != "" {
				current.seen[canonical] = true
			}
			if !ok {
				result.Invalid[sectionName] = append(result.Invalid[sectionName], key)
				logger.Debug("ignored setting", log.Fields{"section": sectionName, "key": key})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return result, errors.OperationFailed(errors.ModuleSerialx, "deserialize", err)
	}

	for _, name := range order {
		t := targets[name]
		var missing []string
		for _, key := range settableKeys(t.desc, "") {
			if !t.seen[key] {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			result.Missing[name] = missing
			logger.Debug("missing settings", log.Fields{"section": name, "keys": strings.Join(missing, ",")})
		}
	}

	if len(result.Missing) == 0 {
		result.Missing = nil
	}
	if len(result.Invalid) == 0 {
		result.Invalid = nil
	}
	sort.Strings(result.UnknownSections)

	return result, nil
}

func isComment(line string) bool {
	return stringx.BeginsWithOneOf(line, "#;") || stringx.BeginsWith(line, "//")
}

// splitEntry splits "key   value" at the first run of blanks
func splitEntry(line string) (string, string) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], stringx.TrimLeft(line[i:])
}

// apply sets one entry. The returned key is the descriptor spelling, or
// empty if no such field exists.
func apply(t *target, key, value string) (string, bool) {
	field, canonical, ok := lookup(t.desc, key)
	if !ok {
		return "", false
	}

	if field.CannotContainComments {
		value, _ = stringx.AdvancePastOrInherit(&value, '#', stringx.ScanRaw)
		value = stringx.TrimRight(value)
	}
	if field.Kind != reflectx.KindArray {
		value = unquoteValue(value)
	}

	return canonical, reflectx.SetFieldByName(t.value.Interface(), key, value)
}

// lookup resolves a possibly dotted key to its field descriptor
func lookup(d *reflectx.Descriptor, key string) (*reflectx.Field, string, bool) {
	var path []string
	rest := key
	for {
		segment, _ := stringx.AdvancePastOrInherit(&rest, '.', stringx.ScanRaw)
		f, ok := d.Lookup(segment)
		if !ok {
			return nil, "", false
		}
		path = append(path, f.Name)
		if rest == "" {
			return f, strings.Join(path, "."), true
		}
		if f.Kind != reflectx.KindStruct {
			return nil, "", false
		}
		nested, err := reflectx.Describe(f.Type)
		if err != nil {
			return nil, "", false
		}
		d = nested
	}
}

// settableKeys lists the keys a complete document would contain
func settableKeys(d *reflectx.Descriptor, prefix string) []string {
	var keys []string
	for i := range d.Fields {
		f := &d.Fields[i]
		if f.ReadOnly || f.Hidden {
			continue
		}
		key := f.Name
		if prefix != "" {
			key = prefix + "." + f.Name
		}
		switch {
		case f.Kind == reflectx.KindStruct:
			if nested, err := reflectx.Describe(f.Type); err == nil {
				keys = append(keys, settableKeys(nested, key)...)
			}
		case f.Kind == reflectx.KindArray || f.Kind.IsScalar():
			keys = append(keys, key)
		}
	}
	return keys
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
