// File: decode.go
// Title: Struct Decoding
// Description: Applies a configuration section to a struct through the
//              field reflector, with environment variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package config

import (
	"fmt"
	"os"
	"reflect"
	"sort"

	"github.com/msto63/lu/core/errors"
	"github.com/msto63/lu/core/log"
	"github.com/msto63/lu/utils/reflectx"
)

// Decode copies the keys of section into target, a pointer to a struct. An
// empty section decodes the top level. Keys that name no settable field, or
// whose value cannot be coerced, are returned sorted as dotted paths.
//
// With an env prefix, a variable named EnvKey(prefix, key) overrides the
// file for every settable field, using the field's external name as key.
func (c *Config) Decode(section string, target any) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, errors.InvalidArgument(errors.ModuleConfig, "decode", fmt.Sprintf("%T", target), "non-nil pointer to struct")
	}
	d, err := reflectx.Describe(target)
	if err != nil {
		return nil, err
	}

	data := c.data
	if section != "" {
		raw := c.getValue(section)
		if raw == nil {
			return nil, errors.NotFound(errors.ModuleConfig, "decode", section)
		}
		m, ok := raw.(map[string]interface{})
		if !ok {
			return nil, errors.TypeMismatch(errors.ModuleConfig, "decode", raw, "table")
		}
		data = m
	}

	var ignored []string
	decodeMap(target, data, "", &ignored)

	if c.envPrefix != "" {
		c.applyEnv(target, d, "")
	}

	sort.Strings(ignored)
	if len(ignored) > 0 {
		c.logger.Debug("ignored config keys", log.Fields{"section": section, "keys": ignored})
	}
	return ignored, nil
}

func decodeMap(target any, data map[string]interface{}, prefix string, ignored *[]string) {
	for key, value := range data {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok {
			decodeMap(target, nested, path, ignored)
			continue
		}
		if !reflectx.SetFieldByName(target, path, value) {
			*ignored = append(*ignored, path)
		}
	}
}

func (c *Config) applyEnv(target any, d *reflectx.Descriptor, prefix string) {
	for i := range d.Fields {
		f := &d.Fields[i]
		if f.ReadOnly {
			continue
		}
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}
		if f.Kind == reflectx.KindStruct {
			if nested, err := reflectx.Describe(f.Type); err == nil {
				c.applyEnv(target, nested, path)
			}
			continue
		}

		name := EnvKey(c.envPrefix, path)
		value, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		if !reflectx.SetFieldByName(target, path, value) {
			c.logger.Warn("invalid environment override", log.Fields{"variable": name, "value": value})
		}
	}
}
