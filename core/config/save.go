// File: save.go
// Title: Configuration Writing
// Description: Writes structs as TOML, YAML or native settings documents.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package config

import (
	"bytes"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/lu/core/error"
	"github.com/msto63/lu/core/errors"
	"github.com/msto63/lu/utils/reflectx"
	"github.com/msto63/lu/utils/serialx"
)

// Encode writes things to w in the given format, one table or section per
// thing named after its descriptor. FormatAuto writes the native format.
func Encode(w io.Writer, format Format, things ...any) error {
	if format == FormatNative || format == FormatAuto {
		return serialx.Serialize(w, things...)
	}

	doc := make(map[string]any, len(things))
	for _, thing := range things {
		d, err := reflectx.Describe(thing)
		if err != nil {
			return err
		}
		m, err := reflectx.ToMap(thing)
		if err != nil {
			return err
		}
		doc[d.Name] = m
	}

	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return errors.OperationFailed(errors.ModuleConfig, "encode", err)
		}
	case FormatYAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return errors.OperationFailed(errors.ModuleConfig, "encode", err)
		}
		if _, err := w.Write(out); err != nil {
			return errors.OperationFailed(errors.ModuleConfig, "encode", err)
		}
	default:
		return errors.InvalidArgument(errors.ModuleConfig, "encode", format.String(), "toml, yaml or native")
	}
	return nil
}

// Save writes things to filePath. FormatAuto picks the format from the
// file extension.
func Save(filePath string, format Format, things ...any) error {
	if format == FormatAuto {
		format = DetectFormat(filePath)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, format, things...); err != nil {
		return err
	}

	if err := os.WriteFile(filePath, buf.Bytes(), 0o644); err != nil {
		return mdwerror.Wrap(err, "failed to write config file").
			WithCode(mdwerror.CodeIOError).
			WithOperation("config.Save").
			WithDetail("filePath", filePath)
	}
	return nil
}
