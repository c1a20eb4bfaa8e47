// Package config loads lu configuration files and applies them to structs.
//
// Package: config
// Title: lu Configuration Management
// Description: Reads TOML, YAML and native [Section] settings files into a
//              thread-safe key tree with dotted-key access, environment
//              variable overrides and decoding into described structs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: Native settings format, Decode, Encode and Save
//
// Formats are chosen by extension: .toml and .yaml/.yml are parsed by their
// libraries, everything else is read as a native settings file where each
// [Section] becomes a table and dotted keys become nested tables. Native
// values stay strings; the typed getters and Decode parse them on access.
//
// Usage:
//
//	cfg, err := config.LoadWithOptions("lu.conf", config.LoadOptions{EnvPrefix: "LU"})
//	if err != nil {
//		return err
//	}
//
//	settings := DefaultSettings()
//	ignored, err := cfg.Decode("Settings", &settings)
//
// With the prefix LU the key Settings.wrapWidth is overridden by
// LU_SETTINGS_WRAP_WIDTH for the getters and by LU_WRAP_WIDTH for Decode,
// which names variables relative to the decoded section.
package config
