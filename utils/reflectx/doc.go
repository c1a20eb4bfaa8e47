// File: doc.go
// Title: Package Documentation for reflectx
// Description: Package reflectx sets, diffs and melds struct fields by their
//              external names.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

// Package reflectx gives generic, name-based access to the fields of
// settings structs.
//
// Every struct type has a Descriptor: an ordered table of its exported
// fields with their external names and flags. Descriptors are derived from
// `lu` struct tags on first use and cached; Register installs a hand-built
// one instead.
//
//	type Settings struct {
//		WrapWidth int      `lu:"wrapWidth"`
//		Version   string   `lu:",readonly"`
//		Channels  []string `lu:"channels,sep=;"`
//	}
//
//	var s Settings
//	reflectx.SetFieldByName(&s, "wrapWidth", "100") // true
//	reflectx.SetFieldByName(&s, "version", "2")    // false, read-only
//
// SetFieldByName reports failure with a bool: an unknown or read-only field
// is an ordinary outcome when probing configuration keys. ComputeDelta and
// Meld return errors, since handing them mismatched types is a programming
// mistake.
//
// Nothing here starts goroutines. Descriptor lookups are safe for concurrent
// use; mutating one struct value from several goroutines is not.
package reflectx
