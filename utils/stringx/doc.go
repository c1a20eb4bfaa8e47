// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the string scanning primitives used
//              to pick apart protocol lines and settings files.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2026-10-17 v0.2.0: Rewritten around views and separators

// Package stringx provides string scanning and slicing helpers.
//
// A view is an ordinary Go string. Scanning functions take a *string and
// advance it past a separator, returning the part before it:
//
//	line := "PRIVMSG #channel :hello"
//	command, _ := stringx.AdvancePast(&line, ' ', stringx.ScanRaw)
//	// command == "PRIVMSG", line == "#channel :hello"
//
// Separators may be a byte, a rune or a string. In ScanRaw mode the view is
// searched byte by byte; ScanDecode additionally requires that a match start
// on a code point boundary. Nothing in this package allocates a copy of the
// view it was given.
//
// Errors are *error.Error values from github.com/msto63/lu/core/error with
// the codes SEPARATOR_NOT_FOUND, INVALID_ARGUMENT and INVALID_ENCODING. Use
// the predicates in github.com/msto63/lu/core/errors to test for them.
package stringx
