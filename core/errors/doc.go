// Package errors provides standardized error constructors for the lu packages.
//
// Package: errors
// Title: Standard Errors for lu
// Description: Every package reports failures through the constructors here so
//              that module, operation and code are always filled in the same
//              way. The three error kinds of the scanner are SeparatorNotFound
//              (recoverable scan miss), InvalidArgument (contract violation)
//              and InvalidEncoding (malformed input).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Usage:
//
//	err := errors.InvalidArgument(errors.ModuleStringx, "strip_prefix", prefix, "non-empty prefix")
//	if errors.IsInvalidArgument(err) {
//		// caller bug
//	}
package errors
