// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the lu packages. Codes classify
//              failures so callers can tell a scan miss from a contract
//              violation without matching on message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-17 v0.2.0: Replaced platform codes with scanner/reflector codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Scanning and encoding
	CodeSeparatorNotFound Code = "SEPARATOR_NOT_FOUND"
	CodeInvalidEncoding   Code = "INVALID_ENCODING"

	// Contract violations
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeTypeMismatch    Code = "TYPE_MISMATCH"

	// Serialisation and configuration
	CodeInvalidFormat Code = "INVALID_FORMAT"
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeIOError       Code = "IO_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeSeparatorNotFound, CodeInvalidEncoding,
		CodeInvalidArgument, CodeTypeMismatch,
		CodeInvalidFormat, CodeConfigError, CodeIOError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSeparatorNotFound, CodeInvalidEncoding:
		return "scan"
	case CodeInvalidArgument, CodeTypeMismatch:
		return "contract"
	case CodeInvalidFormat, CodeConfigError, CodeIOError:
		return "configuration"
	default:
		return "generic"
	}
}

// Recoverable reports whether a caller can reasonably retry with a different
// call, as opposed to having violated the contract of the function.
func (c Code) Recoverable() bool {
	switch c {
	case CodeSeparatorNotFound, CodeNotFound, CodeInvalidEncoding, CodeInvalidFormat:
		return true
	default:
		return false
	}
}
