// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger uses them to
//              pick a log level when an error is logged as a whole.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-17 v0.2.0: Severity mapping for scanner/reflector codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates an expected miss the caller can handle,
	// such as a separator that is not present in a line.
	SeverityLow Severity = iota

	// SeverityMedium indicates malformed input, such as bad Base64 or a
	// broken settings file.
	SeverityMedium

	// SeverityHigh indicates a contract violation by the caller.
	SeverityHigh

	// SeverityCritical indicates an internal invariant was broken.
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeInvalidArgument, CodeTypeMismatch:
		return SeverityHigh
	case CodeInvalidEncoding, CodeInvalidFormat, CodeConfigError, CodeIOError:
		return SeverityMedium
	case CodeSeparatorNotFound, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
