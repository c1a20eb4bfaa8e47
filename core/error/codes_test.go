// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for code validity, categories and severity mapping.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Scanner/reflector codes

package error

import "testing"

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeSeparatorNotFound, "scan"},
		{CodeInvalidEncoding, "scan"},
		{CodeInvalidArgument, "contract"},
		{CodeTypeMismatch, "contract"},
		{CodeInvalidFormat, "configuration"},
		{CodeUnknown, "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Category() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeIsValid(t *testing.T) {
	if !CodeSeparatorNotFound.IsValid() {
		t.Error("CodeSeparatorNotFound should be valid")
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code should not be valid")
	}
}

func TestCodeRecoverable(t *testing.T) {
	if !CodeSeparatorNotFound.Recoverable() {
		t.Error("a scan miss is recoverable")
	}
	if CodeInvalidArgument.Recoverable() {
		t.Error("a contract violation is not recoverable")
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeverityShouldAlert(t *testing.T) {
	if SeverityMedium.ShouldAlert() {
		t.Error("medium should not alert")
	}
	if !SeverityHigh.ShouldAlert() {
		t.Error("high should alert")
	}
	if SeverityCritical.Level() != 3 {
		t.Errorf("Level() = %d", SeverityCritical.Level())
	}
}
