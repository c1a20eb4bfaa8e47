// File: level_test.go
// Title: Log Level Tests
// Description: Tests for level strings, parsing and filtering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive level tests
// - 2026-10-17 v0.2.0: Adjusted to the reduced level set

package log

import (
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LevelOff, "off"},
		{Level(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"quiet", LevelOff, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelShouldLog(t *testing.T) {
	tests := []struct {
		level Level
		min   Level
		want  bool
	}{
		{LevelDebug, LevelInfo, false},
		{LevelInfo, LevelInfo, true},
		{LevelError, LevelWarn, true},
		{LevelError, LevelOff, false},
		{LevelOff, LevelTrace, false},
	}

	for _, tt := range tests {
		if got := tt.level.ShouldLog(tt.min); got != tt.want {
			t.Errorf("%v.ShouldLog(%v) = %v, want %v", tt.level, tt.min, got, tt.want)
		}
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := ParseFormat("xml")
	if err == nil {
		t.Fatal("ParseFormat(xml) should fail")
	}
	if err.Error() != "invalid format: xml" {
		t.Errorf("error = %q", err.Error())
	}
}
