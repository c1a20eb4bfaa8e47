// File: utils_test.go
// Title: Tests for Shared Error Utilities
// Description: Tests for the standard constructors and predicates.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial tests
// - 2026-10-17 v0.2.0: Scanner error kinds

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	mdwerror "github.com/msto63/lu/core/error"
)

func TestSeparatorNotFound(t *testing.T) {
	err := SeparatorNotFound(ModuleStringx, "advance_past", ":", "foo")

	if !IsSeparatorNotFound(err) {
		t.Error("IsSeparatorNotFound() = false")
	}
	if IsInvalidArgument(err) {
		t.Error("IsInvalidArgument() = true for a scan miss")
	}
	if err.Severity() != mdwerror.SeverityLow {
		t.Errorf("Severity() = %v, want low", err.Severity())
	}
	if !IsModuleOperation(err, ModuleStringx, "advance_past") {
		t.Errorf("module/operation not recorded: %v", err.Details())
	}
	if !strings.Contains(err.Error(), `":"`) {
		t.Errorf("Error() = %q, want separator quoted", err.Error())
	}
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument(ModuleStringx, "tabs", -1, "non-negative count")

	if !IsInvalidArgument(err) {
		t.Error("IsInvalidArgument() = false")
	}
	if err.Operation() != "stringx.tabs" {
		t.Errorf("Operation() = %q", err.Operation())
	}
	if ExtractDetails(err)["input"] != -1 {
		t.Errorf("input detail = %v", ExtractDetails(err)["input"])
	}
}

func TestInvalidEncodingWrapsCause(t *testing.T) {
	cause := stderrors.New("illegal base64 data at input byte 3")
	err := InvalidEncoding(ModuleStringx, "decode_base64", cause)

	if !IsInvalidEncoding(err) {
		t.Error("IsInvalidEncoding() = false")
	}
	if !stderrors.Is(err, cause) {
		t.Error("cause should be reachable through errors.Is")
	}
}

func TestPredicatesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("loading: %w", TypeMismatch(ModuleReflectx, "meld", "A", "B"))

	if !IsTypeMismatch(err) {
		t.Error("IsTypeMismatch() should see through fmt wrapping")
	}
	if ExtractModule(err) != ModuleReflectx {
		t.Errorf("ExtractModule() = %q", ExtractModule(err))
	}
	if ExtractModule(stderrors.New("plain")) != "" {
		t.Error("ExtractModule() of a plain error should be empty")
	}
}

func TestBuilderDefaults(t *testing.T) {
	err := NewErrorBuilder(ModuleConfig).Operation("load").Build()

	if err.Error() != "config.load failed" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Code() != mdwerror.CodeUnknown {
		t.Errorf("Code() = %v", err.Code())
	}

	err = NewErrorBuilder(ModuleConfig).Code(mdwerror.CodeNotFound).Severity(mdwerror.SeverityCritical).Build()
	if err.Severity() != mdwerror.SeverityCritical {
		t.Errorf("Severity() = %v", err.Severity())
	}
}
