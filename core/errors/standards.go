// File: standards.go
// Title: Error Standards for lu Packages
// Description: Module identifiers, the error builder and the standard error
//              constructors used by stringx, reflectx, serialx and config.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-17 v0.2.0: Scanner/reflector constructors replace the per-module
//                      code tables

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/lu/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx  = "stringx"
	ModuleReflectx = "reflectx"
	ModuleSerialx  = "serialx"
	ModuleConfig   = "config"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  *mdwerror.Severity
	code      mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
		code:    mdwerror.CodeUnknown,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity overrides the severity derived from the code
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = &severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	message := eb.message
	if message == "" {
		if eb.operation != "" {
			message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, message)
	} else {
		err = mdwerror.New(message)
	}

	err = err.WithCode(eb.code).WithDetails(eb.details).WithDetail("module", eb.module)
	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation).WithDetail("operation", eb.operation)
	}
	if eb.severity != nil {
		err = err.WithSeverity(*eb.severity)
	}

	return err
}

// SeparatorNotFound reports a scan miss: the separator does not occur in the
// input. Callers can recover by using an inheriting variant.
func SeparatorNotFound(module, operation string, separator interface{}, input string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: separator %q not found", module, operation, fmt.Sprint(separator)).
		Code(mdwerror.CodeSeparatorNotFound).
		Detail("separator", separator).
		Detail("input", input).
		Build()
}

// InvalidArgument reports a caller contract violation
func InvalidArgument(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid argument for %s.%s: expected %s", module, operation, expected).
		Code(mdwerror.CodeInvalidArgument).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// InvalidEncoding reports malformed encoded input
func InvalidEncoding(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid encoding in %s.%s", module, operation).
		Cause(cause).
		Code(mdwerror.CodeInvalidEncoding).
		Build()
}

// TypeMismatch reports aggregates whose shapes do not match
func TypeMismatch(module, operation string, got, want interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("type mismatch in %s.%s: got %v, want %v", module, operation, got, want).
		Code(mdwerror.CodeTypeMismatch).
		Detail("got", fmt.Sprint(got)).
		Detail("want", fmt.Sprint(want)).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// InvalidFormat reports a malformed document line or value
func InvalidFormat(module string, input interface{}, expectedFormat string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Messagef("invalid format in %s: expected %s", module, expectedFormat).
		Code(mdwerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("item not found in %s.%s: %v", module, operation, identifier).
		Code(mdwerror.CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// OperationFailed wraps an I/O or library failure
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Code(mdwerror.CodeIOError).
		Build()
}
