// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Extractors and predicates for errors built by this package.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-17 v0.2.0: Code predicates for the scanner error kinds

package errors

import (
	stderrors "errors"

	mdwerror "github.com/msto63/lu/core/error"
)

// ExtractDetails extracts all details from the outermost structured error
func ExtractDetails(err error) map[string]interface{} {
	var mdwErr *mdwerror.Error
	if stderrors.As(err, &mdwErr) {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// IsSeparatorNotFound reports whether err is a scan miss
func IsSeparatorNotFound(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeSeparatorNotFound)
}

// IsInvalidArgument reports whether err is a contract violation
func IsInvalidArgument(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidArgument)
}

// IsInvalidEncoding reports whether err is an encoding failure
func IsInvalidEncoding(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidEncoding)
}

// IsTypeMismatch reports whether err is a descriptor/type mismatch
func IsTypeMismatch(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeTypeMismatch)
}

// IsNotFound reports whether err names something that does not exist
func IsNotFound(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeNotFound)
}

// IsInvalidFormat reports whether err is a malformed document
func IsInvalidFormat(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidFormat)
}
