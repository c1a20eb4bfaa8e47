// Package error provides the structured error type shared by the lu packages.
//
// Package: error
// Title: lu Error Handling
// Description: A small structured error type with codes, severities, the failing
//              operation and free-form details. Scanner misses, contract
//              violations and malformed input are told apart by code, not by
//              message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-17 v0.2.0: Codes for scanning, reflection and serialisation
//
// Usage:
//
//	import mdwerror "github.com/msto63/lu/core/error"
//
//	err := mdwerror.New("separator not found").
//		WithCode(mdwerror.CodeSeparatorNotFound).
//		WithDetail("separator", ":")
//
//	if mdwerror.HasCode(err, mdwerror.CodeSeparatorNotFound) {
//		// fall back to the inheriting variant
//	}
package error
