// File: escape.go
// Title: Control Characters and Base64
// Description: Escaping or removal of the control characters that break
//              single-line output, and the standard Base64 codec.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package stringx

import (
	"encoding/base64"
	"strings"

	"github.com/msto63/lu/core/errors"
)

const controlCharacters = "\n\t\r\x00"

var controlEscaper = strings.NewReplacer(
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
	"\x00", `\0`,
)

var controlRemover = strings.NewReplacer(
	"\n", "",
	"\t", "",
	"\r", "",
	"\x00", "",
)

// EscapeControlCharacters replaces newline, tab, carriage return and NUL
// with their two-character backslash escapes. Other bytes pass through.
func EscapeControlCharacters(line string) string {
	if !strings.ContainsAny(line, controlCharacters) {
		return line
	}
	return controlEscaper.Replace(line)
}

// RemoveControlCharacters drops newline, tab, carriage return and NUL
func RemoveControlCharacters(line string) string {
	if !strings.ContainsAny(line, controlCharacters) {
		return line
	}
	return controlRemover.Replace(line)
}

// EncodeBase64 encodes data with the standard padded alphabet
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 decodes standard padded Base64. Malformed input yields an
// InvalidEncoding error.
func DecodeBase64(encoded string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.InvalidEncoding(errors.ModuleStringx, "decode_base64", err)
	}
	return data, nil
}
