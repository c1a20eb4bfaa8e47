// File: affix.go
// Title: Prefix, Suffix and Trim Helpers
// Description: Removal of literal prefixes and suffixes and trimming of
//              character sets from either end of a line.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package stringx

import (
	"strings"

	"github.com/msto63/lu/core/errors"
)

// DefaultTrimCharset is used by the trim family when no charset is given
const DefaultTrimCharset = " \t\r\n"

// PrefixSeparators may follow a stripped prefix, as in "nick: hello"
const PrefixSeparators = ":!? "

// StripPrefix removes prefix from the start of line along with any run of
// PrefixSeparators that follows it. With demandSeparators set, a prefix that
// is not followed by a separator is not stripped and line is returned as is.
func StripPrefix(line, prefix string, demandSeparators bool) (string, error) {
	if prefix == "" {
		return "", errors.InvalidArgument(errors.ModuleStringx, "strip_prefix", line, "non-empty prefix")
	}
	if !strings.HasPrefix(line, prefix) {
		return "", errors.InvalidArgument(errors.ModuleStringx, "strip_prefix", line, "line starting with "+prefix)
	}

	rest := line[len(prefix):]
	if demandSeparators && !BeginsWithOneOf(rest, PrefixSeparators) {
		return line, nil
	}

	return strings.TrimLeft(rest, PrefixSeparators), nil
}

// StripSuffix removes suffix from the end of line. A suffix as long as the
// line itself is only removed when allowFullStrip is set.
func StripSuffix(line, suffix string, allowFullStrip bool) string {
	if suffix == "" || !strings.HasSuffix(line, suffix) {
		return line
	}
	if len(suffix) >= len(line) && !allowFullStrip {
		return line
	}
	return line[:len(line)-len(suffix)]
}

func trimCharset(charset []string) string {
	if len(charset) == 0 {
		return DefaultTrimCharset
	}
	return strings.Join(charset, "")
}

// TrimLeft removes leading characters found in charset (default
// DefaultTrimCharset)
func TrimLeft(line string, charset ...string) string {
	return strings.TrimLeft(line, trimCharset(charset))
}

// TrimRight removes trailing characters found in charset
func TrimRight(line string, charset ...string) string {
	return strings.TrimRight(line, trimCharset(charset))
}

// Trim removes leading and trailing characters found in charset
func Trim(line string, charset ...string) string {
	return strings.Trim(line, trimCharset(charset))
}
