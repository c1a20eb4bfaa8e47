// File: scan.go
// Title: View Scanning Primitives
// Description: Advances a string view past a separator and answers
//              containment and prefix questions. Views are plain strings;
//              advancing rebinds the caller's *string to a sub-slice, so no
//              bytes are ever copied.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-17 v0.2.0: Separator scanning with raw and decoded modes

package stringx

import (
	"strings"
	"unicode/utf8"

	"github.com/msto63/lu/core/errors"
)

// Separator is anything a view can be split on: a single byte, a single
// rune or a literal string. Matching is exact, byte for byte.
type Separator interface {
	string | rune | byte
}

// ScanMode selects how a view is searched for a separator.
type ScanMode int

const (
	// ScanRaw compares bytes and may match anywhere in the view.
	ScanRaw ScanMode = iota

	// ScanDecode only accepts matches that start and end on code point
	// boundaries, so a match never splits a multi-byte character.
	ScanDecode
)

// String returns the name of the scan mode
func (m ScanMode) String() string {
	if m == ScanDecode {
		return "decode"
	}
	return "raw"
}

func separatorString[S Separator](sep S) string {
	switch s := any(sep).(type) {
	case string:
		return s
	case rune:
		return string(s)
	case byte:
		return string([]byte{s})
	}
	return ""
}

// indexOf returns the byte offset of the first acceptable match of sep in
// view, or -1.
func indexOf(view, sep string, mode ScanMode) int {
	if mode == ScanRaw {
		return strings.Index(view, sep)
	}

	offset := 0
	for offset <= len(view) {
		i := strings.Index(view[offset:], sep)
		if i < 0 {
			return -1
		}
		pos := offset + i
		end := pos + len(sep)
		if (pos == len(view) || utf8.RuneStart(view[pos])) && (end == len(view) || utf8.RuneStart(view[end])) {
			return pos
		}
		offset = pos + 1
	}
	return -1
}

// AdvancePast returns the part of *view before the first occurrence of sep
// and rebinds *view to the part after it. The separator itself is consumed.
// If sep does not occur, a SeparatorNotFound error is returned and *view is
// left untouched. An empty string separator is an InvalidArgument.
func AdvancePast[S Separator](view *string, sep S, mode ScanMode) (string, error) {
	s := separatorString(sep)
	if s == "" {
		return "", errors.InvalidArgument(errors.ModuleStringx, "advance_past", *view, "non-empty separator")
	}

	i := indexOf(*view, s, mode)
	if i < 0 {
		return "", errors.SeparatorNotFound(errors.ModuleStringx, "advance_past", s, *view)
	}

	head := (*view)[:i]
	*view = (*view)[i+len(s):]
	return head, nil
}

// AdvancePastOrInherit behaves like AdvancePast, except that a missing
// separator is not an error: the whole view is returned as the head and
// *view becomes empty.
func AdvancePastOrInherit[S Separator](view *string, sep S, mode ScanMode) (string, error) {
	s := separatorString(sep)
	if s == "" {
		return "", errors.InvalidArgument(errors.ModuleStringx, "advance_past_or_inherit", *view, "non-empty separator")
	}

	i := indexOf(*view, s, mode)
	if i < 0 {
		head := *view
		*view = ""
		return head, nil
	}

	head := (*view)[:i]
	*view = (*view)[i+len(s):]
	return head, nil
}

// Contains reports whether needle occurs in haystack. The empty needle is
// contained in every string.
func Contains[S Separator](haystack string, needle S, mode ScanMode) bool {
	s := separatorString(needle)
	if s == "" {
		return true
	}
	return indexOf(haystack, s, mode) >= 0
}

// BeginsWith reports whether haystack starts with needle. Every string,
// including the empty one, begins with the empty needle.
func BeginsWith[S Separator](haystack string, needle S) bool {
	return strings.HasPrefix(haystack, separatorString(needle))
}

// BeginsWithOneOf reports whether the first byte of haystack is one of the
// bytes in charset. An empty charset matches anything; an empty haystack
// matches nothing else.
func BeginsWithOneOf(haystack, charset string) bool {
	if charset == "" {
		return true
	}
	if haystack == "" {
		return false
	}
	return strings.IndexByte(charset, haystack[0]) >= 0
}
