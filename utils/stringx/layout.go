// File: layout.go
// Title: Line Layout Helpers
// Description: Indentation, lazy tab sequences, word wrapping on a
//              separator and line splitting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: SplitLines and IsBlank
// - 2026-10-17 v0.2.0: Tabs, Indent, IndentWidth and SplitOnWord

package stringx

import (
	"iter"
	"strings"
	"unicode"

	"github.com/msto63/lu/core/errors"
)

// DefaultSpacesPerTab is the width of one tab in Tabs and Indent
const DefaultSpacesPerTab = 4

// Tabs returns a finite sequence of count*spacesPerTab spaces. The sequence
// is lazy and can be ranged over any number of times.
func Tabs(count int, spacesPerTab ...int) (iter.Seq[byte], error) {
	width := DefaultSpacesPerTab
	if len(spacesPerTab) > 0 {
		width = spacesPerTab[0]
	}
	if count < 0 {
		return nil, errors.InvalidArgument(errors.ModuleStringx, "tabs", count, "non-negative tab count")
	}
	if width < 0 {
		return nil, errors.InvalidArgument(errors.ModuleStringx, "tabs", width, "non-negative tab width")
	}

	total := count * width
	return func(yield func(byte) bool) {
		for range total {
			if !yield(' ') {
				return
			}
		}
	}, nil
}

// Indent prefixes every non-empty line of text with tabCount tabs worth of
// spaces (default one). Lines may end in \n, \r\n or \r; the result always
// uses \n. A negative tabCount is treated as zero.
func Indent(text string, tabCount ...int) string {
	count := 1
	if len(tabCount) > 0 {
		count = tabCount[0]
	}
	return IndentWidth(text, count, DefaultSpacesPerTab)
}

// IndentWidth is Indent with an explicit tab width. Negative counts and
// widths are treated as zero.
func IndentWidth(text string, tabCount, spacesPerTab int) string {
	pad := strings.Repeat(" ", max(tabCount, 0)*max(spacesPerTab, 0))

	lines := SplitLines(text)
	var b strings.Builder
	b.Grow(len(text) + len(lines)*len(pad))

	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if line != "" {
			b.WriteString(pad)
			b.WriteString(line)
		}
	}
	return b.String()
}

// SplitOnWord breaks line into pieces of at most maxLength bytes, cutting
// only at sep and preferring the rightmost cut that fits. A piece that
// cannot be cut short enough is glued onto the previous piece, or emitted
// alone if it is the first. Joining the result with sep yields line.
func SplitOnWord[S Separator](line string, sep S, maxLength int) ([]string, error) {
	if maxLength < 1 {
		return nil, errors.InvalidArgument(errors.ModuleStringx, "split_on_word", maxLength, "positive maximum length")
	}
	s := separatorString(sep)
	if s == "" {
		return nil, errors.InvalidArgument(errors.ModuleStringx, "split_on_word", line, "non-empty separator")
	}

	if line == "" {
		return nil, nil
	}

	var lines []string
	rest := line
	for {
		if len(rest) <= maxLength {
			lines = append(lines, rest)
			break
		}

		window := rest[:min(len(rest), maxLength+len(s))]
		i := strings.LastIndex(window, s)
		if i < 0 {
			if len(lines) == 0 {
				lines = append(lines, rest)
			} else {
				lines[len(lines)-1] += s + rest
			}
			break
		}

		lines = append(lines, rest[:i])
		rest = rest[i+len(s):]
	}

	return lines, nil
}

// SplitLines splits a string into lines, handling \n, \r\n and \r endings
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
