// File: justify.go
// Title: Document Alignment
// Description: Re-aligns the values of an existing settings document.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package serialx

import (
	"strings"

	"github.com/msto63/lu/utils/stringx"
)

// Justify re-aligns a settings document so that the values of each section
// start in one column. Comments stay where they are, blank lines are
// dropped and sections are separated by exactly one blank line.
func Justify(text string) string {
	var (
		out     []string
		section []entry
	)

	flush := func() {
		out = append(out, align(section)...)
		section = nil
	}

	for _, raw := range stringx.SplitLines(text) {
		line := stringx.Trim(raw)

		switch {
		case line == "":
			continue

		case stringx.BeginsWith(line, '['):
			flush()
			if len(out) > 0 {
				out = append(out, "")
			}
			out = append(out, line)

		case isComment(line):
			section = append(section, entry{raw: line, isRaw: true})

		default:
			key, value := splitEntry(line)
			section = append(section, entry{key: key, value: value})
		}
	}
	flush()

	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n") + "\n"
}
