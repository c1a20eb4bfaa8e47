// File: sections.go
// Title: Raw Section Reader
// Description: Reads a settings document into ordered sections of raw
//              key/value entries without binding them to structs.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package serialx

import (
	"bufio"
	"io"
	"strings"

	"github.com/msto63/lu/core/errors"
	"github.com/msto63/lu/utils/stringx"
)

// Entry is one key/value line
type Entry struct {
	Key   string
	Value string
	Line  int
}

// Section is a header and the entries under it. Entries before the first
// header belong to a section with an empty name.
type Section struct {
	Name    string
	Entries []Entry
}

// ReadSections parses a document into sections in file order. A value that
// is one quoted string is unquoted and unescaped; other values are kept as
// written. Malformed headers are reported as InvalidFormat errors.
func ReadSections(r io.Reader) ([]Section, error) {
	var (
		sections []Section
		current  = -1
		lineNo   int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := stringx.Trim(scanner.Text())

		switch {
		case line == "" || isComment(line):
			continue

		case stringx.BeginsWith(line, '['):
			if !strings.HasSuffix(line, "]") {
				return nil, errors.InvalidFormat(errors.ModuleSerialx, line, "[Section]").
					WithDetail("line", lineNo)
			}
			sections = append(sections, Section{Name: stringx.Trim(line[1 : len(line)-1])})
			current = len(sections) - 1

		default:
			if current < 0 {
				sections = append(sections, Section{})
				current = 0
			}
			key, value := splitEntry(line)
			value = unquoteValue(value)
			sections[current].Entries = append(sections[current].Entries, Entry{Key: key, Value: value, Line: lineNo})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.OperationFailed(errors.ModuleSerialx, "read_sections", err)
	}

	return sections, nil
}
