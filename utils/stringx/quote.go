// File: quote.go
// Title: Quoting and Plurality Helpers
// Description: Removal of enclosing quotes, quote-aware splitting of
//              setting values and singular/plural selection.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package stringx

import "strings"

// Unenclosed removes one pair of token bytes enclosing line. Lines that are
// not fully enclosed are returned unchanged.
func Unenclosed(line string, token byte) string {
	if len(line) < 2 || line[0] != token || line[len(line)-1] != token {
		return line
	}
	return line[1 : len(line)-1]
}

// Unquoted removes enclosing double quotes
func Unquoted(line string) string {
	return Unenclosed(line, '"')
}

// Unsinglequoted removes enclosing single quotes
func Unsinglequoted(line string) string {
	return Unenclosed(line, '\'')
}

// SplitWithQuotes splits line on spaces, keeping double-quoted runs
// together. Quotes are removed from the result; \" inside a quoted run is a
// literal quote. Empty fields are dropped unless they were quoted.
func SplitWithQuotes(line string) []string {
	var (
		result  []string
		current strings.Builder
		quoted  bool
		escaped bool
		touched bool
	)

	flush := func() {
		if current.Len() > 0 || touched {
			result = append(result, current.String())
		}
		current.Reset()
		touched = false
	}

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case escaped:
			current.WriteByte(c)
			escaped = false
		case c == '\\' && quoted:
			escaped = true
		case c == '"':
			quoted = !quoted
			touched = true
		case c == ' ' && !quoted:
			flush()
		default:
			current.WriteByte(c)
		}
	}
	flush()

	return result
}

// Plurality returns singular when num is 1 or -1 and plural otherwise
func Plurality(num int, singular, plural string) string {
	if num == 1 || num == -1 {
		return singular
	}
	return plural
}
