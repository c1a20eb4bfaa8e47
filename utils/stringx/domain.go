// File: domain.go
// Title: Domain Suffix Comparison
// Description: Counts how many trailing dot-separated labels two domain
//              names share, as used when matching server hostnames.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package stringx

import "strings"

// SharedDomainSuffixCount returns the number of label boundaries a and b
// share when compared from the end.
//
//	SharedDomainSuffixCount("irc.freenode.net", "help.freenode.net") == 2
//	SharedDomainSuffixCount("rizon.net", "rizon.net") == 2
//
// Identical strings are credited one extra boundary, as if both had a
// leading dot. Consecutive dots count as a single boundary. If either
// string is empty the result is 0.
func SharedDomainSuffixCount(a, b string) int {
	if a == "" || b == "" {
		return 0
	}

	dots := 0
	if a == b {
		dots++
	}

	n := min(len(a), len(b))
	inDots := false
	for i := 1; i <= n; i++ {
		c := a[len(a)-i]
		if c != b[len(b)-i] {
			break
		}
		if c != '.' {
			inDots = false
			continue
		}
		if !inDots {
			dots++
			inDots = true
		}
	}

	return dots
}

// SharedDomainSuffixCountFold is SharedDomainSuffixCount ignoring ASCII case
func SharedDomainSuffixCountFold(a, b string) int {
	return SharedDomainSuffixCount(strings.ToLower(a), strings.ToLower(b))
}
