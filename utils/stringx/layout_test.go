// File: layout_test.go
// Title: Layout Helper Tests
// Description: Tests for Tabs, Indent, SplitOnWord, SplitLines, IsBlank and
//              SharedDomainSuffixCount.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-17 v0.2.0: Layout and domain tests

package stringx

import (
	"reflect"
	"strings"
	"testing"

	"github.com/msto63/lu/core/errors"
)

func collect(seq func(func(byte) bool)) string {
	var b strings.Builder
	for c := range seq {
		b.WriteByte(c)
	}
	return b.String()
}

func TestTabs(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		width    []int
		expected string
	}{
		{"default width", 2, nil, "        "},
		{"custom width", 3, []int{2}, "      "},
		{"zero tabs", 0, nil, ""},
		{"zero width", 5, []int{0}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := Tabs(tt.count, tt.width...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := collect(seq); got != tt.expected {
				t.Errorf("got %q; want %q", got, tt.expected)
			}
			if got := collect(seq); got != tt.expected {
				t.Errorf("second pass got %q; want %q", got, tt.expected)
			}
		})
	}
}

func TestTabsEarlyStop(t *testing.T) {
	seq, err := Tabs(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n := 0
	for range seq {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("ranged %d times; want 3", n)
	}
}

func TestTabsNegative(t *testing.T) {
	if _, err := Tabs(-1); !errors.IsInvalidArgument(err) {
		t.Errorf("negative count: expected InvalidArgument, got %v", err)
	}
	if _, err := Tabs(1, -4); !errors.IsInvalidArgument(err) {
		t.Errorf("negative width: expected InvalidArgument, got %v", err)
	}
}

func TestIndent(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		tabs     []int
		expected string
	}{
		{"default one tab", "a\nb", nil, "    a\n    b"},
		{"blank lines stay blank", "a\n\nb", []int{1}, "    a\n\n    b"},
		{"two tabs", "x", []int{2}, "        x"},
		{"crlf normalised", "a\r\nb\rc", []int{1}, "    a\n    b\n    c"},
		{"zero tabs", "a\r\nb", []int{0}, "a\nb"},
		{"negative treated as zero", "a", []int{-3}, "a"},
		{"empty", "", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Indent(tt.text, tt.tabs...); got != tt.expected {
				t.Errorf("Indent(%q, %v) = %q; want %q", tt.text, tt.tabs, got, tt.expected)
			}
		})
	}
}

func TestIndentWidth(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		tabs     int
		width    int
		expected string
	}{
		{"narrow tabs", "a\n\nb", 3, 2, "      a\n\n      b"},
		{"default width", "x", 1, DefaultSpacesPerTab, "    x"},
		{"zero width", "x", 4, 0, "x"},
		{"negative width", "x", 1, -2, "x"},
		{"negative count", "x", -1, 8, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndentWidth(tt.text, tt.tabs, tt.width); got != tt.expected {
				t.Errorf("IndentWidth(%q, %d, %d) = %q; want %q", tt.text, tt.tabs, tt.width, got, tt.expected)
			}
		})
	}
}

func TestSplitOnWord(t *testing.T) {
	const line = "I am a fish in a sort of long sentence~"

	lines, err := SplitOnWord(line, ' ', 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"I am a fish in a", "sort of long", "sentence~"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("SplitOnWord = %q; want %q", lines, want)
	}
	for _, l := range lines {
		if len(l) > 20 {
			t.Errorf("line %q is longer than 20", l)
		}
	}
}

func TestSplitOnWordRoundTrip(t *testing.T) {
	inputs := []string{
		"I am a fish in a sort of long sentence~",
		"aaaa bbbb ",
		" leading space",
		"ab cdefghijkl",
		"abcdefghij klm",
		"a b c d e f g h i j k",
		"word",
	}

	for _, in := range inputs {
		for _, width := range []int{1, 3, 5, 8, 40} {
			lines, err := SplitOnWord(in, " ", width)
			if err != nil {
				t.Fatalf("SplitOnWord(%q, %d): unexpected error: %v", in, width, err)
			}
			if joined := strings.Join(lines, " "); joined != in {
				t.Errorf("SplitOnWord(%q, %d) joins to %q", in, width, joined)
			}
		}
	}
}

func TestSplitOnWordOversized(t *testing.T) {
	tests := []struct {
		line     string
		width    int
		expected []string
	}{
		{"abcdefghij klm", 5, []string{"abcdefghij klm"}},
		{"ab cdefghijkl", 5, []string{"ab cdefghijkl"}},
		{"aaaa bbbb ", 4, []string{"aaaa", "bbbb", ""}},
	}

	for _, tt := range tests {
		lines, err := SplitOnWord(tt.line, ' ', tt.width)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(lines, tt.expected) {
			t.Errorf("SplitOnWord(%q, %d) = %q; want %q", tt.line, tt.width, lines, tt.expected)
		}
	}
}

func TestSplitOnWordInvalid(t *testing.T) {
	if _, err := SplitOnWord("abc", ' ', 0); !errors.IsInvalidArgument(err) {
		t.Errorf("zero width: expected InvalidArgument, got %v", err)
	}
	if _, err := SplitOnWord("abc", "", 10); !errors.IsInvalidArgument(err) {
		t.Errorf("empty separator: expected InvalidArgument, got %v", err)
	}

	lines, err := SplitOnWord("", ' ', 10)
	if err != nil || len(lines) != 0 {
		t.Errorf("SplitOnWord(\"\") = (%q, %v); want no lines", lines, err)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"a\nb\r\nc\rd", []string{"a", "b", "c", "d"}},
		{"", []string{""}},
	}

	for _, tt := range tests {
		if got := SplitLines(tt.input); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("SplitLines(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", true},
		{" \t\n\r ", true},
		{" x ", false},
		{"こんにちは", false},
	}

	for _, tt := range tests {
		if got := IsBlank(tt.input); got != tt.expected {
			t.Errorf("IsBlank(%q) = %v; want %v", tt.input, got, tt.expected)
		}
	}
}

func TestSharedDomainSuffixCount(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"irc.freenode.net", "help.freenode.net", 2},
		{"rizon.net", "rizon.net", 2},
		{"freenode.net", "irc.freenode.net", 1},
		{"irc.gamesurge.net", "irc.freenode.net", 1},
		{"a.com", "b.org", 0},
		{"a..b", "c..b", 1},
		{"", "rizon.net", 0},
		{"rizon.net", "", 0},
		{"", "", 0},
		{"localhost", "localhost", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"|"+tt.b, func(t *testing.T) {
			if got := SharedDomainSuffixCount(tt.a, tt.b); got != tt.expected {
				t.Errorf("SharedDomainSuffixCount(%q, %q) = %d; want %d", tt.a, tt.b, got, tt.expected)
			}
			if got := SharedDomainSuffixCount(tt.b, tt.a); got != tt.expected {
				t.Errorf("SharedDomainSuffixCount(%q, %q) = %d; want %d", tt.b, tt.a, got, tt.expected)
			}
		})
	}
}

func TestSharedDomainSuffixCountFold(t *testing.T) {
	tests := []struct {
		name     string
		got      int
		expected int
	}{
		{"folded", SharedDomainSuffixCountFold("IRC.Freenode.NET", "help.freenode.net"), 2},
		{"exact differs by case", SharedDomainSuffixCount("IRC.Freenode.NET", "help.freenode.net"), 0},
		{"folded equal", SharedDomainSuffixCountFold("Rizon.net", "rizon.NET"), 2},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s: got %d; want %d", tt.name, tt.got, tt.expected)
		}
	}
}
