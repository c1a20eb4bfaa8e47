// File: example_test.go
// Title: Examples for stringx
// Description: Runnable examples for the scanning and layout helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial examples
// - 2026-10-17 v0.2.0: Examples for scanning and wrapping

package stringx_test

import (
	"fmt"

	"github.com/msto63/lu/utils/stringx"
)

func ExampleAdvancePast() {
	line := ":nick!user@host PRIVMSG #channel :hello there"
	line = line[1:]

	prefix, _ := stringx.AdvancePast(&line, ' ', stringx.ScanRaw)
	nick, _ := stringx.AdvancePast(&prefix, '!', stringx.ScanRaw)
	command, _ := stringx.AdvancePast(&line, ' ', stringx.ScanRaw)
	channel, _ := stringx.AdvancePast(&line, " :", stringx.ScanRaw)

	fmt.Println(nick)
	fmt.Println(command)
	fmt.Println(channel)
	fmt.Println(line)
	// Output:
	// nick
	// PRIVMSG
	// #channel
	// hello there
}

func ExampleAdvancePastOrInherit() {
	line := "snarfl"
	head, _ := stringx.AdvancePastOrInherit(&line, ' ', stringx.ScanRaw)
	fmt.Printf("%q %q\n", head, line)
	// Output:
	// "snarfl" ""
}

func ExampleSplitOnWord() {
	lines, _ := stringx.SplitOnWord("I am a fish in a sort of long sentence~", ' ', 20)
	for _, line := range lines {
		fmt.Println(line)
	}
	// Output:
	// I am a fish in a
	// sort of long
	// sentence~
}

func ExampleSharedDomainSuffixCount() {
	fmt.Println(stringx.SharedDomainSuffixCount("irc.freenode.net", "help.freenode.net"))
	fmt.Println(stringx.SharedDomainSuffixCount("rizon.net", "rizon.net"))
	// Output:
	// 2
	// 2
}

func ExampleStripPrefix() {
	rest, _ := stringx.StripPrefix("lu: wrap this", "lu", true)
	fmt.Println(rest)
	// Output:
	// wrap this
}

func ExampleIndent() {
	fmt.Println(stringx.Indent("first\n\nsecond"))
	// Output:
	//     first
	//
	//     second
}
