// File: doc.go
// Title: Package Documentation for serialx
// Description: Package serialx reads and writes structs as sectioned
//              key/value settings files.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

// Package serialx reads and writes the lu settings format:
//
//	[Settings]
//	nickname     lu
//	wrapWidth    80
//	channels     #lu,#go
//	#password
//
// Each struct is one section named after its type. Keys are the external
// field names from github.com/msto63/lu/utils/reflectx and nested structs
// use dotted keys. Lines starting with #, ; or // are comments. A key whose
// value is empty is written commented out, so a freshly generated file
// still shows every setting.
//
// Deserialize never fails on bad content. Unknown keys, values that do not
// parse and unknown sections are collected in the Result so the caller can
// report them.
package serialx
