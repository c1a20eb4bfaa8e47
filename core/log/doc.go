// Package log provides structured logging for the lu packages and the lu
// command.
//
// Package: log
// Title: lu Structured Logging
// Description: Leveled, structured logging with JSON, text and logfmt output
//              and integration with the lu error type. Library packages take
//              an optional *Logger and stay silent without one.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-17 v0.2.0: Reduced to synchronous logging for library and CLI use
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatLogfmt).
//		WithName("serialx")
//
//	logger.Debug("ignored setting", log.Fields{"section": "Settings", "key": "colour"})
//	logger.LogError(err)
package log
