// Package logger standardises structured logging across the service by
// exposing a single factory, New, that creates a *slog.Logger configured by
// Option functions: output format (text or json), minimum level, output
// destination, and default attributes applied to every record.
//
// Helper constructors such as Error and Component live in attr.go and return
// commonly-used slog.Attr instances to keep attribute naming consistent
// across the codebase.
package logger
