// Package logger provides structured logging functionality for the
// application, built on log/slog with a JSON handler and context-scoped
// loggers for request correlation.
package logger
