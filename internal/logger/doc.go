// Package logger wraps zap with a global console logger on stderr, a shared
// atomic level and helpers that take the logger from a context.
//
// Commands put a named logger into the context and the services extract it,
// keeping standard output reserved for the command's result.
package logger
