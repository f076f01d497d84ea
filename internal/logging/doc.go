// Package logging assembles structured slog loggers for libris.
//
// It owns the console and JSON handlers, level and output plumbing, and the
// standard field keys catalog code tags its records with. Every process
// logger carries a session id so lines from one shell session can be pulled
// out of a shared log file. A no-op logger serves tests and library callers
// that do not configure logging.
package logging
