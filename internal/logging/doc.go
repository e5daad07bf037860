// Package logging provides structured logging for debated.
//
// It wraps Zap with a small validated config (level plus console or JSON
// format) and writes to stderr so verdict output on stdout stays clean.
// Components receive a *zap.Logger through their constructors; nothing in
// the repository logs through package-level state.
package logging
