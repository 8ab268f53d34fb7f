// Package logging provides the structured logging interface used by the
// limbcalc command and its self-check runner, with zerolog and standard
// library backends.
package logging
