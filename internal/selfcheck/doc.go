// Package selfcheck verifies the arithmetic packages against math/big.
//
// A run evaluates a list of Checks. Each Check draws Samples random operand
// sets and compares the library result with an independent math/big
// computation, fanning the samples out over a bounded worker pool. Outcomes
// are collected into a Report, forwarded to a Reporter for display and to a
// Recorder for metrics.
package selfcheck
