// Package limb implements the word-level kernel every multi-precision value in
// limbcalc is built from: single-limb carry/borrow arithmetic, slice-wide
// add/subtract/multiply-accumulate loops, and exact two-limb by one-limb
// division.
//
// A Limb is 64 bits wide by default. Building with the limb32 tag selects
// 32-bit limbs; nothing else in the module depends on the width except through
// Width and Max.
//
// Slices of limbs are little-endian: index 0 holds the least significant limb.
package limb
