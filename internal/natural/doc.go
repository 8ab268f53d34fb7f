// Package natural implements arbitrary-precision non-negative integers.
//
// A Natural stores values below 2^W in a single inline limb and larger values
// as a trimmed slice of limbs, least significant first. The two cases are an
// implementation detail: every operation gives the same result whichever case
// holds.
//
// Methods without a suffix return a fresh value and leave their operands
// untouched. Methods ending in Assign mutate the receiver. The zero value is
// 0 and ready to use. A Natural must not be copied by value after first use;
// use Clone.
//
// Contract violations such as division by zero panic with a message prefixed
// by "natural:". Results that may be absent are reported with a trailing ok
// bool.
package natural
