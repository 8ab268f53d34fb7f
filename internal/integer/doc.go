// Package integer implements arbitrary-precision signed integers as a sign
// and a natural.Natural magnitude.
//
// Bitwise operations and the power-of-two queries see a negative value as
// its infinite two's-complement bit string. That string is never stored: it
// is derived limb by limb from the sign and magnitude.
//
// Naming and ownership follow package natural. Operations that round take a
// rounding.Mode and round the signed value, so Floor and Ceiling swap roles
// when applied to the magnitude of a negative result.
package integer
