// Package packed provides Vector, a growable sequence of small-domain values
// (booleans, small enumerations) stored in 1 to 7 bits each, packed into a
// byte buffer following the LSB pattern: the first element of a byte
// occupies its least-significant bits.
package packed
