// Package edwards implements arithmetic on the twisted Edwards curve
// NUMS-256 (ed-256-mers*): x^2 + y^2 = 1 + d*x^2*y^2 over F_p with
// p = 2^256 - 189 and d = 15343.
//
// Point is a free-standing affine value; the neutral element is (0, 1).
// Decompress is the only way to build a Point from untrusted input and
// enforces membership in the prime-order subgroup, so every Point in
// circulation is either the neutral element or has order r.
package edwards
