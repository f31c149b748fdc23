// Package schnorr implements Schnorr signatures over NUMS-256 with a
// SHA3-256 challenge hash. A signature is the pair (h, z) with
// h = SHA3-256(U.y || M) mod r for the commitment U = k*G and
// z = k - h*s mod r; verification recomputes U' = z*G + h*V.
package schnorr
