// Package sha3 implements the Keccak-f[1600] permutation and the sponge
// construction underlying the SHA-3 hash functions and the SHAKE
// extendable-output functions of FIPS 202.
//
// The central type is Sponge, a mutable handle created by NewSHA3 or
// NewSHAKE. Input is fed incrementally with Absorb; output is drawn with
// Digest (SHA-3) or Squeeze (SHAKE). A handle is not safe for concurrent
// use; allocate one per goroutine.
//
// One-shot helpers Sum and ShakeSum cover the common hash-everything case.
package sha3
