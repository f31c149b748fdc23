// Package ecies implements hybrid public-key encryption on NUMS-256:
// an ephemeral scalar k binds the recipient's public key V into shared
// key material (W = k*V), a SHAKE-128 stream masks the payload and a
// SHA3-256 tag authenticates it. The transmitted point Z = k*G lets
// the holder of the private scalar recompute W = s*Z.
package ecies
