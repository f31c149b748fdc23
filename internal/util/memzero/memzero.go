// Package memzero provides best-effort wiping of secret material.
// Go gives no hard guarantee the compiler keeps the stores, but
// subtle.ConstantTimeCopy is opaque enough in practice.
package memzero

import (
	"crypto/subtle"
	"math/big"
)

// Zero overwrites b with zeros.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}

// ZeroBig overwrites the limbs of x and leaves it holding zero.
// Useful for private scalars held in big.Int form.
func ZeroBig(x *big.Int) {
	if x == nil {
		return
	}
	limbs := x.Bits()
	for i := range limbs {
		limbs[i] = 0
	}
	x.SetInt64(0)
}
