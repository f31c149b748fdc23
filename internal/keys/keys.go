package keys

import (
	"io"
	"math/big"

	"spongecrypt/internal/edwards"
	"spongecrypt/internal/sha3"
)

// PrivateScalar maps a passphrase to a scalar mod r: SHAKE-128 over the
// passphrase, squeezing twice as many bytes as r occupies so the final
// reduction introduces no usable bias.
func PrivateScalar(passphrase []byte) *big.Int {
	r := edwards.Order()
	n := (r.BitLen() + 7) / 8 * 2
	sp := sha3.NewSHAKE(128)
	sp.Absorb(passphrase)
	wide := sp.Squeeze(n)
	s := new(big.Int).SetBytes(wide)
	return s.Mod(s, r)
}

// Generate derives the key pair for a passphrase: s and V = s*G,
// canonicalized so the x-coordinate of V is always even. When s*G has
// odd x, both s and V are negated; the adjusted s is still a pure
// function of the passphrase, so the signer can recover it without
// storing a sign bit, and the persisted public key needs no x-parity.
func Generate(passphrase []byte) (*big.Int, edwards.Point) {
	s := PrivateScalar(passphrase)
	v := edwards.Generator().Mul(s)
	if v.X.Bit(0) == 1 {
		s.Sub(edwards.Order(), s)
		v = v.Neg()
	}
	return s, v
}

// RandomScalar draws a uniform scalar in [0, r) from rand, reading twice
// the byte length of r before reducing, the same de-biasing used by
// PrivateScalar.
func RandomScalar(rand io.Reader) (*big.Int, error) {
	r := edwards.Order()
	wide := make([]byte, (r.BitLen()+7)/8*2)
	if _, err := io.ReadFull(rand, wide); err != nil {
		return nil, err
	}
	k := new(big.Int).SetBytes(wide)
	return k.Mod(k, r), nil
}
