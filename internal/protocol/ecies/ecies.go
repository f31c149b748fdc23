package ecies

import (
	"crypto/subtle"
	"errors"
	"io"
	"math/big"

	"spongecrypt/internal/edwards"
	"spongecrypt/internal/keys"
	"spongecrypt/internal/sha3"
	"spongecrypt/internal/util/memzero"
)

// TagSize is the length of the authentication tag in bytes.
const TagSize = 32

// ErrInvalidTag reports an authentication failure. No plaintext is ever
// produced alongside it.
var ErrInvalidTag = errors.New("ecies: authentication tag mismatch")

// Ciphertext is the transmitted record: the ephemeral point Z = k*G,
// the masked payload c (same length as the plaintext) and the tag t.
type Ciphertext struct {
	ZX, ZY *big.Int
	C      []byte
	Tag    []byte
}

// Encrypt encrypts msg to the public key pub using randomness from rand.
func Encrypt(rand io.Reader, pub edwards.Point, msg []byte) (*Ciphertext, error) {
	k, err := keys.RandomScalar(rand)
	if err != nil {
		return nil, err
	}
	defer memzero.ZeroBig(k)

	w := pub.Mul(k)
	z := edwards.Generator().Mul(k)

	ka, ke := deriveKeys(w.Y)
	defer memzero.Zero(ka)
	defer memzero.Zero(ke)

	c := xorStream(ke, msg)
	return &Ciphertext{
		ZX:  z.X,
		ZY:  z.Y,
		C:   c,
		Tag: authTag(ka, c),
	}, nil
}

// Decrypt opens ct with the private scalar s. The point Z is revalidated
// from its compressed form (the r-torsion check included) and the tag is
// checked, in constant time, before any plaintext is derived.
func Decrypt(ct *Ciphertext, s *big.Int) ([]byte, error) {
	z, err := edwards.Decompress(ct.ZY, ct.ZX.Bit(0) == 1)
	if err != nil {
		return nil, err
	}
	if z.IsZero() || z.X.Cmp(ct.ZX) != 0 {
		return nil, edwards.ErrInvalidPoint
	}

	w := z.Mul(s)
	ka, ke := deriveKeys(w.Y)
	defer memzero.Zero(ka)
	defer memzero.Zero(ke)

	if subtle.ConstantTimeCompare(authTag(ka, ct.C), ct.Tag) != 1 {
		return nil, ErrInvalidTag
	}
	return xorStream(ke, ct.C), nil
}

// deriveKeys squeezes the MAC key then the encryption key from
// SHAKE-256 over the shared y-coordinate.
func deriveKeys(wy *big.Int) (ka, ke []byte) {
	sp := sha3.NewSHAKE(256)
	sp.Absorb(edwards.Bytes32(wy))
	return sp.Squeeze(32), sp.Squeeze(32)
}

// xorStream masks p with a SHAKE-128 keystream seeded by ke.
func xorStream(ke, p []byte) []byte {
	sp := sha3.NewSHAKE(128)
	sp.Absorb(ke)
	stream := sp.Squeeze(len(p))
	out := make([]byte, len(p))
	for i := range p {
		out[i] = p[i] ^ stream[i]
	}
	return out
}

func authTag(ka, c []byte) []byte {
	sp := sha3.NewSHA3(256)
	sp.Absorb(ka)
	sp.Absorb(c)
	return sp.Digest()
}
