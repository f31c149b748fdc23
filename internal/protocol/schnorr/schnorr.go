package schnorr

import (
	"errors"
	"io"
	"math/big"

	"spongecrypt/internal/edwards"
	"spongecrypt/internal/keys"
	"spongecrypt/internal/sha3"
	"spongecrypt/internal/util/memzero"
)

// ErrInvalidSignature reports a signature that does not verify. No
// further detail is exposed.
var ErrInvalidSignature = errors.New("schnorr: invalid signature")

// Signature holds the challenge h and response z, both in [0, r).
type Signature struct {
	H, Z *big.Int
}

// Sign signs msg under the private scalar s, drawing the per-signature
// nonce from rand.
func Sign(rand io.Reader, s *big.Int, msg []byte) (*Signature, error) {
	k, err := keys.RandomScalar(rand)
	if err != nil {
		return nil, err
	}
	defer memzero.ZeroBig(k)

	u := edwards.Generator().Mul(k)
	h := challenge(u.Y, msg)

	r := edwards.Order()
	z := new(big.Int).Mul(h, s)
	z.Sub(k, z)
	z.Mod(z, r)

	return &Signature{H: h, Z: z}, nil
}

// Verify checks sig over msg against the public key pub, which callers
// must have obtained through a validating constructor.
func Verify(msg []byte, sig *Signature, pub edwards.Point) error {
	r := edwards.Order()
	if sig.H.Sign() < 0 || sig.H.Cmp(r) >= 0 || sig.Z.Sign() < 0 || sig.Z.Cmp(r) >= 0 {
		return ErrInvalidSignature
	}
	u := edwards.Generator().Mul(sig.Z).Add(pub.Mul(sig.H))
	if challenge(u.Y, msg).Cmp(sig.H) != 0 {
		return ErrInvalidSignature
	}
	return nil
}

// challenge hashes the commitment's y-coordinate and the message to a
// scalar: SHA3-256(U.y || M) mod r.
func challenge(uy *big.Int, msg []byte) *big.Int {
	sp := sha3.NewSHA3(256)
	sp.Absorb(edwards.Bytes32(uy))
	sp.Absorb(msg)
	h := new(big.Int).SetBytes(sp.Digest())
	return h.Mod(h, edwards.Order())
}
