package symmetric

import (
	"crypto/subtle"
	"errors"
	"io"

	"spongecrypt/internal/sha3"
	"spongecrypt/internal/util/memzero"
)

const (
	// NonceSize is the length of the per-encryption nonce.
	NonceSize = 16
	// TagSize is the length of the SHA3-256 authentication tag.
	TagSize = 32
)

var (
	// ErrInvalidTag reports an authentication failure.
	ErrInvalidTag = errors.New("symmetric: authentication tag mismatch")
	// ErrTooShort reports a record shorter than nonce plus tag.
	ErrTooShort = errors.New("symmetric: ciphertext shorter than nonce and tag")
)

// Seal encrypts msg under passphrase with a nonce drawn from rand and
// returns the record masked || nonce || tag.
func Seal(rand io.Reader, passphrase, msg []byte) ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand, nonce); err != nil {
		return nil, err
	}

	masked := mask(passphrase, nonce, msg)
	out := make([]byte, 0, len(masked)+NonceSize+TagSize)
	out = append(out, masked...)
	out = append(out, nonce...)
	out = append(out, authTag(passphrase, nonce, masked)...)
	return out, nil
}

// Open authenticates and decrypts a record produced by Seal. The tag is
// verified, in constant time, before any plaintext is derived.
func Open(record, passphrase []byte) ([]byte, error) {
	if len(record) < NonceSize+TagSize {
		return nil, ErrTooShort
	}
	masked := record[:len(record)-NonceSize-TagSize]
	nonce := record[len(record)-NonceSize-TagSize : len(record)-TagSize]
	tag := record[len(record)-TagSize:]

	if subtle.ConstantTimeCompare(authTag(passphrase, nonce, masked), tag) != 1 {
		return nil, ErrInvalidTag
	}
	return mask(passphrase, nonce, masked), nil
}

// mask XORs p with the SHAKE-128 keystream seeded by passphrase and
// nonce; it is its own inverse.
func mask(passphrase, nonce, p []byte) []byte {
	sp := sha3.NewSHAKE(128)
	sp.Absorb(passphrase)
	sp.Absorb(nonce)
	stream := sp.Squeeze(len(p))
	defer memzero.Zero(stream)

	out := make([]byte, len(p))
	for i := range p {
		out[i] = p[i] ^ stream[i]
	}
	return out
}

// authTag computes SHA3-256(nonce || SHAKE-128(passphrase, 128 bits) || masked).
func authTag(passphrase, nonce, masked []byte) []byte {
	kd := sha3.ShakeSum(128, passphrase, 128)
	defer memzero.Zero(kd)

	sp := sha3.NewSHA3(256)
	sp.Absorb(nonce)
	sp.Absorb(kd)
	sp.Absorb(masked)
	return sp.Digest()
}
