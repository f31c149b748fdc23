package store

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"spongecrypt/internal/edwards"
	"spongecrypt/internal/protocol/ecies"
	"spongecrypt/internal/protocol/schnorr"
)

// ErrInvalidEncoding reports a malformed key, ciphertext or signature
// file: wrong line count, odd-length or non-hex payload.
var ErrInvalidEncoding = errors.New("store: invalid encoding")

// WritePublicKey writes pub as two hex lines, the 32-byte big-endian
// x then y coordinates.
func WritePublicKey(path string, pub edwards.Point) error {
	return writeHexLines(path, edwards.Bytes32(pub.X), edwards.Bytes32(pub.Y))
}

// ReadPublicKey reads and validates a public key file. The point is
// reconstructed from its compressed form (y and the parity of x), which
// applies the curve-membership and r-torsion checks, then required to
// match the stored x exactly.
func ReadPublicKey(path string) (edwards.Point, error) {
	vals, err := readHexLines(path, 2)
	if err != nil {
		return edwards.Point{}, err
	}
	x := new(big.Int).SetBytes(vals[0])
	y := new(big.Int).SetBytes(vals[1])

	p, err := edwards.Decompress(y, x.Bit(0) == 1)
	if err != nil {
		return edwards.Point{}, errors.Wrapf(err, "public key %s", path)
	}
	if p.X.Cmp(x) != 0 {
		return edwards.Point{}, errors.Wrapf(edwards.ErrInvalidPoint, "public key %s", path)
	}
	return p, nil
}

// WriteCiphertext writes the four hex lines Z.x, Z.y, c, t.
func WriteCiphertext(path string, ct *ecies.Ciphertext) error {
	return writeHexLines(path,
		edwards.Bytes32(ct.ZX), edwards.Bytes32(ct.ZY), ct.C, ct.Tag)
}

// ReadCiphertext reads a four-line hybrid ciphertext file. Point
// validation happens later, in ecies.Decrypt.
func ReadCiphertext(path string) (*ecies.Ciphertext, error) {
	vals, err := readHexLines(path, 4)
	if err != nil {
		return nil, err
	}
	if len(vals[3]) != ecies.TagSize {
		return nil, errors.Wrapf(ErrInvalidEncoding, "%s: tag is %d bytes", path, len(vals[3]))
	}
	return &ecies.Ciphertext{
		ZX:  new(big.Int).SetBytes(vals[0]),
		ZY:  new(big.Int).SetBytes(vals[1]),
		C:   vals[2],
		Tag: vals[3],
	}, nil
}

// WriteSignature writes the two hex lines h, z.
func WriteSignature(path string, sig *schnorr.Signature) error {
	return writeHexLines(path, edwards.Bytes32(sig.H), edwards.Bytes32(sig.Z))
}

// ReadSignature reads a two-line signature file. Range checks happen in
// schnorr.Verify.
func ReadSignature(path string) (*schnorr.Signature, error) {
	vals, err := readHexLines(path, 2)
	if err != nil {
		return nil, err
	}
	return &schnorr.Signature{
		H: new(big.Int).SetBytes(vals[0]),
		Z: new(big.Int).SetBytes(vals[1]),
	}, nil
}

func writeHexLines(path string, vals ...[]byte) error {
	lines := make([]string, len(vals))
	for i, v := range vals {
		lines[i] = hex.EncodeToString(v)
	}
	return WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600)
}

// readHexLines reads path and decodes exactly n hex lines. An empty
// line decodes to an empty value (a zero-length masked payload).
func readHexLines(path string, n int) ([][]byte, error) {
	b, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.TrimRight(string(b), "\r\n"), "\n")
	if len(lines) != n {
		return nil, errors.Wrapf(ErrInvalidEncoding, "%s: want %d lines, have %d", path, n, len(lines))
	}
	vals := make([][]byte, n)
	for i, line := range lines {
		v, err := hex.DecodeString(strings.TrimSpace(line))
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidEncoding, "%s line %d: %v", path, i+1, err)
		}
		vals[i] = v
	}
	return vals, nil
}
