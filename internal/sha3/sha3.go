package sha3

import "fmt"

// Sum computes the one-shot SHA3-suffix digest of msg.
func Sum(suffix int, msg []byte) []byte {
	s := NewSHA3(suffix)
	s.Absorb(msg)
	return s.Digest()
}

// ShakeSum computes the one-shot SHAKE-suffix output of msg with the
// requested output length in bits, which must be a positive multiple
// of 8.
func ShakeSum(suffix int, msg []byte, outBits int) []byte {
	if outBits <= 0 || outBits%8 != 0 {
		panic(fmt.Sprintf("sha3: SHAKE output length %d is not a positive multiple of 8", outBits))
	}
	s := NewSHAKE(suffix)
	s.Absorb(msg)
	return s.Squeeze(outBits / 8)
}
