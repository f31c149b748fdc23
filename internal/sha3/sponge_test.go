package sha3

import (
	"bytes"
	"testing"
)

// TestSplitAbsorb checks that chunked absorption matches one-shot
// absorption across rate-block boundaries for every variant.
func TestSplitAbsorb(t *testing.T) {
	msg := testMessage(1000)
	chunks := []int{1, 7, 64, 136, 137, 500}

	for _, suffix := range []int{224, 256, 384, 512} {
		want := Sum(suffix, msg)
		sp := NewSHA3(suffix)
		rest := msg
		for _, n := range chunks {
			if n > len(rest) {
				n = len(rest)
			}
			sp.Absorb(rest[:n])
			rest = rest[n:]
		}
		sp.Absorb(rest)
		if got := sp.Digest(); !bytes.Equal(got, want) {
			t.Errorf("SHA3-%d: chunked absorb differs from one-shot", suffix)
		}
	}
}

// TestIncrementalSqueeze checks that squeezing in pieces continues the
// same output stream as a single large squeeze, across permutation
// boundaries.
func TestIncrementalSqueeze(t *testing.T) {
	msg := testMessage(77)
	for _, suffix := range []int{128, 256} {
		want := ShakeSum(suffix, msg, 500*8)

		sp := NewSHAKE(suffix)
		sp.Absorb(msg)
		var got []byte
		for _, n := range []int{1, 31, 32, 136, 168, 132} {
			got = append(got, sp.Squeeze(n)...)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("SHAKE-%d: incremental squeeze differs from one-shot", suffix)
		}
	}
}

func TestDigestLengths(t *testing.T) {
	for _, suffix := range []int{224, 256, 384, 512} {
		if n := len(Sum(suffix, nil)); n != suffix/8 {
			t.Errorf("SHA3-%d digest is %d bytes", suffix, n)
		}
	}
}

func TestAbsorbAfterSqueezePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("absorb after squeeze did not panic")
		}
	}()
	sp := NewSHAKE(128)
	sp.Absorb([]byte("x"))
	sp.Squeeze(16)
	sp.Absorb([]byte("y"))
}

func TestInvalidSuffixPanics(t *testing.T) {
	for _, suffix := range []int{0, 100, 128, 320} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewSHA3(%d) did not panic", suffix)
				}
			}()
			NewSHA3(suffix)
		}()
	}
	for _, suffix := range []int{0, 224, 384, 512} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewSHAKE(%d) did not panic", suffix)
				}
			}()
			NewSHAKE(suffix)
		}()
	}
}

// TestSqueezeZero draws zero bytes without disturbing the stream.
func TestSqueezeZero(t *testing.T) {
	sp := NewSHAKE(128)
	sp.Absorb([]byte("abc"))
	a := sp.Squeeze(16)
	_ = sp.Squeeze(0)
	b := sp.Squeeze(16)

	sp2 := NewSHAKE(128)
	sp2.Absorb([]byte("abc"))
	want := sp2.Squeeze(32)
	if !bytes.Equal(append(a, b...), want) {
		t.Error("zero-length squeeze disturbed the output stream")
	}
}
