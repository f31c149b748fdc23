package schnorr_test

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"spongecrypt/internal/edwards"
	"spongecrypt/internal/keys"
	"spongecrypt/internal/protocol/schnorr"
)

func TestSignVerify(t *testing.T) {
	s, pub := keys.Generate([]byte("signer"))
	msg := []byte("the quick brown fox")

	sig, err := schnorr.Sign(rand.Reader, s, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := schnorr.Verify(msg, sig, pub); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestSignaturesAreRandomized(t *testing.T) {
	s, pub := keys.Generate([]byte("signer"))
	msg := []byte("msg")

	a, err := schnorr.Sign(rand.Reader, s, msg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := schnorr.Sign(rand.Reader, s, msg)
	if err != nil {
		t.Fatal(err)
	}
	if a.H.Cmp(b.H) == 0 && a.Z.Cmp(b.Z) == 0 {
		t.Fatal("two signatures with fresh nonces are identical")
	}
	// Both still verify.
	if err := schnorr.Verify(msg, a, pub); err != nil {
		t.Fatal(err)
	}
	if err := schnorr.Verify(msg, b, pub); err != nil {
		t.Fatal(err)
	}
}

func TestRejectsModifiedMessage(t *testing.T) {
	s, pub := keys.Generate([]byte("signer"))
	msg := []byte("original message")
	sig, err := schnorr.Sign(rand.Reader, s, msg)
	if err != nil {
		t.Fatal(err)
	}
	for i := range msg {
		mod := append([]byte(nil), msg...)
		mod[i] ^= 0x20
		if err := schnorr.Verify(mod, sig, pub); !errors.Is(err, schnorr.ErrInvalidSignature) {
			t.Fatalf("byte %d: modified message verified", i)
		}
	}
}

func TestRejectsModifiedSignature(t *testing.T) {
	s, pub := keys.Generate([]byte("signer"))
	msg := []byte("msg")
	sig, err := schnorr.Sign(rand.Reader, s, msg)
	if err != nil {
		t.Fatal(err)
	}

	tampered := &schnorr.Signature{H: new(big.Int).Add(sig.H, big.NewInt(1)), Z: sig.Z}
	if err := schnorr.Verify(msg, tampered, pub); !errors.Is(err, schnorr.ErrInvalidSignature) {
		t.Fatal("tampered h verified")
	}
	tampered = &schnorr.Signature{H: sig.H, Z: new(big.Int).Add(sig.Z, big.NewInt(1))}
	if err := schnorr.Verify(msg, tampered, pub); !errors.Is(err, schnorr.ErrInvalidSignature) {
		t.Fatal("tampered z verified")
	}
}

func TestRejectsWrongKey(t *testing.T) {
	s, _ := keys.Generate([]byte("signer"))
	_, other := keys.Generate([]byte("someone else"))
	msg := []byte("msg")

	sig, err := schnorr.Sign(rand.Reader, s, msg)
	if err != nil {
		t.Fatal(err)
	}
	if err := schnorr.Verify(msg, sig, other); !errors.Is(err, schnorr.ErrInvalidSignature) {
		t.Fatal("signature verified under the wrong key")
	}
}

func TestRejectsOutOfRangeScalars(t *testing.T) {
	_, pub := keys.Generate([]byte("signer"))
	r := edwards.Order()

	sig := &schnorr.Signature{H: r, Z: big.NewInt(1)}
	if err := schnorr.Verify([]byte("m"), sig, pub); !errors.Is(err, schnorr.ErrInvalidSignature) {
		t.Fatal("h = r accepted")
	}
	sig = &schnorr.Signature{H: big.NewInt(1), Z: new(big.Int).Neg(big.NewInt(1))}
	if err := schnorr.Verify([]byte("m"), sig, pub); !errors.Is(err, schnorr.ErrInvalidSignature) {
		t.Fatal("negative z accepted")
	}
}
