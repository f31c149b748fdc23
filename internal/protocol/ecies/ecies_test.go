package ecies_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"spongecrypt/internal/edwards"
	"spongecrypt/internal/keys"
	"spongecrypt/internal/protocol/ecies"
)

func roundTrip(t *testing.T, passphrase, msg []byte) *ecies.Ciphertext {
	t.Helper()
	s, pub := keys.Generate(passphrase)

	ct, err := ecies.Encrypt(rand.Reader, pub, msg)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	got, err := ecies.Decrypt(ct, s)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(got, msg) {
		t.Fatalf("round trip mismatch: got %x want %x", got, msg)
	}
	return ct
}

func TestRoundTrip(t *testing.T) {
	roundTrip(t, []byte("alpha"), []byte("attack at dawn"))
}

func TestRoundTripEmptyMessage(t *testing.T) {
	ct := roundTrip(t, []byte("alpha"), nil)
	if len(ct.C) != 0 {
		t.Fatalf("masked payload should be empty, have %d bytes", len(ct.C))
	}
}

func TestRoundTripLargeMessage(t *testing.T) {
	msg := make([]byte, 10_000)
	for i := range msg {
		msg[i] = byte(i)
	}
	roundTrip(t, []byte("large"), msg)
}

func TestCiphertextLength(t *testing.T) {
	msg := []byte("some message")
	ct := roundTrip(t, []byte("beta"), msg)
	if len(ct.C) != len(msg) {
		t.Fatalf("|c| = %d, want |m| = %d", len(ct.C), len(msg))
	}
	if len(ct.Tag) != ecies.TagSize {
		t.Fatalf("tag is %d bytes", len(ct.Tag))
	}
}

func TestWrongKeyFails(t *testing.T) {
	_, pub := keys.Generate([]byte("alice"))
	wrong, _ := keys.Generate([]byte("mallory"))

	ct, err := ecies.Encrypt(rand.Reader, pub, []byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ecies.Decrypt(ct, wrong); !errors.Is(err, ecies.ErrInvalidTag) {
		t.Fatalf("want ErrInvalidTag, got %v", err)
	}
}

// Single-bit flips in the masked payload (bits 0, 3 and 6 of every byte)
// must be caught by the tag, and no plaintext may come back alongside
// the error.
func TestTamperedPayload(t *testing.T) {
	s, pub := keys.Generate([]byte("gamma"))
	ct, err := ecies.Encrypt(rand.Reader, pub, []byte("tamper target"))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(ct.C); i++ {
		for bit := uint(0); bit < 8; bit += 3 {
			ct.C[i] ^= 1 << bit
			pt, err := ecies.Decrypt(ct, s)
			ct.C[i] ^= 1 << bit

			if !errors.Is(err, ecies.ErrInvalidTag) {
				t.Fatalf("byte %d bit %d: want ErrInvalidTag, got %v", i, bit, err)
			}
			if pt != nil {
				t.Fatalf("byte %d bit %d: plaintext released on tag failure", i, bit)
			}
		}
	}
}

func TestTamperedTag(t *testing.T) {
	s, pub := keys.Generate([]byte("delta"))
	ct, err := ecies.Encrypt(rand.Reader, pub, []byte("msg"))
	if err != nil {
		t.Fatal(err)
	}
	ct.Tag[0] ^= 0x01
	if _, err := ecies.Decrypt(ct, s); !errors.Is(err, ecies.ErrInvalidTag) {
		t.Fatalf("want ErrInvalidTag, got %v", err)
	}
}

// Changing Z.y must fail as either a decompression error or a tag
// mismatch, never as a successful decryption.
func TestTamperedPoint(t *testing.T) {
	s, pub := keys.Generate([]byte("epsilon"))
	ct, err := ecies.Encrypt(rand.Reader, pub, []byte("msg"))
	if err != nil {
		t.Fatal(err)
	}
	ct.ZY = new(big.Int).Add(ct.ZY, big.NewInt(1))
	pt, err := ecies.Decrypt(ct, s)
	if err == nil {
		t.Fatal("tampered Z.y decrypted successfully")
	}
	if !errors.Is(err, edwards.ErrInvalidPoint) && !errors.Is(err, ecies.ErrInvalidTag) {
		t.Fatalf("unexpected error kind: %v", err)
	}
	if pt != nil {
		t.Fatal("plaintext released for tampered point")
	}
}

// The neutral element as Z would let anyone forge; it must be rejected
// outright.
func TestNeutralPointRejected(t *testing.T) {
	s, _ := keys.Generate([]byte("zeta"))
	o := edwards.Zero()
	ct := &ecies.Ciphertext{ZX: o.X, ZY: o.Y, C: []byte{1, 2, 3}, Tag: make([]byte, ecies.TagSize)}
	if _, err := ecies.Decrypt(ct, s); !errors.Is(err, edwards.ErrInvalidPoint) {
		t.Fatalf("want ErrInvalidPoint for neutral Z, got %v", err)
	}
}
