// Package symmetric implements passphrase-keyed authenticated encryption
// built directly on the sponge: a SHAKE-128 keystream seeded by the
// passphrase and a fresh 16-byte nonce masks the payload, and a SHA3-256
// tag over nonce, passphrase digest and masked payload authenticates it.
// The record layout is masked || nonce || tag.
package symmetric
