// Package keys derives NUMS-256 key pairs from passphrases. The private
// scalar is a pure function of the passphrase, so nothing secret is ever
// written to disk: holders of the passphrase can re-derive the scalar at
// decryption or signing time.
package keys
