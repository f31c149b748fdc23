// Package commands wires the spongecrypt sub-commands: hashing, MACs,
// symmetric and public-key encryption, and signatures. Each command is
// file-to-file; nothing secret is ever persisted, only the passphrase
// holder can re-derive the private scalar.
package commands
