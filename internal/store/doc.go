// Package store reads and writes the toolkit's on-disk formats: the
// hex-line encodings of public keys, hybrid ciphertexts and signatures,
// and raw binary payloads. Writes go through a temp file and rename so
// a crash never leaves a half-written key or ciphertext behind. Every
// error carries the originating path.
package store
