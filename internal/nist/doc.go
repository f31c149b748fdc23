// Package nist parses NIST CAVP response (.rsp) files: the SHA-3 and
// SHAKE known-answer vectors and the Monte Carlo seed files used by the
// conformance tests.
package nist
