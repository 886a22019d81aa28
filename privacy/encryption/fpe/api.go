// Package fpe provides format-preserving encryption helpers built on top
// of the ff3 package: encrypting an IP address or the capture groups of a
// regular expression match while keeping the surrounding format intact.
package fpe

// Operation selects whether a helper in this package encrypts or
// decrypts its input.
type Operation uint8

const (
	// Encrypt requests the forward (plaintext -> ciphertext) transform.
	Encrypt Operation = iota
	// Decrypt requests the inverse (ciphertext -> plaintext) transform.
	Decrypt
)
