// Package shieldfpe provides a format-preserving encryption engine
// implementing FF3 and FF3-1, the NIST Draft SP 800-38G Revision 1
// Feistel-based constructions for encrypting a string over an arbitrary
// alphabet into a ciphertext string of identical length and alphabet.
//
// The canonical use case is tokenizing structured identifiers — account
// numbers, national IDs, IP addresses — where downstream systems require
// the tokenized value to keep the original length and character class.
//
// The cipher itself lives in ./privacy/encryption/fpe/ff3; two
// convenience wrappers for IP addresses and regular-expression capture
// groups live in ./privacy/encryption/fpe.
//
// This package's own exports are limited to the FIPS compliance flag
// (SetFIPSMode/InFIPSMode), which the ff3 package consults to restrict
// the AES key sizes it accepts.
package shieldfpe
