// Package ff3 provides FF3 and FF3-1 format preserving encryption.
//
// FF3-1 is NIST Draft SP 800-38G Revision 1's format-preserving Feistel
// construction; FF3 is the original, 64-bit-tweak construction it
// replaced after the tweak-collision weakness described in
// https://eprint.iacr.org/2017/521 was published against the 64-bit
// tweak. Both share the same eight-round structure and round function and
// differ only in how the tweak is split into Tl/Tr, so a single Cipher
// type serves both: pass a 7-byte tweak for FF3-1, an 8-byte tweak for
// FF3.
//
// Credits to https://github.com/ubiqsecurity/ubiq-fpe-go
//
// ## Changes
//
// * FF1 removed due to patent identified for [MicroFocus / Voltage](https://www.microfocus.com/media/data-sheet/voltage_securedata_security_ds.pdf)
// * Support alphabet-based encoding vs fixed radix to support various bases
// * Both FF3 (64-bit tweak) and FF3-1 (56-bit tweak) are handled by the
//   same Cipher, selected by the length of the tweak passed in
package ff3
