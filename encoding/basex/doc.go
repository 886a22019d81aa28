// Package basex provides fast base encoding / decoding of any given alphabet.
//
// It started from github.com/eknkc/basex, but operates on *big.Int rather
// than on raw byte slices: a byte-oriented codec can't express a digit
// count exactly, and format preserving encryption needs to produce a
// numeral string of an exact, caller-specified length. See EncodeBigInt
// and DecodeBigInt.
//
// This library is meant to be used for a given static alphabet, if you are
// planning to use common encoding such as Base64, please ensure to use the
// dedicated library to support additionnal encoding features (padding, etc.).
package basex
