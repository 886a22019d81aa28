// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

package basex

import (
	"errors"
	"fmt"
	"math/big"
)

// Encoding is a big-integer <-> string codec bound to a fixed, ordered
// alphabet. The index of a character within the alphabet is its digit
// value, so "0123456789" and "9876543210" are both valid base-10 alphabets
// but encode different digits to the same value.
//
// Unlike github.com/eknkc/basex (which this package was originally copied
// from), Encoding operates on *big.Int rather than on raw byte slices: a
// byte-oriented codec can't express a digit count exactly, and format
// preserving encryption needs to produce a numeral string of an exact,
// caller-specified length.
type Encoding struct {
	alphabet []rune
	digit    map[rune]int
	radix    *big.Int
}

// NewEncoding builds an Encoding from alphabet. Characters must be
// pairwise distinct and there must be at least two of them.
func NewEncoding(alphabet string) (*Encoding, error) {
	runes := []rune(alphabet)
	if len(runes) < 2 {
		return nil, errors.New("basex: alphabet must contain at least two characters")
	}

	digit := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, ok := digit[r]; ok {
			return nil, fmt.Errorf("basex: alphabet contains duplicate character %q", r)
		}
		digit[r] = i
	}

	return &Encoding{
		alphabet: runes,
		digit:    digit,
		radix:    big.NewInt(int64(len(runes))),
	}, nil
}

// Radix returns the size of the alphabet backing this Encoding.
func (e *Encoding) Radix() int {
	return len(e.alphabet)
}

// EncodeBigInt returns the base-radix representation of n, most
// significant digit first, left-padded with the alphabet's zero digit to
// exactly length characters. n must be non-negative.
func (e *Encoding) EncodeBigInt(n *big.Int, length int) string {
	if n.Sign() < 0 {
		panic("basex: EncodeBigInt: n must be non-negative")
	}

	digits := make([]rune, 0, length)
	rem := new(big.Int)
	quo := new(big.Int).Set(n)

	for quo.Sign() > 0 {
		quo.QuoRem(quo, e.radix, rem)
		digits = append(digits, e.alphabet[rem.Int64()])
	}
	for len(digits) < length {
		digits = append(digits, e.alphabet[0])
	}

	// digits was built least-significant-digit-first; reverse in place to
	// get the conventional most-significant-first string.
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	return string(digits)
}

// DecodeBigInt parses s as a base-radix numeral string, most significant
// digit first, and returns the integer it represents. Every rune of s
// must appear in the alphabet.
func (e *Encoding) DecodeBigInt(s string) (*big.Int, error) {
	out := big.NewInt(0)
	for _, r := range s {
		d, ok := e.digit[r]
		if !ok {
			return nil, fmt.Errorf("basex: character %q is not in the alphabet", r)
		}
		out.Mul(out, e.radix)
		out.Add(out, big.NewInt(int64(d)))
	}
	return out, nil
}

// Contains reports whether every rune of s is a member of the alphabet.
func (e *Encoding) Contains(s string) bool {
	for _, r := range s {
		if _, ok := e.digit[r]; !ok {
			return false
		}
	}
	return true
}
