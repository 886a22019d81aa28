package ff3

import (
	"math/big"

	"github.com/shieldfpe/ff3/encoding/basex"
)

// decodeInt decodes s MS-digit-first into an arbitrary-precision integer.
// No reversal is applied here; callers that need REV(NUM(REV(x))) reverse
// the string themselves before calling this.
func decodeInt(s string, codec *basex.Encoding) (*big.Int, error) {
	n, err := codec.DecodeBigInt(s)
	if err != nil {
		return nil, &DomainError{Reason: ErrCharNotInAlphabet, Detail: err.Error()}
	}
	return n, nil
}

// encodeIntReversed encodes n as a length-digit numeral string MS-first,
// left-padded with the alphabet's zero character, then reverses it. The
// result is equivalent to encoding n LS-digit-first and right-padding —
// the representation the Feistel combine step folds back into a half.
func encodeIntReversed(n *big.Int, length int, codec *basex.Encoding) string {
	return reverseString(codec.EncodeBigInt(n, length))
}

// reverseString reverses s rune by rune, preserving multi-byte alphabet
// characters.
func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
