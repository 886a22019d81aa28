package ff3

import (
	"math/big"

	"github.com/shieldfpe/ff3/encoding/basex"
)

// blockSize is the AES block size the round function's ECB step operates
// on, and so the fixed size of the P block built below.
const blockSize = 16

// buildP assembles the 16-byte input to the round function for round i:
//
//	P[0:4]  = the round's half-tweak W, with P[3] additionally XORed with
//	          the round index
//	P[4:16] = the numeral value of the opposite half B, reversed and
//	          decoded as an integer, written as a 12-byte big-endian
//	          integer
//
// reversedB is the opposite half's numeral string with its character
// order reversed, per the alternating-Feistel construction's requirement
// that each round consume its input half back-to-front.
func buildP(round int, w [4]byte, reversedB string, codec *basex.Encoding) ([blockSize]byte, error) {
	var p [blockSize]byte

	copy(p[0:4], w[:])
	p[3] ^= byte(round)

	n, err := decodeInt(reversedB, codec)
	if err != nil {
		return p, err
	}

	n.FillBytes(p[4:16])
	return p, nil
}

// bigIntFromBlock reinterprets all blockSize bytes of a round function
// output as the big-endian integer y used to update a half in the
// Feistel round.
func bigIntFromBlock(block [blockSize]byte) *big.Int {
	return new(big.Int).SetBytes(block[:])
}
