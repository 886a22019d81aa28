package ff3

import (
	"math"
	"unicode/utf8"

	"github.com/shieldfpe/ff3/encoding/basex"
)

// MaxRadix is the largest radix FF3/FF3-1 supports: the round-block
// builder encodes a numeral value into 12 bytes, and NIST SP 800-38G caps
// the radix at 2^16 independently of that.
const MaxRadix = 1 << 16

// domainMin is the minimum supported domain size, 10^6, per NIST SP
// 800-38G Revision 1.
const domainMin = 1_000_000

// DefaultAlphabet is used when only a radix is supplied: digits, then
// lowercase, then uppercase letters, 62 characters total.
const DefaultAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// params is the normalized, validated configuration a Cipher is built
// from: a radix/alphabet pair plus the derived length bounds.
type params struct {
	alphabet string
	codec    *basex.Encoding
	minLen   int
	maxLen   int
}

// resolveAlphabet applies the normalization rules from the validator: if
// both radix and alphabet are given they must agree; if only one is
// given the other is derived; if neither is given radix 10 with decimal
// digits is used.
//
// radix == 0 and alphabet == "" both mean "not supplied"; a negative
// radix is rejected with ErrRadixOutOfRange.
func resolveAlphabet(radix int, alphabet string) (string, error) {
	c := &configErrorCollector{}

	if radix < 0 {
		c.add(ErrRadixOutOfRange)
		return "", c.err()
	}

	switch {
	case radix > 0 && alphabet != "":
		if utf8.RuneCountInString(alphabet) != radix {
			c.add(ErrAlphabetRadixMismatch)
		}
	case alphabet != "":
		radix = utf8.RuneCountInString(alphabet)
	case radix > 0:
		if radix > len(DefaultAlphabet) {
			c.add(ErrRadixExceedsDefaultAlphabet)
			return "", c.err()
		}
		alphabet = DefaultAlphabet[:radix]
	default:
		radix = 10
		alphabet = DefaultAlphabet[:10]
	}

	if radix < 2 || radix > MaxRadix {
		c.add(ErrRadixOutOfRange)
	}
	if utf8.RuneCountInString(alphabet) < 2 {
		c.add(ErrAlphabetTooShort)
	}
	if hasDuplicateRune(alphabet) {
		c.add(ErrAlphabetDuplicates)
	}

	if err := c.err(); err != nil {
		return "", err
	}
	return alphabet, nil
}

func hasDuplicateRune(s string) bool {
	seen := make(map[rune]struct{}, len(s))
	for _, r := range s {
		if _, ok := seen[r]; ok {
			return true
		}
		seen[r] = struct{}{}
	}
	return false
}

// newParams normalizes (radix, alphabet), builds the Numeral Codec, and
// derives [minLen, maxLen].
//
// minLen = ceil(log_radix(1_000_000))
// maxLen = 2 * floor(96 / log2(radix))   (equivalent to 2*floor(log_radix(2^96))
// without the precision loss of computing log_radix directly for large radixes)
func newParams(radix int, alphabet string) (*params, error) {
	resolved, err := resolveAlphabet(radix, alphabet)
	if err != nil {
		return nil, err
	}

	codec, err := basex.NewEncoding(resolved)
	if err != nil {
		// resolveAlphabet already validated distinctness/length; this would
		// only trip on an internal inconsistency.
		return nil, &ConfigError{Reasons: []ConfigErrorReason{ErrAlphabetDuplicates}}
	}

	r := float64(codec.Radix())
	minLen := int(math.Ceil(math.Log(domainMin) / math.Log(r)))
	maxLen := 2 * int(math.Floor(96/math.Log2(r)))

	return &params{
		alphabet: resolved,
		codec:    codec,
		minLen:   minLen,
		maxLen:   maxLen,
	}, nil
}
