package ff3

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"math/big"
	"sync"

	"github.com/awnumar/memguard"

	shieldfpe "github.com/shieldfpe/ff3"
	"github.com/shieldfpe/ff3/log"
	"github.com/shieldfpe/ff3/value"
)

const numRounds = 8

// Cipher is an FF3/FF3-1 format-preserving cipher bound to a single
// (key, radix, alphabet) configuration. A Cipher is safe for concurrent
// use: it holds no mutable state beyond the one-time AES key schedule.
type Cipher struct {
	key   *memguard.Enclave
	tweak value.Redacted[[]byte]

	params *params
	block  cipher.Block

	closeOnce sync.Once
	closed    bool
	mu        sync.RWMutex
}

// NewCipher builds a Cipher over the given radix, using
// DefaultAlphabet[:radix] as the alphabet. radix must not exceed 62
// (len(DefaultAlphabet)); callers needing a larger radix must supply an
// explicit alphabet via NewCipherWithAlphabet.
func NewCipher(radix int, key, tweak []byte) (*Cipher, error) {
	return newCipher(radix, "", key, tweak)
}

// NewCipherWithAlphabet builds a Cipher over a caller-supplied alphabet;
// the radix is the alphabet's length.
func NewCipherWithAlphabet(alphabet string, key, tweak []byte) (*Cipher, error) {
	return newCipher(0, alphabet, key, tweak)
}

func newCipher(radix int, alphabet string, key, tweak []byte) (*Cipher, error) {
	c := &configErrorCollector{}

	switch len(key) {
	case 16:
		if shieldfpe.InFIPSMode() {
			c.add(ErrKeyLength)
		}
	case 24, 32:
	default:
		c.add(ErrKeyLength)
	}
	if _, _, err := expandTweak(tweak); err != nil {
		c.add(ErrTweakLength)
	}
	if err := c.err(); err != nil {
		return nil, err
	}

	p, err := newParams(radix, alphabet)
	if err != nil {
		return nil, err
	}

	reversed := make([]byte, len(key))
	for i, b := range key {
		reversed[len(key)-1-i] = b
	}

	enclave := memguard.NewEnclave(reversed)
	lb, err := enclave.Open()
	if err != nil {
		return nil, fmt.Errorf("ff3: sealing key: %w", err)
	}
	block, err := aes.NewCipher(lb.Bytes())
	lb.Destroy()
	if err != nil {
		return nil, fmt.Errorf("ff3: building AES key schedule: %w", err)
	}

	storedTweak := make([]byte, len(tweak))
	copy(storedTweak, tweak)

	log.Field("radix", p.codec.Radix()).Field("minLen", p.minLen).Field("maxLen", p.maxLen).Message("ff3 cipher constructed")

	return &Cipher{
		key:    enclave,
		tweak:  value.AsRedacted(storedTweak),
		params: p,
		block:  block,
	}, nil
}

// Close drops the Cipher's references to the sealed key enclave and the
// cached AES key schedule. Calls after the first have no further effect;
// Encrypt/Decrypt called after Close return an error instead of operating
// on discarded state.
func (c *Cipher) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closeOnce.Do(func() {
		c.closed = true
		c.block = nil
		c.key = nil
	})
	return nil
}

// Encrypt encrypts plaintext using the Cipher's default tweak.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	return c.EncryptWithTweak(plaintext, c.tweak.Unwrap())
}

// Decrypt decrypts ciphertext using the Cipher's default tweak.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	return c.DecryptWithTweak(ciphertext, c.tweak.Unwrap())
}

// EncryptWithTweak encrypts plaintext using an explicit tweak, ignoring
// the Cipher's default tweak.
func (c *Cipher) EncryptWithTweak(plaintext string, tweak []byte) (string, error) {
	return c.transform(plaintext, tweak, true)
}

// DecryptWithTweak decrypts ciphertext using an explicit tweak, ignoring
// the Cipher's default tweak.
func (c *Cipher) DecryptWithTweak(ciphertext string, tweak []byte) (string, error) {
	return c.transform(ciphertext, tweak, false)
}

func (c *Cipher) transform(input string, tweak []byte, encrypting bool) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return "", fmt.Errorf("ff3: cipher closed")
	}

	n := len([]rune(input))
	if n < c.params.minLen || n > c.params.maxLen {
		return "", &DomainError{Reason: ErrLengthOutOfRange, Detail: fmt.Sprintf("length %d not in [%d, %d]", n, c.params.minLen, c.params.maxLen)}
	}
	if !c.params.codec.Contains(input) {
		return "", &DomainError{Reason: ErrCharNotInAlphabet, Detail: input}
	}

	tl, tr, err := expandTweak(tweak)
	if err != nil {
		return "", err
	}

	r := []rune(input)
	u := (len(r) + 1) / 2
	v := len(r) - u
	a := string(r[:u])
	b := string(r[u:])

	radix := big.NewInt(int64(c.params.codec.Radix()))
	modU := new(big.Int).Exp(radix, big.NewInt(int64(u)), nil)
	modV := new(big.Int).Exp(radix, big.NewInt(int64(v)), nil)

	step := func(i int) error {
		var m int
		var w [4]byte
		if i%2 == 0 {
			m, w = u, tr
		} else {
			m, w = v, tl
		}

		var feistelInput string
		if encrypting {
			feistelInput = b
		} else {
			feistelInput = a
		}

		p, err := buildP(i, w, reverseString(feistelInput), c.params.codec)
		if err != nil {
			return err
		}

		s, err := c.ecbEncrypt(reverseBlock(p))
		if err != nil {
			return err
		}
		s = reverseBlock(s)
		y := bigIntFromBlock(s)

		var base string
		if encrypting {
			base = a
		} else {
			base = b
		}
		nBase, err := decodeInt(reverseString(base), c.params.codec)
		if err != nil {
			return err
		}

		var combined *big.Int
		if encrypting {
			combined = new(big.Int).Add(nBase, y)
		} else {
			combined = new(big.Int).Sub(nBase, y)
		}

		var mod *big.Int
		if i%2 == 0 {
			mod = modU
		} else {
			mod = modV
		}
		combined.Mod(combined, mod)

		newHalf := encodeIntReversed(combined, m, c.params.codec)

		if encrypting {
			a, b = b, newHalf
		} else {
			b, a = a, newHalf
		}
		return nil
	}

	if encrypting {
		for i := 0; i < numRounds; i++ {
			if err := step(i); err != nil {
				return "", err
			}
		}
	} else {
		for i := numRounds - 1; i >= 0; i-- {
			if err := step(i); err != nil {
				return "", err
			}
		}
	}

	return a + b, nil
}

// ecbEncrypt encrypts a single 16-byte block under the Cipher's key. CBC
// mode over exactly one block with a zero IV is algebraically identical
// to ECB, and avoids pulling in a separate ECB implementation that the
// standard library deliberately omits.
func (c *Cipher) ecbEncrypt(block [blockSize]byte) ([blockSize]byte, error) {
	var out [blockSize]byte
	if c.block == nil {
		return out, fmt.Errorf("ff3: cipher closed")
	}

	mode := cipher.NewCBCEncrypter(c.block, make([]byte, blockSize))
	mode.CryptBlocks(out[:], block[:])
	return out, nil
}

func reverseBlock(b [blockSize]byte) [blockSize]byte {
	var out [blockSize]byte
	for i, v := range b {
		out[blockSize-1-i] = v
	}
	return out
}
