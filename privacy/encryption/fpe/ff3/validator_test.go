package ff3

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAlphabet(t *testing.T) {
	t.Parallel()

	t.Run("both given, matching", func(t *testing.T) {
		t.Parallel()
		a, err := resolveAlphabet(10, "0123456789")
		require.NoError(t, err)
		assert.Equal(t, "0123456789", a)
	})

	t.Run("both given, mismatched", func(t *testing.T) {
		t.Parallel()
		_, err := resolveAlphabet(10, "0123456789a")
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Reasons, ErrAlphabetRadixMismatch)
	})

	t.Run("alphabet only", func(t *testing.T) {
		t.Parallel()
		a, err := resolveAlphabet(0, "abcdef")
		require.NoError(t, err)
		assert.Equal(t, "abcdef", a)
	})

	t.Run("radix only", func(t *testing.T) {
		t.Parallel()
		a, err := resolveAlphabet(16, "")
		require.NoError(t, err)
		assert.Equal(t, DefaultAlphabet[:16], a)
	})

	t.Run("radix only exceeds default alphabet", func(t *testing.T) {
		t.Parallel()
		_, err := resolveAlphabet(len(DefaultAlphabet)+1, "")
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Reasons, ErrRadixExceedsDefaultAlphabet)
	})

	t.Run("neither given", func(t *testing.T) {
		t.Parallel()
		a, err := resolveAlphabet(0, "")
		require.NoError(t, err)
		assert.Equal(t, "0123456789", a)
	})

	t.Run("negative radix", func(t *testing.T) {
		t.Parallel()
		_, err := resolveAlphabet(-1, "")
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Reasons, ErrRadixOutOfRange)
	})

	t.Run("radix too small", func(t *testing.T) {
		t.Parallel()
		_, err := resolveAlphabet(1, "")
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Reasons, ErrRadixOutOfRange)
	})

	t.Run("alphabet too short", func(t *testing.T) {
		t.Parallel()
		_, err := resolveAlphabet(0, "a")
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Reasons, ErrAlphabetTooShort)
	})

	t.Run("duplicate characters", func(t *testing.T) {
		t.Parallel()
		_, err := resolveAlphabet(0, "aabbcc")
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Reasons, ErrAlphabetDuplicates)
	})

	t.Run("aggregates multiple reasons", func(t *testing.T) {
		t.Parallel()
		_, err := resolveAlphabet(5, "aabbcc")
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Reasons, ErrAlphabetRadixMismatch)
		assert.Contains(t, cfgErr.Reasons, ErrAlphabetDuplicates)
	})
}

func TestNewParamsLengthBounds(t *testing.T) {
	t.Parallel()

	for _, radix := range []int{2, 3, 10, 16, 26, 36, 62} {
		radix := radix
		t.Run("", func(t *testing.T) {
			t.Parallel()
			p, err := newParams(radix, "")
			require.NoError(t, err)

			rf := float64(radix)
			assert.GreaterOrEqual(t, math.Pow(rf, float64(p.minLen)), float64(domainMin))
			// Each half of a maxLen input must fit the 12-byte numeral
			// field of the round block.
			assert.LessOrEqual(t, math.Pow(rf, float64(p.maxLen/2)), math.Pow(2, 96))
			assert.LessOrEqual(t, p.minLen, p.maxLen)
		})
	}
}
