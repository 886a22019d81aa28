package ff3

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ConfigErrorReason identifies one way a (key, tweak, radix, alphabet)
// configuration can be rejected at construction time.
type ConfigErrorReason string

// Reasons a ConfigError can carry. Several may apply to the same call,
// e.g. an alphabet that is both too short and mismatched with the given
// radix.
const (
	ErrRadixOutOfRange             ConfigErrorReason = "radix-out-of-range"
	ErrAlphabetTooShort            ConfigErrorReason = "alphabet-too-short"
	ErrAlphabetDuplicates          ConfigErrorReason = "alphabet-duplicates"
	ErrAlphabetRadixMismatch       ConfigErrorReason = "alphabet-radix-mismatch"
	ErrRadixExceedsDefaultAlphabet ConfigErrorReason = "radix-exceeds-default-alphabet"
	ErrTweakLength                 ConfigErrorReason = "tweak-length"
	ErrKeyLength                   ConfigErrorReason = "key-length"
)

// ConfigError reports every reason a Cipher could not be constructed.
// Validation does not stop at the first problem found: a caller who
// passes a mismatched radix/alphabet pair and a duplicate-character
// alphabet in the same call sees both reasons.
type ConfigError struct {
	Reasons []ConfigErrorReason

	multi *multierror.Error
}

func (e *ConfigError) Error() string {
	if e == nil || len(e.Reasons) == 0 {
		return "ff3: invalid configuration"
	}
	reasons := make([]string, len(e.Reasons))
	for i, r := range e.Reasons {
		reasons[i] = string(r)
	}
	return fmt.Sprintf("ff3: invalid configuration: %s", strings.Join(reasons, ", "))
}

// Is supports errors.Is(err, &ConfigError{Reasons: []ConfigErrorReason{ErrRadixOutOfRange}})
// style checks against a specific reason: it matches when target carries
// exactly one reason and e carries that reason among its own.
func (e *ConfigError) Is(target error) bool {
	other, ok := target.(*ConfigError)
	if !ok || other == nil || len(other.Reasons) != 1 {
		return false
	}
	for _, r := range e.Reasons {
		if r == other.Reasons[0] {
			return true
		}
	}
	return false
}

// configErrorCollector accumulates config validation failures across a
// single validation pass and resolves to a *ConfigError (or nil) at the
// end of it.
type configErrorCollector struct {
	multi *multierror.Error
}

func (c *configErrorCollector) add(reason ConfigErrorReason) {
	c.multi = multierror.Append(c.multi, fmt.Errorf("%s", reason))
}

func (c *configErrorCollector) err() error {
	if c.multi == nil || c.multi.Len() == 0 {
		return nil
	}

	reasons := make([]ConfigErrorReason, 0, c.multi.Len())
	for _, e := range c.multi.Errors {
		reasons = append(reasons, ConfigErrorReason(e.Error()))
	}

	return &ConfigError{Reasons: reasons, multi: c.multi}
}

// DomainErrorReason identifies why a plaintext/ciphertext was rejected at
// call time.
type DomainErrorReason string

const (
	ErrLengthOutOfRange  DomainErrorReason = "length-out-of-range"
	ErrCharNotInAlphabet DomainErrorReason = "char-not-in-alphabet"
)

// DomainError reports a plaintext/ciphertext that falls outside the
// configured length bounds or alphabet.
type DomainError struct {
	Reason DomainErrorReason
	Detail string
}

func (e *DomainError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("ff3: %s", e.Reason)
	}
	return fmt.Sprintf("ff3: %s: %s", e.Reason, e.Detail)
}
