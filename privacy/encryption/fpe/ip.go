package fpe

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/netip"

	"github.com/shieldfpe/ff3/privacy/encryption/fpe/ff3"
)

// IP uses FF3-1 to apply format preserving encryption on the input
// netip.Addr. An IPv4 input yields a reversible IPv4 output, and
// likewise for IPv6.
func IP(key, tweak []byte, ip netip.Addr, operation Operation) (*netip.Addr, error) {
	var raw []byte
	switch {
	case ip.Is4():
		v4 := ip.As4()
		raw = v4[:]
	case ip.Is6():
		v6 := ip.As16()
		raw = v6[:]
	default:
		return nil, errors.New("invalid ip address")
	}
	ipHex := hex.EncodeToString(raw)

	cph, err := ff3.NewCipherWithAlphabet("0123456789abcdef", key, tweak)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize the encryption engine: %w", err)
	}
	defer cph.Close()

	var outHex string
	switch operation {
	case Encrypt:
		outHex, err = cph.Encrypt(ipHex)
	case Decrypt:
		outHex, err = cph.Decrypt(ipHex)
	default:
		return nil, fmt.Errorf("unsupported operation")
	}
	if err != nil {
		return nil, fmt.Errorf("unable to successfully apply the requested operation: %w", err)
	}

	outRaw, err := hex.DecodeString(outHex)
	if err != nil {
		return nil, fmt.Errorf("unable to decode hex output: %w", err)
	}

	out, valid := netip.AddrFromSlice(outRaw)
	if !valid {
		return nil, errors.New("invalid decoded IP address")
	}

	return &out, nil
}
