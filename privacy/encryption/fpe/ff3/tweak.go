package ff3

// tweakLenFF3 and tweakLenFF31 are the two tweak lengths this Cipher
// accepts: the original FF3 uses a 64-bit tweak, FF3-1 narrowed it to 56
// bits after https://eprint.iacr.org/2017/521 identified a weakness in
// the wider tweak.
const (
	tweakLenFF3  = 8
	tweakLenFF31 = 7
)

// expandTweak splits a raw tweak into its two 4-byte halves Tl, Tr.
//
// For the 8-byte (original FF3) tweak this is a plain split in half.
//
// For the 7-byte (FF3-1) tweak, writing the 56 bits as t[0..55]:
//
//	Tl = t[0..27] || 0000             i.e. tweak[0:4] with byte 3's low nibble cleared
//	Tr = t[32..55] || t[28..31] || 0000   i.e. tweak[4:7], then byte 3's low
//	     nibble moved into the high nibble of Tr[3], with Tr[3]'s low nibble
//	     left at 0.
func expandTweak(tweak []byte) (tl, tr [4]byte, err error) {
	switch len(tweak) {
	case tweakLenFF3:
		copy(tl[:], tweak[0:4])
		copy(tr[:], tweak[4:8])
	case tweakLenFF31:
		copy(tl[:], tweak[0:4])
		tl[3] &= 0xF0

		tr[0] = tweak[4]
		tr[1] = tweak[5]
		tr[2] = tweak[6]
		tr[3] = (tweak[3] & 0x0F) << 4
	default:
		return tl, tr, &ConfigError{Reasons: []ConfigErrorReason{ErrTweakLength}}
	}
	return tl, tr, nil
}
