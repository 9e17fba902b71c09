package cpi

import "crypto/sha256"

// AnchorTag derives the 8-byte discriminator an Anchor program uses to
// dispatch the named instruction: the first 8 bytes of
// sha256("global:<name>").
func AnchorTag(name string) []byte {
	h := sha256.Sum256([]byte("global:" + name))
	return h[:8]
}

// LegacyTag builds the discriminator of a non-Anchor program, which is
// typically a single instruction-code byte (Raydium AMM uses 9, SolFi uses
// 0x07).
func LegacyTag(code ...byte) []byte {
	tag := make([]byte, len(code))
	copy(tag, code)
	return tag
}
