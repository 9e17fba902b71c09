package cpi

import (
	"encoding/binary"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// Args is the typed argument record of one instruction. Implementations are
// closed structs of fixed-width fields, so encoding cannot fail and the
// encoded length never depends on field values.
type Args interface {
	// EncodedLen returns the exact number of bytes EncodeArgs writes.
	EncodedLen() int

	// EncodeArgs writes the fields in declaration order into e.
	EncodeArgs(e *Encoder)
}

// Encoder writes fixed-width values into a preallocated buffer. Numeric
// fields are little-endian, matching the SVM's native word order. No
// alignment padding is ever inserted between fields.
type Encoder struct {
	buf []byte
	off int
}

// NewEncoder wraps buf. The caller sizes buf from Args.EncodedLen, so a
// well-typed Args value always fits exactly.
func NewEncoder(buf []byte) *Encoder {
	return &Encoder{buf: buf}
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int { return e.off }

func (e *Encoder) PutUint8(v uint8) {
	e.buf[e.off] = v
	e.off++
}

func (e *Encoder) PutUint16(v uint16) {
	binary.LittleEndian.PutUint16(e.buf[e.off:], v)
	e.off += 2
}

func (e *Encoder) PutUint32(v uint32) {
	binary.LittleEndian.PutUint32(e.buf[e.off:], v)
	e.off += 4
}

func (e *Encoder) PutUint64(v uint64) {
	binary.LittleEndian.PutUint64(e.buf[e.off:], v)
	e.off += 8
}

func (e *Encoder) PutInt64(v int64) {
	e.PutUint64(uint64(v))
}

// PutUint128 writes the low quadword first, then the high one.
func (e *Encoder) PutUint128(v bin.Uint128) {
	e.PutUint64(v.Lo)
	e.PutUint64(v.Hi)
}

// PutBool writes a single byte: 1 for true, 0 for false.
func (e *Encoder) PutBool(v bool) {
	if v {
		e.buf[e.off] = 1
	} else {
		e.buf[e.off] = 0
	}
	e.off++
}

// PutPublicKey copies the 32 raw key bytes verbatim.
func (e *Encoder) PutPublicKey(k solana.PublicKey) {
	copy(e.buf[e.off:], k[:])
	e.off += solana.PublicKeyLength
}

// PutBytes copies b verbatim. Only valid for fields whose length is fixed
// by the instruction's layout.
func (e *Encoder) PutBytes(b []byte) {
	copy(e.buf[e.off:], b)
	e.off += len(b)
}

// RawArgs passes pre-serialized instruction data through unchanged. Used by
// protocols whose payloads are replayed or built outside the codec (for
// example HumidiFi's obfuscated data captured from a prior transaction).
type RawArgs []byte

func (r RawArgs) EncodedLen() int       { return len(r) }
func (r RawArgs) EncodeArgs(e *Encoder) { e.PutBytes(r) }

// NoArgs is the argument record of tag-only instructions.
type NoArgs struct{}

func (NoArgs) EncodedLen() int     { return 0 }
func (NoArgs) EncodeArgs(*Encoder) {}
