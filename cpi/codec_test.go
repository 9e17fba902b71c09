// cpi/codec_test.go
package cpi

import (
	"encoding/binary"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoderLittleEndianLayout(t *testing.T) {
	buf := make([]byte, 1+2+4+8)
	e := NewEncoder(buf)

	e.PutUint8(0xAB)
	e.PutUint16(0x1122)
	e.PutUint32(0x33445566)
	e.PutUint64(0x778899AABBCCDDEE)

	require.Equal(t, len(buf), e.Len())
	assert.Equal(t, byte(0xAB), buf[0])
	assert.Equal(t, uint16(0x1122), binary.LittleEndian.Uint16(buf[1:3]))
	assert.Equal(t, uint32(0x33445566), binary.LittleEndian.Uint32(buf[3:7]))
	assert.Equal(t, uint64(0x778899AABBCCDDEE), binary.LittleEndian.Uint64(buf[7:15]))
}

func TestEncoderInt64TwosComplement(t *testing.T) {
	buf := make([]byte, 8)
	NewEncoder(buf).PutInt64(-1)
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, buf)
}

func TestEncoderUint128LowQuadwordFirst(t *testing.T) {
	buf := make([]byte, 16)
	NewEncoder(buf).PutUint128(bin.Uint128{Lo: 1, Hi: 2})

	assert.Equal(t, uint64(1), binary.LittleEndian.Uint64(buf[0:8]))
	assert.Equal(t, uint64(2), binary.LittleEndian.Uint64(buf[8:16]))
}

func TestEncoderBoolSingleByte(t *testing.T) {
	buf := make([]byte, 2)
	e := NewEncoder(buf)
	e.PutBool(true)
	e.PutBool(false)

	assert.Equal(t, []byte{1, 0}, buf)
}

func TestEncoderPublicKey(t *testing.T) {
	key := solana.NewWallet().PublicKey()
	buf := make([]byte, solana.PublicKeyLength)
	NewEncoder(buf).PutPublicKey(key)

	assert.Equal(t, key[:], buf)
}

type testArgs struct {
	A uint64
	B uint64
	C bool
}

func (a testArgs) EncodedLen() int { return 17 }

func (a testArgs) EncodeArgs(e *Encoder) {
	e.PutUint64(a.A)
	e.PutUint64(a.B)
	e.PutBool(a.C)
}

func TestEncodingIsDeterministic(t *testing.T) {
	args := testArgs{A: 1_000_000, B: 950_000, C: true}

	encode := func() []byte {
		buf := make([]byte, args.EncodedLen())
		args.EncodeArgs(NewEncoder(buf))
		return buf
	}

	first := encode()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, encode())
	}
}

func TestEncodedLenIndependentOfValues(t *testing.T) {
	small := testArgs{A: 0, B: 0, C: false}
	large := testArgs{A: ^uint64(0), B: ^uint64(0), C: true}

	assert.Equal(t, small.EncodedLen(), large.EncodedLen())
}

func TestRawArgsPassthrough(t *testing.T) {
	raw := RawArgs{0xDE, 0xAD, 0xBE, 0xEF}
	buf := make([]byte, raw.EncodedLen())
	raw.EncodeArgs(NewEncoder(buf))

	assert.Equal(t, []byte(raw), buf)
}

func TestNoArgsEncodesNothing(t *testing.T) {
	var args NoArgs
	assert.Equal(t, 0, args.EncodedLen())

	e := NewEncoder(nil)
	args.EncodeArgs(e)
	assert.Equal(t, 0, e.Len())
}
