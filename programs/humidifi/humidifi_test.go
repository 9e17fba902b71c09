// programs/humidifi/humidifi_test.go
package humidifi

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/executor"
)

func newKeys(n int) []solana.PublicKey {
	keys := make([]solana.PublicKey, n)
	for i := range keys {
		keys[i] = solana.NewWallet().PublicKey()
	}
	return keys
}

func TestXORIsSymmetric(t *testing.T) {
	key := solana.NewWallet().PublicKey()
	var raw [32]byte
	copy(raw[:], key[:])

	encoded := XOREncodePubkey(raw)
	assert.NotEqual(t, raw, encoded)
	assert.Equal(t, raw, XORDecodePubkey(encoded))

	for i := 0; i < 4; i++ {
		v := uint64(0xDEADBEEF) + uint64(i)
		assert.Equal(t, v, XORDecodeUint64(XOREncodeUint64(v, i), i))
	}
}

func TestParsePoolMints(t *testing.T) {
	quote := solana.NewWallet().PublicKey()
	base := solana.NewWallet().PublicKey()

	poolData := make([]byte, MinPoolDataSize)
	var buf [32]byte
	copy(buf[:], quote[:])
	enc := XOREncodePubkey(buf)
	copy(poolData[QuoteMintOffset:], enc[:])
	copy(buf[:], base[:])
	enc = XOREncodePubkey(buf)
	copy(poolData[BaseMintOffset:], enc[:])

	gotQuote, ok := ParseQuoteMint(poolData)
	require.True(t, ok)
	assert.Equal(t, quote, gotQuote)

	gotBase, ok := ParseBaseMint(poolData)
	require.True(t, ok)
	assert.Equal(t, base, gotBase)

	_, ok = ParseQuoteMint(poolData[:QuoteMintOffset+16])
	assert.False(t, ok)
}

func TestSwapPayloadShape(t *testing.T) {
	bound, err := Swap.Bind(newKeys(9)...)
	require.NoError(t, err)

	rec := &executor.Recorder{}
	swapID := uint64(42)
	err = ExecSwap(context.Background(), rec, bound, SwapArgs{
		SwapID:    swapID,
		Direction: BaseToQuote,
	})
	require.NoError(t, err)

	sub, ok := rec.Last()
	require.True(t, ok)
	require.Len(t, sub.Data, SwapDataSize)

	// No discriminator: the obfuscated swap id leads the payload.
	assert.Equal(t, swapID, XORDecodeUint64(binary.LittleEndian.Uint64(sub.Data[0:8]), 0))
	assert.Equal(t, uint64(0), XORDecodeUint64(binary.LittleEndian.Uint64(sub.Data[8:16]), 1))
	assert.Equal(t, uint64(0), XORDecodeUint64(binary.LittleEndian.Uint64(sub.Data[17:25]), 3))
}

func TestDirectionByteInvertedBetweenVersions(t *testing.T) {
	payload := func(v2 bool, dir Direction) byte {
		args := SwapArgs{SwapID: 1, Direction: dir, V2: v2}
		buf := make([]byte, args.EncodedLen())
		args.EncodeArgs(cpi.NewEncoder(buf))
		return buf[16]
	}

	// V1 sets the bit for quote->base, V2 for base->quote.
	assert.Equal(t, byte(directionBaseByte|0x01), payload(false, QuoteToBase))
	assert.Equal(t, byte(directionBaseByte&^0x01), payload(false, BaseToQuote))
	assert.Equal(t, byte(directionBaseByte&^0x01), payload(true, QuoteToBase))
	assert.Equal(t, byte(directionBaseByte|0x01), payload(true, BaseToQuote))
}

func TestSwapV2AccountArity(t *testing.T) {
	require.Len(t, Swap.Accounts, 9)
	require.Len(t, SwapV2.Accounts, 13)

	_, err := SwapV2.Bind(newKeys(9)...)
	assert.Error(t, err)
}

func TestExecSwapRawReplaysVerbatim(t *testing.T) {
	bound, err := Swap.Bind(newKeys(9)...)
	require.NoError(t, err)

	var raw [SwapDataSize]byte
	for i := range raw {
		raw[i] = byte(i)
	}

	rec := &executor.Recorder{}
	require.NoError(t, ExecSwapRaw(context.Background(), rec, bound, raw))

	sub, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, raw[:], sub.Data)
}
