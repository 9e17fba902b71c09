// programs/whirlpool/whirlpool_test.go
package whirlpool

import (
	"context"
	"encoding/binary"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rovshanmuradov/solana-dex-cpi/executor"
)

func newKeys(n int) []solana.PublicKey {
	keys := make([]solana.PublicKey, n)
	for i := range keys {
		keys[i] = solana.NewWallet().PublicKey()
	}
	return keys
}

func TestSwapDataLayout(t *testing.T) {
	bound, err := Swap.Bind(newKeys(11)...)
	require.NoError(t, err)

	rec := &executor.Recorder{}
	err = ExecSwap(context.Background(), rec, bound, SwapArgs{
		Amount:                 1_000_000,
		OtherAmountThreshold:   950_000,
		SqrtPriceLimit:         bin.Uint128{},
		AmountSpecifiedIsInput: true,
		AToB:                   false,
	})
	require.NoError(t, err)

	sub, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, ProgramID, sub.ProgramID)

	require.Len(t, sub.Data, 8+34)
	assert.Equal(t, []byte{0xf8, 0xc6, 0x9e, 0x91, 0xe1, 0x75, 0x87, 0xc8}, sub.Data[:8])
	assert.Equal(t, uint64(1_000_000), binary.LittleEndian.Uint64(sub.Data[8:16]))
	assert.Equal(t, uint64(950_000), binary.LittleEndian.Uint64(sub.Data[16:24]))
	assert.Equal(t, make([]byte, 16), sub.Data[24:40])
	assert.Equal(t, byte(1), sub.Data[40])
	assert.Equal(t, byte(0), sub.Data[41])
}

func TestSwapAccountOrder(t *testing.T) {
	keys := newKeys(11)
	bound, err := Swap.Bind(keys...)
	require.NoError(t, err)

	rec := &executor.Recorder{}
	require.NoError(t, ExecSwap(context.Background(), rec, bound, SwapArgs{Amount: 1}))

	sub, ok := rec.Last()
	require.True(t, ok)
	require.Len(t, sub.Accounts, 11)
	for i, meta := range sub.Accounts {
		assert.Equal(t, keys[i], meta.PublicKey)
	}

	// token_authority is the only signer; the whirlpool itself is writable.
	assert.True(t, sub.Accounts[1].IsSigner)
	assert.False(t, sub.Accounts[1].IsWritable)
	assert.True(t, sub.Accounts[2].IsWritable)
}
