// programs/solfi/solfi_test.go
package solfi

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

func TestSwapDataLayout(t *testing.T) {
	bound, err := Swap.Bind(newKeys(13)...)
	require.NoError(t, err)

	rec := &executor.Recorder{}
	err = ExecSwap(context.Background(), rec, bound, SwapArgs{
		AmountIn:     1_000_000_000,
		MinAmountOut: 900_000_000,
		Side:         SideSell,
	})
	require.NoError(t, err)

	sub, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, ProgramID, sub.ProgramID)

	require.Len(t, sub.Data, 25)
	assert.Equal(t, byte(0x07), sub.Data[0])
	assert.Equal(t, uint64(1_000_000_000), binary.LittleEndian.Uint64(sub.Data[1:9]))
	assert.Equal(t, uint64(900_000_000), binary.LittleEndian.Uint64(sub.Data[9:17]))
	assert.Equal(t, uint64(SideSell), binary.LittleEndian.Uint64(sub.Data[17:25]))
}

func TestSwapRequiresThirteenAccounts(t *testing.T) {
	require.Len(t, Swap.Accounts, 13)

	_, err := Swap.Bind(newKeys(12)...)
	assert.ErrorIs(t, err, cpi.ErrSchemaMismatch)
}

func TestSideFromIsSell(t *testing.T) {
	assert.Equal(t, SideSell, SideFromIsSell(true))
	assert.Equal(t, SideBuy, SideFromIsSell(false))
}

func TestParseTokenBalance(t *testing.T) {
	data := make([]byte, 165)
	binary.LittleEndian.PutUint64(data[64:72], 123_456_789)

	amount, ok := ParseTokenBalance(data)
	require.True(t, ok)
	assert.Equal(t, uint64(123_456_789), amount)

	_, ok = ParseTokenBalance(data[:64])
	assert.False(t, ok)
}
