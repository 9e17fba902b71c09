// programs/pumpfun/pumpfun_test.go
package pumpfun

import (
	"context"
	"encoding/binary"
	"testing"

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

func TestBuyDataLayout(t *testing.T) {
	bound, err := Buy.Bind(newKeys(12)...)
	require.NoError(t, err)

	rec := &executor.Recorder{}
	err = ExecBuy(context.Background(), rec, bound, BuyArgs{
		Amount:     5_000_000,
		MaxSolCost: 100_000_000,
	})
	require.NoError(t, err)

	sub, ok := rec.Last()
	require.True(t, ok)

	require.Len(t, sub.Data, 24)
	assert.Equal(t, []byte{0x66, 0x06, 0x3d, 0x12, 0x01, 0xda, 0xeb, 0xea}, sub.Data[:8])
	assert.Equal(t, uint64(5_000_000), binary.LittleEndian.Uint64(sub.Data[8:16]))
	assert.Equal(t, uint64(100_000_000), binary.LittleEndian.Uint64(sub.Data[16:24]))
}

func TestSellDataLayout(t *testing.T) {
	bound, err := Sell.Bind(newKeys(12)...)
	require.NoError(t, err)

	rec := &executor.Recorder{}
	err = ExecSell(context.Background(), rec, bound, SellArgs{
		Amount:       5_000_000,
		MinSolOutput: 90_000_000,
	})
	require.NoError(t, err)

	sub, ok := rec.Last()
	require.True(t, ok)

	require.Len(t, sub.Data, 24)
	assert.Equal(t, []byte{0x33, 0xe6, 0x85, 0xa4, 0x01, 0x7f, 0x83, 0xad}, sub.Data[:8])
}

func TestSchemasDifferOnlyInSupportSlot(t *testing.T) {
	require.Len(t, Buy.Accounts, 12)
	require.Len(t, Sell.Accounts, 12)

	// Position 9 is rent on buy, the associated token program on sell; the
	// rest of the schema matches.
	for i := range Buy.Accounts {
		if i == 9 {
			assert.Equal(t, "rent", Buy.Accounts[i].Name)
			assert.Equal(t, "associated_token_program", Sell.Accounts[i].Name)
			continue
		}
		assert.Equal(t, Buy.Accounts[i], Sell.Accounts[i])
	}
}
