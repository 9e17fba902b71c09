// executor/recorder_test.go
package executor

import (
	"context"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
)

func testInstruction() solana.Instruction {
	return solana.NewInstruction(
		solana.NewWallet().PublicKey(),
		[]*solana.AccountMeta{
			solana.Meta(solana.NewWallet().PublicKey()).WRITE().SIGNER(),
			solana.Meta(solana.NewWallet().PublicKey()),
		},
		[]byte{0x07, 1, 2, 3},
	)
}

func TestRecorderCapturesSubmission(t *testing.T) {
	rec := &Recorder{}
	ix := testInstruction()
	seeds := []cpi.Seeds{{[]byte("vault"), {0xFF}}}

	require.NoError(t, rec.Submit(context.Background(), ix, seeds))

	sub, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, ix.ProgramID(), sub.ProgramID)
	assert.Equal(t, ix.Accounts(), sub.Accounts)
	assert.Equal(t, []byte{0x07, 1, 2, 3}, sub.Data)
	assert.Equal(t, seeds, sub.Signers)
}

func TestRecorderErrStillRecords(t *testing.T) {
	rec := &Recorder{Err: errors.New("boom")}

	err := rec.Submit(context.Background(), testInstruction(), nil)
	assert.Error(t, err)
	assert.Len(t, rec.Submissions(), 1)
}

func TestRecorderReset(t *testing.T) {
	rec := &Recorder{}
	require.NoError(t, rec.Submit(context.Background(), testInstruction(), nil))
	require.NoError(t, rec.Submit(context.Background(), testInstruction(), nil))
	assert.Len(t, rec.Submissions(), 2)

	rec.Reset()
	assert.Empty(t, rec.Submissions())

	_, ok := rec.Last()
	assert.False(t, ok)
}
