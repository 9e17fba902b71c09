// cpi/invoker_test.go
package cpi

import (
	"context"
	"encoding/binary"
	"errors"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingExecutor records the last submission.
type capturingExecutor struct {
	calls     int
	programID solana.PublicKey
	accounts  []*solana.AccountMeta
	data      []byte
	signers   []Seeds
	err       error
}

func (c *capturingExecutor) Submit(_ context.Context, ix solana.Instruction, signers []Seeds) error {
	c.calls++
	c.programID = ix.ProgramID()
	c.accounts = ix.Accounts()
	data, err := ix.Data()
	if err != nil {
		return err
	}
	c.data = data
	c.signers = signers
	return c.err
}

type clmmSwapArgs struct {
	Amount               uint64
	OtherAmountThreshold uint64
	SqrtPriceLimit       bin.Uint128
	IsBaseInput          bool
}

func (a clmmSwapArgs) EncodedLen() int { return 8 + 8 + 16 + 1 }

func (a clmmSwapArgs) EncodeArgs(e *Encoder) {
	e.PutUint64(a.Amount)
	e.PutUint64(a.OtherAmountThreshold)
	e.PutUint128(a.SqrtPriceLimit)
	e.PutBool(a.IsBaseInput)
}

func newTestDescriptor(arity int) *Descriptor {
	return &Descriptor{
		Name:      "swap",
		ProgramID: solana.NewWallet().PublicKey(),
		Tag:       AnchorTag("swap"),
		Accounts:  newSchema(arity),
	}
}

func TestInvokeBuildsTagThenArgs(t *testing.T) {
	d := newTestDescriptor(12)
	bound, err := d.Bind(newKeys(12)...)
	require.NoError(t, err)

	args := clmmSwapArgs{
		Amount:               1_000_000,
		OtherAmountThreshold: 950_000,
		SqrtPriceLimit:       bin.Uint128{},
		IsBaseInput:          true,
	}

	exec := &capturingExecutor{}
	require.NoError(t, Invoke(context.Background(), exec, d, bound, args))
	require.Equal(t, 1, exec.calls)

	assert.Equal(t, d.ProgramID, exec.programID)
	require.Len(t, exec.data, 8+args.EncodedLen())
	assert.Equal(t, d.Tag, exec.data[:8])
	assert.Equal(t, uint64(1_000_000), binary.LittleEndian.Uint64(exec.data[8:16]))
	assert.Equal(t, uint64(950_000), binary.LittleEndian.Uint64(exec.data[16:24]))
	assert.Equal(t, make([]byte, 16), exec.data[24:40])
	assert.Equal(t, byte(1), exec.data[40])

	require.Len(t, exec.accounts, 12)
	for i, meta := range exec.accounts {
		assert.Equal(t, bound.Key(i), meta.PublicKey)
	}
}

func TestInvokeSignedIdenticalPayload(t *testing.T) {
	d := newTestDescriptor(3)
	bound, err := d.Bind(newKeys(3)...)
	require.NoError(t, err)
	args := testArgs{A: 42, B: 7, C: false}

	plain := &capturingExecutor{}
	require.NoError(t, Invoke(context.Background(), plain, d, bound, args))

	seeds := Seeds{[]byte("vault"), {0xFE}}
	signed := &capturingExecutor{}
	require.NoError(t, InvokeSigned(context.Background(), signed, d, bound, args, seeds))

	// Attestations change only what is forwarded to the executor, never the
	// instruction itself.
	assert.Equal(t, plain.data, signed.data)
	assert.Equal(t, plain.accounts, signed.accounts)
	assert.Empty(t, plain.signers)
	require.Len(t, signed.signers, 1)
	assert.Equal(t, seeds, signed.signers[0])
}

func TestInvokeArityViolationNeverReachesExecutor(t *testing.T) {
	d := newTestDescriptor(12)

	// A bound sequence from a different, shorter schema.
	bound, err := newSchema(11).Bind(newKeys(11)...)
	require.NoError(t, err)

	exec := &capturingExecutor{}
	err = Invoke(context.Background(), exec, d, bound, NoArgs{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
	assert.Equal(t, 0, exec.calls)
}

func TestInvokeExecutorErrorSurfacesVerbatim(t *testing.T) {
	d := newTestDescriptor(1)
	bound, err := d.Bind(newKeys(1)...)
	require.NoError(t, err)

	execErr := errors.New("custom program error: 0x17")
	exec := &capturingExecutor{err: execErr}

	err = Invoke(context.Background(), exec, d, bound, NoArgs{})
	assert.ErrorIs(t, err, execErr)
}

func TestDescriptorDataLen(t *testing.T) {
	d := newTestDescriptor(1)
	assert.Equal(t, 8+17, d.DataLen(testArgs{}))
	assert.Equal(t, 8, d.DataLen(NoArgs{}))

	legacy := &Descriptor{Tag: LegacyTag(0x07)}
	assert.Equal(t, 1+17, legacy.DataLen(testArgs{}))
}
