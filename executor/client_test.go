// executor/client_test.go
package executor

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
)

func TestNewRequiresEndpoints(t *testing.T) {
	payer := solana.NewWallet().PrivateKey

	_, err := New(Config{}, payer, zaptest.NewLogger(t))
	assert.ErrorIs(t, err, ErrNoEndpoints)

	c, err := New(Config{Endpoints: []string{"http://localhost:8899"}}, payer, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestResolveAttestations(t *testing.T) {
	program := solana.NewWallet().PublicKey()
	seeds := [][]byte{[]byte("vault"), []byte("alpha")}

	derived, bump, err := solana.FindProgramAddress(seeds, program)
	require.NoError(t, err)
	attestation := cpi.Seeds(append(append([][]byte{}, seeds...), []byte{bump}))

	payer := solana.NewWallet().PrivateKey
	c, err := New(Config{
		Endpoints:     []string{"http://localhost:8899"},
		SignerProgram: program,
	}, payer, zaptest.NewLogger(t))
	require.NoError(t, err)

	ixWith := solana.NewInstruction(program,
		[]*solana.AccountMeta{solana.Meta(derived).WRITE()}, nil)
	assert.NoError(t, c.resolveAttestations(ixWith, []cpi.Seeds{attestation}))

	ixWithout := solana.NewInstruction(program,
		[]*solana.AccountMeta{solana.Meta(solana.NewWallet().PublicKey())}, nil)
	err = c.resolveAttestations(ixWithout, []cpi.Seeds{attestation})
	assert.ErrorIs(t, err, ErrUnresolvedAttestation)
}
