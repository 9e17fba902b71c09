// registry/registry_test.go
package registry

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
)

func testProtocol(name string) Protocol {
	program := solana.NewWallet().PublicKey()
	return Protocol{
		Name:      name,
		ProgramID: program,
		Instructions: []*cpi.Descriptor{
			{
				Name:      "swap",
				ProgramID: program,
				Tag:       cpi.AnchorTag("swap"),
				Accounts:  cpi.Schema{cpi.Signer("user"), cpi.Mut("pool")},
			},
		},
	}
}

func TestRegisterAndGet(t *testing.T) {
	r := New(zaptest.NewLogger(t))
	p := testProtocol("alpha")

	require.NoError(t, r.Register(p))

	got, err := r.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, p.ProgramID, got.ProgramID)

	_, err = r.Get("missing")
	assert.Error(t, err)
}

func TestRegisterRejectsDuplicateName(t *testing.T) {
	r := New(zaptest.NewLogger(t))
	require.NoError(t, r.Register(testProtocol("alpha")))

	err := r.Register(testProtocol("alpha"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegisterRejectsDuplicateProgram(t *testing.T) {
	r := New(zaptest.NewLogger(t))
	p := testProtocol("alpha")
	require.NoError(t, r.Register(p))

	q := testProtocol("beta")
	q.ProgramID = p.ProgramID
	q.Instructions[0].ProgramID = p.ProgramID

	err := r.Register(q)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered as alpha")
}

func TestRegisterRejectsForeignInstruction(t *testing.T) {
	r := New(zaptest.NewLogger(t))
	p := testProtocol("alpha")
	p.Instructions[0].ProgramID = solana.NewWallet().PublicKey()

	err := r.Register(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "targets program")
}

func TestRegisterRejectsSharedDiscriminator(t *testing.T) {
	r := New(zaptest.NewLogger(t))
	p := testProtocol("alpha")
	p.Instructions = append(p.Instructions, &cpi.Descriptor{
		Name:      "swap_again",
		ProgramID: p.ProgramID,
		Tag:       cpi.AnchorTag("swap"),
	})

	err := r.Register(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "share discriminator")
}

func TestRegisterAllowsUntaggedInstructions(t *testing.T) {
	r := New(zaptest.NewLogger(t))
	p := testProtocol("alpha")
	p.Instructions = append(p.Instructions,
		&cpi.Descriptor{Name: "raw_a", ProgramID: p.ProgramID},
		&cpi.Descriptor{Name: "raw_b", ProgramID: p.ProgramID},
	)

	assert.NoError(t, r.Register(p))
}

func TestLookupProgram(t *testing.T) {
	r := New(zaptest.NewLogger(t))
	p := testProtocol("alpha")
	require.NoError(t, r.Register(p))

	got, ok := r.LookupProgram(p.ProgramID)
	require.True(t, ok)
	assert.Equal(t, "alpha", got.Name)

	_, ok = r.LookupProgram(solana.NewWallet().PublicKey())
	assert.False(t, ok)
}

func TestInstructionLookup(t *testing.T) {
	r := New(zaptest.NewLogger(t))
	require.NoError(t, r.Register(testProtocol("alpha")))

	d, err := r.Instruction("alpha", "swap")
	require.NoError(t, err)
	assert.Equal(t, "swap", d.Name)

	_, err = r.Instruction("alpha", "withdraw")
	assert.Error(t, err)

	_, err = r.Instruction("missing", "swap")
	assert.Error(t, err)
}

func TestListSorted(t *testing.T) {
	r := New(zaptest.NewLogger(t))
	for _, name := range []string{"charlie", "alpha", "bravo"} {
		require.NoError(t, r.Register(testProtocol(name)))
	}

	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, r.List())
}
