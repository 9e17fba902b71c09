// programs/programs_test.go
package programs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

func TestRegisterAll(t *testing.T) {
	r := registry.New(zaptest.NewLogger(t))
	require.NoError(t, RegisterAll(r))

	assert.Len(t, r.List(), 35)
}

func TestRosterIsConsistent(t *testing.T) {
	seenNames := make(map[string]bool)
	seenPrograms := make(map[string]bool)

	for _, p := range All() {
		t.Run(p.Name, func(t *testing.T) {
			assert.False(t, seenNames[p.Name], "duplicate protocol name")
			seenNames[p.Name] = true

			program := p.ProgramID.String()
			assert.False(t, seenPrograms[program], "duplicate program id")
			seenPrograms[program] = true

			require.NotEmpty(t, p.Instructions)

			tags := make(map[string]string)
			for _, d := range p.Instructions {
				assert.Equal(t, p.ProgramID, d.ProgramID,
					"instruction %s targets a foreign program", d.Name)
				assert.NotEmpty(t, d.Accounts, "instruction %s has no accounts", d.Name)

				if len(d.Tag) == 0 {
					continue
				}
				if other, dup := tags[string(d.Tag)]; dup {
					t.Errorf("instructions %s and %s share a discriminator", other, d.Name)
				}
				tags[string(d.Tag)] = d.Name
			}
		})
	}
}

func TestRosterAccountFlags(t *testing.T) {
	// Every swap-shaped instruction needs at least one writable account and,
	// for user-facing trades, at least one signer.
	for _, p := range All() {
		for _, d := range p.Instructions {
			writable := 0
			for _, role := range d.Accounts {
				if role.Writable {
					writable++
				}
			}
			assert.Greater(t, writable, 0, "%s/%s has no writable accounts", p.Name, d.Name)
		}
	}
}
