// Package stabblestable provides CPI bindings for the stabble stable swap
// program.
package stabblestable

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed stable swap program.
var ProgramID = solana.MustPublicKeyFromBase58("swapNyd8XiQwJ6ianp9snpu4brUqFxadzvHebnAXjJZ")

// Swap trades between two pool tokens through the shared vault.
var Swap = &cpi.Descriptor{
	Name:      "swap",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("swap"),
	Accounts: cpi.Schema{
		cpi.Signer("user"),
		cpi.Mut("user_token_in"),
		cpi.Mut("user_token_out"),
		cpi.Mut("vault_token_in"),
		cpi.Mut("vault_token_out"),
		cpi.Mut("beneficiary_token_out"),
		cpi.Mut("pool"),
		cpi.ReadOnly("withdraw_authority"),
		cpi.ReadOnly("vault"),
		cpi.ReadOnly("vault_authority"),
		cpi.ReadOnly("vault_program"),
		cpi.ReadOnly("token_program"),
	},
}

// SwapArgs are the swap instruction arguments.
type SwapArgs struct {
	AmountIn         uint64
	MinimumAmountOut uint64
}

func (a SwapArgs) EncodedLen() int { return 16 }

func (a SwapArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.AmountIn)
	e.PutUint64(a.MinimumAmountOut)
}

// ExecSwap submits the swap.
func ExecSwap(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args SwapArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Swap, accounts, args, signers...)
}

// Protocol returns the registry entry for the stabble stable swap.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "stabble_stable",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{Swap},
	}
}
