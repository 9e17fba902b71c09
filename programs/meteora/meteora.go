// Package meteora provides CPI bindings for the Meteora dynamic AMM
// (pools) program.
package meteora

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed dynamic AMM program.
var ProgramID = solana.MustPublicKeyFromBase58("Eo7WjKq67rjJQSZxS6z3YkapzY3eMj6Xy8X5EQVn5UaB")

// Swap trades through the pool's two lending vaults.
var Swap = &cpi.Descriptor{
	Name:      "swap",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("swap"),
	Accounts: cpi.Schema{
		cpi.Mut("pool"),
		cpi.Mut("user_source_token"),
		cpi.Mut("user_destination_token"),
		cpi.Mut("a_vault"),
		cpi.Mut("b_vault"),
		cpi.Mut("a_token_vault"),
		cpi.Mut("b_token_vault"),
		cpi.Mut("a_vault_lp_mint"),
		cpi.Mut("b_vault_lp_mint"),
		cpi.Mut("a_vault_lp"),
		cpi.Mut("b_vault_lp"),
		cpi.Mut("protocol_token_fee"),
		cpi.Signer("user"),
		cpi.ReadOnly("vault_program"),
		cpi.ReadOnly("token_program"),
	},
}

// SwapArgs are the swap instruction arguments.
type SwapArgs struct {
	InAmount         uint64
	MinimumOutAmount uint64
}

func (a SwapArgs) EncodedLen() int { return 16 }

func (a SwapArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.InAmount)
	e.PutUint64(a.MinimumOutAmount)
}

// ExecSwap submits the swap.
func ExecSwap(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args SwapArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Swap, accounts, args, signers...)
}

// Protocol returns the registry entry for the dynamic AMM.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "meteora",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{Swap},
	}
}
