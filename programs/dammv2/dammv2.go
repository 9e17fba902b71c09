// Package dammv2 provides CPI bindings for the Meteora DAMM v2 program.
package dammv2

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed DAMM v2 program.
var ProgramID = solana.MustPublicKeyFromBase58("cpamdpZCGKUy5JxQXB4dcpGPiikHawvSWAd6mEn1sGG")

// Swap trades one side of the pool for the other.
var Swap = &cpi.Descriptor{
	Name:      "swap",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("swap"),
	Accounts: cpi.Schema{
		cpi.ReadOnly("pool_authority"),
		cpi.Mut("pool"),
		cpi.Mut("input_token_account"),
		cpi.Mut("output_token_account"),
		cpi.Mut("token_a_vault"),
		cpi.Mut("token_b_vault"),
		cpi.ReadOnly("token_a_mint"),
		cpi.ReadOnly("token_b_mint"),
		cpi.Signer("payer"),
		cpi.ReadOnly("token_a_program"),
		cpi.ReadOnly("token_b_program"),
		cpi.Mut("referral_token_account"),
		cpi.ReadOnly("event_authority"),
		cpi.ReadOnly("program"),
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

// Protocol returns the registry entry for DAMM v2.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "meteora_damm_v2",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{Swap},
	}
}
