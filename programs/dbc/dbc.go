// Package dbc provides CPI bindings for the Meteora dynamic bonding curve
// program.
package dbc

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed dynamic bonding curve program.
var ProgramID = solana.MustPublicKeyFromBase58("dbcij3LWUppWqq96dh6gJWwBifmcGfLSB5D4DuSMaqN")

// Swap trades against the virtual curve.
var Swap = &cpi.Descriptor{
	Name:      "swap",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("swap"),
	Accounts: cpi.Schema{
		cpi.ReadOnly("pool_authority"),
		cpi.ReadOnly("config"),
		cpi.Mut("pool"),
		cpi.Mut("input_token_account"),
		cpi.Mut("output_token_account"),
		cpi.Mut("base_vault"),
		cpi.Mut("quote_vault"),
		cpi.ReadOnly("base_mint"),
		cpi.ReadOnly("quote_mint"),
		cpi.Signer("payer"),
		cpi.ReadOnly("token_base_program"),
		cpi.ReadOnly("token_quote_program"),
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

// Protocol returns the registry entry for the dynamic bonding curve.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "dynamic_bonding_curve",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{Swap},
	}
}
