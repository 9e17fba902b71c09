// Package woofi provides CPI bindings for the WOOFi Solana program. Swaps
// route through per-token "woopools" priced by the wooracle.
package woofi

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed WOOFi program.
var ProgramID = solana.MustPublicKeyFromBase58("WooFif76YGRNjk1pA8wCsN67aQsD9f9iLsz4NcJ1AVb")

// Swap trades from one woopool to another through the quote pool.
var Swap = &cpi.Descriptor{
	Name:      "swap",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("swap"),
	Accounts: cpi.Schema{
		cpi.ReadOnly("wooconfig"),
		cpi.ReadOnly("token_mint_from"),
		cpi.ReadOnly("token_mint_to"),
		cpi.MutSigner("payer"),
		cpi.Mut("wooracle_from"),
		cpi.Mut("woopool_from"),
		cpi.Mut("token_owner_account_from"),
		cpi.Mut("token_vault_from"),
		cpi.ReadOnly("price_update_from"),
		cpi.Mut("wooracle_to"),
		cpi.Mut("woopool_to"),
		cpi.Mut("token_owner_account_to"),
		cpi.Mut("token_vault_to"),
		cpi.ReadOnly("price_update_to"),
		cpi.Mut("woopool_quote"),
		cpi.Mut("quote_token_vault"),
		cpi.Mut("rebate_to"),
		cpi.ReadOnly("token_program"),
	},
}

// SwapArgs are the swap instruction arguments.
type SwapArgs struct {
	FromAmount  uint64
	MinToAmount uint64
}

func (a SwapArgs) EncodedLen() int { return 16 }

func (a SwapArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.FromAmount)
	e.PutUint64(a.MinToAmount)
}

// ExecSwap submits the swap.
func ExecSwap(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args SwapArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Swap, accounts, args, signers...)
}

// Protocol returns the registry entry for WOOFi.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "woofi",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{Swap},
	}
}
