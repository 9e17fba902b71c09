// Package guacswap provides CPI bindings for the GuacSwap AMM program.
package guacswap

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed GuacSwap program.
var ProgramID = solana.MustPublicKeyFromBase58("Gswppe6ERWKpUTXvRPfXdzHhiCyJvLadVvXGfdpBqcE1")

// Swap trades between the pool's two tokens.
var Swap = &cpi.Descriptor{
	Name:      "swap",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("swap"),
	Accounts: cpi.Schema{
		cpi.Mut("pool"),
		cpi.ReadOnly("pool_authority"),
		cpi.Mut("pool_token_in_account"),
		cpi.Mut("pool_token_out_account"),
		cpi.Mut("user_token_in_account"),
		cpi.Mut("user_token_out_account"),
		cpi.ReadOnly("token_in_mint"),
		cpi.ReadOnly("token_out_mint"),
		cpi.MutSigner("user"),
		cpi.Mut("fee_account"),
		cpi.ReadOnly("token_program"),
	},
}

// SwapArgs are the swap instruction arguments.
type SwapArgs struct {
	AmountIn     uint64
	MinAmountOut uint64
}

func (a SwapArgs) EncodedLen() int { return 16 }

func (a SwapArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.AmountIn)
	e.PutUint64(a.MinAmountOut)
}

// ExecSwap submits the swap.
func ExecSwap(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args SwapArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Swap, accounts, args, signers...)
}

// Protocol returns the registry entry for GuacSwap.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "guacswap",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{Swap},
	}
}
