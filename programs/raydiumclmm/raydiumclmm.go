// Package raydiumclmm provides CPI bindings for the Raydium
// concentrated-liquidity (CLMM) program.
package raydiumclmm

import (
	"context"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed Raydium CLMM program.
var ProgramID = solana.MustPublicKeyFromBase58("CAMMCzo5YL8w4VFF8KVHrK22GGUsp5VTaW7grrKgrWqK")

// Swap trades within one pool, crossing ticks as needed.
var Swap = &cpi.Descriptor{
	Name:      "swap",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("swap"),
	Accounts: cpi.Schema{
		cpi.Signer("payer"),
		cpi.ReadOnly("amm_config"),
		cpi.Mut("pool_state"),
		cpi.Mut("input_token_account"),
		cpi.Mut("output_token_account"),
		cpi.Mut("input_vault"),
		cpi.Mut("output_vault"),
		cpi.Mut("observation_state"),
		cpi.ReadOnly("token_program"),
		cpi.Mut("tick_array"),
	},
}

// SwapArgs are the swap instruction arguments.
type SwapArgs struct {
	// Amount of the fixed trade side.
	Amount uint64
	// OtherAmountThreshold bounds the floating side.
	OtherAmountThreshold uint64
	// SqrtPriceLimitX64 stops the trade at a price bound; zero disables it.
	SqrtPriceLimitX64 bin.Uint128
	// IsBaseInput fixes the input side when true.
	IsBaseInput bool
}

func (a SwapArgs) EncodedLen() int { return 8 + 8 + 16 + 1 }

func (a SwapArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.Amount)
	e.PutUint64(a.OtherAmountThreshold)
	e.PutUint128(a.SqrtPriceLimitX64)
	e.PutBool(a.IsBaseInput)
}

// ExecSwap submits the swap.
func ExecSwap(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args SwapArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Swap, accounts, args, signers...)
}

// Protocol returns the registry entry for Raydium CLMM.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "raydium_clmm",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{Swap},
	}
}
