// Package dlmm provides CPI bindings for the Meteora DLMM (dynamic
// liquidity market maker) program.
package dlmm

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed DLMM program.
var ProgramID = solana.MustPublicKeyFromBase58("LBUZKhRxPF3XUpBCjp4YzTKgLccjZhTSDM9YuVaPwxo")

// Swap trades across the pair's bins. bin_array_bitmap_extension and
// host_fee_in are optional on-chain; callers without them bind the program
// ID in those slots, per the protocol's convention.
var Swap = &cpi.Descriptor{
	Name:      "swap",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("swap"),
	Accounts: cpi.Schema{
		cpi.Mut("lb_pair"),
		cpi.ReadOnly("bin_array_bitmap_extension"),
		cpi.Mut("reserve_x"),
		cpi.Mut("reserve_y"),
		cpi.Mut("user_token_in"),
		cpi.Mut("user_token_out"),
		cpi.ReadOnly("token_x_mint"),
		cpi.ReadOnly("token_y_mint"),
		cpi.Mut("oracle"),
		cpi.Mut("host_fee_in"),
		cpi.Signer("user"),
		cpi.ReadOnly("token_x_program"),
		cpi.ReadOnly("token_y_program"),
		cpi.ReadOnly("event_authority"),
		cpi.ReadOnly("program"),
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

// Protocol returns the registry entry for DLMM.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "meteora_dlmm",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{Swap},
	}
}
