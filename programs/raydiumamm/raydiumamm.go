// Package raydiumamm provides CPI bindings for the Raydium AMM v4 program.
//
// Raydium AMM is a native program dispatched by a single instruction-code
// byte; swap_base_in is code 9 and its data is 17 bytes.
package raydiumamm

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed Raydium AMM v4 program.
var ProgramID = solana.MustPublicKeyFromBase58("675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8")

// SwapInstructionCode dispatches swap_base_in.
const SwapInstructionCode = 9

// SwapBaseIn swaps a fixed input amount through the AMM and its OpenBook
// market.
var SwapBaseIn = &cpi.Descriptor{
	Name:      "swap_base_in",
	ProgramID: ProgramID,
	Tag:       cpi.LegacyTag(SwapInstructionCode),
	Accounts: cpi.Schema{
		cpi.ReadOnly("token_program"),
		cpi.Mut("amm"),
		cpi.ReadOnly("amm_authority"),
		cpi.Mut("amm_open_orders"),
		cpi.Mut("amm_target_orders"),
		cpi.Mut("pool_coin_token_account"),
		cpi.Mut("pool_pc_token_account"),
		cpi.ReadOnly("serum_program"),
		cpi.Mut("serum_market"),
		cpi.Mut("serum_bids"),
		cpi.Mut("serum_asks"),
		cpi.Mut("serum_event_queue"),
		cpi.Mut("serum_coin_vault"),
		cpi.Mut("serum_pc_vault"),
		cpi.ReadOnly("serum_vault_signer"),
		cpi.Mut("user_source_token"),
		cpi.Mut("user_dest_token"),
		cpi.Signer("user_owner"),
	},
}

// SwapArgs are the swap_base_in arguments.
type SwapArgs struct {
	AmountIn     uint64
	MinAmountOut uint64
}

func (a SwapArgs) EncodedLen() int { return 16 }

func (a SwapArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.AmountIn)
	e.PutUint64(a.MinAmountOut)
}

// ExecSwapBaseIn submits the swap.
func ExecSwapBaseIn(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args SwapArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, SwapBaseIn, accounts, args, signers...)
}

// Protocol returns the registry entry for Raydium AMM v4.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "raydium_amm",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{SwapBaseIn},
	}
}
