// Package perena provides CPI bindings for the Perena Numeraire
// multi-asset stable pool.
package perena

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed Numeraire program.
var ProgramID = solana.MustPublicKeyFromBase58("NUMERUNsFCP3kuNmWZuXtm1AaQCPj9uw6Guv2Ekoi5P")

// SwapExactIn swaps a fixed amount between two pool assets, addressed by
// their indices within the pool.
var SwapExactIn = &cpi.Descriptor{
	Name:      "swap_exact_in",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("swap_exact_in"),
	Accounts: cpi.Schema{
		cpi.Mut("pool"),
		cpi.MutSigner("payer"),
		cpi.Mut("payer_token_in_account"),
		cpi.Mut("payer_token_out_account"),
		cpi.Mut("pool_token_in_account"),
		cpi.Mut("pool_token_out_account"),
		cpi.ReadOnly("token_program"),
	},
}

// SwapExactInArgs are the swap_exact_in instruction arguments. In and Out
// index into the pool's asset list.
type SwapExactInArgs struct {
	In            uint8
	Out           uint8
	ExactAmountIn uint64
	MinAmountOut  uint64
}

func (a SwapExactInArgs) EncodedLen() int { return 1 + 1 + 8 + 8 }

func (a SwapExactInArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint8(a.In)
	e.PutUint8(a.Out)
	e.PutUint64(a.ExactAmountIn)
	e.PutUint64(a.MinAmountOut)
}

// ExecSwapExactIn submits the swap.
func ExecSwapExactIn(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args SwapExactInArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, SwapExactIn, accounts, args, signers...)
}

// Protocol returns the registry entry for Perena Numeraire.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "perena",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{SwapExactIn},
	}
}
