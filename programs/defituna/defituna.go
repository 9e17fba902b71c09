// Package defituna provides CPI bindings for the DefiTuna leveraged
// liquidity program's pool swap.
package defituna

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed DefiTuna program.
var ProgramID = solana.MustPublicKeyFromBase58("tuna4uSQZncNeeiAMKbstuxA9CUkHH6HmC64wgmnogD")

// Swap trades against a Tuna-managed pool.
var Swap = &cpi.Descriptor{
	Name:      "swap",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("swap"),
	Accounts: cpi.Schema{
		cpi.MutSigner("user"),
		cpi.Mut("market"),
		cpi.Mut("pool"),
		cpi.Mut("user_token_a_account"),
		cpi.Mut("user_token_b_account"),
		cpi.Mut("vault_a"),
		cpi.Mut("vault_b"),
		cpi.ReadOnly("mint_a"),
		cpi.ReadOnly("mint_b"),
		cpi.ReadOnly("oracle"),
		cpi.ReadOnly("token_program"),
	},
}

// SwapArgs are the swap instruction arguments.
type SwapArgs struct {
	AmountIn     uint64
	MinAmountOut uint64
	AToB         bool
}

func (a SwapArgs) EncodedLen() int { return 8 + 8 + 1 }

func (a SwapArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.AmountIn)
	e.PutUint64(a.MinAmountOut)
	e.PutBool(a.AToB)
}

// ExecSwap submits the swap.
func ExecSwap(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args SwapArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Swap, accounts, args, signers...)
}

// Protocol returns the registry entry for DefiTuna.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "defituna",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{Swap},
	}
}
