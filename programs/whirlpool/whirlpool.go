// Package whirlpool provides CPI bindings for the Orca Whirlpool
// concentrated-liquidity program.
package whirlpool

import (
	"context"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed Whirlpool program.
var ProgramID = solana.MustPublicKeyFromBase58("whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc")

// Swap trades across up to three tick arrays of one whirlpool.
var Swap = &cpi.Descriptor{
	Name:      "swap",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("swap"),
	Accounts: cpi.Schema{
		cpi.ReadOnly("token_program"),
		cpi.Signer("token_authority"),
		cpi.Mut("whirlpool"),
		cpi.Mut("token_owner_account_a"),
		cpi.Mut("token_vault_a"),
		cpi.Mut("token_owner_account_b"),
		cpi.Mut("token_vault_b"),
		cpi.Mut("tick_array_0"),
		cpi.Mut("tick_array_1"),
		cpi.Mut("tick_array_2"),
		cpi.Mut("oracle"),
	},
}

// SwapArgs are the swap instruction arguments.
type SwapArgs struct {
	// Amount of the fixed side of the trade.
	Amount uint64
	// OtherAmountThreshold bounds the floating side.
	OtherAmountThreshold uint64
	// SqrtPriceLimit stops the trade at a price bound; zero disables it.
	SqrtPriceLimit bin.Uint128
	// AmountSpecifiedIsInput fixes the input side when true.
	AmountSpecifiedIsInput bool
	// AToB trades token A into token B when true.
	AToB bool
}

func (a SwapArgs) EncodedLen() int { return 8 + 8 + 16 + 1 + 1 }

func (a SwapArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.Amount)
	e.PutUint64(a.OtherAmountThreshold)
	e.PutUint128(a.SqrtPriceLimit)
	e.PutBool(a.AmountSpecifiedIsInput)
	e.PutBool(a.AToB)
}

// ExecSwap submits the swap.
func ExecSwap(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args SwapArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Swap, accounts, args, signers...)
}

// Protocol returns the registry entry for Whirlpool.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "whirlpool",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{Swap},
	}
}
