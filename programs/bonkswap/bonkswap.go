// Package bonkswap provides CPI bindings for the BonkSwap AMM program.
package bonkswap

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed BonkSwap program.
var ProgramID = solana.MustPublicKeyFromBase58("BSwp6bEBihVLdqJRKGgzjcGLHkcTuzmSo1TQkHepzH8p")

// Swap trades between the pool's two tokens.
var Swap = &cpi.Descriptor{
	Name:      "swap",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("swap"),
	Accounts: cpi.Schema{
		cpi.ReadOnly("state"),
		cpi.Mut("pool"),
		cpi.ReadOnly("token_x"),
		cpi.ReadOnly("token_y"),
		cpi.Mut("pool_x_account"),
		cpi.Mut("pool_y_account"),
		cpi.Mut("swapper_x_account"),
		cpi.Mut("swapper_y_account"),
		cpi.Signer("swapper"),
		cpi.ReadOnly("program_authority"),
		cpi.ReadOnly("token_program"),
	},
}

// SwapArgs are the swap instruction arguments. XToY selects the trade
// direction.
type SwapArgs struct {
	Amount      uint64
	MinExpected uint64
	XToY        bool
}

func (a SwapArgs) EncodedLen() int { return 8 + 8 + 1 }

func (a SwapArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.Amount)
	e.PutUint64(a.MinExpected)
	e.PutBool(a.XToY)
}

// ExecSwap submits the swap.
func ExecSwap(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args SwapArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Swap, accounts, args, signers...)
}

// Protocol returns the registry entry for BonkSwap.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "bonkswap",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{Swap},
	}
}
