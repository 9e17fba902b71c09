// Package perps provides CPI bindings for the Jupiter Perpetuals program's
// pool swap.
package perps

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed Perpetuals program.
var ProgramID = solana.MustPublicKeyFromBase58("PERPHjGBqRHArX4DySjwM6UJHiR3sWAatqfdBS2qQJu")

// Swap trades between two custodies of the liquidity pool.
var Swap = &cpi.Descriptor{
	Name:      "swap",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("swap"),
	Accounts: cpi.Schema{
		cpi.Signer("owner"),
		cpi.Mut("funding_account"),
		cpi.Mut("receiving_account"),
		cpi.ReadOnly("transfer_authority"),
		cpi.ReadOnly("perpetuals"),
		cpi.Mut("pool"),
		cpi.Mut("receiving_custody"),
		cpi.ReadOnly("receiving_custody_oracle_account"),
		cpi.Mut("receiving_custody_token_account"),
		cpi.Mut("dispensing_custody"),
		cpi.ReadOnly("dispensing_custody_oracle_account"),
		cpi.Mut("dispensing_custody_token_account"),
		cpi.ReadOnly("token_program"),
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

// Protocol returns the registry entry for Jupiter Perpetuals.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "perps",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{Swap},
	}
}
