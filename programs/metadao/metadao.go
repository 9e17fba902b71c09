// Package metadao provides CPI bindings for the MetaDAO AMM used by
// futarchy conditional markets.
package metadao

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed MetaDAO AMM program.
var ProgramID = solana.MustPublicKeyFromBase58("6WtK8qPJdUz8Ud3J9pmwf2fAGsEqNunUwTH8ZCXVP89i")

// SwapType selects the trade direction.
type SwapType uint8

const (
	SwapTypeBuy  SwapType = 0
	SwapTypeSell SwapType = 1
)

// Swap trades against the conditional market pool.
var Swap = &cpi.Descriptor{
	Name:      "swap",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("swap"),
	Accounts: cpi.Schema{
		cpi.MutSigner("user"),
		cpi.Mut("amm"),
		cpi.Mut("user_base_account"),
		cpi.Mut("user_quote_account"),
		cpi.Mut("vault_ata_base"),
		cpi.Mut("vault_ata_quote"),
		cpi.ReadOnly("token_program"),
	},
}

// SwapArgs are the swap instruction arguments.
type SwapArgs struct {
	SwapType        SwapType
	InputAmount     uint64
	OutputAmountMin uint64
}

func (a SwapArgs) EncodedLen() int { return 1 + 8 + 8 }

func (a SwapArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint8(uint8(a.SwapType))
	e.PutUint64(a.InputAmount)
	e.PutUint64(a.OutputAmountMin)
}

// ExecSwap submits the swap.
func ExecSwap(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args SwapArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Swap, accounts, args, signers...)
}

// Protocol returns the registry entry for the MetaDAO AMM.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "metadao_amm",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{Swap},
	}
}
