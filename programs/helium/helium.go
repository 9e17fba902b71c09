// Package helium provides CPI bindings for the Helium treasury management
// program. Subnetwork tokens are redeemed against the treasury at the
// curve price.
package helium

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed treasury management program.
var ProgramID = solana.MustPublicKeyFromBase58("21kREZQorEQMfw76HJ6ttu66vVeo1irzueRb4ARyCkhg")

// RedeemV0 burns the subnetwork token and pays out from the treasury.
var RedeemV0 = &cpi.Descriptor{
	Name:      "redeem_v0",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("redeem_v0"),
	Accounts: cpi.Schema{
		cpi.ReadOnly("treasury_management"),
		cpi.ReadOnly("treasury_mint"),
		cpi.Mut("supply_mint"),
		cpi.Mut("treasury"),
		cpi.ReadOnly("circuit_breaker"),
		cpi.Mut("from"),
		cpi.Mut("to"),
		cpi.Signer("owner"),
		cpi.ReadOnly("circuit_breaker_program"),
		cpi.ReadOnly("token_program"),
	},
}

// RedeemArgs are the redeem_v0 instruction arguments.
type RedeemArgs struct {
	Amount               uint64
	ExpectedOutputAmount uint64
}

func (a RedeemArgs) EncodedLen() int { return 16 }

func (a RedeemArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.Amount)
	e.PutUint64(a.ExpectedOutputAmount)
}

// ExecRedeemV0 submits the redeem.
func ExecRedeemV0(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args RedeemArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, RedeemV0, accounts, args, signers...)
}

// Protocol returns the registry entry for Helium treasury management.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "helium_treasury",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{RedeemV0},
	}
}
