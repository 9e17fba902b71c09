// Package saberdecimals provides CPI bindings for the Saber decimal
// wrapper program. Tokens with mismatched decimals are wrapped 1:1 at a
// fixed multiplier, so deposits and withdrawals are the swap surface.
package saberdecimals

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed decimal wrapper program.
var ProgramID = solana.MustPublicKeyFromBase58("DecZY86MU5Gj7kppfUCEmd4LbXXuyZH1yHaP2NTqdiZB")

func wrapperSchema() cpi.Schema {
	return cpi.Schema{
		cpi.ReadOnly("wrapper"),
		cpi.Mut("wrapper_mint"),
		cpi.Mut("wrapper_underlying_tokens"),
		cpi.Signer("owner"),
		cpi.Mut("user_underlying_tokens"),
		cpi.Mut("user_wrapped_tokens"),
		cpi.ReadOnly("token_program"),
	}
}

// Deposit wraps underlying tokens into wrapper tokens.
var Deposit = &cpi.Descriptor{
	Name:      "deposit",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("deposit"),
	Accounts:  wrapperSchema(),
}

// Withdraw unwraps wrapper tokens back to the underlying.
var Withdraw = &cpi.Descriptor{
	Name:      "withdraw",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("withdraw"),
	Accounts:  wrapperSchema(),
}

// AmountArgs carry the single token amount shared by both instructions.
type AmountArgs struct {
	Amount uint64
}

func (a AmountArgs) EncodedLen() int { return 8 }

func (a AmountArgs) EncodeArgs(e *cpi.Encoder) { e.PutUint64(a.Amount) }

// ExecDeposit submits a deposit.
func ExecDeposit(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args AmountArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Deposit, accounts, args, signers...)
}

// ExecWithdraw submits a withdrawal.
func ExecWithdraw(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args AmountArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Withdraw, accounts, args, signers...)
}

// Protocol returns the registry entry for the Saber decimal wrapper.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "saber_decimals",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{Deposit, Withdraw},
	}
}
