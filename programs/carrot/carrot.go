// Package carrot provides CPI bindings for the Carrot yield vault program.
// CRT is issued against deposited stables and redeemed back.
package carrot

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed Carrot program.
var ProgramID = solana.MustPublicKeyFromBase58("CarrotwivhMpDnm27EHmRLeQ683Z1PufuqEmBZvD2tdC")

func vaultSchema() cpi.Schema {
	return cpi.Schema{
		cpi.Mut("vault"),
		cpi.Mut("shares_mint"),
		cpi.Mut("user_shares_account"),
		cpi.Mut("user_token_account"),
		cpi.Mut("vault_token_account"),
		cpi.ReadOnly("asset_mint"),
		cpi.MutSigner("user"),
		cpi.ReadOnly("token_program"),
		cpi.ReadOnly("shares_token_program"),
		cpi.ReadOnly("associated_token_program"),
		cpi.ReadOnly("system_program"),
	}
}

// Issue deposits the asset and mints CRT shares.
var Issue = &cpi.Descriptor{
	Name:      "issue",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("issue"),
	Accounts:  vaultSchema(),
}

// Redeem burns CRT shares and withdraws the asset.
var Redeem = &cpi.Descriptor{
	Name:      "redeem",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("redeem"),
	Accounts:  vaultSchema(),
}

// IssueArgs are the issue instruction arguments.
type IssueArgs struct {
	Amount uint64
}

func (a IssueArgs) EncodedLen() int { return 8 }

func (a IssueArgs) EncodeArgs(e *cpi.Encoder) { e.PutUint64(a.Amount) }

// RedeemArgs are the redeem instruction arguments.
type RedeemArgs struct {
	Shares uint64
}

func (a RedeemArgs) EncodedLen() int { return 8 }

func (a RedeemArgs) EncodeArgs(e *cpi.Encoder) { e.PutUint64(a.Shares) }

// ExecIssue submits an issue.
func ExecIssue(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args IssueArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Issue, accounts, args, signers...)
}

// ExecRedeem submits a redeem.
func ExecRedeem(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args RedeemArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Redeem, accounts, args, signers...)
}

// Protocol returns the registry entry for Carrot.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "carrot",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{Issue, Redeem},
	}
}
