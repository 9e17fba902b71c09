// Package boopfun provides CPI bindings for the Boop.fun bonding-curve
// program.
package boopfun

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed Boop.fun program.
var ProgramID = solana.MustPublicKeyFromBase58("boop8hVGQGqehUK2iVEMEnMrL5RbjywRzHKBmBE7ry4")

// BuyToken purchases curve tokens with SOL.
var BuyToken = &cpi.Descriptor{
	Name:      "buy_token",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("buy_token"),
	Accounts: cpi.Schema{
		cpi.ReadOnly("mint"),
		cpi.Mut("bonding_curve"),
		cpi.Mut("trading_fees_vault"),
		cpi.Mut("bonding_curve_vault"),
		cpi.Mut("bonding_curve_sol_vault"),
		cpi.Mut("recipient_token_account"),
		cpi.MutSigner("buyer"),
		cpi.ReadOnly("config"),
		cpi.ReadOnly("system_program"),
		cpi.ReadOnly("token_program"),
		cpi.ReadOnly("associated_token_program"),
	},
}

// SellToken sells curve tokens back for SOL.
var SellToken = &cpi.Descriptor{
	Name:      "sell_token",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("sell_token"),
	Accounts: cpi.Schema{
		cpi.ReadOnly("mint"),
		cpi.Mut("bonding_curve"),
		cpi.Mut("trading_fees_vault"),
		cpi.Mut("bonding_curve_vault"),
		cpi.Mut("bonding_curve_sol_vault"),
		cpi.Mut("seller_token_account"),
		cpi.MutSigner("seller"),
		cpi.Mut("recipient"),
		cpi.ReadOnly("config"),
		cpi.ReadOnly("system_program"),
		cpi.ReadOnly("token_program"),
	},
}

// BuyArgs are the buy_token instruction arguments.
type BuyArgs struct {
	BuyAmount    uint64
	AmountOutMin uint64
}

func (a BuyArgs) EncodedLen() int { return 16 }

func (a BuyArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.BuyAmount)
	e.PutUint64(a.AmountOutMin)
}

// SellArgs are the sell_token instruction arguments.
type SellArgs struct {
	SellAmount   uint64
	AmountOutMin uint64
}

func (a SellArgs) EncodedLen() int { return 16 }

func (a SellArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.SellAmount)
	e.PutUint64(a.AmountOutMin)
}

// ExecBuyToken submits a buy.
func ExecBuyToken(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args BuyArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, BuyToken, accounts, args, signers...)
}

// ExecSellToken submits a sell.
func ExecSellToken(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args SellArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, SellToken, accounts, args, signers...)
}

// Protocol returns the registry entry for Boop.fun.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "boopfun",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{BuyToken, SellToken},
	}
}
