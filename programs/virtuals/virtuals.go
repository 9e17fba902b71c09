// Package virtuals provides CPI bindings for the Virtuals Protocol
// bonding-curve program.
package virtuals

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed Virtuals program.
var ProgramID = solana.MustPublicKeyFromBase58("39Pj2zivWjaD87trgPbmMCGskyfRE2uxgMzFxabq8tif")

func tradeSchema() cpi.Schema {
	return cpi.Schema{
		cpi.MutSigner("user"),
		cpi.ReadOnly("global_config"),
		cpi.Mut("virtual_pool"),
		cpi.Mut("user_token_account"),
		cpi.Mut("user_virtuals_account"),
		cpi.Mut("pool_token_account"),
		cpi.Mut("pool_virtuals_account"),
		cpi.Mut("fee_vault"),
		cpi.ReadOnly("token_mint"),
		cpi.ReadOnly("token_program"),
	}
}

// Buy purchases curve tokens with VIRTUAL.
var Buy = &cpi.Descriptor{
	Name:      "buy",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("buy"),
	Accounts:  tradeSchema(),
}

// Sell sells curve tokens back for VIRTUAL.
var Sell = &cpi.Descriptor{
	Name:      "sell",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("sell"),
	Accounts:  tradeSchema(),
}

// TradeArgs are shared by buy and sell.
type TradeArgs struct {
	AmountIn     uint64
	MinAmountOut uint64
}

func (a TradeArgs) EncodedLen() int { return 16 }

func (a TradeArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.AmountIn)
	e.PutUint64(a.MinAmountOut)
}

// ExecBuy submits a buy.
func ExecBuy(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args TradeArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Buy, accounts, args, signers...)
}

// ExecSell submits a sell.
func ExecSell(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args TradeArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Sell, accounts, args, signers...)
}

// Protocol returns the registry entry for Virtuals.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "virtuals",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{Buy, Sell},
	}
}
