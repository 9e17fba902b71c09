// Package launchlab provides CPI bindings for the Raydium LaunchLab
// bonding-curve program.
package launchlab

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed LaunchLab program.
var ProgramID = solana.MustPublicKeyFromBase58("LanMV9sAd7wArD4vJFi2qDdfnVhFxYSUg6eADduJ3uj")

func tradeSchema() cpi.Schema {
	return cpi.Schema{
		cpi.Signer("payer"),
		cpi.ReadOnly("authority"),
		cpi.ReadOnly("global_config"),
		cpi.ReadOnly("platform_config"),
		cpi.Mut("pool_state"),
		cpi.Mut("user_base_token"),
		cpi.Mut("user_quote_token"),
		cpi.Mut("base_vault"),
		cpi.Mut("quote_vault"),
		cpi.ReadOnly("base_token_mint"),
		cpi.ReadOnly("quote_token_mint"),
		cpi.ReadOnly("base_token_program"),
		cpi.ReadOnly("quote_token_program"),
		cpi.ReadOnly("event_authority"),
		cpi.ReadOnly("program"),
	}
}

// BuyExactIn spends a fixed quote amount on curve tokens.
var BuyExactIn = &cpi.Descriptor{
	Name:      "buy_exact_in",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("buy_exact_in"),
	Accounts:  tradeSchema(),
}

// SellExactIn sells a fixed token amount back to the curve.
var SellExactIn = &cpi.Descriptor{
	Name:      "sell_exact_in",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("sell_exact_in"),
	Accounts:  tradeSchema(),
}

// TradeArgs are shared by both exact-in instructions.
type TradeArgs struct {
	AmountIn         uint64
	MinimumAmountOut uint64
	// ShareFeeRate is the referral share in basis points.
	ShareFeeRate uint64
}

func (a TradeArgs) EncodedLen() int { return 24 }

func (a TradeArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.AmountIn)
	e.PutUint64(a.MinimumAmountOut)
	e.PutUint64(a.ShareFeeRate)
}

// ExecBuyExactIn submits a buy.
func ExecBuyExactIn(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args TradeArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, BuyExactIn, accounts, args, signers...)
}

// ExecSellExactIn submits a sell.
func ExecSellExactIn(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args TradeArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, SellExactIn, accounts, args, signers...)
}

// Protocol returns the registry entry for LaunchLab.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "raydium_launchlab",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{BuyExactIn, SellExactIn},
	}
}
