// Package moonit provides CPI bindings for the Moonit (Moonshot)
// bonding-curve program.
package moonit

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed Moonit program.
var ProgramID = solana.MustPublicKeyFromBase58("MoonCVVNZFSYkqNXP6bxHLPL6QQJiMagDL3qcqUQTrG")

// FixedSide selects which trade side the amount fields fix.
type FixedSide uint8

const (
	FixedSideIn  FixedSide = 0
	FixedSideOut FixedSide = 1
)

func tradeSchema() cpi.Schema {
	return cpi.Schema{
		cpi.MutSigner("sender"),
		cpi.Mut("sender_token_account"),
		cpi.Mut("curve_account"),
		cpi.Mut("curve_token_account"),
		cpi.Mut("dex_fee"),
		cpi.Mut("helio_fee"),
		cpi.ReadOnly("mint"),
		cpi.ReadOnly("config_account"),
		cpi.ReadOnly("token_program"),
		cpi.ReadOnly("associated_token_program"),
		cpi.ReadOnly("system_program"),
	}
}

// Buy purchases curve tokens for collateral.
var Buy = &cpi.Descriptor{
	Name:      "buy",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("buy"),
	Accounts:  tradeSchema(),
}

// Sell sells curve tokens for collateral.
var Sell = &cpi.Descriptor{
	Name:      "sell",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("sell"),
	Accounts:  tradeSchema(),
}

// TradeArgs are shared by buy and sell.
type TradeArgs struct {
	TokenAmount      uint64
	CollateralAmount uint64
	FixedSide        FixedSide
	SlippageBps      uint64
}

func (a TradeArgs) EncodedLen() int { return 8 + 8 + 1 + 8 }

func (a TradeArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.TokenAmount)
	e.PutUint64(a.CollateralAmount)
	e.PutUint8(uint8(a.FixedSide))
	e.PutUint64(a.SlippageBps)
}

// ExecBuy submits a buy.
func ExecBuy(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args TradeArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Buy, accounts, args, signers...)
}

// ExecSell submits a sell.
func ExecSell(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args TradeArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Sell, accounts, args, signers...)
}

// Protocol returns the registry entry for Moonit.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "moonit",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{Buy, Sell},
	}
}
