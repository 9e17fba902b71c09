// Package pumpamm provides CPI bindings for the Pump.fun AMM (PumpSwap)
// program, the venue bonding-curve tokens graduate to.
package pumpamm

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed Pump.fun AMM program.
var ProgramID = solana.MustPublicKeyFromBase58("pAMMBay6oceH9fJKBRHGP5D4bD4sWpmSwMn52FMfXEA")

// Both swap directions share one 19-account schema.
func swapSchema() cpi.Schema {
	return cpi.Schema{
		cpi.ReadOnly("pool"),
		cpi.MutSigner("user"),
		cpi.ReadOnly("global_config"),
		cpi.ReadOnly("base_mint"),
		cpi.ReadOnly("quote_mint"),
		cpi.Mut("user_base_token_account"),
		cpi.Mut("user_quote_token_account"),
		cpi.Mut("pool_base_token_account"),
		cpi.Mut("pool_quote_token_account"),
		cpi.ReadOnly("protocol_fee_recipient"),
		cpi.Mut("protocol_fee_recipient_token_account"),
		cpi.ReadOnly("base_token_program"),
		cpi.ReadOnly("quote_token_program"),
		cpi.ReadOnly("system_program"),
		cpi.ReadOnly("associated_token_program"),
		cpi.ReadOnly("event_authority"),
		cpi.ReadOnly("program"),
		cpi.Mut("coin_creator_vault_ata"),
		cpi.ReadOnly("coin_creator_vault_authority"),
	}
}

// Buy swaps quote into base.
var Buy = &cpi.Descriptor{
	Name:      "buy",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("buy"),
	Accounts:  swapSchema(),
}

// Sell swaps base into quote.
var Sell = &cpi.Descriptor{
	Name:      "sell",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("sell"),
	Accounts:  swapSchema(),
}

// BuyArgs are the buy instruction arguments.
type BuyArgs struct {
	BaseAmountOut    uint64
	MaxQuoteAmountIn uint64
}

func (a BuyArgs) EncodedLen() int { return 16 }

func (a BuyArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.BaseAmountOut)
	e.PutUint64(a.MaxQuoteAmountIn)
}

// SellArgs are the sell instruction arguments.
type SellArgs struct {
	BaseAmountIn      uint64
	MinQuoteAmountOut uint64
}

func (a SellArgs) EncodedLen() int { return 16 }

func (a SellArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.BaseAmountIn)
	e.PutUint64(a.MinQuoteAmountOut)
}

// ExecBuy submits a buy.
func ExecBuy(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args BuyArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Buy, accounts, args, signers...)
}

// ExecSell submits a sell.
func ExecSell(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args SellArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Sell, accounts, args, signers...)
}

// Protocol returns the registry entry for the Pump.fun AMM.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "pump_fun_amm",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{Buy, Sell},
	}
}
