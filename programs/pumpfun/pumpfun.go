// Package pumpfun provides CPI bindings for the Pump.fun bonding-curve
// program.
package pumpfun

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed Pump.fun program.
var ProgramID = solana.MustPublicKeyFromBase58("6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P")

// Buy purchases tokens from the bonding curve. Account list must be in the
// exact order expected by the program.
var Buy = &cpi.Descriptor{
	Name:      "buy",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("buy"),
	Accounts: cpi.Schema{
		cpi.ReadOnly("global"),
		cpi.Mut("fee_recipient"),
		cpi.ReadOnly("mint"),
		cpi.Mut("bonding_curve"),
		cpi.Mut("associated_bonding_curve"),
		cpi.Mut("associated_user"),
		cpi.MutSigner("user"),
		cpi.ReadOnly("system_program"),
		cpi.ReadOnly("token_program"),
		cpi.ReadOnly("rent"),
		cpi.ReadOnly("event_authority"),
		cpi.ReadOnly("program"),
	},
}

// Sell sells tokens back to the bonding curve.
var Sell = &cpi.Descriptor{
	Name:      "sell",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("sell"),
	Accounts: cpi.Schema{
		cpi.ReadOnly("global"),
		cpi.Mut("fee_recipient"),
		cpi.ReadOnly("mint"),
		cpi.Mut("bonding_curve"),
		cpi.Mut("associated_bonding_curve"),
		cpi.Mut("associated_user"),
		cpi.MutSigner("user"),
		cpi.ReadOnly("system_program"),
		cpi.ReadOnly("token_program"),
		cpi.ReadOnly("associated_token_program"),
		cpi.ReadOnly("event_authority"),
		cpi.ReadOnly("program"),
	},
}

// BuyArgs are the buy instruction arguments.
type BuyArgs struct {
	// Amount is the token amount to receive.
	Amount uint64
	// MaxSolCost caps the lamports spent.
	MaxSolCost uint64
}

func (a BuyArgs) EncodedLen() int { return 16 }

func (a BuyArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.Amount)
	e.PutUint64(a.MaxSolCost)
}

// SellArgs are the sell instruction arguments.
type SellArgs struct {
	// Amount is the token amount to sell.
	Amount uint64
	// MinSolOutput bounds slippage.
	MinSolOutput uint64
}

func (a SellArgs) EncodedLen() int { return 16 }

func (a SellArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.Amount)
	e.PutUint64(a.MinSolOutput)
}

// ExecBuy submits a buy.
func ExecBuy(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args BuyArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Buy, accounts, args, signers...)
}

// ExecSell submits a sell.
func ExecSell(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args SellArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Sell, accounts, args, signers...)
}

// Protocol returns the registry entry for Pump.fun.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "pump_fun",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{Buy, Sell},
	}
}
