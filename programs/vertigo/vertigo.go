// Package vertigo provides CPI bindings for the Vertigo AMM program.
package vertigo

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed Vertigo program.
var ProgramID = solana.MustPublicKeyFromBase58("5DnYwGRxXM9QtHg8U5jsPm5GCyyp2VVWTCtv3xwMJcui")

func tradeSchema() cpi.Schema {
	return cpi.Schema{
		cpi.Mut("pool"),
		cpi.MutSigner("user"),
		cpi.ReadOnly("owner"),
		cpi.ReadOnly("mint_a"),
		cpi.ReadOnly("mint_b"),
		cpi.Mut("user_ta_a"),
		cpi.Mut("user_ta_b"),
		cpi.Mut("vault_a"),
		cpi.Mut("vault_b"),
		cpi.ReadOnly("token_program_a"),
		cpi.ReadOnly("token_program_b"),
		cpi.ReadOnly("system_program"),
		cpi.ReadOnly("program"),
	}
}

// Buy swaps token B into token A.
var Buy = &cpi.Descriptor{
	Name:      "buy",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("buy"),
	Accounts:  tradeSchema(),
}

// Sell swaps token A into token B.
var Sell = &cpi.Descriptor{
	Name:      "sell",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("sell"),
	Accounts:  tradeSchema(),
}

// TradeArgs are shared by buy and sell. Limit bounds the output amount.
type TradeArgs struct {
	Amount uint64
	Limit  uint64
}

func (a TradeArgs) EncodedLen() int { return 16 }

func (a TradeArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.Amount)
	e.PutUint64(a.Limit)
}

// ExecBuy submits a buy.
func ExecBuy(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args TradeArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Buy, accounts, args, signers...)
}

// ExecSell submits a sell.
func ExecSell(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args TradeArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Sell, accounts, args, signers...)
}

// Protocol returns the registry entry for Vertigo.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "vertigo",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{Buy, Sell},
	}
}
