// Package heaven provides CPI bindings for the Heaven launchpad AMM
// program.
package heaven

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed Heaven program.
var ProgramID = solana.MustPublicKeyFromBase58("HEAVEnMX7RoaYCucpyFterLVjyyCZsrZ7zLo1MZsCdM")

func tradeSchema() cpi.Schema {
	return cpi.Schema{
		cpi.MutSigner("user"),
		cpi.Mut("liquidity_pool_state"),
		cpi.ReadOnly("token_mint"),
		cpi.Mut("user_token_account"),
		cpi.Mut("user_wsol_account"),
		cpi.Mut("token_vault"),
		cpi.Mut("wsol_vault"),
		cpi.Mut("protocol_config"),
		cpi.Mut("protocol_fee_wsol_vault"),
		cpi.ReadOnly("token_program"),
		cpi.ReadOnly("wsol_token_program"),
		cpi.ReadOnly("system_program"),
	}
}

// Buy swaps SOL into the pool token.
var Buy = &cpi.Descriptor{
	Name:      "buy",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("buy"),
	Accounts:  tradeSchema(),
}

// Sell swaps the pool token back to SOL.
var Sell = &cpi.Descriptor{
	Name:      "sell",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("sell"),
	Accounts:  tradeSchema(),
}

// TradeArgs are shared by buy and sell. EncodedTag carries the caller's
// routing tag and is forwarded untouched.
type TradeArgs struct {
	AmountIn     uint64
	MinAmountOut uint64
	EncodedTag   uint64
}

func (a TradeArgs) EncodedLen() int { return 24 }

func (a TradeArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.AmountIn)
	e.PutUint64(a.MinAmountOut)
	e.PutUint64(a.EncodedTag)
}

// ExecBuy submits a buy.
func ExecBuy(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args TradeArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Buy, accounts, args, signers...)
}

// ExecSell submits a sell.
func ExecSell(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args TradeArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Sell, accounts, args, signers...)
}

// Protocol returns the registry entry for Heaven.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "heaven",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{Buy, Sell},
	}
}
