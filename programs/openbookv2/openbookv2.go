// Package openbookv2 provides CPI bindings for the OpenBook v2 central
// limit order book program. Swaps are expressed as immediate
// place_take_order instructions.
package openbookv2

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed OpenBook v2 program.
var ProgramID = solana.MustPublicKeyFromBase58("opnb2LAfJYbRMAHHvqjCwQxanZn7ReEHp1k81EohpZb")

// Side of the order book.
type Side uint8

const (
	SideBid Side = 0
	SideAsk Side = 1
)

// OrderType restricts how the order may rest or cross.
type OrderType uint8

const (
	OrderTypeLimit             OrderType = 0
	OrderTypeImmediateOrCancel OrderType = 1
	OrderTypePostOnly          OrderType = 2
	OrderTypeMarket            OrderType = 3
	OrderTypeFillOrKill        OrderType = 4
)

// PlaceTakeOrder crosses the book immediately without creating an open
// orders account.
var PlaceTakeOrder = &cpi.Descriptor{
	Name:      "place_take_order",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("place_take_order"),
	Accounts: cpi.Schema{
		cpi.Signer("signer"),
		cpi.Mut("penalty_payer"),
		cpi.Mut("market"),
		cpi.ReadOnly("market_authority"),
		cpi.Mut("bids"),
		cpi.Mut("asks"),
		cpi.Mut("market_base_vault"),
		cpi.Mut("market_quote_vault"),
		cpi.Mut("event_heap"),
		cpi.Mut("user_base_account"),
		cpi.Mut("user_quote_account"),
		cpi.ReadOnly("oracle_a"),
		cpi.ReadOnly("oracle_b"),
		cpi.ReadOnly("token_program"),
		cpi.ReadOnly("system_program"),
		cpi.ReadOnly("open_orders_admin"),
	},
}

// PlaceTakeOrderArgs are the instruction arguments. Lot fields use the
// market's base/quote lot sizes.
type PlaceTakeOrderArgs struct {
	Side                      Side
	PriceLots                 int64
	MaxBaseLots               int64
	MaxQuoteLotsIncludingFees int64
	OrderType                 OrderType
	Limit                     uint8
}

func (a PlaceTakeOrderArgs) EncodedLen() int { return 1 + 8 + 8 + 8 + 1 + 1 }

func (a PlaceTakeOrderArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint8(uint8(a.Side))
	e.PutInt64(a.PriceLots)
	e.PutInt64(a.MaxBaseLots)
	e.PutInt64(a.MaxQuoteLotsIncludingFees)
	e.PutUint8(uint8(a.OrderType))
	e.PutUint8(a.Limit)
}

// ExecPlaceTakeOrder submits the order.
func ExecPlaceTakeOrder(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args PlaceTakeOrderArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, PlaceTakeOrder, accounts, args, signers...)
}

// Protocol returns the registry entry for OpenBook v2.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "openbook_v2",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{PlaceTakeOrder},
	}
}
