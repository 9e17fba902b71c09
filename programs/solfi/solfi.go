// Package solfi provides CPI bindings for the SolFi V2 program.
//
// SolFi V2 is a native (non-Anchor) program with a custom instruction
// format: a single-byte instruction code instead of an 8-byte sighash, a
// 25-byte swap payload, and a 13-account schema. Pricing is slot-dependent;
// custom error 0x17 indicates stale account data and custom error 23 an
// expired oracle window.
package solfi

import (
	"context"
	"encoding/binary"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed SolFi V2 program.
var ProgramID = solana.MustPublicKeyFromBase58("SV2EYYJyRz2YhfXwXnhNAevDEui5Q6yrfyo13WtupPF")

// Error codes observed on-chain.
const (
	ErrorStaleData     uint32 = 0x17
	ErrorOracleExpired uint32 = 23
)

// Market types, the first byte of the market_state account.
const (
	MarketTypeFF uint8 = 0xFF
	MarketTypeFE uint8 = 0xFE
	MarketTypeFD uint8 = 0xFD
	MarketTypeFC uint8 = 0xFC
)

// Known active pools.
var (
	PoolPumpUSDC = solana.MustPublicKeyFromBase58("2kfQuYG2FVZL2RqqKEttcdadbPWP4c7b6AFQztNcBWyV")
	PoolWSOLUSDC = solana.MustPublicKeyFromBase58("65ZHSArs5XxPseKQbB1B4r16vDxMWnCxHMzogDAqiDUc")
	PoolUSDTUSDC = solana.MustPublicKeyFromBase58("FkEB6uvyzuoaGpgs4yRtFtxC4WJxhejNFbUkj5R6wR32")
	PoolZECUSDC  = solana.MustPublicKeyFromBase58("BjBHvbqgQCRmvZ6u3VzGrHn3QZ1NfmMRujoqjeaK6fLT")
	PoolMONUSDC  = solana.MustPublicKeyFromBase58("2Q6S8p9iZNzMvpTemiC56HqCJ3F3szNoyRkvqEKfCanY")
	PoolHYPEUSDC = solana.MustPublicKeyFromBase58("2e25gRiddjn968aXrLt1oZw3BZ4fYD5D8mCv7uKxu1yL")
)

// Swap executes a token swap. Data is exactly 25 bytes: the 0x07 code byte
// followed by amount_in, min_amount_out and side, all u64 little-endian.
// The sysvar_instructions account lets the program detect its caller.
var Swap = &cpi.Descriptor{
	Name:      "swap",
	ProgramID: ProgramID,
	Tag:       cpi.LegacyTag(0x07),
	Accounts: cpi.Schema{
		cpi.Mut("market_state"),
		cpi.ReadOnly("authority"),
		cpi.Mut("base_vault"),
		cpi.Mut("quote_vault"),
		cpi.Mut("user_base_account"),
		cpi.Mut("user_quote_account"),
		cpi.Mut("fee_receiver"),
		cpi.ReadOnly("referral_account"),
		cpi.ReadOnly("base_mint"),
		cpi.ReadOnly("quote_mint"),
		cpi.ReadOnly("token_program"),
		cpi.ReadOnly("token_program_2"),
		cpi.ReadOnly("sysvar_instructions"),
	},
}

// Side is the swap direction, encoded as a u64.
type Side uint64

const (
	// SideBuy swaps quote for base (e.g. USDC -> SOL).
	SideBuy Side = 0
	// SideSell swaps base for quote (e.g. SOL -> USDC).
	SideSell Side = 1
)

// SideFromIsSell maps a sell flag onto the wire enum.
func SideFromIsSell(isSell bool) Side {
	if isSell {
		return SideSell
	}
	return SideBuy
}

// SwapArgs are the swap instruction arguments.
type SwapArgs struct {
	// AmountIn is the raw input token amount.
	AmountIn uint64
	// MinAmountOut bounds slippage; zero for market orders.
	MinAmountOut uint64
	// Side is the swap direction.
	Side Side
}

func (a SwapArgs) EncodedLen() int { return 24 }

func (a SwapArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.AmountIn)
	e.PutUint64(a.MinAmountOut)
	e.PutUint64(uint64(a.Side))
}

// ExecSwap submits the swap, optionally attesting PDA authority.
func ExecSwap(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args SwapArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Swap, accounts, args, signers...)
}

// ParseTokenBalance reads the amount field of an SPL token account's data.
func ParseTokenBalance(data []byte) (uint64, bool) {
	if len(data) < 72 {
		return 0, false
	}
	return binary.LittleEndian.Uint64(data[64:72]), true
}

// Protocol returns the registry entry for SolFi V2.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "solfi_v2",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{Swap},
	}
}
