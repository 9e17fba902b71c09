// Package raydiumcp provides CPI bindings for the Raydium CP-Swap
// (constant-product, OpenBook-free) program.
package raydiumcp

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed CP-Swap program.
var ProgramID = solana.MustPublicKeyFromBase58("CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C")

func swapSchema() cpi.Schema {
	return cpi.Schema{
		cpi.Signer("payer"),
		cpi.ReadOnly("authority"),
		cpi.ReadOnly("amm_config"),
		cpi.Mut("pool_state"),
		cpi.Mut("input_token_account"),
		cpi.Mut("output_token_account"),
		cpi.Mut("input_vault"),
		cpi.Mut("output_vault"),
		cpi.ReadOnly("input_token_program"),
		cpi.ReadOnly("output_token_program"),
		cpi.ReadOnly("input_token_mint"),
		cpi.ReadOnly("output_token_mint"),
		cpi.Mut("observation_state"),
	}
}

// SwapBaseInput trades a fixed input amount.
var SwapBaseInput = &cpi.Descriptor{
	Name:      "swap_base_input",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("swap_base_input"),
	Accounts:  swapSchema(),
}

// SwapBaseOutput trades toward a fixed output amount.
var SwapBaseOutput = &cpi.Descriptor{
	Name:      "swap_base_output",
	ProgramID: ProgramID,
	Tag:       cpi.AnchorTag("swap_base_output"),
	Accounts:  swapSchema(),
}

// SwapBaseInputArgs are the swap_base_input arguments.
type SwapBaseInputArgs struct {
	AmountIn         uint64
	MinimumAmountOut uint64
}

func (a SwapBaseInputArgs) EncodedLen() int { return 16 }

func (a SwapBaseInputArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.AmountIn)
	e.PutUint64(a.MinimumAmountOut)
}

// SwapBaseOutputArgs are the swap_base_output arguments.
type SwapBaseOutputArgs struct {
	MaxAmountIn uint64
	AmountOut   uint64
}

func (a SwapBaseOutputArgs) EncodedLen() int { return 16 }

func (a SwapBaseOutputArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(a.MaxAmountIn)
	e.PutUint64(a.AmountOut)
}

// ExecSwapBaseInput submits a fixed-input swap.
func ExecSwapBaseInput(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args SwapBaseInputArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, SwapBaseInput, accounts, args, signers...)
}

// ExecSwapBaseOutput submits a fixed-output swap.
func ExecSwapBaseOutput(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args SwapBaseOutputArgs, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, SwapBaseOutput, accounts, args, signers...)
}

// Protocol returns the registry entry for CP-Swap.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "raydium_cp",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{SwapBaseInput, SwapBaseOutput},
	}
}
