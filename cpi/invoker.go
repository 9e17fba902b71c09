// Package cpi is a generic cross-program-invocation adapter for Solana DEX
// programs. It reproduces the exact instruction-data layout and account
// ordering each target program expects, and submits the invocation either
// with plain transaction authority or with seed-derived PDA attestations.
//
// The package holds no state between invocations: every payload is built
// fresh for one call and discarded. It never retries, logs, or interprets
// target-program failures; errors surface verbatim to the caller.
package cpi

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// Seeds is one signer attestation: the seed slices (including the bump) a
// program-derived address was computed from. Supplying seeds proves
// authority over the derived account without a cryptographic signature; the
// execution facility, not this layer, re-derives and checks the address.
type Seeds [][]byte

// Executor is the underlying cross-program-invocation facility. Its
// correctness (signature checks, account ownership enforcement) is trusted,
// not re-verified here. Submit transfers control synchronously into the
// target program and returns only after it completes or aborts; the call
// either fully commits in the target or has no effect.
type Executor interface {
	Submit(ctx context.Context, ix solana.Instruction, signers []Seeds) error
}

// Invoke submits one instruction with the current call's own transaction
// authority (an empty attestation set).
func Invoke(ctx context.Context, exec Executor, d *Descriptor, accounts Bound, args Args) error {
	return InvokeSigned(ctx, exec, d, accounts, args)
}

// InvokeSigned submits one instruction with zero or more seed-derived
// attestations. The payload and account-metadata list are identical to the
// unsigned form; only the attestation set passed to the executor differs.
func InvokeSigned(ctx context.Context, exec Executor, d *Descriptor, accounts Bound, args Args, signers ...Seeds) error {
	ix, err := d.Instruction(accounts, args)
	if err != nil {
		return err
	}
	return exec.Submit(ctx, ix, signers)
}
