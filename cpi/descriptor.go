package cpi

import (
	"github.com/gagliardetto/solana-go"
)

// Descriptor is the immutable constant data of one instruction: the target
// program, the discriminator tag its dispatcher expects, and the account
// schema it requires. Protocol packages expose descriptors as package vars.
type Descriptor struct {
	// Name is the instruction name as published in the protocol's IDL.
	Name string

	// ProgramID is the deployed program this instruction belongs to.
	ProgramID solana.PublicKey

	// Tag is the discriminator prefixed to the instruction data. Anchor
	// programs use an 8-byte sighash; native programs often use a single
	// code byte.
	Tag []byte

	// Accounts is the ordered account schema of the instruction.
	Accounts Schema
}

// Bind pairs the descriptor's schema with the caller's addresses.
func (d *Descriptor) Bind(keys ...solana.PublicKey) (Bound, error) {
	return d.Accounts.Bind(keys...)
}

// DataLen returns the full instruction-data length for args: tag plus the
// fixed-width argument encoding. It never varies by field values.
func (d *Descriptor) DataLen(args Args) int {
	return len(d.Tag) + args.EncodedLen()
}

// Instruction assembles Tag ‖ Codec(args) and pairs it with the resolved
// account-metadata list. The bound sequence must match the schema arity;
// binding through Bind (or Schema.Bind with this descriptor's schema)
// guarantees that.
func (d *Descriptor) Instruction(accounts Bound, args Args) (*solana.GenericInstruction, error) {
	if accounts.Len() != len(d.Accounts) {
		return nil, arityError(len(d.Accounts), accounts.Len())
	}

	data := make([]byte, d.DataLen(args))
	copy(data, d.Tag)
	args.EncodeArgs(NewEncoder(data[len(d.Tag):]))

	return solana.NewInstruction(d.ProgramID, accounts.Metas(), data), nil
}
