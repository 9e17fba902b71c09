package cpi

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// ErrSchemaMismatch is returned when the caller binds an account sequence
// whose length does not equal the instruction's schema length. It is a
// caller error and is always detected before any payload is built.
var ErrSchemaMismatch = errors.New("account schema mismatch")

// Role is one required account slot of an instruction: its position in the
// schema is significant and its flags are fixed by the target program.
type Role struct {
	Name     string
	Writable bool
	Signer   bool
}

// ReadOnly declares a non-writable, non-signing account slot.
func ReadOnly(name string) Role { return Role{Name: name} }

// Mut declares a writable account slot.
func Mut(name string) Role { return Role{Name: name, Writable: true} }

// Signer declares a read-only signing account slot.
func Signer(name string) Role { return Role{Name: name, Signer: true} }

// MutSigner declares a writable signing account slot.
func MutSigner(name string) Role { return Role{Name: name, Writable: true, Signer: true} }

// Schema is the ordered, fixed-arity account list one instruction requires.
// Schemas are immutable per-instruction constants; only the bound addresses
// vary per call site.
type Schema []Role

// Bind pairs each role, in order, with one caller-supplied address. The
// account list must match the schema length exactly.
func (s Schema) Bind(keys ...solana.PublicKey) (Bound, error) {
	if len(keys) != len(s) {
		return Bound{}, arityError(len(s), len(keys))
	}
	return Bound{roles: s, keys: keys}, nil
}

func arityError(want, got int) error {
	return fmt.Errorf("%w: instruction requires %d accounts, got %d", ErrSchemaMismatch, want, got)
}

// Bound is a schema resolved against live addresses for one invocation.
type Bound struct {
	roles Schema
	keys  []solana.PublicKey
}

// Len returns the number of bound accounts.
func (b Bound) Len() int { return len(b.keys) }

// Key returns the address bound at position i.
func (b Bound) Key(i int) solana.PublicKey { return b.keys[i] }

// Metas resolves the ordered account-metadata list the invocation submits.
// Order is the schema's declared role order; flags come from the roles, the
// addresses from the bound keys. Account content is never inspected.
func (b Bound) Metas() []*solana.AccountMeta {
	metas := make([]*solana.AccountMeta, len(b.roles))
	for i, role := range b.roles {
		metas[i] = &solana.AccountMeta{
			PublicKey:  b.keys[i],
			IsWritable: role.Writable,
			IsSigner:   role.Signer,
		}
	}
	return metas
}
