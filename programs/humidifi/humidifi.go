// Package humidifi provides CPI bindings for the HumidiFi program.
//
// HumidiFi is a native program whose pool data and instruction data are XOR
// obfuscated. Two swap shapes exist: Swap (9 accounts) and SwapV2 (13
// accounts, explicit mints, Token-2022 capable). The direction flag of the
// V1 instruction is inverted relative to the V2 convention; token_a is the
// quote side and token_b the base side.
package humidifi

import (
	"context"
	"encoding/binary"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// ProgramID is the deployed HumidiFi program.
var ProgramID = solana.MustPublicKeyFromBase58("9H6tua7jkLhdm3w8BvgpTn5LZNU7g4ZynDmCiNN3q6Rp")

// SwapDataSize is the fixed length of both swap instruction payloads.
const SwapDataSize = 25

// xorKeys obfuscate pubkeys and u64 fields. A 32-byte key is handled as
// four u64 chunks, each XORed with the key at its index.
var xorKeys = [4]uint64{
	0xfb5ce87aae443c38,
	0x04a2178451bac3c7,
	0x04a1178751b9c3c6,
	0x04a0178651b8c3c5,
}

// XORDecodePubkey decodes a 32-byte obfuscated key from pool data. XOR is
// symmetric, so the same function encodes.
func XORDecodePubkey(encrypted [32]byte) [32]byte {
	var decoded [32]byte
	for i := 0; i < 4; i++ {
		chunk := binary.LittleEndian.Uint64(encrypted[i*8:])
		binary.LittleEndian.PutUint64(decoded[i*8:], chunk^xorKeys[i])
	}
	return decoded
}

// XOREncodePubkey is the symmetric counterpart of XORDecodePubkey.
func XOREncodePubkey(pubkey [32]byte) [32]byte {
	return XORDecodePubkey(pubkey)
}

// XORDecodeUint64 decodes one obfuscated u64 chunk.
func XORDecodeUint64(encrypted uint64, keyIndex int) uint64 {
	return encrypted ^ xorKeys[keyIndex%4]
}

// XOREncodeUint64 encodes one u64 chunk.
func XOREncodeUint64(value uint64, keyIndex int) uint64 {
	return XORDecodeUint64(value, keyIndex)
}

// Verified pool account data offsets. The stored keys are obfuscated.
const (
	QuoteMintOffset    = 384
	BaseMintOffset     = 416
	PoolAccountOffset  = 448
	TokenAccountOffset = 480
	MinPoolDataSize    = 512
)

// ParseQuoteMint extracts and decodes the quote mint from pool data.
func ParseQuoteMint(poolData []byte) (solana.PublicKey, bool) {
	return parsePoolKey(poolData, QuoteMintOffset)
}

// ParseBaseMint extracts and decodes the base mint from pool data.
func ParseBaseMint(poolData []byte) (solana.PublicKey, bool) {
	return parsePoolKey(poolData, BaseMintOffset)
}

func parsePoolKey(poolData []byte, offset int) (solana.PublicKey, bool) {
	if len(poolData) < offset+32 {
		return solana.PublicKey{}, false
	}
	var encrypted [32]byte
	copy(encrypted[:], poolData[offset:offset+32])
	decoded := XORDecodePubkey(encrypted)
	return solana.PublicKeyFromBytes(decoded[:]), true
}

// Direction is the swap direction.
type Direction uint8

const (
	// QuoteToBase swaps quote for base (e.g. USDC -> SOL).
	QuoteToBase Direction = iota
	// BaseToQuote swaps base for quote (e.g. SOL -> USDC).
	BaseToQuote
)

// v1Bool returns the is_base_to_quote flag of the V1 instruction, which is
// inverted relative to V2.
func (d Direction) v1Bool() bool { return d == QuoteToBase }

// v2Bool returns the is_base_to_quote flag of the V2 instruction.
func (d Direction) v2Bool() bool { return d == BaseToQuote }

// Swap executes the 9-account V1 swap.
var Swap = &cpi.Descriptor{
	Name:      "swap",
	ProgramID: ProgramID,
	Accounts: cpi.Schema{
		cpi.Signer("user_wallet"),
		cpi.Mut("pool"),
		cpi.Mut("pool_account_1"),
		cpi.Mut("pool_account_2"),
		cpi.Mut("pool_account_3"),
		cpi.Mut("pool_account_4"),
		cpi.ReadOnly("clock"),
		cpi.ReadOnly("token_program"),
		cpi.ReadOnly("instructions_sysvar"),
	},
}

// SwapV2 executes the 13-account V2 swap with explicit mints.
var SwapV2 = &cpi.Descriptor{
	Name:      "swap_v2",
	ProgramID: ProgramID,
	Accounts: cpi.Schema{
		cpi.Mut("pool_account_0"),
		cpi.Mut("pool_account_1"),
		cpi.Mut("pool_account_2"),
		cpi.Mut("pool_account_3"),
		cpi.Mut("pool_account_4"),
		cpi.Mut("pool_account_5"),
		cpi.ReadOnly("clock"),
		cpi.ReadOnly("token_program_1"),
		cpi.ReadOnly("token_program_2"),
		cpi.ReadOnly("instructions_sysvar"),
		cpi.ReadOnly("quote_mint"),
		cpi.ReadOnly("base_mint"),
		cpi.ReadOnly("additional_account"),
	},
}

// directionBaseByte carries the observed constant bits of payload byte 16;
// bit 0 encodes the direction.
const directionBaseByte = 0x38

// SwapArgs are the decoded swap parameters. The wire payload is obfuscated;
// EncodeArgs produces the obfuscated form.
type SwapArgs struct {
	// SwapID identifies the pool pair.
	SwapID uint64
	// Direction of the swap.
	Direction Direction
	// V2 selects the SwapV2 direction convention.
	V2 bool
}

func (a SwapArgs) EncodedLen() int { return SwapDataSize }

// EncodeArgs writes the obfuscated 25-byte payload: the XOR-encoded swap id,
// an encoded zero chunk, the direction byte, and a trailing encoded chunk.
func (a SwapArgs) EncodeArgs(e *cpi.Encoder) {
	e.PutUint64(XOREncodeUint64(a.SwapID, 0))
	e.PutUint64(XOREncodeUint64(0, 1))

	isBaseToQuote := a.Direction.v1Bool()
	if a.V2 {
		isBaseToQuote = a.Direction.v2Bool()
	}
	if isBaseToQuote {
		e.PutUint8(directionBaseByte | 0x01)
	} else {
		e.PutUint8(directionBaseByte &^ 0x01)
	}

	e.PutUint64(XOREncodeUint64(0, 3))
}

// ExecSwap submits a V1 swap.
func ExecSwap(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args SwapArgs, signers ...cpi.Seeds) error {
	args.V2 = false
	return cpi.InvokeSigned(ctx, exec, Swap, accounts, args, signers...)
}

// ExecSwapV2 submits a V2 swap.
func ExecSwapV2(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, args SwapArgs, signers ...cpi.Seeds) error {
	args.V2 = true
	return cpi.InvokeSigned(ctx, exec, SwapV2, accounts, args, signers...)
}

// ExecSwapRaw replays an already-obfuscated payload captured from a prior
// transaction against the V1 schema.
func ExecSwapRaw(ctx context.Context, exec cpi.Executor, accounts cpi.Bound, raw [SwapDataSize]byte, signers ...cpi.Seeds) error {
	return cpi.InvokeSigned(ctx, exec, Swap, accounts, cpi.RawArgs(raw[:]), signers...)
}

// Protocol returns the registry entry for HumidiFi.
func Protocol() registry.Protocol {
	return registry.Protocol{
		Name:         "humidifi",
		ProgramID:    ProgramID,
		Instructions: []*cpi.Descriptor{Swap, SwapV2},
	}
}
