// executor/client.go
package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
)

var (
	// ErrNoEndpoints means the client was built without any RPC endpoint.
	ErrNoEndpoints = errors.New("no RPC endpoints configured")

	// ErrUnresolvedAttestation means a seed-derived attestation does not
	// resolve to any account of the submitted instruction.
	ErrUnresolvedAttestation = errors.New("attestation does not match any instruction account")
)

// Config controls the RPC-backed executor.
type Config struct {
	// Endpoints are the RPC nodes, tried in order (or raced, see Broadcast).
	Endpoints []string

	// Commitment used for preflight and blockhash queries.
	Commitment rpc.CommitmentType

	// SkipPreflight disables node-side simulation before send.
	SkipPreflight bool

	// Broadcast sends the transaction to every endpoint concurrently and
	// returns as soon as one accepts it.
	Broadcast bool

	// SignerProgram is the program identity PDA attestations are derived
	// against. Required only for submissions that carry attestations.
	SignerProgram solana.PublicKey
}

// Client is an off-chain Executor over Solana RPC. It wraps each invocation
// in a single-instruction transaction paid and signed by a local fee payer.
//
// Submissions carrying PDA attestations cannot be signed by a wallet, so the
// client verifies them through simulation with signature checks disabled,
// after resolving every attestation to its derived address.
type Client struct {
	nodes  []*rpc.Client
	payer  solana.PrivateKey
	cfg    Config
	logger *zap.Logger
}

// New builds a Client from config and a fee-payer key.
func New(cfg Config, payer solana.PrivateKey, logger *zap.Logger) (*Client, error) {
	if len(cfg.Endpoints) == 0 {
		return nil, ErrNoEndpoints
	}
	if cfg.Commitment == "" {
		cfg.Commitment = rpc.CommitmentConfirmed
	}

	nodes := make([]*rpc.Client, 0, len(cfg.Endpoints))
	for _, url := range cfg.Endpoints {
		nodes = append(nodes, rpc.New(url))
	}

	return &Client{
		nodes:  nodes,
		payer:  payer,
		cfg:    cfg,
		logger: logger.Named("cpi-executor"),
	}, nil
}

// Submit implements cpi.Executor.
func (c *Client) Submit(ctx context.Context, ix solana.Instruction, signers []cpi.Seeds) error {
	tx, err := c.buildTransaction(ctx, ix)
	if err != nil {
		return err
	}

	if len(signers) > 0 {
		if err := c.resolveAttestations(ix, signers); err != nil {
			return err
		}
		return c.simulate(ctx, tx)
	}

	if _, err := tx.Sign(c.keyGetter()); err != nil {
		return fmt.Errorf("failed to sign transaction: %w", err)
	}
	return c.send(ctx, tx)
}

func (c *Client) buildTransaction(ctx context.Context, ix solana.Instruction) (*solana.Transaction, error) {
	blockhash, err := c.latestBlockhash(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(
		[]solana.Instruction{ix},
		blockhash,
		solana.TransactionPayer(c.payer.PublicKey()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction: %w", err)
	}
	return tx, nil
}

func (c *Client) latestBlockhash(ctx context.Context) (solana.Hash, error) {
	var lastErr error
	for _, node := range c.nodes {
		out, err := node.GetLatestBlockhash(ctx, c.cfg.Commitment)
		if err != nil {
			lastErr = err
			continue
		}
		return out.Value.Blockhash, nil
	}
	return solana.Hash{}, lastErr
}

// resolveAttestations re-derives each attestation's program address and
// checks it is one of the instruction's accounts. The derivation itself is
// the execution facility's job on-chain; off-chain we only refuse
// attestations that cannot belong to this instruction.
func (c *Client) resolveAttestations(ix solana.Instruction, signers []cpi.Seeds) error {
	for _, seeds := range signers {
		derived, err := solana.CreateProgramAddress(seeds, c.cfg.SignerProgram)
		if err != nil {
			return fmt.Errorf("failed to derive attestation address: %w", err)
		}
		found := false
		for _, meta := range ix.Accounts() {
			if meta.PublicKey.Equals(derived) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: derived %s", ErrUnresolvedAttestation, derived)
		}
	}
	return nil
}

func (c *Client) simulate(ctx context.Context, tx *solana.Transaction) error {
	// PDA-signed shapes carry signer flags a wallet cannot satisfy; sign
	// what we can and let the node skip signature verification.
	if _, err := tx.PartialSign(c.keyGetter()); err != nil {
		return fmt.Errorf("failed to sign transaction: %w", err)
	}

	out, err := c.nodes[0].SimulateTransactionWithOpts(ctx, tx, &rpc.SimulateTransactionOpts{
		SigVerify:              false,
		ReplaceRecentBlockhash: true,
		Commitment:             c.cfg.Commitment,
	})
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	if out.Value.Err != nil {
		c.logger.Debug("Target program rejected instruction",
			zap.Any("err", out.Value.Err),
			zap.Strings("logs", out.Value.Logs))
		return fmt.Errorf("target program aborted: %v", out.Value.Err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, tx *solana.Transaction) error {
	if c.cfg.Broadcast && len(c.nodes) > 1 {
		return c.broadcast(ctx, tx)
	}

	var signature solana.Signature
	operation := func() error {
		var err error
		signature, err = c.nodes[0].SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
			SkipPreflight:       c.cfg.SkipPreflight,
			PreflightCommitment: c.cfg.Commitment,
		})
		if err != nil {
			c.logger.Warn("Retrying transaction send", zap.Error(err))
			return err
		}
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(backoff.NewExponentialBackOff(), ctx)); err != nil {
		return err
	}

	c.logger.Info("Transaction sent", zap.Stringer("signature", signature))
	return nil
}

// errSent cancels the remaining broadcast sends once one node accepted.
var errSent = errors.New("sent")

func (c *Client) broadcast(ctx context.Context, tx *solana.Transaction) error {
	g, gctx := errgroup.WithContext(ctx)

	errs := make([]error, len(c.nodes))
	for i, node := range c.nodes {
		i, node := i, node
		g.Go(func() error {
			signature, err := node.SendTransactionWithOpts(gctx, tx, rpc.TransactionOpts{
				SkipPreflight:       c.cfg.SkipPreflight,
				PreflightCommitment: c.cfg.Commitment,
			})
			if err != nil {
				errs[i] = err
				return nil
			}
			c.logger.Info("Transaction sent", zap.Stringer("signature", signature))
			return errSent
		})
	}

	err := g.Wait()
	if errors.Is(err, errSent) {
		return nil
	}
	return fmt.Errorf("all endpoints rejected transaction: %w", errors.Join(errs...))
}

func (c *Client) keyGetter() func(solana.PublicKey) *solana.PrivateKey {
	return func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(c.payer.PublicKey()) {
			return &c.payer
		}
		return nil
	}
}
