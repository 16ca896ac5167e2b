// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package network

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

const DefaultPollInterval = 500 * time.Millisecond

type Config struct {
	Endpoint     string
	Commitment   rpc.CommitmentType
	PollInterval time.Duration
}

// Client talks to a cluster over JSON-RPC.
type Client struct {
	log *zap.Logger
	cli *rpc.Client

	commitment   rpc.CommitmentType
	pollInterval time.Duration
}

func New(log *zap.Logger, cfg Config) *Client {
	commitment := cfg.Commitment
	if commitment == "" {
		commitment = rpc.CommitmentConfirmed
	}
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &Client{
		log:          log,
		cli:          rpc.New(cfg.Endpoint),
		commitment:   commitment,
		pollInterval: pollInterval,
	}
}

func (c *Client) RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error) {
	sig, err := c.cli.RequestAirdrop(ctx, account, lamports, c.commitment)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("request airdrop: %w", err)
	}
	c.log.Debug("requested airdrop",
		zap.Stringer("account", account),
		zap.Uint64("lamports", lamports),
		zap.Stringer("signature", sig),
	)
	return sig, nil
}

func (c *Client) MinimumBalanceForRentExemption(ctx context.Context, size uint64) (uint64, error) {
	lamports, err := c.cli.GetMinimumBalanceForRentExemption(ctx, size, c.commitment)
	if err != nil {
		return 0, fmt.Errorf("get minimum balance for rent exemption: %w", err)
	}
	return lamports, nil
}

func (c *Client) LatestBlockhash(ctx context.Context) (solana.Hash, error) {
	out, err := c.cli.GetLatestBlockhash(ctx, c.commitment)
	if err != nil {
		return solana.Hash{}, fmt.Errorf("get latest blockhash: %w", err)
	}
	return out.Value.Blockhash, nil
}

// SendTransaction submits [tx] without local simulation.
func (c *Client) SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	sig, err := c.cli.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       true,
		PreflightCommitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("send transaction: %w", err)
	}
	c.log.Debug("sent transaction", zap.Stringer("signature", sig))
	return sig, nil
}

// WaitForConfirmation blocks until [sig] reaches the configured commitment.
func (c *Client) WaitForConfirmation(ctx context.Context, sig solana.Signature) error {
	start := time.Now()
	err := Wait(ctx, c.pollInterval, func(ctx context.Context) (bool, error) {
		out, err := c.cli.GetSignatureStatuses(ctx, true, sig)
		if err != nil {
			return false, fmt.Errorf("get signature status: %w", err)
		}
		if len(out.Value) == 0 || out.Value[0] == nil {
			return false, nil
		}
		status := out.Value[0]
		if status.Err != nil {
			return false, fmt.Errorf("%w: %s: %v", ErrTransactionFailed, sig, status.Err)
		}
		return Reached(status.ConfirmationStatus, c.commitment), nil
	})
	if err != nil {
		return err
	}
	c.log.Debug("transaction confirmed",
		zap.Stringer("signature", sig),
		zap.String("commitment", string(c.commitment)),
		zap.Duration("t", time.Since(start)),
	)
	return nil
}

func (c *Client) AccountData(ctx context.Context, account solana.PublicKey) ([]byte, error) {
	out, err := c.cli.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{
		Commitment: c.commitment,
	})
	if errors.Is(err, rpc.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, account)
	}
	if err != nil {
		return nil, fmt.Errorf("get account info: %w", err)
	}
	if out.Value == nil || out.Value.Data == nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, account)
	}
	return out.Value.Data.GetBinary(), nil
}

func (c *Client) Close() error {
	return c.cli.Close()
}
