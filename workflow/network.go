// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package workflow

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

//go:generate go run go.uber.org/mock/mockgen -package=${GOPACKAGE} -destination=mock_network.go . Network

// Network is the cluster a run talks to.
type Network interface {
	RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error)
	WaitForConfirmation(ctx context.Context, sig solana.Signature) error
	MinimumBalanceForRentExemption(ctx context.Context, size uint64) (uint64, error)
	LatestBlockhash(ctx context.Context) (solana.Hash, error)
	SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)
	AccountData(ctx context.Context, account solana.PublicKey) ([]byte, error)
}
