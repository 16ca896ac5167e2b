// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package workflow

import "github.com/gagliardetto/solana-go"

var (
	_ Target = ExistingAccount{}
	_ Target = NewAccount{}
)

// Target selects the counter account a run increments.
type Target interface {
	isTarget()
}

// ExistingAccount increments a counter that is already on-chain.
type ExistingAccount struct {
	Account solana.PublicKey
}

func (ExistingAccount) isTarget() {}

// NewAccount creates a fresh counter account in the same transaction as the
// increment.
type NewAccount struct{}

func (NewAccount) isTarget() {}
