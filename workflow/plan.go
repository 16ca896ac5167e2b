// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package workflow

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"

	"github.com/ava-labs/counter-cli/counter"
)

var (
	ErrMissingCounterKey = errors.New("new counter account requires a key")
	ErrUnknownTarget     = errors.New("unknown target")
)

// Plan is the content of one increment transaction before it is signed.
type Plan struct {
	Program solana.PublicKey
	Payer   solana.PrivateKey
	Counter solana.PublicKey

	// Create is nil when the counter already exists.
	Create    *system.Instruction
	Increment *solana.GenericInstruction

	Signers []solana.PrivateKey
}

// Instructions returns the ordered instruction list. A creation instruction is
// always placed before the increment.
func (p *Plan) Instructions() []solana.Instruction {
	ixs := make([]solana.Instruction, 0, 2)
	if p.Create != nil {
		ixs = append(ixs, p.Create)
	}
	return append(ixs, p.Increment)
}

func (p *Plan) Created() bool {
	return p.Create != nil
}

func (p *Plan) signer(key solana.PublicKey) *solana.PrivateKey {
	for i := range p.Signers {
		if p.Signers[i].PublicKey().Equals(key) {
			return &p.Signers[i]
		}
	}
	return nil
}

// Transaction assembles and signs the planned instructions against
// [blockhash]. The fee payer is the first signer.
func (p *Plan) Transaction(blockhash solana.Hash) (*solana.Transaction, error) {
	tx, err := solana.NewTransaction(
		p.Instructions(),
		blockhash,
		solana.TransactionPayer(p.Payer.PublicKey()),
	)
	if err != nil {
		return nil, fmt.Errorf("build transaction: %w", err)
	}
	if _, err := tx.Sign(p.signer); err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}
	return tx, nil
}

// BuildPlan lays out the instructions and signers for [target].
//
// For [NewAccount], [counterKey] is the key of the account to create and
// [rentLamports] the balance it is funded with. Both are ignored for
// [ExistingAccount].
func BuildPlan(
	program solana.PublicKey,
	payer solana.PrivateKey,
	target Target,
	counterKey solana.PrivateKey,
	rentLamports uint64,
) (*Plan, error) {
	p := &Plan{
		Program: program,
		Payer:   payer,
		Signers: []solana.PrivateKey{payer},
	}

	switch t := target.(type) {
	case ExistingAccount:
		p.Counter = t.Account
	case NewAccount:
		if len(counterKey) == 0 {
			return nil, ErrMissingCounterKey
		}
		p.Counter = counterKey.PublicKey()
		p.Create = system.NewCreateAccountInstruction(
			rentLamports,
			counter.AccountSize,
			program,
			payer.PublicKey(),
			p.Counter,
		).Build()
		p.Signers = append(p.Signers, counterKey)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownTarget, target)
	}

	increment, err := counter.NewIncrementInstruction(program, p.Counter)
	if err != nil {
		return nil, err
	}
	p.Increment = increment
	return p, nil
}
