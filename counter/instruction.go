// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package counter

import (
	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
)

// Instruction is the borsh enum selector understood by the counter program.
// It is encoded as a single byte.
type Instruction borsh.Enum

const (
	Increment Instruction = iota
)

func (i Instruction) String() string {
	switch i {
	case Increment:
		return "increment"
	default:
		return "unknown"
	}
}

// Bytes returns the instruction payload.
func (i Instruction) Bytes() ([]byte, error) {
	return borsh.Serialize(i)
}

// NewIncrementInstruction builds the instruction that increments the counter
// stored in [account] by one. The account is writable and does not sign.
func NewIncrementInstruction(program solana.PublicKey, account solana.PublicKey) (*solana.GenericInstruction, error) {
	data, err := Increment.Bytes()
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(
		program,
		solana.AccountMetaSlice{
			solana.NewAccountMeta(account, true, false),
		},
		data,
	), nil
}
