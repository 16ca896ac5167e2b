// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"

	"github.com/ava-labs/counter-cli/workflow"
)

func parseAddress(name string, s string) (solana.PublicKey, error) {
	pk, err := solana.PublicKeyFromBase58(strings.TrimSpace(s))
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: %s %q: %w", ErrInvalidAddress, name, s, err)
	}
	return pk, nil
}

// parseArgs turns "<program_id> [counter_account]" into the program and the
// counter target of the run.
func parseArgs(args []string) (solana.PublicKey, workflow.Target, error) {
	if len(args) < 1 || len(args) > 2 {
		return solana.PublicKey{}, nil, fmt.Errorf("%w: expected <program_id> [counter_account], got %d args", ErrInvalidArgs, len(args))
	}
	program, err := parseAddress("program_id", args[0])
	if err != nil {
		return solana.PublicKey{}, nil, err
	}
	if len(args) == 1 {
		return program, workflow.NewAccount{}, nil
	}
	account, err := parseAddress("counter_account", args[1])
	if err != nil {
		return solana.PublicKey{}, nil, err
	}
	return program, workflow.ExistingAccount{Account: account}, nil
}
