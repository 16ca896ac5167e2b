// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/counter-cli/workflow"
)

func TestParseArgs(t *testing.T) {
	program := solana.NewWallet().PublicKey()
	account := solana.NewWallet().PublicKey()

	tests := []struct {
		name        string
		args        []string
		wantTarget  workflow.Target
		expectedErr error
	}{
		{
			name:       "program only",
			args:       []string{program.String()},
			wantTarget: workflow.NewAccount{},
		},
		{
			name:       "program and counter",
			args:       []string{program.String(), account.String()},
			wantTarget: workflow.ExistingAccount{Account: account},
		},
		{
			name:       "surrounding whitespace",
			args:       []string{" " + program.String() + "\n"},
			wantTarget: workflow.NewAccount{},
		},
		{
			name:        "no args",
			expectedErr: ErrInvalidArgs,
		},
		{
			name:        "too many args",
			args:        []string{program.String(), account.String(), account.String()},
			expectedErr: ErrInvalidArgs,
		},
		{
			name:        "bad program",
			args:        []string{"not-base58-0OIl"},
			expectedErr: ErrInvalidAddress,
		},
		{
			name:        "bad counter",
			args:        []string{program.String(), "abc"},
			expectedErr: ErrInvalidAddress,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			gotProgram, gotTarget, err := parseArgs(tt.args)
			require.ErrorIs(err, tt.expectedErr)
			if tt.expectedErr != nil {
				return
			}
			require.Equal(program, gotProgram)
			require.Equal(tt.wantTarget, gotTarget)
		})
	}
}
