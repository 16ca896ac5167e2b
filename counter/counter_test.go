// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package counter

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func TestIncrementBytes(t *testing.T) {
	require := require.New(t)

	b, err := Increment.Bytes()
	require.NoError(err)
	require.Equal([]byte{0x00}, b)
}

func TestNewIncrementInstruction(t *testing.T) {
	require := require.New(t)

	program := solana.NewWallet().PublicKey()
	account := solana.NewWallet().PublicKey()

	ix, err := NewIncrementInstruction(program, account)
	require.NoError(err)
	require.Equal(program, ix.ProgramID())

	accounts := ix.Accounts()
	require.Len(accounts, 1)
	require.Equal(account, accounts[0].PublicKey)
	require.True(accounts[0].IsWritable)
	require.False(accounts[0].IsSigner)

	data, err := ix.Data()
	require.NoError(err)
	require.Equal([]byte{0x00}, data)
}

func TestDecodeState(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    uint64
		wantErr error
	}{
		{name: "zero", data: make([]byte, 8), want: 0},
		{name: "one", data: []byte{1, 0, 0, 0, 0, 0, 0, 0}, want: 1},
		{name: "little endian", data: []byte{0, 1, 0, 0, 0, 0, 0, 0}, want: 256},
		{name: "max", data: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, want: ^uint64(0)},
		{name: "empty", data: nil, wantErr: ErrDecode},
		{name: "short", data: []byte{1, 0, 0, 0}, wantErr: ErrDecode},
		{name: "long", data: make([]byte, 9), wantErr: ErrDecode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			s, err := DecodeState(tt.data)
			if tt.wantErr != nil {
				require.ErrorIs(err, tt.wantErr)
				return
			}
			require.NoError(err)
			require.Equal(tt.want, s.Count)
		})
	}
}

func TestStateBytes(t *testing.T) {
	require := require.New(t)

	b, err := State{Count: 1}.Bytes()
	require.NoError(err)
	require.Equal([]byte{1, 0, 0, 0, 0, 0, 0, 0}, b)
}
