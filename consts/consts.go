// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	Name    = "counter-cli"
	Symbol  = "SOL"
	Version = "v0.1.0"

	// Decimals is the number of decimals in one SOL (1 SOL = 10^9 lamports).
	Decimals        = 9
	LamportsPerSOL  = 1_000_000_000
	DefaultAirdrop  = 2 * LamportsPerSOL
	PublicKeyLen    = 32
	Uint64Len       = 8
	MaxUint64       = ^uint64(0)
	ExplorerBaseURL = "https://explorer.solana.com"
)
