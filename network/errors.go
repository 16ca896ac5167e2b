// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package network

import "errors"

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrTransactionFailed = errors.New("transaction failed on-chain")
	ErrUnknownCluster    = errors.New("unknown cluster")
	ErrInvalidCommitment = errors.New("invalid commitment")
)
