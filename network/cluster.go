// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package network

import (
	"fmt"

	"github.com/gagliardetto/solana-go/rpc"
)

const DefaultCluster = "devnet"

var clusters = map[string]rpc.Cluster{
	"devnet":       rpc.DevNet,
	"testnet":      rpc.TestNet,
	"mainnet-beta": rpc.MainNetBeta,
	"localnet":     rpc.LocalNet,
}

// Endpoint resolves the JSON-RPC endpoint for [cluster]. A non-empty
// [override] always wins.
func Endpoint(cluster string, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	c, ok := clusters[cluster]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCluster, cluster)
	}
	return c.RPC, nil
}

// ParseCommitment accepts the commitment levels a confirmation wait can
// target.
func ParseCommitment(s string) (rpc.CommitmentType, error) {
	switch c := rpc.CommitmentType(s); c {
	case rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidCommitment, s)
	}
}

// Reached reports whether a signature at [status] satisfies [commitment].
func Reached(status rpc.ConfirmationStatusType, commitment rpc.CommitmentType) bool {
	switch status {
	case rpc.ConfirmationStatusFinalized:
		return true
	case rpc.ConfirmationStatusConfirmed:
		return commitment != rpc.CommitmentFinalized
	default:
		return false
	}
}

// CustomCluster is the explorer cluster of an endpoint that is not one of
// the public clusters.
const CustomCluster = "custom"

// ExplorerCluster names the explorer cluster of transactions sent to
// [endpoint]. An endpoint that differs from [cluster]'s own is custom.
func ExplorerCluster(cluster string, endpoint string) string {
	if c, ok := clusters[cluster]; ok && c.RPC == endpoint {
		return cluster
	}
	return CustomCluster
}
