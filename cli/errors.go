// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import "errors"

var (
	ErrNoCounters = errors.New("no stored counters")
	ErrCorrupt    = errors.New("corrupt counter records")
)
