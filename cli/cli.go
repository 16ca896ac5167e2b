// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"github.com/ava-labs/counter-cli/pebble"
)

// Handler remembers the counters this machine created or incremented.
type Handler struct {
	db *pebble.Database
}

func New(dbPath string) (*Handler, error) {
	db, err := pebble.New(dbPath, pebble.NewDefaultConfig())
	if err != nil {
		return nil, err
	}
	return &Handler{db}, nil
}
