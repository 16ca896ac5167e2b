// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package counter

import (
	"errors"
	"fmt"

	"github.com/near/borsh-go"

	"github.com/ava-labs/counter-cli/consts"
)

// AccountSize is the number of bytes allocated for a counter account.
const AccountSize = consts.Uint64Len

var ErrDecode = errors.New("unable to decode counter state")

// State is the account layout written by the counter program.
type State struct {
	Count uint64
}

// DecodeState interprets [data] as a little-endian u64. [data] must be exactly
// [AccountSize] bytes long.
func DecodeState(data []byte) (State, error) {
	var s State
	if len(data) != AccountSize {
		return s, fmt.Errorf("%w: expected %d bytes but got %d", ErrDecode, AccountSize, len(data))
	}
	if err := borsh.Deserialize(&s, data); err != nil {
		return s, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return s, nil
}

func (s State) Bytes() ([]byte, error) {
	return borsh.Serialize(s)
}
