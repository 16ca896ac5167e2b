// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package network

import (
	"context"
	"time"
)

// Wait calls [check] every [interval] until it reports done, returns an
// error, or [ctx] ends.
func Wait(ctx context.Context, interval time.Duration, check func(ctx context.Context) (bool, error)) error {
	for ctx.Err() == nil {
		exit, err := check(ctx)
		if err != nil {
			return err
		}
		if exit {
			return nil
		}
		select {
		case <-time.After(interval):
		case <-ctx.Done():
		}
	}
	return ctx.Err()
}
