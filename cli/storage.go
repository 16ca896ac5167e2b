// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"

	"github.com/ava-labs/counter-cli/consts"
	"github.com/ava-labs/counter-cli/pebble"
)

const (
	defaultPrefix = 0x0
	counterPrefix = 0x1
)

// Counter is the last known state of a counter account.
type Counter struct {
	Account   solana.PublicKey
	Signature solana.Signature
	Count     uint64
	Created   bool
	Updated   int64
}

func prefixedKey(prefix byte, program solana.PublicKey) []byte {
	k := make([]byte, 1+consts.PublicKeyLen)
	k[0] = prefix
	copy(k[1:], program[:])
	return k
}

// StoreCounter records the outcome of a confirmed increment of [account].
// [created] is only ever set, never cleared, for an existing record.
func (h *Handler) StoreCounter(
	program solana.PublicKey,
	account solana.PublicKey,
	sig solana.Signature,
	count uint64,
	created bool,
) error {
	counters, err := h.GetCounters(program)
	if err != nil {
		return err
	}
	now := time.Now().Unix()
	found := false
	for i := range counters {
		if !counters[i].Account.Equals(account) {
			continue
		}
		counters[i].Signature = sig
		counters[i].Count = count
		counters[i].Created = counters[i].Created || created
		counters[i].Updated = now
		found = true
		break
	}
	if !found {
		counters = append(counters, Counter{
			Account:   account,
			Signature: sig,
			Count:     count,
			Created:   created,
			Updated:   now,
		})
	}
	return h.putCounters(program, counters)
}

// UpdateCount overwrites the observed count of an already stored counter.
func (h *Handler) UpdateCount(program solana.PublicKey, account solana.PublicKey, count uint64) error {
	counters, err := h.GetCounters(program)
	if err != nil {
		return err
	}
	for i := range counters {
		if counters[i].Account.Equals(account) {
			counters[i].Count = count
			counters[i].Updated = time.Now().Unix()
			return h.putCounters(program, counters)
		}
	}
	return fmt.Errorf("%w: %s", ErrNoCounters, account)
}

func (h *Handler) putCounters(program solana.PublicKey, counters []Counter) error {
	b, err := borsh.Serialize(counters)
	if err != nil {
		return err
	}
	return h.db.Put(prefixedKey(counterPrefix, program), b)
}

// GetCounters returns every stored counter of [program] in the order they
// were first seen.
func (h *Handler) GetCounters(program solana.PublicKey) ([]Counter, error) {
	v, err := h.db.Get(prefixedKey(counterPrefix, program))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var counters []Counter
	if err := borsh.Deserialize(&counters, v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return counters, nil
}

// ForgetCounter drops the record of [account]. The program's default is
// cleared when it pointed at [account].
func (h *Handler) ForgetCounter(program solana.PublicKey, account solana.PublicKey) error {
	counters, err := h.GetCounters(program)
	if err != nil {
		return err
	}
	kept := counters[:0]
	for _, c := range counters {
		if !c.Account.Equals(account) {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(counters) {
		return fmt.Errorf("%w: %s", ErrNoCounters, account)
	}

	if len(kept) == 0 {
		err = h.db.Delete(prefixedKey(counterPrefix, program))
	} else {
		err = h.putCounters(program, kept)
	}
	if err != nil {
		return err
	}

	def, err := h.GetDefaultCounter(program)
	if errors.Is(err, ErrNoCounters) {
		return nil
	}
	if err != nil {
		return err
	}
	if def.Equals(account) {
		return h.db.Delete(prefixedKey(defaultPrefix, program))
	}
	return nil
}

func (h *Handler) StoreDefaultCounter(program solana.PublicKey, account solana.PublicKey) error {
	return h.db.Put(prefixedKey(defaultPrefix, program), account[:])
}

func (h *Handler) GetDefaultCounter(program solana.PublicKey) (solana.PublicKey, error) {
	v, err := h.db.Get(prefixedKey(defaultPrefix, program))
	if errors.Is(err, pebble.ErrNotFound) {
		return solana.PublicKey{}, fmt.Errorf("%w: %s", ErrNoCounters, program)
	}
	if err != nil {
		return solana.PublicKey{}, err
	}
	if len(v) != consts.PublicKeyLen {
		return solana.PublicKey{}, ErrCorrupt
	}
	return solana.PublicKeyFromBytes(v), nil
}

func (h *Handler) CloseDatabase() error {
	if h.db == nil {
		return nil
	}
	if err := h.db.Close(); err != nil {
		return fmt.Errorf("unable to close database: %w", err)
	}
	// Allow DB to be closed multiple times
	h.db = nil
	return nil
}
