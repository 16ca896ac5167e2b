// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package workflowtest provides an in-memory cluster that runs the system
// and counter programs.
package workflowtest

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/gagliardetto/solana-go"

	"github.com/ava-labs/counter-cli/counter"
)

const DefaultRent = 946_560

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrInvalidOwner      = errors.New("invalid account owner")
	ErrInvalidData       = errors.New("invalid instruction data")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

type account struct {
	owner solana.PublicKey
	data  []byte
}

// Cluster executes transactions against in-memory accounts.
type Cluster struct {
	lock sync.Mutex

	Rent uint64
	// SendErr, when set, fails every SendTransaction.
	SendErr error

	balances map[solana.PublicKey]uint64
	accounts map[solana.PublicKey]*account
	creates  int
	sent     int
}

func NewCluster() *Cluster {
	return &Cluster{
		Rent:     DefaultRent,
		balances: map[solana.PublicKey]uint64{},
		accounts: map[solana.PublicKey]*account{},
	}
}

func randomSignature() (solana.Signature, error) {
	var sig solana.Signature
	_, err := rand.Read(sig[:])
	return sig, err
}

func (c *Cluster) RequestAirdrop(_ context.Context, key solana.PublicKey, lamports uint64) (solana.Signature, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.balances[key] += lamports
	return randomSignature()
}

func (*Cluster) WaitForConfirmation(context.Context, solana.Signature) error {
	return nil
}

func (c *Cluster) MinimumBalanceForRentExemption(_ context.Context, size uint64) (uint64, error) {
	if size != counter.AccountSize {
		return 0, fmt.Errorf("unexpected account size %d", size)
	}
	return c.Rent, nil
}

func (*Cluster) LatestBlockhash(context.Context) (solana.Hash, error) {
	return solana.Hash{9}, nil
}

// SendTransaction applies [tx] atomically: either every instruction takes
// effect or none does.
func (c *Cluster) SendTransaction(_ context.Context, tx *solana.Transaction) (solana.Signature, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.SendErr != nil {
		return solana.Signature{}, c.SendErr
	}
	if err := tx.VerifySignatures(); err != nil {
		return solana.Signature{}, err
	}

	var (
		keys     = tx.Message.AccountKeys
		balances = map[solana.PublicKey]uint64{}
		accounts = map[solana.PublicKey]*account{}
		creates  int
	)
	balance := func(k solana.PublicKey) uint64 {
		if b, ok := balances[k]; ok {
			return b
		}
		return c.balances[k]
	}
	lookup := func(k solana.PublicKey) (*account, bool) {
		if a, ok := accounts[k]; ok {
			return a, true
		}
		a, ok := c.accounts[k]
		return a, ok
	}

	for _, ix := range tx.Message.Instructions {
		program := keys[ix.ProgramIDIndex]
		data := []byte(ix.Data)
		if program.Equals(solana.SystemProgramID) {
			if len(data) != 52 || len(ix.Accounts) != 2 {
				return solana.Signature{}, ErrInvalidData
			}
			funder, created := keys[ix.Accounts[0]], keys[ix.Accounts[1]]
			lamports := binary.LittleEndian.Uint64(data[4:12])
			space := binary.LittleEndian.Uint64(data[12:20])
			if balance(funder) < lamports {
				return solana.Signature{}, fmt.Errorf("%w: %s", ErrInsufficientFunds, funder)
			}
			balances[funder] = balance(funder) - lamports
			accounts[created] = &account{
				owner: solana.PublicKeyFromBytes(data[20:52]),
				data:  make([]byte, space),
			}
			creates++
			continue
		}

		if len(ix.Accounts) != 1 {
			return solana.Signature{}, ErrInvalidData
		}
		key := keys[ix.Accounts[0]]
		acct, ok := lookup(key)
		if !ok || !acct.owner.Equals(program) {
			return solana.Signature{}, ErrInvalidOwner
		}
		if len(data) != 1 || data[0] != byte(counter.Increment) {
			return solana.Signature{}, ErrInvalidData
		}
		state, err := counter.DecodeState(acct.data)
		if err != nil {
			return solana.Signature{}, err
		}
		state.Count++
		b, err := state.Bytes()
		if err != nil {
			return solana.Signature{}, err
		}
		accounts[key] = &account{owner: acct.owner, data: b}
	}

	for k, b := range balances {
		c.balances[k] = b
	}
	for k, a := range accounts {
		c.accounts[k] = a
	}
	c.creates += creates
	c.sent++
	return tx.Signatures[0], nil
}

func (c *Cluster) AccountData(_ context.Context, key solana.PublicKey) ([]byte, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	acct, ok := c.accounts[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, key)
	}
	return append([]byte(nil), acct.data...), nil
}

func (c *Cluster) Balance(key solana.PublicKey) uint64 {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.balances[key]
}

// Creates is the number of accounts created so far.
func (c *Cluster) Creates() int {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.creates
}

// Sent is the number of applied transactions.
func (c *Cluster) Sent() int {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.sent
}

func (*Cluster) Close() error {
	return nil
}
