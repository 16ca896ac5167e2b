// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"errors"
	"sync"

	"github.com/cockroachdb/pebble"
)

var (
	ErrNotFound = errors.New("not found")
	ErrClosed   = errors.New("closed")
)

type Config struct {
	Sync         bool
	MaxOpenFiles int
}

func NewDefaultConfig() Config {
	return Config{
		Sync:         true,
		MaxOpenFiles: 64,
	}
}

// Database is a small key/value wrapper over pebble.
type Database struct {
	lock   sync.RWMutex
	closed bool

	db *pebble.DB
	wo *pebble.WriteOptions
}

func New(file string, cfg Config) (*Database, error) {
	db, err := pebble.Open(file, &pebble.Options{
		MaxOpenFiles: cfg.MaxOpenFiles,
	})
	if err != nil {
		return nil, err
	}
	wo := pebble.NoSync
	if cfg.Sync {
		wo = pebble.Sync
	}
	return &Database{db: db, wo: wo}, nil
}

// Get returns a copy of the value stored at [key].
func (db *Database) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return nil, ErrClosed
	}
	data, closer, err := db.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	v := make([]byte, len(data))
	copy(v, data)
	return v, nil
}

func (db *Database) Put(key []byte, value []byte) error {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return ErrClosed
	}
	return db.db.Set(key, value, db.wo)
}

func (db *Database) Delete(key []byte) error {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return ErrClosed
	}
	return db.db.Delete(key, db.wo)
}

func (db *Database) Close() error {
	db.lock.Lock()
	defer db.lock.Unlock()

	if db.closed {
		return ErrClosed
	}
	db.closed = true
	return db.db.Close()
}
