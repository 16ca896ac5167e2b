// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabase(t *testing.T) {
	require := require.New(t)

	db, err := New(t.TempDir(), NewDefaultConfig())
	require.NoError(err)

	key := []byte("key")
	_, err = db.Get(key)
	require.ErrorIs(err, ErrNotFound)

	require.NoError(db.Put(key, []byte("value")))
	v, err := db.Get(key)
	require.NoError(err)
	require.Equal([]byte("value"), v)

	require.NoError(db.Delete(key))
	_, err = db.Get(key)
	require.ErrorIs(err, ErrNotFound)

	require.NoError(db.Close())
	require.ErrorIs(db.Close(), ErrClosed)
	_, err = db.Get(key)
	require.ErrorIs(err, ErrClosed)
}

func TestDatabaseReopen(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	cfg := NewDefaultConfig()
	cfg.Sync = false

	db, err := New(dir, cfg)
	require.NoError(err)
	require.NoError(db.Put([]byte{1}, []byte{2}))
	require.NoError(db.Close())

	db, err = New(dir, cfg)
	require.NoError(err)
	v, err := db.Get([]byte{1})
	require.NoError(err)
	require.Equal([]byte{2}, v)
	require.NoError(db.Close())
}
