// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileLogger(t *testing.T) {
	require := require.New(t)

	dir := filepath.Join(t.TempDir(), "logs")
	log, closer, err := New(NewDefaultConfig(dir, "counter-cli"))
	require.NoError(err)

	log.Debug("hidden")
	log.Info("funded fee payer", zap.Uint64("lamports", 2_000_000_000))
	require.NoError(closer.Close())

	b, err := os.ReadFile(filepath.Join(dir, "counter-cli.log"))
	require.NoError(err)
	out := string(b)
	require.Contains(out, "funded fee payer")
	require.Contains(out, `"lamports":2000000000`)
	require.False(strings.Contains(out, "hidden"))
}

func TestInvalidLevel(t *testing.T) {
	require := require.New(t)

	cfg := NewDefaultConfig(t.TempDir(), "counter-cli")
	cfg.Level = "loud"
	_, _, err := New(cfg)
	require.Error(err)
}
