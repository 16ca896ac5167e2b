// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ava-labs/counter-cli/cli"
	"github.com/ava-labs/counter-cli/consts"
	"github.com/ava-labs/counter-cli/network"
	"github.com/ava-labs/counter-cli/trace"
	"github.com/ava-labs/counter-cli/utils"
	"github.com/ava-labs/counter-cli/workflow/workflowtest"
)

var errBoom = errors.New("boom")

// useCluster points the command globals at [c] and a fresh database.
func useCluster(t *testing.T, c *workflowtest.Cluster) {
	t.Helper()

	tr, err := trace.New(&trace.Config{})
	require.NoError(t, err)

	prevClient := newClient
	newClient = func() client { return c }
	cfg = &config{
		cluster:      network.DefaultCluster,
		endpoint:     rpc.DevNet.RPC,
		explorer:     network.DefaultCluster,
		airdrop:      consts.DefaultAirdrop,
		commitment:   rpc.CommitmentConfirmed,
		timeout:      time.Minute,
		pollInterval: time.Millisecond,
		database:     filepath.Join(t.TempDir(), "db"),
	}
	log = zap.NewNop()
	tracer = tr
	t.Cleanup(func() {
		newClient = prevClient
		cfg, log, tracer = nil, nil, nil
	})
}

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var out bytes.Buffer
	prev := utils.Stdout
	utils.Stdout = &out
	t.Cleanup(func() {
		utils.Stdout = prev
	})
	return &out
}

func runIncrement(args ...string) error {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return incrementFunc(cmd, args)
}

func storedCounters(t *testing.T, program solana.PublicKey) ([]cli.Counter, solana.PublicKey) {
	t.Helper()

	var (
		counters []cli.Counter
		def      solana.PublicKey
	)
	require.NoError(t, withHandler(func(h *cli.Handler) error {
		var err error
		counters, err = h.GetCounters(program)
		if err != nil {
			return err
		}
		def, err = h.GetDefaultCounter(program)
		if errors.Is(err, cli.ErrNoCounters) {
			return nil
		}
		return err
	}))
	return counters, def
}

func TestIncrementCreatesDefault(t *testing.T) {
	require := require.New(t)

	c := workflowtest.NewCluster()
	useCluster(t, c)
	out := captureOutput(t)
	program := solana.NewWallet().PublicKey()

	require.NoError(runIncrement(program.String()))
	require.Equal(1, c.Creates())
	require.Contains(out.String(), "Success")
	require.Contains(out.String(), "?cluster=devnet")

	counters, def := storedCounters(t, program)
	require.Len(counters, 1)
	require.Equal(uint64(1), counters[0].Count)
	require.True(counters[0].Created)
	require.Equal(counters[0].Account, def)
}

func TestIncrementReuse(t *testing.T) {
	require := require.New(t)

	c := workflowtest.NewCluster()
	useCluster(t, c)
	program := solana.NewWallet().PublicKey()

	require.NoError(runIncrement(program.String()))
	_, created := storedCounters(t, program)

	cfg.reuse = true
	require.NoError(runIncrement(program.String()))
	require.Equal(1, c.Creates())
	require.Equal(2, c.Sent())

	counters, def := storedCounters(t, program)
	require.Len(counters, 1)
	require.Equal(created, def)
	require.Equal(uint64(2), counters[0].Count)
	require.True(counters[0].Created)
}

func TestIncrementReuseWithoutDefault(t *testing.T) {
	require := require.New(t)

	c := workflowtest.NewCluster()
	useCluster(t, c)
	cfg.reuse = true

	err := runIncrement(solana.NewWallet().PublicKey().String())
	require.ErrorIs(err, cli.ErrNoCounters)
	require.Zero(c.Sent())
}

func TestIncrementExistingKeepsDefault(t *testing.T) {
	require := require.New(t)

	c := workflowtest.NewCluster()
	useCluster(t, c)
	program := solana.NewWallet().PublicKey()

	require.NoError(runIncrement(program.String()))
	require.NoError(runIncrement(program.String()))
	counters, def := storedCounters(t, program)
	require.Len(counters, 2)
	require.Equal(counters[1].Account, def)

	// an explicit counter is recorded without becoming the default
	require.NoError(runIncrement(program.String(), counters[0].Account.String()))
	counters, def = storedCounters(t, program)
	require.Len(counters, 2)
	require.Equal(uint64(2), counters[0].Count)
	require.False(counters[0].Account.Equals(def))
	require.Equal(2, c.Creates())
}

func TestIncrementFailureRecordsNothing(t *testing.T) {
	require := require.New(t)

	c := workflowtest.NewCluster()
	c.SendErr = errBoom
	useCluster(t, c)
	out := captureOutput(t)
	program := solana.NewWallet().PublicKey()

	require.ErrorIs(runIncrement(program.String()), errBoom)
	require.NotContains(out.String(), "Success")

	counters, def := storedCounters(t, program)
	require.Empty(counters)
	require.Equal(solana.PublicKey{}, def)
}

func TestIncrementLockedDatabase(t *testing.T) {
	require := require.New(t)

	c := workflowtest.NewCluster()
	useCluster(t, c)
	out := captureOutput(t)

	// another process holding the database
	h, err := cli.New(cfg.database)
	require.NoError(err)
	defer func() {
		require.NoError(h.CloseDatabase())
	}()

	require.NoError(runIncrement(solana.NewWallet().PublicKey().String()))
	require.Equal(1, c.Sent())
	require.Contains(out.String(), "unable to record counter")
	require.Contains(out.String(), "Success")
}

func resetFlags(t *testing.T) {
	t.Cleanup(func() {
		reset := func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
		rootCmd.PersistentFlags().VisitAll(reset)
		listCountersCmd.PersistentFlags().VisitAll(reset)
		rootCmd.SetArgs(nil)
	})
}

func TestExecute(t *testing.T) {
	require := require.New(t)

	c := workflowtest.NewCluster()
	useCluster(t, c)
	resetFlags(t)
	out := captureOutput(t)

	var (
		dir     = t.TempDir()
		program = solana.NewWallet().PublicKey().String()
		flags   = []string{"--database", filepath.Join(dir, "db"), "--log-dir", filepath.Join(dir, "logs")}
	)

	rootCmd.SetArgs(append([]string{program}, flags...))
	require.NoError(Execute())
	require.Contains(out.String(), "Success")
	require.Equal(1, c.Creates())

	rootCmd.SetArgs(append([]string{"counters", "list", program, "--yaml"}, flags...))
	require.NoError(Execute())
	require.Contains(out.String(), "default: true")

	rootCmd.SetArgs(append([]string{"bad-0OIl"}, flags...))
	require.ErrorIs(Execute(), ErrInvalidAddress)

	rootCmd.SetArgs(append([]string{program, "--airdrop", "0"}, flags...))
	require.ErrorIs(Execute(), ErrInvalidAirdrop)
	require.Equal(1, c.Sent())
}
