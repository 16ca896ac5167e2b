// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"io"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/counter-cli/cli"
	"github.com/ava-labs/counter-cli/network"
	"github.com/ava-labs/counter-cli/utils"
	"github.com/ava-labs/counter-cli/workflow"
)

type client interface {
	workflow.Network
	io.Closer
}

var newClient = func() client {
	return network.New(log, network.Config{
		Endpoint:     cfg.endpoint,
		Commitment:   cfg.commitment,
		PollInterval: cfg.pollInterval,
	})
}

func explorerLink(sig solana.Signature) string {
	return utils.ExplorerTxURL(sig.String(), cfg.explorer, cfg.endpoint)
}

// resolveTarget swaps a missing counter argument for the stored default
// when --reuse is set.
func resolveTarget(program solana.PublicKey, target workflow.Target) (workflow.Target, error) {
	if _, ok := target.(workflow.NewAccount); !ok || !cfg.reuse {
		return target, nil
	}
	var account solana.PublicKey
	if err := withHandler(func(h *cli.Handler) error {
		var err error
		account, err = h.GetDefaultCounter(program)
		return err
	}); err != nil {
		return nil, err
	}
	utils.Outf("{{yellow}}reusing default counter:{{/}} %s\n", account)
	return workflow.ExistingAccount{Account: account}, nil
}

// recordCounter remembers the outcome of a confirmed run. A created counter
// becomes the program's default.
func recordCounter(program solana.PublicKey, res *workflow.Result) error {
	return withHandler(func(h *cli.Handler) error {
		if err := h.StoreCounter(program, res.Counter, res.Signature, res.Count, res.Created); err != nil {
			return err
		}
		if !res.Created {
			return nil
		}
		return h.StoreDefaultCounter(program, res.Counter)
	})
}

func incrementFunc(cmd *cobra.Command, args []string) error {
	program, target, err := parseArgs(args)
	if err != nil {
		return err
	}
	target, err = resolveTarget(program, target)
	if err != nil {
		return err
	}
	utils.Outf("{{yellow}}program:{{/}} %s\n", program)
	utils.Outf("{{yellow}}endpoint:{{/}} %s\n", cfg.endpoint)

	c := newClient()
	defer c.Close()

	driver := workflow.New(log, tracer, c, workflow.Config{
		AirdropLamports: cfg.airdrop,
		Explorer:        explorerLink,
	})
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.timeout)
	defer cancel()
	res, err := driver.Run(ctx, program, target)
	if err != nil {
		return err
	}
	cli.PrintStatus(res.Signature, true)

	// The increment is already confirmed, so a local bookkeeping failure
	// only loses the record.
	if err := recordCounter(program, res); err != nil {
		log.Warn("unable to record counter",
			zap.Stringer("counter", res.Counter),
			zap.Error(err),
		)
		utils.Outf("{{orange}}unable to record counter:{{/}} %v\n", err)
	}
	if cfg.openExplorer {
		if err := browser.OpenURL(explorerLink(res.Signature)); err != nil {
			log.Warn("unable to open explorer", zap.Error(err))
		}
	}
	utils.Outf("{{green}}Success{{/}}\n")
	return nil
}
