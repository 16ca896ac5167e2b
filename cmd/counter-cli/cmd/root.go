// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/counter-cli/cli"
	"github.com/ava-labs/counter-cli/consts"
	"github.com/ava-labs/counter-cli/logging"
	"github.com/ava-labs/counter-cli/trace"
	"github.com/ava-labs/counter-cli/utils"
)

var (
	log       *zap.Logger
	logCloser io.Closer
	tracer    trace.Tracer
	cfg       *config

	rootCmd = &cobra.Command{
		Use:        "counter-cli <program_id> [counter_account]",
		Short:      "Increment an on-chain counter",
		SuggestFor: []string{"counter-cli", "countercli"},
		Version:    consts.Version,
		Args:       cobra.RangeArgs(1, 2),
		RunE:       incrementFunc,
	}
)

func init() {
	rootCmd.AddCommand(
		countersCmd,
	)
	registerFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentPreRunE = setup
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	// counters
	listCountersCmd.PersistentFlags().BoolVar(
		&listYAML,
		"yaml",
		false,
		"print counters as YAML",
	)
	countersCmd.AddCommand(
		listCountersCmd,
		setCountersCmd,
		fetchCountersCmd,
		forgetCountersCmd,
	)
}

// setup loads the config and starts logging and tracing. The counter
// database is not opened here, see [withHandler].
func setup(cmd *cobra.Command, _ []string) error {
	v, err := newViper(cmd.Flags())
	if err != nil {
		return err
	}
	cfg, err = loadConfig(v)
	if err != nil {
		return err
	}

	log, logCloser, err = logging.New(cfg.log)
	if err != nil {
		// An unwritable log directory must not stop an increment.
		utils.Outf("{{orange}}file logging disabled:{{/}} %v\n", err)
		log, logCloser = zap.NewNop(), nil
	}
	tracer, err = trace.New(&cfg.trace)
	if err != nil {
		return err
	}
	log.Debug("loaded config",
		zap.String("cluster", cfg.cluster),
		zap.String("endpoint", cfg.endpoint),
		zap.String("database", cfg.database),
		zap.Uint64("airdrop", cfg.airdrop),
	)
	return nil
}

// withHandler opens the counter database for the duration of [f]. The
// database holds an exclusive lock while open.
func withHandler(f func(*cli.Handler) error) error {
	h, err := cli.New(cfg.database)
	if err != nil {
		return err
	}
	return errors.Join(f(h), h.CloseDatabase())
}

// teardown releases whatever [setup] managed to open, in reverse order.
func teardown() error {
	var errs []error
	if tracer != nil {
		errs = append(errs, tracer.Close())
		tracer = nil
	}
	if log != nil {
		_ = log.Sync()
		log = nil
	}
	if logCloser != nil {
		errs = append(errs, logCloser.Close())
		logCloser = nil
	}
	return errors.Join(errs...)
}

func Execute() error {
	err := rootCmd.Execute()
	return errors.Join(err, teardown())
}
