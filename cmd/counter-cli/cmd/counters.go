// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ava-labs/counter-cli/cli"
)

var listYAML bool

var countersCmd = &cobra.Command{
	Use:   "counters",
	Short: "Manage locally recorded counters",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var listCountersCmd = &cobra.Command{
	Use:  "list <program_id>",
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		program, err := parseAddress("program_id", args[0])
		if err != nil {
			return err
		}
		return withHandler(func(h *cli.Handler) error {
			return h.PrintCounters(program, listYAML)
		})
	},
}

var setCountersCmd = &cobra.Command{
	Use:  "set <program_id>",
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		program, err := parseAddress("program_id", args[0])
		if err != nil {
			return err
		}
		return withHandler(func(h *cli.Handler) error {
			return h.SetCounter(program)
		})
	},
}

var fetchCountersCmd = &cobra.Command{
	Use:  "fetch <program_id>",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		program, err := parseAddress("program_id", args[0])
		if err != nil {
			return err
		}
		c := newClient()
		defer c.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.timeout)
		defer cancel()
		return withHandler(func(h *cli.Handler) error {
			return h.FetchCounters(ctx, program, c)
		})
	},
}

var forgetCountersCmd = &cobra.Command{
	Use:  "forget <program_id> <counter_account>",
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		program, err := parseAddress("program_id", args[0])
		if err != nil {
			return err
		}
		account, err := parseAddress("counter_account", args[1])
		if err != nil {
			return err
		}
		return withHandler(func(h *cli.Handler) error {
			return h.ForgetCounter(program, account)
		})
	},
}
