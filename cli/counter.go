// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
	"gopkg.in/yaml.v2"

	"github.com/ava-labs/counter-cli/cli/prompt"
	"github.com/ava-labs/counter-cli/counter"
	"github.com/ava-labs/counter-cli/utils"
)

type AccountReader interface {
	AccountData(ctx context.Context, account solana.PublicKey) ([]byte, error)
}

type counterEntry struct {
	Account   string `yaml:"account"`
	Count     uint64 `yaml:"count"`
	Signature string `yaml:"signature"`
	Created   bool   `yaml:"created"`
	Updated   string `yaml:"updated"`
	Default   bool   `yaml:"default"`
}

type counterList struct {
	Program  string          `yaml:"program"`
	Counters []*counterEntry `yaml:"counters"`
}

func (h *Handler) defaultOrEmpty(program solana.PublicKey) solana.PublicKey {
	def, err := h.GetDefaultCounter(program)
	if err != nil {
		return solana.PublicKey{}
	}
	return def
}

// SetCounter prompts for the counter that is reused when no counter account
// is passed.
func (h *Handler) SetCounter(program solana.PublicKey) error {
	counters, err := h.GetCounters(program)
	if err != nil {
		return err
	}
	if len(counters) == 0 {
		utils.Outf("{{red}}no stored counters{{/}}\n")
		return nil
	}
	utils.Outf("{{cyan}}stored counters:{{/}} %d\n", len(counters))
	for i, c := range counters {
		utils.Outf(
			"%d) {{cyan}}account:{{/}} %s {{cyan}}count:{{/}} %d\n",
			i,
			c.Account,
			c.Count,
		)
	}

	index, err := prompt.Choice("set default counter", len(counters))
	if err != nil {
		return err
	}
	return h.StoreDefaultCounter(program, counters[index].Account)
}

func (h *Handler) PrintCounters(program solana.PublicKey, asYAML bool) error {
	counters, err := h.GetCounters(program)
	if err != nil {
		return err
	}
	def := h.defaultOrEmpty(program)

	if asYAML {
		list := &counterList{Program: program.String()}
		for _, c := range counters {
			list.Counters = append(list.Counters, &counterEntry{
				Account:   c.Account.String(),
				Count:     c.Count,
				Signature: c.Signature.String(),
				Created:   c.Created,
				Updated:   time.Unix(c.Updated, 0).UTC().Format(time.RFC3339),
				Default:   c.Account.Equals(def),
			})
		}
		b, err := yaml.Marshal(list)
		if err != nil {
			return err
		}
		utils.Outf("%s", b)
		return nil
	}

	if len(counters) == 0 {
		utils.Outf("{{red}}no stored counters{{/}}\n")
		return nil
	}
	for i, c := range counters {
		marker := ""
		if c.Account.Equals(def) {
			marker = " {{green}}[default]{{/}}"
		}
		utils.Outf(
			"%d) {{cyan}}account:{{/}} %s {{cyan}}count:{{/}} %d {{cyan}}last tx:{{/}} %s"+marker+"\n",
			i,
			c.Account,
			c.Count,
			c.Signature,
		)
	}
	return nil
}

// FetchCounters reads the current on-chain value of every stored counter and
// records it. Reads happen one at a time and the first failure stops the
// scan.
func (h *Handler) FetchCounters(ctx context.Context, program solana.PublicKey, reader AccountReader) error {
	counters, err := h.GetCounters(program)
	if err != nil {
		return err
	}
	if len(counters) == 0 {
		utils.Outf("{{red}}no stored counters{{/}}\n")
		return nil
	}
	for _, c := range counters {
		data, err := reader.AccountData(ctx, c.Account)
		if err != nil {
			return err
		}
		state, err := counter.DecodeState(data)
		if err != nil {
			return err
		}
		utils.Outf("{{cyan}}account:{{/}} %s {{cyan}}count:{{/}} %d\n", c.Account, state.Count)
		if err := h.UpdateCount(program, c.Account, state.Count); err != nil {
			return err
		}
	}
	return nil
}

func PrintStatus(sig solana.Signature, success bool) {
	status := "⚠️"
	if success {
		status = "✅"
	}
	utils.Outf("%s {{yellow}}signature:{{/}} %s\n", status, sig)
}
