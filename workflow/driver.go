// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package workflow

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/ava-labs/counter-cli/consts"
	"github.com/ava-labs/counter-cli/counter"
	"github.com/ava-labs/counter-cli/trace"
	"github.com/ava-labs/counter-cli/utils"

	oteltrace "go.opentelemetry.io/otel/trace"
)

type Config struct {
	// Lamports requested for the fee payer
	AirdropLamports uint64

	// Explorer renders the link printed once the transaction is confirmed.
	// Nothing is printed when nil.
	Explorer func(solana.Signature) string
}

// Result describes a completed run.
type Result struct {
	Payer     solana.PublicKey
	Counter   solana.PublicKey
	Created   bool
	Signature solana.Signature
	Count     uint64
}

// Driver funds a fresh fee payer, optionally creates a counter account,
// increments it and reads the value back. Every step must succeed.
type Driver struct {
	log     *zap.Logger
	tracer  trace.Tracer
	network Network
	config  Config

	newKey func() (solana.PrivateKey, error)
}

func New(log *zap.Logger, tracer trace.Tracer, network Network, config Config) *Driver {
	if config.AirdropLamports == 0 {
		config.AirdropLamports = consts.DefaultAirdrop
	}
	return &Driver{
		log:     log,
		tracer:  tracer,
		network: network,
		config:  config,
		newKey:  solana.NewRandomPrivateKey,
	}
}

func (d *Driver) Run(ctx context.Context, program solana.PublicKey, target Target) (_ *Result, err error) {
	ctx, span := d.tracer.Start(ctx, "Driver.Run", oteltrace.WithAttributes(
		attribute.String("program", program.String()),
	))
	defer func() { trace.End(span, err) }()

	payer, err := d.newKey()
	if err != nil {
		return nil, fmt.Errorf("generate fee payer: %w", err)
	}
	if err := d.fund(ctx, payer.PublicKey()); err != nil {
		return nil, err
	}

	plan, err := d.plan(ctx, program, payer, target)
	if err != nil {
		return nil, err
	}

	sig, err := d.submit(ctx, plan)
	if err != nil {
		return nil, err
	}
	if d.config.Explorer != nil {
		utils.Outf("%s\n", d.config.Explorer(sig))
	}

	count, err := d.readBack(ctx, plan.Counter)
	if err != nil {
		return nil, err
	}
	utils.Outf("{{yellow}}counter key:{{/}} %s\n", plan.Counter)
	utils.Outf("{{yellow}}count:{{/}} %d\n", count)

	return &Result{
		Payer:     payer.PublicKey(),
		Counter:   plan.Counter,
		Created:   plan.Created(),
		Signature: sig,
		Count:     count,
	}, nil
}

func (d *Driver) fund(ctx context.Context, payer solana.PublicKey) (err error) {
	ctx, span := d.tracer.Start(ctx, "Driver.fund")
	defer func() { trace.End(span, err) }()

	utils.Outf(
		"{{yellow}}requesting airdrop:{{/}} %s %s -> %s\n",
		utils.FormatBalance(d.config.AirdropLamports),
		consts.Symbol,
		payer,
	)
	sig, err := d.network.RequestAirdrop(ctx, payer, d.config.AirdropLamports)
	if err != nil {
		return err
	}
	if err := d.network.WaitForConfirmation(ctx, sig); err != nil {
		return fmt.Errorf("airdrop %s: %w", sig, err)
	}
	utils.Outf("{{yellow}}airdrop received{{/}}\n")
	d.log.Info("funded fee payer",
		zap.Stringer("payer", payer),
		zap.Uint64("lamports", d.config.AirdropLamports),
		zap.Stringer("signature", sig),
	)
	return nil
}

func (d *Driver) plan(ctx context.Context, program solana.PublicKey, payer solana.PrivateKey, target Target) (_ *Plan, err error) {
	ctx, span := d.tracer.Start(ctx, "Driver.plan")
	defer func() { trace.End(span, err) }()

	var (
		counterKey solana.PrivateKey
		rent       uint64
	)
	switch t := target.(type) {
	case ExistingAccount:
		utils.Outf("{{yellow}}found counter address:{{/}} %s\n", t.Account)
	case NewAccount:
		utils.Outf("{{yellow}}generating new counter address{{/}}\n")
		key, err := d.newKey()
		if err != nil {
			return nil, fmt.Errorf("generate counter key: %w", err)
		}
		counterKey = key
		rent, err = d.network.MinimumBalanceForRentExemption(ctx, counter.AccountSize)
		if err != nil {
			return nil, err
		}
		d.log.Debug("rent exemption",
			zap.Int("size", counter.AccountSize),
			zap.Uint64("lamports", rent),
		)
	}

	plan, err := BuildPlan(program, payer, target, counterKey, rent)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.Bool("created", plan.Created()),
		attribute.Int("instructions", len(plan.Instructions())),
	)
	return plan, nil
}

func (d *Driver) submit(ctx context.Context, plan *Plan) (_ solana.Signature, err error) {
	ctx, span := d.tracer.Start(ctx, "Driver.submit")
	defer func() { trace.End(span, err) }()

	blockhash, err := d.network.LatestBlockhash(ctx)
	if err != nil {
		return solana.Signature{}, err
	}
	tx, err := plan.Transaction(blockhash)
	if err != nil {
		return solana.Signature{}, err
	}
	sig, err := d.network.SendTransaction(ctx, tx)
	if err != nil {
		return solana.Signature{}, err
	}
	if err := d.network.WaitForConfirmation(ctx, sig); err != nil {
		return solana.Signature{}, err
	}
	d.log.Info("confirmed increment",
		zap.Stringer("counter", plan.Counter),
		zap.Bool("created", plan.Created()),
		zap.Stringer("signature", sig),
	)
	return sig, nil
}

func (d *Driver) readBack(ctx context.Context, account solana.PublicKey) (_ uint64, err error) {
	ctx, span := d.tracer.Start(ctx, "Driver.readBack")
	defer func() { trace.End(span, err) }()

	data, err := d.network.AccountData(ctx, account)
	if err != nil {
		return 0, err
	}
	state, err := counter.DecodeState(data)
	if err != nil {
		return 0, err
	}
	return state.Count, nil
}
