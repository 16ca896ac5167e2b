// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/counter-cli/consts"
	"github.com/ava-labs/counter-cli/logging"
	"github.com/ava-labs/counter-cli/network"
	"github.com/ava-labs/counter-cli/trace"
	"github.com/ava-labs/counter-cli/utils"
)

const (
	envPrefix = "COUNTER_CLI"

	configKey          = "config"
	clusterKey         = "cluster"
	rpcURLKey          = "rpc-url"
	airdropKey         = "airdrop"
	commitmentKey      = "commitment"
	timeoutKey         = "timeout"
	pollIntervalKey    = "poll-interval"
	databaseKey        = "database"
	reuseKey           = "reuse"
	openExplorerKey    = "open-explorer"
	logLevelKey        = "log-level"
	logDirKey          = "log-dir"
	logDisplayKey      = "log-display"
	traceKey           = "trace"
	traceEndpointKey   = "trace-endpoint"
	traceSampleRateKey = "trace-sample-rate"

	defaultDatabase = ".counter-cli"
	defaultTimeout  = 2 * time.Minute
)

type config struct {
	cluster      string
	endpoint     string
	explorer     string
	airdrop      uint64
	commitment   rpc.CommitmentType
	timeout      time.Duration
	pollInterval time.Duration
	database     string
	reuse        bool
	openExplorer bool

	log   logging.Config
	trace trace.Config
}

func registerFlags(fs *pflag.FlagSet) {
	fs.String(configKey, "", "optional YAML config file")
	fs.String(clusterKey, network.DefaultCluster, "cluster to use (devnet, testnet, mainnet-beta, localnet)")
	fs.String(rpcURLKey, "", "JSON-RPC endpoint (overrides --cluster)")
	fs.String(airdropKey, utils.FormatBalance(consts.DefaultAirdrop), "SOL airdropped to the fee payer")
	fs.String(commitmentKey, string(rpc.CommitmentConfirmed), "commitment to wait for (confirmed, finalized)")
	fs.Duration(timeoutKey, defaultTimeout, "overall deadline of a run")
	fs.Duration(pollIntervalKey, network.DefaultPollInterval, "signature status poll interval")
	fs.String(databaseKey, defaultDatabase, "path to database (will create it missing)")
	fs.Bool(reuseKey, false, "increment the stored default counter when no counter_account is given")
	fs.Bool(openExplorerKey, false, "open the transaction in a browser")
	fs.String(logLevelKey, "info", "log level")
	fs.String(logDirKey, "", "log directory (defaults to <database>/logs)")
	fs.Bool(logDisplayKey, false, "also write logs to stderr")
	fs.Bool(traceKey, false, "export traces")
	fs.String(traceEndpointKey, trace.DefaultEndpoint, "zipkin collector endpoint")
	fs.Float64(traceSampleRateKey, 1, "fraction of traces to sample")
}

// newViper layers env vars and an optional config file under [fs].
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	if file := v.GetString(configKey); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func loadConfig(v *viper.Viper) (*config, error) {
	endpoint, err := network.Endpoint(v.GetString(clusterKey), v.GetString(rpcURLKey))
	if err != nil {
		return nil, err
	}
	airdrop, err := utils.ParseBalance(v.GetString(airdropKey))
	if err != nil {
		return nil, err
	}
	if airdrop == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAirdrop, v.GetString(airdropKey))
	}
	commitment, err := network.ParseCommitment(v.GetString(commitmentKey))
	if err != nil {
		return nil, err
	}

	database := v.GetString(databaseKey)
	logDir := v.GetString(logDirKey)
	if logDir == "" {
		logDir = filepath.Join(database, "logs")
	}
	logConfig := logging.NewDefaultConfig(logDir, consts.Name)
	logConfig.Level = v.GetString(logLevelKey)
	logConfig.Display = v.GetBool(logDisplayKey)

	return &config{
		cluster:      v.GetString(clusterKey),
		endpoint:     endpoint,
		explorer:     network.ExplorerCluster(v.GetString(clusterKey), endpoint),
		airdrop:      airdrop,
		commitment:   commitment,
		timeout:      v.GetDuration(timeoutKey),
		pollInterval: v.GetDuration(pollIntervalKey),
		database:     database,
		reuse:        v.GetBool(reuseKey),
		openExplorer: v.GetBool(openExplorerKey),
		log:          logConfig,
		trace: trace.Config{
			Enabled:         v.GetBool(traceKey),
			Endpoint:        v.GetString(traceEndpointKey),
			TraceSampleRate: v.GetFloat64(traceSampleRateKey),
			AppName:         consts.Name,
			Agent:           consts.Name,
			Version:         consts.Version,
		},
	}, nil
}
