// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"errors"
	"fmt"
	"io"
	"math"
	"net/url"
	"os"
	"path"
	"strconv"

	"github.com/ava-labs/counter-cli/consts"

	formatter "github.com/onsi/ginkgo/v2/formatter"
)

var ErrInvalidBalance = errors.New("invalid balance")

// Stdout receives everything written by [Outf].
var Stdout io.Writer = formatter.ColorableStdOut

// Outputs to stdout.
//
// e.g.,
//
//	Out("{{green}}{{bold}}hi there %q{{/}}", "aa")
//	Out("{{magenta}}{{bold}}hi therea{{/}} {{cyan}}{{underline}}b{{/}}")
//
// ref.
// https://github.com/onsi/ginkgo/blob/v2.0.0/formatter/formatter.go#L52-L73
func Outf(format string, args ...interface{}) {
	s := formatter.F(format, args...)
	fmt.Fprint(Stdout, s)
}

func InitSubDirectory(rootPath string, name string) (string, error) {
	p := path.Join(rootPath, name)
	return p, os.MkdirAll(p, 0o755)
}

func FormatBalance(bal uint64) string {
	return fmt.Sprintf("%.9f", float64(bal)/math.Pow10(consts.Decimals))
}

// ParseBalance converts a SOL amount into lamports.
func ParseBalance(bal string) (uint64, error) {
	f, err := strconv.ParseFloat(bal, 64)
	if err != nil {
		return 0, err
	}
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidBalance, bal)
	}
	// float64(MaxUint64) rounds up to 2^64, which does not fit.
	lamports := math.Round(f * math.Pow10(consts.Decimals))
	if lamports >= float64(consts.MaxUint64) {
		return 0, fmt.Errorf("%w: %s overflows", ErrInvalidBalance, bal)
	}
	return uint64(lamports), nil
}

// ExplorerTxURL returns the block explorer link for [signature].
//
// Named clusters are passed through as-is. Any other cluster is treated as a
// custom endpoint and [rpcURL] is handed to the explorer.
func ExplorerTxURL(signature string, cluster string, rpcURL string) string {
	base := fmt.Sprintf("%s/tx/%s", consts.ExplorerBaseURL, signature)
	switch cluster {
	case "mainnet-beta":
		return base
	case "devnet", "testnet":
		return base + "?cluster=" + cluster
	default:
		return base + "?cluster=custom&customUrl=" + url.QueryEscape(rpcURL)
	}
}
