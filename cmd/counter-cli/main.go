// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "counter-cli" funds a throwaway fee payer and increments an on-chain counter.
package main

import (
	"os"

	"github.com/ava-labs/counter-cli/cmd/counter-cli/cmd"
	"github.com/ava-labs/counter-cli/utils"
)

func main() {
	if err := cmd.Execute(); err != nil {
		utils.Outf("{{red}}counter-cli exited with error:{{/}} %+v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
