// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

// checkpointctl inspects the checkpoint registries and the local block index.
package main

import (
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/iotexproject/iotex-checkpoint/tools/checkpointctl/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
