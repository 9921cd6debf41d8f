// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package checkpoint

import (
	"github.com/iotexproject/iotex-checkpoint/blockchain/blockindex"
)

// LastCheckpoint returns the indexed block of the highest checkpoint present in r.
// Checkpoints are probed from the highest height down, so a node that knows
// several checkpoints always gets the most recent one.
func (r *Registry) LastCheckpoint(idx blockindex.Reader) (*blockindex.Node, bool) {
	for i := len(r.entries) - 1; i >= 0; i-- {
		if n, ok := idx.NodeByHash(r.entries[i].Hash); ok {
			return n, true
		}
	}
	return nil, false
}
