// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package checkpoint

import (
	"github.com/iotexproject/iotex-checkpoint/blockchain/blockindex"
	"github.com/iotexproject/iotex-checkpoint/pkg/log"
)

// DefaultSyncSpan is how many blocks the sync checkpoint trails the best tip on mainnet
const DefaultSyncSpan = uint64(5000)

// AutoSelectSyncCheckpoint walks back from tip to the closest ancestor at least
// span blocks below it, or to the oldest reachable ancestor if the chain is
// shorter. A parent that is not lower than its child ends the walk like an
// unknown ancestor. The boundary is consensus critical: tip 10000 with span
// 5000 selects height 5000, not 4999 or 5001.
func AutoSelectSyncCheckpoint(tip *blockindex.Node, idx blockindex.Reader, span uint64) *blockindex.Node {
	if tip == nil {
		log.L().Panic("Sync checkpoint requested without a chain tip.")
	}
	cur := tip
	// the walk only steps to lower heights, so cur never exceeds tip and the
	// subtraction cannot wrap; it is cur.Height+span > tip.Height without the overflow
	for tip.Height-cur.Height < span {
		parent, ok := idx.Parent(cur)
		if !ok || parent.Height >= cur.Height {
			break
		}
		cur = parent
	}
	return cur
}

// CheckSync returns false if height is at or below the sync checkpoint of tip,
// meaning a chain forking there must not take part in chain selection.
func CheckSync(height uint64, tip *blockindex.Node, idx blockindex.Reader, span uint64) bool {
	return height > AutoSelectSyncCheckpoint(tip, idx, span).Height
}
