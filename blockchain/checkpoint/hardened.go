// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package checkpoint

import (
	"github.com/iotexproject/go-pkgs/hash"
)

// CheckHardened returns false if height is a checkpoint and h is not its hash.
// Heights without a checkpoint are unconstrained. A false result is final: the
// block must be discarded whatever its proof of work.
func (r *Registry) CheckHardened(height uint64, h hash.Hash256) bool {
	expected, ok := r.byHeight[height]
	if !ok {
		return true
	}
	return expected == h
}
