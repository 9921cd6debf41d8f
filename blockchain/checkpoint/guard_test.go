// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package checkpoint

import (
	"testing"

	"github.com/iotexproject/go-pkgs/hash"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/iotexproject/iotex-checkpoint/blockchain/blockindex"
	"github.com/iotexproject/iotex-checkpoint/test/chaintest"
)

func TestNewGuard(t *testing.T) {
	require := require.New(t)

	_, err := NewGuard(nil)
	require.Equal(ErrInvalidGuard, errors.Cause(err))

	reg := MustRegistry([]Entry{{9, chaintest.HashOf(9, 0)}})
	_, err = NewGuard(reg, WithSyncSpan(0))
	require.Equal(ErrInvalidGuard, errors.Cause(err))

	g, err := NewGuard(reg)
	require.NoError(err)
	require.Same(reg, g.Registry())
	require.Equal(DefaultSyncSpan, g.SyncSpan())
	require.Equal(uint64(9), g.TotalBlocksEstimate())
	require.Equal(float64(9), testutil.ToFloat64(_totalBlocksEstimate))

	g, err = NewGuard(reg, WithSyncSpan(10))
	require.NoError(err)
	require.Equal(uint64(10), g.SyncSpan())
}

func TestGuardValidate(t *testing.T) {
	require := require.New(t)

	idx, nodes := chaintest.LinearChain(100)
	reg := MustRegistry([]Entry{
		{0, nodes[0].Hash},
		{95, nodes[95].Hash},
		{120, chaintest.HashOf(120, 0)},
	})
	g, err := NewGuard(reg, WithSyncSpan(10))
	require.NoError(err)
	var _ Validator = g

	cs := ChainState{Tip: nodes[100], Index: idx}
	require.Equal(uint64(90), g.AutoSelectSyncCheckpoint(cs).Height)
	require.Equal(float64(90), testutil.ToFloat64(_syncCheckpointHeight))
	require.False(g.CheckSync(cs, 90))
	require.True(g.CheckSync(cs, 91))

	n, ok := g.LastCheckpoint(idx)
	require.True(ok)
	require.Equal(uint64(95), n.Height)

	hardened := testutil.ToFloat64(_rejectionMtc.WithLabelValues("hardened"))
	behind := testutil.ToFloat64(_rejectionMtc.WithLabelValues("sync"))

	// extending the tip
	require.NoError(g.Validate(cs, 101, chaintest.HashOf(101, 1)))
	// fork above the sync checkpoint
	require.NoError(g.Validate(cs, 91, chaintest.HashOf(91, 1)))
	// the checkpoint block itself
	require.NoError(g.Validate(cs, 120, chaintest.HashOf(120, 0)))

	err = g.Validate(cs, 120, chaintest.HashOf(120, 1))
	require.Equal(ErrHardenedCheckpointMismatch, errors.Cause(err))
	require.True(IsPermanent(err))
	require.Equal(hardened+1, testutil.ToFloat64(_rejectionMtc.WithLabelValues("hardened")))

	err = g.Validate(cs, 90, chaintest.HashOf(90, 1))
	require.Equal(ErrBehindSyncCheckpoint, errors.Cause(err))
	require.False(IsPermanent(err))
	require.Equal(behind+1, testutil.ToFloat64(_rejectionMtc.WithLabelValues("sync")))

	// a block below the sync checkpoint conflicting with a checkpoint reports the hardened failure
	err = g.Validate(cs, 95, chaintest.HashOf(95, 1))
	require.Equal(ErrHardenedCheckpointMismatch, errors.Cause(err))

	require.False(IsPermanent(nil))
	require.False(IsPermanent(errors.New("other")))
}

func TestGuardWithMemIndexView(t *testing.T) {
	require := require.New(t)

	idx, nodes := chaintest.LinearChain(50)
	g, err := NewGuard(MustRegistry([]Entry{{0, nodes[0].Hash}}), WithSyncSpan(20))
	require.NoError(err)

	require.NoError(idx.View(func(tip *blockindex.Node, r blockindex.Reader) error {
		cs := ChainState{Tip: tip, Index: r}
		require.Equal(uint64(30), g.AutoSelectSyncCheckpoint(cs).Height)
		return g.Validate(cs, 31, hash.ZeroHash256)
	}))
	err = idx.View(func(tip *blockindex.Node, r blockindex.Reader) error {
		return g.Validate(ChainState{Tip: tip, Index: r}, 30, hash.ZeroHash256)
	})
	require.Equal(ErrBehindSyncCheckpoint, errors.Cause(err))
}
