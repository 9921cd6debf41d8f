// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package checkpoint

import (
	"github.com/iotexproject/go-pkgs/hash"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-checkpoint/blockchain/blockindex"
	"github.com/iotexproject/iotex-checkpoint/pkg/log"
)

var (
	// ErrHardenedCheckpointMismatch is returned for a block rewriting a checkpoint height. It is never retryable.
	ErrHardenedCheckpointMismatch = errors.New("block conflicts with hardened checkpoint")
	// ErrBehindSyncCheckpoint is returned for a block at or below the sync checkpoint
	ErrBehindSyncCheckpoint = errors.New("block is at or below sync checkpoint")
	// ErrInvalidGuard indicates a guard built without registry or with a zero span
	ErrInvalidGuard = errors.New("invalid checkpoint guard")
)

type (
	// ChainState is a snapshot of the chain the guard answers against. The
	// caller keeps Tip and Index consistent for the duration of one call, e.g.
	// inside blockindex.MemIndex.View.
	ChainState struct {
		Tip   *blockindex.Node
		Index blockindex.Reader
	}

	// Validator is the interface the block acceptance pipeline consults before committing a block
	Validator interface {
		// Validate checks a candidate block at height with hash h against the checkpoints
		Validate(cs ChainState, height uint64, h hash.Hash256) error
	}

	// Guard binds the registry of the active network to the sync span
	Guard struct {
		registry *Registry
		span     uint64
		logger   *zap.Logger
	}

	// Option sets guard options
	Option func(*Guard) error
)

// WithSyncSpan overrides DefaultSyncSpan
func WithSyncSpan(span uint64) Option {
	return func(g *Guard) error {
		if span == 0 {
			return errors.Wrap(ErrInvalidGuard, "sync span must be positive")
		}
		g.span = span
		return nil
	}
}

// NewGuard creates a guard over the registry of the active network
func NewGuard(reg *Registry, opts ...Option) (*Guard, error) {
	if reg == nil {
		return nil, errors.Wrap(ErrInvalidGuard, "nil registry")
	}
	g := &Guard{
		registry: reg,
		span:     DefaultSyncSpan,
		logger:   log.Logger("checkpoint"),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	_totalBlocksEstimate.Set(float64(reg.TotalBlocksEstimate()))
	return g, nil
}

// Registry returns the registry of the guard
func (g *Guard) Registry() *Registry { return g.registry }

// SyncSpan returns the sync span of the guard
func (g *Guard) SyncSpan() uint64 { return g.span }

// CheckHardened checks h against the checkpoint at height
func (g *Guard) CheckHardened(height uint64, h hash.Hash256) bool {
	return g.registry.CheckHardened(height, h)
}

// TotalBlocksEstimate returns the highest checkpoint height
func (g *Guard) TotalBlocksEstimate() uint64 {
	return g.registry.TotalBlocksEstimate()
}

// LastCheckpoint returns the most recent checkpoint block present in idx
func (g *Guard) LastCheckpoint(idx blockindex.Reader) (*blockindex.Node, bool) {
	return g.registry.LastCheckpoint(idx)
}

// AutoSelectSyncCheckpoint selects the sync checkpoint of the snapshot
func (g *Guard) AutoSelectSyncCheckpoint(cs ChainState) *blockindex.Node {
	n := AutoSelectSyncCheckpoint(cs.Tip, cs.Index, g.span)
	_syncCheckpointHeight.Set(float64(n.Height))
	return n
}

// CheckSync returns false if height cannot take part in chain selection
func (g *Guard) CheckSync(cs ChainState, height uint64) bool {
	return height > g.AutoSelectSyncCheckpoint(cs).Height
}

// Validate implements Validator. The hardened check runs first so that a
// conflicting checkpoint block is always reported as permanent.
func (g *Guard) Validate(cs ChainState, height uint64, h hash.Hash256) error {
	if !g.CheckHardened(height, h) {
		_rejectionMtc.WithLabelValues("hardened").Inc()
		expected, _ := g.registry.Lookup(height)
		g.logger.Warn("Block conflicts with hardened checkpoint.",
			zap.Uint64("height", height),
			log.Hex("hash", h[:]),
			log.Hex("checkpoint", expected[:]))
		return errors.Wrapf(
			ErrHardenedCheckpointMismatch,
			"block %x at height %d, checkpoint %x",
			h[:],
			height,
			expected[:],
		)
	}
	syncNode := g.AutoSelectSyncCheckpoint(cs)
	if height <= syncNode.Height {
		_rejectionMtc.WithLabelValues("sync").Inc()
		g.logger.Debug("Block is behind sync checkpoint.",
			zap.Uint64("height", height),
			zap.Uint64("syncHeight", syncNode.Height))
		return errors.Wrapf(
			ErrBehindSyncCheckpoint,
			"block %x at height %d, sync checkpoint at %d",
			h[:],
			height,
			syncNode.Height,
		)
	}
	return nil
}

// IsPermanent returns true if err must never be retried with the same block
func IsPermanent(err error) bool {
	return errors.Cause(err) == ErrHardenedCheckpointMismatch
}
