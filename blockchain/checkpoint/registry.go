// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package checkpoint

import (
	"sort"

	"github.com/iotexproject/go-pkgs/hash"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-checkpoint/blockchain/blockindex"
	"github.com/iotexproject/iotex-checkpoint/pkg/log"
)

// ErrConflictingCheckpoint indicates two registry entries at one height with different hashes
var ErrConflictingCheckpoint = errors.New("conflicting checkpoints at the same height")

type (
	// Entry is a trusted (height, hash) pair
	Entry struct {
		Height uint64
		Hash   hash.Hash256
	}

	// Registry is an immutable set of checkpoints of one network, ordered by height
	Registry struct {
		entries  []Entry
		byHeight map[uint64]hash.Hash256
	}

	rawCheckpoint struct {
		height uint64
		hash   string
	}
)

// NewRegistry validates and orders the entries. Repeated heights carrying the
// same hash collapse into one entry; a repeated height with a different hash
// is rejected.
func NewRegistry(entries []Entry) (*Registry, error) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Height < sorted[j].Height })

	reg := &Registry{
		entries:  make([]Entry, 0, len(sorted)),
		byHeight: make(map[uint64]hash.Hash256, len(sorted)),
	}
	for _, e := range sorted {
		if h, ok := reg.byHeight[e.Height]; ok {
			if h != e.Hash {
				return nil, errors.Wrapf(
					ErrConflictingCheckpoint,
					"height %d has hash %x and %x",
					e.Height,
					h[:],
					e.Hash[:],
				)
			}
			log.L().Warn("Duplicate checkpoint entry.", zap.Uint64("height", e.Height), log.Hex("hash", e.Hash[:]))
			continue
		}
		reg.byHeight[e.Height] = e.Hash
		reg.entries = append(reg.entries, e)
	}
	return reg, nil
}

// MustRegistry is NewRegistry that panics on a malformed checkpoint list
func MustRegistry(entries []Entry) *Registry {
	reg, err := NewRegistry(entries)
	if err != nil {
		log.L().Panic("Invalid checkpoint registry.", zap.Error(err))
	}
	return reg
}

func parseRaw(raw []rawCheckpoint) ([]Entry, error) {
	entries := make([]Entry, 0, len(raw))
	for _, r := range raw {
		h, err := blockindex.ParseHash(r.hash)
		if err != nil {
			return nil, errors.Wrapf(err, "checkpoint at height %d", r.height)
		}
		entries = append(entries, Entry{Height: r.height, Hash: h})
	}
	return entries, nil
}

// Lookup returns the trusted hash at height
func (r *Registry) Lookup(height uint64) (hash.Hash256, bool) {
	h, ok := r.byHeight[height]
	return h, ok
}

// HighestHeight returns the greatest registered height, false if the registry is empty
func (r *Registry) HighestHeight() (uint64, bool) {
	if len(r.entries) == 0 {
		return 0, false
	}
	return r.entries[len(r.entries)-1].Height, true
}

// Len returns the number of checkpoints
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns the checkpoints in ascending height order
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Descending returns the checkpoints from the highest height to the lowest
func (r *Registry) Descending() []Entry {
	out := make([]Entry, len(r.entries))
	for i, e := range r.entries {
		out[len(out)-1-i] = e
	}
	return out
}

// TotalBlocksEstimate is the highest checkpoint height, a lower bound of the chain height used for sync progress
func (r *Registry) TotalBlocksEstimate() uint64 {
	h, _ := r.HighestHeight()
	return h
}
