// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package blockindex

import (
	"context"
	"sort"

	"github.com/iotexproject/go-pkgs/hash"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-checkpoint/db"
	"github.com/iotexproject/iotex-checkpoint/db/batch"
	"github.com/iotexproject/iotex-checkpoint/pkg/log"
)

const (
	_blockIndexNS    = "blockIndex"
	_blockIndexTipNS = "blockIndexTip"
)

var _tipKey = []byte("tip")

// Store persists block index nodes in a KVStore
type Store struct {
	kv db.KVStore
}

// NewStore creates a block index store on top of kv
func NewStore(kv db.KVStore) *Store {
	return &Store{kv: kv}
}

// Start starts the underlying KVStore
func (s *Store) Start(ctx context.Context) error {
	return s.kv.Start(ctx)
}

// Stop stops the underlying KVStore
func (s *Store) Stop(ctx context.Context) error {
	return s.kv.Stop(ctx)
}

// PutNodes writes nodes in one batch
func (s *Store) PutNodes(nodes ...*Node) error {
	if len(nodes) == 0 {
		return nil
	}
	b := batch.NewBatch()
	for _, n := range nodes {
		b.Put(_blockIndexNS, n.Hash[:], n.serialize(), "failed to put block %x", n.Hash[:])
	}
	return s.kv.WriteBatch(b)
}

// PutTip records the best tip hash
func (s *Store) PutTip(h hash.Hash256) error {
	return s.kv.Put(_blockIndexTipNS, _tipKey, h[:])
}

// TipHash returns the recorded best tip hash
func (s *Store) TipHash() (hash.Hash256, error) {
	v, err := s.kv.Get(_blockIndexTipNS, _tipKey)
	if err != nil {
		return hash.ZeroHash256, err
	}
	if len(v) != _hashSize {
		return hash.ZeroHash256, errors.Wrapf(ErrInvalidNode, "tip length %d", len(v))
	}
	return hash.BytesToHash256(v), nil
}

// Load rebuilds an in-memory index from the store, with the tip set if one is recorded
func (s *Store) Load() (*MemIndex, error) {
	var nodes []*Node
	if err := s.kv.ForEach(_blockIndexNS, func(k, v []byte) error {
		n, err := deserializeNode(k, v)
		if err != nil {
			return err
		}
		nodes = append(nodes, n)
		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to read block index")
	}
	// parents before children, so Add can check height linkage
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Height < nodes[j].Height })
	idx := NewMemIndex()
	for _, n := range nodes {
		if err := idx.Add(n); err != nil {
			return nil, err
		}
	}

	tip, err := s.TipHash()
	switch errors.Cause(err) {
	case nil:
		if err := idx.SetTip(tip); err != nil {
			return nil, errors.Wrap(err, "recorded tip is not indexed")
		}
	case db.ErrNotExist:
		log.L().Info("Block index has no recorded tip.", zap.Int("blocks", idx.Len()))
	default:
		return nil, err
	}
	return idx, nil
}
