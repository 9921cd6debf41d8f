// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package blockindex

import (
	"sync"

	"github.com/iotexproject/go-pkgs/hash"
	"github.com/pkg/errors"
)

var (
	// ErrNotFound indicates the hash is not in the index
	ErrNotFound = errors.New("block not found in index")
	// ErrNoTip indicates no best tip has been set yet
	ErrNoTip = errors.New("chain tip is not set")
)

type (
	// MemIndex is an in-memory block index keyed by hash
	MemIndex struct {
		mu    sync.RWMutex
		nodes map[hash.Hash256]*Node
		// children of every referenced parent hash, indexed or not
		children map[hash.Hash256][]*Node
		tip      *Node
	}

	// lockedReader reads the node table while the caller of View holds the lock
	lockedReader struct {
		nodes map[hash.Hash256]*Node
	}
)

// NewMemIndex creates an empty index
func NewMemIndex() *MemIndex {
	return &MemIndex{
		nodes:    make(map[hash.Hash256]*Node),
		children: make(map[hash.Hash256][]*Node),
	}
}

// Add inserts a node. Every parent link between indexed nodes spans exactly one
// block, whichever side of the link was added first, so ancestor walks always
// descend in height and cannot cycle.
func (m *MemIndex) Add(n *Node) error {
	if n == nil {
		return errors.Wrap(ErrInvalidNode, "nil node")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.nodes[n.Hash]; ok {
		if existing.Height != n.Height || existing.Parent != n.Parent {
			return errors.Wrapf(ErrInvalidNode, "block %x already indexed at height %d", n.Hash[:], existing.Height)
		}
		return nil
	}
	if !n.IsGenesis() {
		if n.Parent == n.Hash {
			return errors.Wrapf(ErrInvalidNode, "block %x is its own parent", n.Hash[:])
		}
		if parent, ok := m.nodes[n.Parent]; ok && parent.Height+1 != n.Height {
			return errors.Wrapf(ErrInvalidNode, "block %x at height %d, parent at height %d", n.Hash[:], n.Height, parent.Height)
		}
	}
	for _, child := range m.children[n.Hash] {
		if child.Height != n.Height+1 {
			return errors.Wrapf(ErrInvalidNode, "block %x at height %d, child %x at height %d", n.Hash[:], n.Height, child.Hash[:], child.Height)
		}
	}
	cp := *n
	m.nodes[n.Hash] = &cp
	if !cp.IsGenesis() {
		m.children[cp.Parent] = append(m.children[cp.Parent], &cp)
	}
	return nil
}

// SetTip moves the best tip to an indexed block
func (m *MemIndex) SetTip(h hash.Hash256) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.nodes[h]
	if !ok {
		return errors.Wrapf(ErrNotFound, "tip %x", h[:])
	}
	m.tip = n
	return nil
}

// Tip returns the current best tip
func (m *MemIndex) Tip() (*Node, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.tip == nil {
		return nil, ErrNoTip
	}
	return m.tip, nil
}

// Len returns the number of indexed blocks
func (m *MemIndex) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.nodes)
}

// NodeByHash returns the node of the given block hash
func (m *MemIndex) NodeByHash(h hash.Hash256) (*Node, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.nodes[h]
	return n, ok
}

// Parent returns the parent of a node
func (m *MemIndex) Parent(n *Node) (*Node, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return parentOf(m.nodes, n)
}

// View runs fn against a consistent snapshot of tip and index; no writer can
// interleave until fn returns, so fn must not call back into Add or SetTip.
func (m *MemIndex) View(fn func(tip *Node, r Reader) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.tip == nil {
		return ErrNoTip
	}
	return fn(m.tip, &lockedReader{nodes: m.nodes})
}

func (r *lockedReader) NodeByHash(h hash.Hash256) (*Node, bool) {
	n, ok := r.nodes[h]
	return n, ok
}

func (r *lockedReader) Parent(n *Node) (*Node, bool) {
	return parentOf(r.nodes, n)
}

func parentOf(nodes map[hash.Hash256]*Node, n *Node) (*Node, bool) {
	if n == nil || n.IsGenesis() {
		return nil, false
	}
	p, ok := nodes[n.Parent]
	return p, ok
}
