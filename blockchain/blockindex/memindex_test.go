// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package blockindex

import (
	"sync"
	"testing"

	"github.com/iotexproject/go-pkgs/hash"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/iotexproject/iotex-checkpoint/pkg/util/byteutil"
)

func testHash(height uint64, salt byte) hash.Hash256 {
	return hash.Hash256b(append(byteutil.Uint64ToBytesBigEndian(height), salt))
}

func linearNodes(n int) []*Node {
	nodes := make([]*Node, 0, n)
	var parent hash.Hash256
	for i := 0; i < n; i++ {
		h := testHash(uint64(i), 0)
		nodes = append(nodes, &Node{Height: uint64(i), Hash: h, Parent: parent})
		parent = h
	}
	return nodes
}

func TestMemIndex(t *testing.T) {
	require := require.New(t)

	idx := NewMemIndex()
	_, err := idx.Tip()
	require.Equal(ErrNoTip, err)
	require.Equal(ErrNoTip, idx.View(func(*Node, Reader) error { return nil }))

	nodes := linearNodes(10)
	for _, n := range nodes {
		require.NoError(idx.Add(n))
	}
	require.Equal(10, idx.Len())
	// re-adding the same node is a no-op
	require.NoError(idx.Add(nodes[3]))
	require.Equal(10, idx.Len())

	n, ok := idx.NodeByHash(nodes[5].Hash)
	require.True(ok)
	require.Equal(uint64(5), n.Height)
	_, ok = idx.NodeByHash(testHash(5, 1))
	require.False(ok)

	p, ok := idx.Parent(n)
	require.True(ok)
	require.Equal(nodes[4].Hash, p.Hash)
	_, ok = idx.Parent(nodes[0])
	require.False(ok)

	require.Equal(ErrNotFound, errors.Cause(idx.SetTip(testHash(42, 0))))
	require.NoError(idx.SetTip(nodes[9].Hash))
	tip, err := idx.Tip()
	require.NoError(err)
	require.Equal(uint64(9), tip.Height)

	require.NoError(idx.View(func(tip *Node, r Reader) error {
		require.Equal(nodes[9].Hash, tip.Hash)
		steps := 0
		for cur, ok := tip, true; ok; cur, ok = r.Parent(cur) {
			steps++
		}
		require.Equal(10, steps)
		return nil
	}))
}

func TestMemIndexRejectsInconsistentNodes(t *testing.T) {
	require := require.New(t)

	idx := NewMemIndex()
	nodes := linearNodes(3)
	for _, n := range nodes {
		require.NoError(idx.Add(n))
	}
	require.Equal(ErrInvalidNode, errors.Cause(idx.Add(nil)))

	// wrong height relative to the parent
	bad := &Node{Height: 5, Hash: testHash(5, 7), Parent: nodes[2].Hash}
	require.Equal(ErrInvalidNode, errors.Cause(idx.Add(bad)))

	// same hash, different content
	clash := *nodes[1]
	clash.Height = 9
	require.Equal(ErrInvalidNode, errors.Cause(idx.Add(&clash)))

	// unknown parent is accepted, the ancestor walk simply ends there
	orphan := &Node{Height: 100, Hash: testHash(100, 0), Parent: testHash(99, 0)}
	require.NoError(idx.Add(orphan))
	_, ok := idx.Parent(orphan)
	require.False(ok)
}

func TestMemIndexRejectsParentCycle(t *testing.T) {
	require := require.New(t)

	hA, hB := testHash(2, 1), testHash(1, 1)
	idx := NewMemIndex()
	// B arrives before its parent A
	require.NoError(idx.Add(&Node{Height: 1, Hash: hB, Parent: hA}))
	// A claiming B as its own parent would close the loop
	err := idx.Add(&Node{Height: 2, Hash: hA, Parent: hB})
	require.Equal(ErrInvalidNode, errors.Cause(err))
	_, ok := idx.NodeByHash(hA)
	require.False(ok)
	// A one block below B is the consistent version
	require.NoError(idx.Add(&Node{Height: 0, Hash: hA}))
	p, ok := idx.Parent(&Node{Height: 1, Hash: hB, Parent: hA})
	require.True(ok)
	require.Equal(hA, p.Hash)

	self := testHash(7, 1)
	require.Equal(ErrInvalidNode, errors.Cause(idx.Add(&Node{Height: 7, Hash: self, Parent: self})))

	// children added first are checked once their parent shows up
	nodes := linearNodes(5)
	idx = NewMemIndex()
	for i := len(nodes) - 1; i >= 0; i-- {
		require.NoError(idx.Add(nodes[i]))
	}
	require.NoError(idx.SetTip(nodes[4].Hash))
	require.NoError(idx.View(func(tip *Node, r Reader) error {
		steps := 0
		for cur, ok := tip, true; ok; cur, ok = r.Parent(cur) {
			steps++
		}
		require.Equal(5, steps)
		return nil
	}))
	late := &Node{Height: 9, Hash: testHash(9, 2), Parent: testHash(8, 2)}
	require.NoError(idx.Add(late))
	require.Equal(ErrInvalidNode, errors.Cause(idx.Add(&Node{Height: 3, Hash: testHash(8, 2), Parent: nodes[2].Hash})))
}

func TestMemIndexConcurrentView(t *testing.T) {
	require := require.New(t)

	idx := NewMemIndex()
	nodes := linearNodes(200)
	require.NoError(idx.Add(nodes[0]))
	require.NoError(idx.SetTip(nodes[0].Hash))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for _, n := range nodes[1:] {
			if err := idx.Add(n); err != nil {
				panic(err)
			}
			if err := idx.SetTip(n.Hash); err != nil {
				panic(err)
			}
		}
	}()
	for i := 0; i < 100; i++ {
		require.NoError(idx.View(func(tip *Node, r Reader) error {
			// every snapshot is a complete chain down to genesis
			cur, ok := tip, true
			for ; ok && !cur.IsGenesis(); cur, ok = r.Parent(cur) {
			}
			require.True(ok)
			require.Equal(nodes[0].Hash, cur.Hash)
			return nil
		}))
	}
	wg.Wait()
}
