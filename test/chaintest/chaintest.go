// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

// Package chaintest builds block indexes for tests.
package chaintest

import (
	"github.com/iotexproject/go-pkgs/hash"

	"github.com/iotexproject/iotex-checkpoint/blockchain/blockindex"
	"github.com/iotexproject/iotex-checkpoint/pkg/util/byteutil"
)

// HashOf returns a deterministic block hash for height on branch
func HashOf(height uint64, branch byte) hash.Hash256 {
	return hash.Hash256b(append(byteutil.Uint64ToBytesBigEndian(height), branch))
}

// LinearChain builds an index holding genesis up to tipHeight on branch 0, with the tip set
func LinearChain(tipHeight uint64) (*blockindex.MemIndex, []*blockindex.Node) {
	idx := blockindex.NewMemIndex()
	genesis := &blockindex.Node{Height: 0, Hash: HashOf(0, 0)}
	if err := idx.Add(genesis); err != nil {
		panic(err)
	}
	nodes := append([]*blockindex.Node{genesis}, Extend(idx, genesis, tipHeight, 0)...)
	if err := idx.SetTip(nodes[len(nodes)-1].Hash); err != nil {
		panic(err)
	}
	return idx, nodes
}

// Extend adds length blocks on top of from, on the given branch, and returns them
func Extend(idx *blockindex.MemIndex, from *blockindex.Node, length uint64, branch byte) []*blockindex.Node {
	nodes := make([]*blockindex.Node, 0, length)
	parent := from
	for i := uint64(1); i <= length; i++ {
		n := &blockindex.Node{
			Height: from.Height + i,
			Hash:   HashOf(from.Height+i, branch),
			Parent: parent.Hash,
		}
		if err := idx.Add(n); err != nil {
			panic(err)
		}
		nodes = append(nodes, n)
		parent = n
	}
	return nodes
}
