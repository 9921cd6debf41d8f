// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package blockindex

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/iotexproject/go-pkgs/hash"
	"github.com/pkg/errors"

	"github.com/iotexproject/iotex-checkpoint/pkg/util/byteutil"
)

const (
	_hashSize = 32
	// _nodeValueSize is 8 bytes of height followed by the parent hash
	_nodeValueSize = 8 + _hashSize
)

// ErrInvalidNode indicates a node that cannot be placed in the index
var ErrInvalidNode = errors.New("invalid block index node")

type (
	// Node is a block index entry. The parent is referenced by hash, never owned.
	Node struct {
		Height uint64
		Hash   hash.Hash256
		Parent hash.Hash256
	}

	// Reader is the read-only view of a block index
	Reader interface {
		// NodeByHash returns the node of the given block hash
		NodeByHash(hash.Hash256) (*Node, bool)
		// Parent returns the parent of a node, false for genesis or an unknown ancestor
		Parent(*Node) (*Node, bool)
	}
)

// IsGenesis returns true if the node is at height 0
func (n *Node) IsGenesis() bool {
	return n.Height == 0
}

func (n *Node) String() string {
	return fmt.Sprintf("%d:%x", n.Height, n.Hash[:])
}

func (n *Node) serialize() []byte {
	return append(byteutil.Uint64ToBytesBigEndian(n.Height), n.Parent[:]...)
}

func deserializeNode(key, value []byte) (*Node, error) {
	if len(key) != _hashSize {
		return nil, errors.Wrapf(ErrInvalidNode, "key length %d", len(key))
	}
	if len(value) != _nodeValueSize {
		return nil, errors.Wrapf(ErrInvalidNode, "value length %d", len(value))
	}
	height, rest, err := byteutil.ReadUint64BigEndian(value)
	if err != nil {
		return nil, err
	}
	return &Node{
		Height: height,
		Hash:   hash.BytesToHash256(key),
		Parent: hash.BytesToHash256(rest),
	}, nil
}

// ParseHash decodes a 64-character hex block hash, with or without 0x prefix
func ParseHash(s string) (hash.Hash256, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if len(s) != 2*_hashSize {
		return hash.ZeroHash256, errors.Errorf("invalid hash length %d of %s", len(s), s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return hash.ZeroHash256, errors.Wrapf(err, "invalid hash %s", s)
	}
	return hash.BytesToHash256(b), nil
}
