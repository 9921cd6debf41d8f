// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package blockindex

import (
	"bufio"
	"io"
	"strings"

	"github.com/iotexproject/go-pkgs/hash"
	"github.com/pkg/errors"
)

// ReadHashList reads a linear chain from a hash list: one block hash per line,
// the first hash is genesis and each following line is the child of the previous.
// Blank lines and lines starting with # are skipped. A hash may appear only once.
func ReadHashList(r io.Reader) ([]*Node, error) {
	var (
		nodes  []*Node
		parent hash.Hash256
		sc     = bufio.NewScanner(r)
		lineNo int
		seen   = make(map[hash.Hash256]int)
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		h, err := ParseHash(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		if first, ok := seen[h]; ok {
			return nil, errors.Wrapf(ErrInvalidNode, "line %d repeats hash %x of line %d", lineNo, h[:], first)
		}
		seen[h] = lineNo
		nodes = append(nodes, &Node{
			Height: uint64(len(nodes)),
			Hash:   h,
			Parent: parent,
		})
		parent = h
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return nodes, nil
}
