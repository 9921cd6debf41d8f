// Copyright (c) 2019 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package byteutil

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrInvalidLength is returned when a fixed-width decode is given the wrong number of bytes
var ErrInvalidLength = errors.New("invalid byte length")

// Uint64ToBytesBigEndian converts a uint64 to 8 bytes in big-endian, so keys sort by height
func Uint64ToBytesBigEndian(value uint64) []byte {
	bytes := make([]byte, 8)
	binary.BigEndian.PutUint64(bytes, value)
	return bytes
}

// BytesToUint64BigEndian converts 8 bytes in big-endian to uint64
func BytesToUint64BigEndian(value []byte) uint64 {
	return binary.BigEndian.Uint64(value)
}

// ReadUint64BigEndian decodes the leading 8 bytes of value and returns the rest
func ReadUint64BigEndian(value []byte) (uint64, []byte, error) {
	if len(value) < 8 {
		return 0, nil, errors.Wrapf(ErrInvalidLength, "need 8 bytes, got %d", len(value))
	}
	return binary.BigEndian.Uint64(value[:8]), value[8:], nil
}

// Must is a helper wraps a call to a function returing ([]byte, error) and panics if the error is not nil.
func Must(d []byte, err error) []byte {
	if err != nil {
		panic(err)
	}
	return d
}
