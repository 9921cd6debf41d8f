// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/iotexproject/iotex-checkpoint/db/batch"
)

type kvTest struct {
	ns   string
	k, v []byte
}

var (
	_namespace = "blockIndex"
	_k1        = []byte("key_1")
	_k2        = []byte("key_2")
	_k3        = []byte("key_3")
	_k4        = []byte("key_4")
	_v1        = []byte("value_1")
	_v2        = []byte("value_2")
	_v3        = []byte("value_3")
	_v4        = []byte("value_4")
)

func TestPebbleDB(t *testing.T) {
	r := require.New(t)

	cfg := DefaultConfig
	cfg.DbPath = filepath.Join(t.TempDir(), "test-pebble")
	db := NewPebbleDB(cfg)
	ctx := context.Background()
	r.NoError(db.Start(ctx))
	defer func() {
		r.NoError(db.Stop(ctx))
	}()

	notExist := func(ns string, k []byte) {
		v, err := db.Get(ns, k)
		r.Equal(ErrNotExist, errors.Cause(err))
		r.Nil(v)
	}
	notExist(_namespace, _k1)

	_ns1 := "blockIndexTip"
	for _, e := range []kvTest{
		{_namespace, _k1, _v1},
		{_namespace, _k2, _v2},
		{_namespace, _k3, _v3},
		// another namespace
		{_ns1, _k2, _v3},
		{_ns1, _k3, _v4},
		{_ns1, _k4, _v1},
		// overwrite same key
		{_namespace, _k1, _k1},
		{_namespace, _k2, _k2},
		{_namespace, _k3, _k3},
	} {
		r.NoError(db.Put(e.ns, e.k, e.v))
		v, err := db.Get(e.ns, e.k)
		r.NoError(err)
		r.Equal(e.v, v)
	}
	notExist(_namespace, _k4)
	notExist(_ns1, _k1)

	for _, e := range []kvTest{
		{_namespace, _k4, nil},
		{_ns1, _k1, nil},
		{_namespace, _k1, nil},
		{_ns1, _k4, nil},
	} {
		r.NoError(db.Delete(e.ns, e.k))
		notExist(e.ns, e.k)
	}

	// later writes of the same key in one batch win
	b := batch.NewBatch()
	b.Put(_namespace, _k2, _k3, "")
	b.Put(_namespace, _k1, _v1, "")
	b.Put(_namespace, _k4, _k1, "")
	b.Put(_namespace, _k3, _k1, "")
	b.Put(_namespace, _k2, _k2, "")
	b.Delete(_namespace, _k2, "")
	b.Put(_namespace, _k3, _v3, "")
	b.Put(_namespace, _k4, _k3, "")
	b.Put(_namespace, _k4, _v4, "")
	r.NoError(db.WriteBatch(b))
	for _, e := range []kvTest{
		{_namespace, _k1, _v1},
		{_namespace, _k3, _v3},
		{_namespace, _k4, _v4},
		{_ns1, _k2, _v3},
		{_ns1, _k3, _v4},
	} {
		v, err := db.Get(e.ns, e.k)
		r.NoError(err)
		r.Equal(e.v, v)
	}
	notExist(_namespace, _k2)

	// iteration stays inside the namespace
	var keys [][]byte
	r.NoError(db.ForEach(_ns1, func(k, _ []byte) error {
		keys = append(keys, k)
		return nil
	}))
	r.Equal([][]byte{_k2, _k3}, keys)
}
