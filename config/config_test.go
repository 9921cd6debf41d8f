// Copyright (c) 2019 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package config

import (
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/iotexproject/iotex-checkpoint/blockchain/checkpoint"
	"github.com/iotexproject/iotex-checkpoint/db"
	"github.com/iotexproject/iotex-checkpoint/testutil"
)

func writeConfig(t *testing.T, content string) string {
	path, err := testutil.PathOfTempFile("config.yaml")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewDefaultConfig(t *testing.T) {
	require := require.New(t)

	cfg, err := New([]string{})
	require.NoError(err)
	require.Equal(Default.Network, cfg.Network)
	require.Equal(checkpoint.DefaultSyncSpan, cfg.Checkpoint.SyncSpan)
	require.Equal(db.DefaultConfig, cfg.DB)

	g, err := cfg.Guard()
	require.NoError(err)
	require.Equal(uint64(1014930), g.TotalBlocksEstimate())
	require.Equal(checkpoint.DefaultSyncSpan, g.SyncSpan())
}

func TestNewConfigWithWrongConfigPath(t *testing.T) {
	_, err := New([]string{"wrong_path"})
	require.Error(t, err)
}

func TestNewConfigWithOverride(t *testing.T) {
	require := require.New(t)

	regPath, err := testutil.PathOfTempFile("registry.yaml")
	require.NoError(err)
	defer testutil.CleanupPath(t, regPath)
	require.NoError(checkpoint.WriteRegistryFile(regPath, checkpoint.MustRegistry([]checkpoint.Entry{
		{Height: 0},
		{Height: 42},
	})))

	require.NoError(os.Setenv("IOTEX_TEST_DB_PATH", "/tmp/blockindex-test.db"))
	defer os.Unsetenv("IOTEX_TEST_DB_PATH")
	path := writeConfig(t, `
network: custom
checkpoint:
  syncSpan: 100
  registryFile: `+regPath+`
db:
  dbPath: ${IOTEX_TEST_DB_PATH}
  dbType: pebbledb
`)
	defer testutil.CleanupPath(t, path)

	cfg, err := New([]string{path})
	require.NoError(err)
	require.Equal("/tmp/blockindex-test.db", cfg.DB.DbPath)
	require.Equal(db.DBPebble, cfg.DB.DBType)
	require.Equal(db.DefaultConfig.NumRetries, cfg.DB.NumRetries)

	n, err := cfg.ActiveNetwork()
	require.NoError(err)
	require.Equal(checkpoint.Custom, n)
	g, err := cfg.Guard()
	require.NoError(err)
	require.Equal(uint64(42), g.TotalBlocksEstimate())
	require.Equal(uint64(100), g.SyncSpan())
}

func TestValidateNetwork(t *testing.T) {
	require := require.New(t)

	cfg := Default
	require.NoError(ValidateNetwork(cfg))
	cfg.Network = "Testnet"
	require.NoError(ValidateNetwork(cfg))

	cfg.Network = "regtest"
	require.Equal(ErrInvalidCfg, errors.Cause(ValidateNetwork(cfg)))

	cfg.Network = "custom"
	require.Equal(ErrInvalidCfg, errors.Cause(ValidateNetwork(cfg)))
	cfg.Checkpoint.RegistryFile = "/tmp/registry.yaml"
	require.NoError(ValidateNetwork(cfg))
}

func TestValidateCheckpointAndDB(t *testing.T) {
	require := require.New(t)

	cfg := Default
	cfg.Checkpoint.SyncSpan = 0
	require.Equal(ErrInvalidCfg, errors.Cause(ValidateCheckpoint(cfg)))
	_, err := cfg.Guard()
	require.Equal(checkpoint.ErrInvalidGuard, errors.Cause(err))

	cfg = Default
	cfg.DB.DbPath = ""
	require.Equal(ErrInvalidCfg, errors.Cause(ValidateDB(cfg)))
	cfg.DB.DbPath = "/tmp/x.db"
	cfg.DB.DBType = "leveldb"
	require.Equal(ErrInvalidCfg, errors.Cause(ValidateDB(cfg)))

	path := writeConfig(t, "checkpoint:\n  syncSpan: 0\n")
	defer testutil.CleanupPath(t, path)
	_, err = New([]string{path})
	require.Equal(ErrInvalidCfg, errors.Cause(err))
	cfg, err = New([]string{path}, DoNotValidate)
	require.NoError(err)
	require.Zero(cfg.Checkpoint.SyncSpan)
}
