// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/iotexproject/iotex-checkpoint/blockchain/blockindex"
	"github.com/iotexproject/iotex-checkpoint/blockchain/checkpoint"
	"github.com/iotexproject/iotex-checkpoint/test/chaintest"
)

func run(t *testing.T, args ...string) (string, error) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRegistryCommands(t *testing.T) {
	require := require.New(t)

	out, err := run(t, "estimate", "--network", "mainnet")
	require.NoError(err)
	require.Equal("1014930\n", out)

	out, err = run(t, "list")
	require.NoError(err)
	require.Contains(out, "Height")
	require.Contains(out, "1014930")
	require.Contains(out, "0000ebc8051bff80f7946f4420efb219e66f66b89fdc1df0ed8a30b428bf0033")

	out, err = run(t, "hardened", "0", "0x0000ebc8051bff80f7946f4420efb219e66f66b89fdc1df0ed8a30b428bf0033")
	require.NoError(err)
	require.Equal("accepted\n", out)
	out, err = run(t, "hardened", "1", "0x0000ebc8051bff80f7946f4420efb219e66f66b89fdc1df0ed8a30b428bf0033")
	require.NoError(err)
	require.Equal("accepted\n", out)
	_, err = run(t, "hardened", "0", "0x"+strings.Repeat("00", 32))
	require.Equal(checkpoint.ErrHardenedCheckpointMismatch, errors.Cause(err))
	_, err = run(t, "hardened", "x", "00")
	require.Error(err)

	out, err = run(t, "estimate", "--network", "testnet")
	require.NoError(err)
	require.Equal("0\n", out)
	_, err = run(t, "estimate", "--network", "regtest")
	require.Error(err)
	_, err = run(t, "estimate", "--network", "custom")
	require.Error(err)

	dir := t.TempDir()
	exported := filepath.Join(dir, "mainnet.yaml")
	_, err = run(t, "export", exported)
	require.NoError(err)
	reg, err := checkpoint.LoadRegistryFile(exported)
	require.NoError(err)
	require.Equal(uint64(1014930), reg.TotalBlocksEstimate())
}

func TestIndexCommands(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	regPath := filepath.Join(dir, "registry.yaml")
	require.NoError(checkpoint.WriteRegistryFile(regPath, checkpoint.MustRegistry([]checkpoint.Entry{
		{Height: 0, Hash: chaintest.HashOf(0, 0)},
		{Height: 10, Hash: chaintest.HashOf(10, 0)},
		{Height: 40, Hash: chaintest.HashOf(40, 0)},
	})))
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(os.WriteFile(cfgPath, []byte(fmt.Sprintf(`
network: custom
checkpoint:
  syncSpan: 5
  registryFile: %s
db:
  dbPath: %s
`, regPath, filepath.Join(dir, "index.db"))), 0644))

	var list strings.Builder
	list.WriteString("# test chain\n")
	for i := uint64(0); i < 30; i++ {
		fmt.Fprintf(&list, "%x\n", chaintest.HashOf(i, 0))
	}
	listPath := filepath.Join(dir, "hashes.txt")
	require.NoError(os.WriteFile(listPath, []byte(list.String()), 0644))

	// nothing imported yet
	out, err := run(t, "last", "-c", cfgPath)
	require.NoError(err)
	require.Equal("none\n", out)

	out, err = run(t, "import", listPath, "-c", cfgPath, "--batch-size", "7")
	require.NoError(err)
	require.Contains(out, "imported 30 blocks")

	out, err = run(t, "last", "-c", cfgPath)
	require.NoError(err)
	require.Equal(fmt.Sprintf("10:%x\n", chaintest.HashOf(10, 0)), out)

	out, err = run(t, "sync", "-c", cfgPath)
	require.NoError(err)
	require.Equal(fmt.Sprintf("24:%x\n", chaintest.HashOf(24, 0)), out)
	out, err = run(t, "sync", "24", "-c", cfgPath)
	require.NoError(err)
	require.Equal("false\n", out)
	out, err = run(t, "sync", "25", "-c", cfgPath)
	require.NoError(err)
	require.Equal("true\n", out)

	// a chain rewriting height 10 is refused
	var bad strings.Builder
	for i := uint64(0); i < 12; i++ {
		branch := byte(0)
		if i >= 5 {
			branch = 1
		}
		fmt.Fprintf(&bad, "%x\n", chaintest.HashOf(i, branch))
	}
	badPath := filepath.Join(dir, "bad.txt")
	require.NoError(os.WriteFile(badPath, []byte(bad.String()), 0644))
	_, err = run(t, "import", badPath, "-c", cfgPath)
	require.Equal(checkpoint.ErrHardenedCheckpointMismatch, errors.Cause(err))
}

func TestStatusHandler(t *testing.T) {
	require := require.New(t)

	idx, nodes := chaintest.LinearChain(30)
	g, err := checkpoint.NewGuard(checkpoint.MustRegistry([]checkpoint.Entry{
		{Height: 10, Hash: nodes[10].Hash},
		{Height: 50, Hash: chaintest.HashOf(50, 0)},
	}), checkpoint.WithSyncSpan(5))
	require.NoError(err)

	get := func(idx *blockindex.MemIndex) status {
		rec := httptest.NewRecorder()
		statusHandler("custom", g, idx).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checkpoint", nil))
		require.Equal(http.StatusOK, rec.Code)
		var st status
		require.NoError(json.Unmarshal(rec.Body.Bytes(), &st))
		return st
	}

	st := get(idx)
	require.Equal("custom", st.Network)
	require.Equal(uint64(50), st.TotalBlocksEstimate)
	require.Equal(nodes[30].String(), st.Tip)
	require.Equal(nodes[10].String(), st.LastCheckpoint)
	require.Equal(nodes[25].String(), st.SyncCheckpoint)

	// no tip yet
	st = get(blockindex.NewMemIndex())
	require.Equal(uint64(50), st.TotalBlocksEstimate)
	require.Empty(st.Tip)
	require.Empty(st.LastCheckpoint)
	require.Empty(st.SyncCheckpoint)
}
