// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-checkpoint/blockchain/blockindex"
	"github.com/iotexproject/iotex-checkpoint/blockchain/checkpoint"
	"github.com/iotexproject/iotex-checkpoint/db"
	"github.com/iotexproject/iotex-checkpoint/pkg/log"
)

// withStore runs fn against the started block index store of the configured db
func withStore(ctx context.Context, e *env, fn func(*blockindex.Store) error) (err error) {
	kv, err := db.CreateKVStore(e.cfg.DB, e.cfg.DB.DbPath)
	if err != nil {
		return err
	}
	store := blockindex.NewStore(kv)
	if err := store.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to open block index")
	}
	defer func() {
		if stopErr := store.Stop(ctx); stopErr != nil && err == nil {
			err = stopErr
		}
	}()
	return fn(store)
}

func loadIndex(ctx context.Context, e *env) (*blockindex.MemIndex, error) {
	var idx *blockindex.MemIndex
	err := withStore(ctx, e, func(s *blockindex.Store) error {
		var err error
		idx, err = s.Load()
		return err
	})
	return idx, err
}

func newImportCmd(e *env) *cobra.Command {
	var batchSize int
	cmd := &cobra.Command{
		Use:   "import HASHLIST",
		Short: "Import a linear chain from a hash list into the block index",
		Long: "Import reads one block hash per line, genesis first, and stores the chain as the best chain of the block index. " +
			"The import is refused if any block conflicts with a hardened checkpoint.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if batchSize <= 0 {
				return errors.New("batch size must be positive")
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			nodes, err := blockindex.ReadHashList(f)
			if err != nil {
				return err
			}
			if len(nodes) == 0 {
				return errors.Errorf("%s holds no block hash", args[0])
			}
			for _, n := range nodes {
				if !e.guard.CheckHardened(n.Height, n.Hash) {
					return errors.Wrapf(checkpoint.ErrHardenedCheckpointMismatch, "block %x at height %d", n.Hash[:], n.Height)
				}
			}
			return withStore(cmd.Context(), e, func(s *blockindex.Store) error {
				for start := 0; start < len(nodes); start += batchSize {
					end := min(start+batchSize, len(nodes))
					if err := s.PutNodes(nodes[start:end]...); err != nil {
						return err
					}
					log.L().Debug("Imported blocks.", zap.Int("from", start), zap.Int("to", end-1))
				}
				tip := nodes[len(nodes)-1]
				if err := s.PutTip(tip.Hash); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %d blocks, tip %s\n", len(nodes), tip)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&batchSize, "batch-size", 10000, "number of blocks written per batch")
	return cmd
}

func newLastCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "last",
		Short: "Print the most recent hardened checkpoint present in the block index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := loadIndex(cmd.Context(), e)
			if err != nil {
				return err
			}
			n, ok := e.guard.LastCheckpoint(idx)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "none")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func newSyncCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "sync [HEIGHT]",
		Short: "Print the sync checkpoint of the stored tip, or whether a fork at HEIGHT is allowed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				height uint64
				err    error
			)
			if len(args) == 1 {
				if height, err = strconv.ParseUint(args[0], 10, 64); err != nil {
					return errors.Wrapf(err, "invalid height %s", args[0])
				}
			}
			idx, err := loadIndex(cmd.Context(), e)
			if err != nil {
				return err
			}
			return idx.View(func(tip *blockindex.Node, r blockindex.Reader) error {
				cs := checkpoint.ChainState{Tip: tip, Index: r}
				if len(args) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), e.guard.AutoSelectSyncCheckpoint(cs))
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), e.guard.CheckSync(cs, height))
				return nil
			})
		},
	}
}
