// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/iotexproject/iotex-checkpoint/blockchain/blockindex"
	"github.com/iotexproject/iotex-checkpoint/blockchain/checkpoint"
)

func newListCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the hardened checkpoints of the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tb := table.New("Height", "Hash").WithWriter(cmd.OutOrStdout())
			for _, entry := range e.guard.Registry().Entries() {
				tb.AddRow(entry.Height, fmt.Sprintf("%x", entry.Hash[:]))
			}
			tb.Print()
			return nil
		},
	}
}

func newEstimateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "estimate",
		Short: "Print the lower bound of the chain height implied by the checkpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), e.guard.TotalBlocksEstimate())
			return nil
		},
	}
}

func newHardenedCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "hardened HEIGHT HASH",
		Short: "Check a block against the hardened checkpoints",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			height, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return errors.Wrapf(err, "invalid height %s", args[0])
			}
			h, err := blockindex.ParseHash(args[1])
			if err != nil {
				return err
			}
			if e.guard.CheckHardened(height, h) {
				fmt.Fprintln(cmd.OutOrStdout(), "accepted")
				return nil
			}
			expected, _ := e.guard.Registry().Lookup(height)
			return errors.Wrapf(checkpoint.ErrHardenedCheckpointMismatch, "checkpoint at %d is %x", height, expected[:])
		},
	}
}

func newExportCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write the checkpoints of the network to a registry file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkpoint.WriteRegistryFile(args[0], e.guard.Registry()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d checkpoints to %s\n", e.guard.Registry().Len(), args[0])
			return nil
		},
	}
}
