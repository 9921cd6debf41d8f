// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-checkpoint/blockchain/checkpoint"
	"github.com/iotexproject/iotex-checkpoint/config"
	"github.com/iotexproject/iotex-checkpoint/pkg/log"
)

type env struct {
	configPaths []string
	network     string
	verbose     bool
	cfg         config.Config
	guard       *checkpoint.Guard
}

// load reads the config files, applies the network flag and builds the guard
func (e *env) load() error {
	cfg, err := config.New(e.configPaths, config.DoNotValidate)
	if err != nil {
		return err
	}
	if e.network != "" {
		cfg.Network = e.network
	}
	for _, validate := range config.Validates {
		if err := validate(cfg); err != nil {
			return errors.Wrap(err, "failed to validate config")
		}
	}
	g, err := cfg.Guard()
	if err != nil {
		return err
	}
	e.cfg, e.guard = cfg, g
	return nil
}

func newRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:           "checkpointctl [command] [flags]",
		Short:         "Command-line interface for IoTeX block checkpoints",
		Long:          "checkpointctl inspects hardened and sync checkpoints of a network and the block index they are checked against.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if e.verbose {
				log.SetLevel(zap.DebugLevel)
			}
			return e.load()
		},
	}
	root.PersistentFlags().StringSliceVarP(&e.configPaths, "config", "c", nil, "config file paths, later files override earlier ones")
	root.PersistentFlags().StringVarP(&e.network, "network", "n", "", "network to check against: mainnet, testnet or custom")
	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newListCmd(e),
		newEstimateCmd(e),
		newHardenedCmd(e),
		newExportCmd(e),
		newImportCmd(e),
		newLastCmd(e),
		newSyncCmd(e),
		newServeCmd(e),
	)
	return root
}

// Execute runs the root command with the process arguments
func Execute() error {
	if err := newRootCmd().Execute(); err != nil {
		log.L().Error("checkpointctl failed.", zap.Error(err))
		return err
	}
	return nil
}
