// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-checkpoint/blockchain/blockindex"
	"github.com/iotexproject/iotex-checkpoint/blockchain/checkpoint"
	"github.com/iotexproject/iotex-checkpoint/pkg/lifecycle"
	"github.com/iotexproject/iotex-checkpoint/pkg/log"
	"github.com/iotexproject/iotex-checkpoint/pkg/probe"
)

type status struct {
	Network             string `json:"network"`
	TotalBlocksEstimate uint64 `json:"totalBlocksEstimate"`
	Tip                 string `json:"tip,omitempty"`
	LastCheckpoint      string `json:"lastCheckpoint,omitempty"`
	SyncCheckpoint      string `json:"syncCheckpoint,omitempty"`
}

// statusHandler reports the checkpoints of idx as JSON
func statusHandler(network string, g *checkpoint.Guard, idx *blockindex.MemIndex) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st := status{
			Network:             network,
			TotalBlocksEstimate: g.TotalBlocksEstimate(),
		}
		if n, ok := g.LastCheckpoint(idx); ok {
			st.LastCheckpoint = n.String()
		}
		// an index without tip still reports the registry
		_ = idx.View(func(tip *blockindex.Node, rd blockindex.Reader) error {
			st.Tip = tip.String()
			st.SyncCheckpoint = g.AutoSelectSyncCheckpoint(checkpoint.ChainState{Tip: tip, Index: rd}).String()
			return nil
		})
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(st); err != nil {
			log.L().Warn("Failed to send status.", zap.Error(err))
		}
	})
}

func newServeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve checkpoint status, probes and metrics until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := log.InitLoggers(e.cfg.Log, e.cfg.SubLogs); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			idx, err := loadIndex(ctx, e)
			if err != nil {
				return err
			}
			server := probe.New(e.cfg.System.HTTPStatsPort,
				probe.WithHandler("/checkpoint", statusHandler(e.cfg.Network, e.guard, idx)),
			)
			var lc lifecycle.Lifecycle
			lc.Add(server)
			if err := lc.OnStart(ctx); err != nil {
				return err
			}
			server.Ready()
			log.L().Info("Serving checkpoint status.",
				zap.String("network", e.cfg.Network),
				zap.Int("port", e.cfg.System.HTTPStatsPort),
				zap.Int("blocks", idx.Len()))

			<-ctx.Done()
			server.NotReady()
			return lc.OnStop(context.Background())
		},
	}
}
