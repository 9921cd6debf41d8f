// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package checkpoint

import "github.com/prometheus/client_golang/prometheus"

var (
	_rejectionMtc = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iotex_checkpoint_rejection_total",
			Help: "Blocks rejected by the checkpoint guard.",
		},
		[]string{"reason"},
	)
	_syncCheckpointHeight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "iotex_sync_checkpoint_height",
			Help: "Height of the last selected sync checkpoint.",
		},
	)
	_totalBlocksEstimate = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "iotex_checkpoint_total_blocks_estimate",
			Help: "Highest hardened checkpoint height of the active network.",
		},
	)
)

func init() {
	prometheus.MustRegister(_rejectionMtc)
	prometheus.MustRegister(_syncCheckpointHeight)
	prometheus.MustRegister(_totalBlocksEstimate)
}
