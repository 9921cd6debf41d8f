// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package log

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLoggers(t *testing.T) {
	require := require.New(t)

	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.OutputPaths = []string{"stdout"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	require.NoError(InitLoggers(GlobalConfig{Zap: &zapCfg}, map[string]GlobalConfig{
		"checkpoint": {},
	}))
	require.NotNil(L())
	require.NotNil(S())
	require.NotNil(Logger("checkpoint"))
	// unknown sub logger falls back to the global one
	require.NotNil(Logger("unknown"))

	err := InitLoggers(GlobalConfig{}, map[string]GlobalConfig{"checkpoint": {}})
	require.Error(err)
	require.Contains(err.Error(), "duplicate sub logger name")

	err = InitLoggers(GlobalConfig{}, map[string]GlobalConfig{"": {}})
	require.Error(err)
}
