// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package lifecycle

import (
	"context"
)

type (
	// Starter is Component which has a Start method
	Starter interface {
		Start(context.Context) error
	}

	// Stopper is Component which has a Stop method
	Stopper interface {
		Stop(context.Context) error
	}

	// StartStopper is the interface that groups Start and Stop
	StartStopper interface {
		Starter
		Stopper
	}
)

// Lifecycle manages lifecycle for models. Currently is only used by server.
type Lifecycle struct {
	models []StartStopper
}

// Add adds a model into LifeCycle.
func (lc *Lifecycle) Add(m StartStopper) { lc.models = append(lc.models, m) }

// AddModels adds multiple models into LifeCycle.
func (lc *Lifecycle) AddModels(m ...StartStopper) { lc.models = append(lc.models, m...) }

// OnStart runs models OnStart function if models implmented it. All OnStart functions will be run in the order of
// models being added; the first error aborts the rest.
func (lc *Lifecycle) OnStart(ctx context.Context) error {
	for _, m := range lc.models {
		if err := m.Start(ctx); err != nil {
			return err
		}
	}
	return nil
}

// OnStop runs models Stop function in reverse order. Every model is stopped and the last error is returned.
func (lc *Lifecycle) OnStop(ctx context.Context) error {
	var lastErr error
	for i := len(lc.models) - 1; i >= 0; i-- {
		if err := lc.models[i].Stop(ctx); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
