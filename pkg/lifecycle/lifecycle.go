// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package lifecycle provides application models' lifecycle management.
package lifecycle

import (
	"context"

	"go.uber.org/multierr"
)

type (
	// Starter is the interface with a Start method
	Starter interface {
		Start(context.Context) error
	}

	// Stopper is the interface with a Stop method
	Stopper interface {
		Stop(context.Context) error
	}

	// StartStopper is the interface that groups Start and Stop
	StartStopper interface {
		Starter
		Stopper
	}

	// Lifecycle manages the life cycle of a group of models. It is not thread-safe
	Lifecycle struct {
		models []interface{}
	}
)

// Add adds a model into the lifecycle
func (lc *Lifecycle) Add(m interface{}) { lc.models = append(lc.models, m) }

// AddModels adds multiple models into the lifecycle
func (lc *Lifecycle) AddModels(m ...interface{}) { lc.models = append(lc.models, m...) }

// OnStart runs models' Start in the order they were added, stopping at the first error
func (lc *Lifecycle) OnStart(ctx context.Context) error {
	for _, m := range lc.models {
		if starter, ok := m.(Starter); ok {
			if err := starter.Start(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

// OnStop runs models' Stop in the reverse order they were added. All models are
// stopped even when some fail, and the errors are combined
func (lc *Lifecycle) OnStop(ctx context.Context) error {
	var err error
	for i := len(lc.models) - 1; i >= 0; i-- {
		if stopper, ok := lc.models[i].(Stopper); ok {
			err = multierr.Append(err, stopper.Stop(ctx))
		}
	}
	return err
}
