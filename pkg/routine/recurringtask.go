// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package routine

import (
	"context"
	"time"

	"github.com/facebookgo/clock"

	"github.com/routehubproject/routehub-core/pkg/lifecycle"
)

var _ lifecycle.StartStopper = (*RecurringTask)(nil)

// Task is a runnable executed by a task scheduler
type Task func()

// RecurringTaskOption is option to RecurringTask
type RecurringTaskOption interface {
	SetRecurringTaskOption(*RecurringTask)
}

type recurringTaskOption func(*RecurringTask)

func (o recurringTaskOption) SetRecurringTaskOption(t *RecurringTask) { o(t) }

// WithClock sets the clock the task ticks on, defaulting to the wall clock
func WithClock(c clock.Clock) RecurringTaskOption {
	return recurringTaskOption(func(t *RecurringTask) {
		t.clock = c
	})
}

// RecurringTask represents a recurring task
type RecurringTask struct {
	lifecycle.Readiness
	t        Task
	interval time.Duration
	ticker   *clock.Ticker
	clock    clock.Clock
	done     chan struct{}
}

// NewRecurringTask creates an instance of RecurringTask
func NewRecurringTask(t Task, i time.Duration, ops ...RecurringTaskOption) *RecurringTask {
	rt := &RecurringTask{
		t:        t,
		interval: i,
		clock:    clock.New(),
	}
	for _, opt := range ops {
		opt.SetRecurringTaskOption(rt)
	}
	return rt
}

// Start spins up the ticking goroutine, a second start is rejected
func (t *RecurringTask) Start(_ context.Context) error {
	if err := t.TurnOn(); err != nil {
		return err
	}
	t.ticker = t.clock.Ticker(t.interval)
	t.done = make(chan struct{})
	ready := make(chan struct{})
	go func() {
		close(ready)
		for {
			select {
			case <-t.done:
				return
			case <-t.ticker.C:
				t.t()
			}
		}
	}()
	<-ready
	return nil
}

// Stop stops the timer
func (t *RecurringTask) Stop(_ context.Context) error {
	// prevent stop from running before start
	if err := t.TurnOff(); err != nil {
		return err
	}
	if t.ticker != nil {
		t.ticker.Stop()
	}
	close(t.done)
	return nil
}
