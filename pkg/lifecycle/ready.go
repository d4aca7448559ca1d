// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package lifecycle

import (
	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// ErrWrongState is returned on a state transition attempted from the wrong state
var ErrWrongState = errors.New("service is in wrong state")

// Readiness tracks whether a service has been started and may serve requests.
// The zero value is not ready
type Readiness struct {
	on atomic.Bool
}

// TurnOn marks the service ready, it fails when the service is already on
func (r *Readiness) TurnOn() error {
	if r.on.CompareAndSwap(false, true) {
		return nil
	}
	return ErrWrongState
}

// TurnOff marks the service not ready, it fails when the service is already off
func (r *Readiness) TurnOff() error {
	if r.on.CompareAndSwap(true, false) {
		return nil
	}
	return ErrWrongState
}

// IsReady reports whether the service may serve requests
func (r *Readiness) IsReady() bool {
	return r.on.Load()
}
