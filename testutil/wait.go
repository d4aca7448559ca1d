// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package testutil

import (
	"time"

	"github.com/cenkalti/backoff"
	"github.com/pkg/errors"
)

// ErrTimeout is returned when the condition is not met before the timeout
var ErrTimeout = errors.New("condition not met before timeout")

// WaitUntil periodically checks whether the condition is met, and returns
// ErrTimeout if it is still not met after the timeout
func WaitUntil(checkInterval, timeout time.Duration, checkCondition func() (bool, error)) error {
	bo := backoff.WithMaxRetries(backoff.NewConstantBackOff(checkInterval), uint64(timeout/checkInterval))
	return backoff.Retry(func() error {
		met, err := checkCondition()
		if err != nil {
			return backoff.Permanent(err)
		}
		if !met {
			return ErrTimeout
		}
		return nil
	}, bo)
}
