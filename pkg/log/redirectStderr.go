// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

//go:build !windows && !arm && !arm64
// +build !windows,!arm,!arm64

package log

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
)

// redirectStderr points fd 2 at the given file so panic traces land in the log
func redirectStderr(f *os.File) error {
	if err := syscall.Dup2(int(f.Fd()), int(os.Stderr.Fd())); err != nil {
		return errors.Wrap(err, "failed to redirect stderr")
	}
	return nil
}
