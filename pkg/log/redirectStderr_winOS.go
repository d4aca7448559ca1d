// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

//go:build windows
// +build windows

package log

import "os"

// windows has no dup2, leave stderr alone and keep logging to the file only
func redirectStderr(_ *os.File) error {
	L().Warn("Stderr redirection is not supported on windows.")
	return nil
}
