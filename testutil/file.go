// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package testutil

import (
	"os"

	"github.com/routehubproject/routehub-core/pkg/util/fileutil"
)

// PathOfTempFile creates an empty temp file and returns its path
func PathOfTempFile(pattern string) (string, error) {
	f, err := os.CreateTemp(os.TempDir(), pattern)
	if err != nil {
		return "", err
	}
	return f.Name(), f.Close()
}

// CleanupPath removes the test file or directory at path if it exists
func CleanupPath(path string) {
	if fileutil.FileExists(path) && os.RemoveAll(path) != nil {
		panic("failed to remove " + path)
	}
}
