// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/routehubproject/routehub-core/routectl"
	"github.com/routehubproject/routehub-core/routectl/cmd"
	"github.com/routehubproject/routehub-core/routectl/config"
)

func main() {
	cfg, err := config.ReadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd := cmd.NewRoutectl(routectl.NewClient(cfg))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
