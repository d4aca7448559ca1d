// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package cmd assembles the routectl command tree.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/routehubproject/routehub-core/routectl"
	"github.com/routehubproject/routehub-core/routectl/cmd/chain"
	"github.com/routehubproject/routehub-core/routectl/cmd/deposit"
	"github.com/routehubproject/routehub-core/routectl/cmd/hub"
	"github.com/routehubproject/routehub-core/routectl/cmd/migrate"
	"github.com/routehubproject/routehub-core/routectl/cmd/version"
	"github.com/routehubproject/routehub-core/routectl/config"
)

// NewRoutectl returns the routectl root command
func NewRoutectl(client routectl.Client) *cobra.Command {
	var endpoint string
	root := &cobra.Command{
		Use:   "routectl",
		Short: "Command-line interface for the RouteHub routing and registry hub",
		Long:  `routectl drives a running hub node over its JSON-RPC endpoint: registry management, deposits, migrations and hub administration.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			client.SetEndpoint(endpoint)
		},
	}
	root.PersistentFlags().StringVar(&endpoint, "endpoint", "", "set the hub endpoint for this invocation")

	root.AddCommand(config.NewConfigCmd())
	root.AddCommand(hub.NewHubCmd(client))
	root.AddCommand(chain.NewChainCmd(client))
	root.AddCommand(deposit.NewDepositCmd(client))
	root.AddCommand(migrate.NewMigrateCmd(client))
	root.AddCommand(version.NewVersionCmd(client))
	return root
}
