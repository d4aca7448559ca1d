// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package version

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	ver "github.com/routehubproject/routehub-core/pkg/version"
	"github.com/routehubproject/routehub-core/routectl"
)

// NewVersionCmd represents the version command
func NewVersionCmd(client routectl.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of routectl and the hub",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cmd.Printf("Client:\npackageVersion: %s\npackageCommitID: %s\ngitStatus: %s\ngoVersion: %s\nbuildTime: %s\n",
				ver.PackageVersion, ver.PackageCommitID, ver.GitStatus, ver.GoVersion, ver.BuildTime)
			node, err := client.Call(context.Background(), "hub_clientVersion", nil)
			if err != nil {
				return errors.Wrap(err, "failed to get version from the hub")
			}
			cmd.Printf("%s:\n%s\n", client.Config().Endpoint, node.String())
			return nil
		},
	}
}
