// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package hub holds the hub administration commands.
package hub

import (
	"context"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/routehubproject/routehub-core/routectl"
)

// NewHubCmd represents the hub command
func NewHubCmd(client routectl.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hub",
		Short: "Inspect and administrate the hub",
	}
	cmd.AddCommand(newStatusCmd(client))
	cmd.AddCommand(newPauseCmd(client))
	cmd.AddCommand(newUnpauseCmd(client))
	cmd.AddCommand(newSetAdminCmd(client))
	cmd.AddCommand(newAcceptAdminCmd(client))
	return cmd
}

func newStatusCmd(client routectl.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the hub's identity and state",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			chainID, err := client.Call(ctx, "hub_chainId", nil)
			if err != nil {
				return err
			}
			mode, err := client.Call(ctx, "hub_settlementMode", nil)
			if err != nil {
				return err
			}
			owner, err := client.Call(ctx, "hub_owner", nil)
			if err != nil {
				return err
			}
			admin, err := client.Call(ctx, "hub_admin", nil)
			if err != nil {
				return err
			}
			paused, err := client.Call(ctx, "hub_paused", nil)
			if err != nil {
				return err
			}
			tb := table.New("FIELD", "VALUE").WithWriter(cmd.OutOrStdout())
			tb.AddRow("chainID", chainID.String())
			tb.AddRow("settlementMode", mode.Bool())
			tb.AddRow("owner", owner.String())
			tb.AddRow("admin", admin.String())
			tb.AddRow("paused", paused.Bool())
			tb.Print()
			return nil
		},
	}
}

func newPauseCmd(client routectl.Client) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "pause",
		Short: "Engage the hub's circuit breaker",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			caller, err := client.Account(from)
			if err != nil {
				return err
			}
			if _, err := client.Call(context.Background(), "hub_pause",
				[]interface{}{map[string]interface{}{"from": caller}}); err != nil {
				return err
			}
			cmd.Println("Hub paused.")
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "account to send the call from")
	return cmd
}

func newUnpauseCmd(client routectl.Client) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "unpause",
		Short: "Release the hub's circuit breaker",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			caller, err := client.Account(from)
			if err != nil {
				return err
			}
			if _, err := client.Call(context.Background(), "hub_unpause",
				[]interface{}{map[string]interface{}{"from": caller}}); err != nil {
				return err
			}
			cmd.Println("Hub unpaused.")
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "account to send the call from")
	return cmd
}

func newSetAdminCmd(client routectl.Client) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "set-admin ADDRESS",
		Short: "Propose a new global admin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			caller, err := client.Account(from)
			if err != nil {
				return err
			}
			if _, err := client.Call(context.Background(), "hub_setPendingAdmin",
				[]interface{}{map[string]interface{}{"from": caller, "pendingAdmin": args[0]}}); err != nil {
				return err
			}
			cmd.Printf("Pending admin set to %s, the handoff completes once it accepts.\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "account to send the call from")
	return cmd
}

func newAcceptAdminCmd(client routectl.Client) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "accept-admin",
		Short: "Accept a pending admin handoff",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			caller, err := client.Account(from)
			if err != nil {
				return err
			}
			if _, err := client.Call(context.Background(), "hub_acceptAdmin",
				[]interface{}{map[string]interface{}{"from": caller}}); err != nil {
				return err
			}
			cmd.Println("Admin role accepted.")
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "account to send the call from")
	return cmd
}
