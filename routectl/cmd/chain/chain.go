// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package chain holds the registry commands: chain records, authorities and
// base tokens.
package chain

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/routehubproject/routehub-core/routectl"
)

// NewChainCmd represents the chain command
func NewChainCmd(client routectl.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Manage the hub's chain registry",
	}
	cmd.AddCommand(newShowCmd(client))
	cmd.AddCommand(newCreateCmd(client))
	cmd.AddCommand(newRegisterAuthorityCmd(client))
	cmd.AddCommand(newDeregisterAuthorityCmd(client))
	cmd.AddCommand(newRegisterTokenCmd(client))
	return cmd
}

func parseChainID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid chain id %s", arg)
	}
	return id, nil
}

func newShowCmd(client routectl.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "show CHAIN_ID",
		Short: "Show a chain's registry record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			id, err := parseChainID(args[0])
			if err != nil {
				return err
			}
			ctx := context.Background()
			rec, err := client.Call(ctx, "hub_chain", []interface{}{id})
			if err != nil {
				return err
			}
			tb := table.New("FIELD", "VALUE").WithWriter(cmd.OutOrStdout())
			tb.AddRow("authority", rec.Get("authority").String())
			tb.AddRow("baseToken", rec.Get("baseToken").String())
			tb.AddRow("settlementLayer", rec.Get("settlementLayer").String())
			// the execution domain resolves only while the authority serves it
			if domain, err := client.Call(ctx, "hub_executionDomain", []interface{}{id}); err == nil {
				tb.AddRow("executionDomain", domain.String())
			}
			tb.Print()
			return nil
		},
	}
}

func newCreateCmd(client routectl.Client) *cobra.Command {
	var (
		from      string
		authority string
		baseToken string
		admin     string
		initData  string
	)
	cmd := &cobra.Command{
		Use:   "create CHAIN_ID",
		Short: "Register a new chain and delegate its construction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			id, err := parseChainID(args[0])
			if err != nil {
				return err
			}
			caller, err := client.Account(from)
			if err != nil {
				return err
			}
			res, err := client.Call(context.Background(), "hub_createChain", []interface{}{
				map[string]interface{}{
					"from":      caller,
					"chainId":   id,
					"authority": authority,
					"baseToken": baseToken,
					"admin":     admin,
					"initData":  initData,
				},
			})
			if err != nil {
				return err
			}
			cmd.Printf("Chain %s created.\n", res.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "account to send the call from")
	cmd.Flags().StringVar(&authority, "authority", "", "registered authority constructing the chain")
	cmd.Flags().StringVar(&baseToken, "base-token", "", "registered base token of the chain")
	cmd.Flags().StringVar(&admin, "admin", "", "admin of the chain's execution domain")
	cmd.Flags().StringVar(&initData, "init-data", "0x", "hex-encoded genesis payload")
	_ = cmd.MarkFlagRequired("authority")
	_ = cmd.MarkFlagRequired("base-token")
	_ = cmd.MarkFlagRequired("admin")
	return cmd
}

func newRegisterAuthorityCmd(client routectl.Client) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "register-authority ADDRESS",
		Short: "Admit a chain authority into the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			caller, err := client.Account(from)
			if err != nil {
				return err
			}
			if _, err := client.Call(context.Background(), "hub_registerAuthority",
				[]interface{}{map[string]interface{}{"from": caller, "authority": args[0]}}); err != nil {
				return err
			}
			cmd.Printf("Authority %s registered.\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "account to send the call from")
	return cmd
}

func newDeregisterAuthorityCmd(client routectl.Client) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "deregister-authority ADDRESS",
		Short: "Remove a chain authority from the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			caller, err := client.Account(from)
			if err != nil {
				return err
			}
			if _, err := client.Call(context.Background(), "hub_deregisterAuthority",
				[]interface{}{map[string]interface{}{"from": caller, "authority": args[0]}}); err != nil {
				return err
			}
			cmd.Printf("Authority %s deregistered.\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "account to send the call from")
	return cmd
}

func newRegisterTokenCmd(client routectl.Client) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "register-token ADDRESS",
		Short: "Admit a base token into the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			caller, err := client.Account(from)
			if err != nil {
				return err
			}
			if _, err := client.Call(context.Background(), "hub_registerToken",
				[]interface{}{map[string]interface{}{"from": caller, "token": args[0]}}); err != nil {
				return err
			}
			cmd.Printf("Base token %s registered.\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "account to send the call from")
	return cmd
}
