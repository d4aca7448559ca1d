// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package migrate holds the settlement-layer migration commands.
package migrate

import (
	"context"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/routehubproject/routehub-core/routectl"
)

// NewMigrateCmd represents the migrate command
func NewMigrateCmd(client routectl.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Move chains between settlement layers",
	}
	cmd.AddCommand(newStartCmd(client))
	cmd.AddCommand(newWhitelistCmd(client))
	cmd.AddCommand(newCounterpartCmd(client))
	cmd.AddCommand(newLayerCmd(client))
	return cmd
}

func parseChainID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, errors.Errorf("invalid chain id %s", arg)
	}
	return id, nil
}

func parseAmount(arg string) (string, error) {
	base := 10
	s := arg
	if strings.HasPrefix(arg, "0x") || strings.HasPrefix(arg, "0X") {
		base, s = 16, arg[2:]
	}
	v, ok := new(big.Int).SetString(s, base)
	if !ok || v.Sign() < 0 {
		return "", errors.Errorf("invalid amount %s", arg)
	}
	return "0x" + v.Text(16), nil
}

func newStartCmd(client routectl.Client) *cobra.Command {
	var (
		from          string
		chainID       uint64
		target        uint64
		newAdmin      string
		cutData       string
		mintValue     string
		value         string
		gasLimit      uint64
		gasPerPubdata uint64
	)
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Hand a chain over to a whitelisted settlement layer",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			caller, err := client.Account(from)
			if err != nil {
				return err
			}
			mint, err := parseAmount(mintValue)
			if err != nil {
				return err
			}
			attached, err := parseAmount(value)
			if err != nil {
				return err
			}
			mintData, err := client.Call(context.Background(), "hub_startMigration", []interface{}{
				map[string]interface{}{
					"from":                 caller,
					"value":                attached,
					"chainId":              target,
					"mintValue":            mint,
					"l2GasLimit":           gasLimit,
					"l2GasPerPubdataLimit": gasPerPubdata,
					"migratingChainId":     chainID,
					"newAdmin":             newAdmin,
					"cutData":              cutData,
				},
			})
			if err != nil {
				return err
			}
			cmd.Printf("Migration started, mintData = %s\n", mintData.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "account to send the call from, must be the chain's admin")
	cmd.Flags().Uint64Var(&chainID, "chain-id", 0, "chain to migrate")
	cmd.Flags().Uint64Var(&target, "target", 0, "whitelisted settlement layer to migrate onto")
	cmd.Flags().StringVar(&newAdmin, "new-admin", "", "admin of the chain on the new layer")
	cmd.Flags().StringVar(&cutData, "cut-data", "0x", "hex-encoded diamond cut executed on the new layer")
	cmd.Flags().StringVar(&mintValue, "mint-value", "0", "base token amount backing the migration request")
	cmd.Flags().StringVar(&value, "value", "0", "attached native value")
	cmd.Flags().Uint64Var(&gasLimit, "gas-limit", 0, "L2 gas limit of the finalize call")
	cmd.Flags().Uint64Var(&gasPerPubdata, "gas-per-pubdata", 0, "L2 gas per pubdata byte")
	_ = cmd.MarkFlagRequired("chain-id")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("new-admin")
	_ = cmd.MarkFlagRequired("gas-limit")
	_ = cmd.MarkFlagRequired("gas-per-pubdata")
	return cmd
}

func newWhitelistCmd(client routectl.Client) *cobra.Command {
	var (
		from   string
		remove bool
	)
	cmd := &cobra.Command{
		Use:   "whitelist CHAIN_ID",
		Short: "Declare a chain a settlement layer, callable by its authority",
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
			if _, err := client.Call(context.Background(), "hub_registerSettlementLayer",
				[]interface{}{map[string]interface{}{"from": caller, "chainId": id, "whitelisted": !remove}}); err != nil {
				return err
			}
			if remove {
				cmd.Printf("Chain %d removed from the settlement-layer whitelist.\n", id)
			} else {
				cmd.Printf("Chain %d whitelisted as a settlement layer.\n", id)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "account to send the call from")
	cmd.Flags().BoolVar(&remove, "remove", false, "remove the chain from the whitelist")
	return cmd
}

func newCounterpartCmd(client routectl.Client) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "counterpart CHAIN_ID ADDRESS",
		Short: "Record the hub deployment on a settlement layer",
		Args:  cobra.ExactArgs(2),
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
			if _, err := client.Call(context.Background(), "hub_registerCounterpart",
				[]interface{}{map[string]interface{}{"from": caller, "chainId": id, "counterpart": args[1]}}); err != nil {
				return err
			}
			cmd.Printf("Counterpart of chain %d set to %s.\n", id, args[1])
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "account to send the call from")
	return cmd
}

func newLayerCmd(client routectl.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "layer CHAIN_ID",
		Short: "Show the settlement layer a chain currently settles on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			id, err := parseChainID(args[0])
			if err != nil {
				return err
			}
			layer, err := client.Call(context.Background(), "hub_settlementLayer", []interface{}{id})
			if err != nil {
				return err
			}
			if layer.String() == "0x0" {
				cmd.Printf("Chain %d settles on this hub's domain.\n", id)
				return nil
			}
			cmd.Printf("Chain %d settles on chain %s.\n", id, layer.String())
			return nil
		},
	}
}
