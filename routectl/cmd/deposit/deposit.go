// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package deposit holds the deposit-and-forward commands.
package deposit

import (
	"context"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/routehubproject/routehub-core/routectl"
)

// NewDepositCmd represents the deposit command
func NewDepositCmd(client routectl.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Move base tokens into custody and forward L2 payloads",
	}
	cmd.AddCommand(newDirectCmd(client))
	cmd.AddCommand(newTwoBridgesCmd(client))
	cmd.AddCommand(newEstimateCmd(client))
	return cmd
}

// parseAmount accepts a decimal or 0x-prefixed amount and normalizes it to hex
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

func newDirectCmd(client routectl.Client) *cobra.Command {
	var (
		from          string
		chainID       uint64
		mintValue     string
		value         string
		l2Contract    string
		l2Value       string
		calldata      string
		gasLimit      uint64
		gasPerPubdata uint64
		refund        string
	)
	cmd := &cobra.Command{
		Use:   "direct",
		Short: "Run a direct deposit-and-forward request",
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
			l2Val, err := parseAmount(l2Value)
			if err != nil {
				return err
			}
			params := map[string]interface{}{
				"from":                 caller,
				"value":                attached,
				"chainId":              chainID,
				"mintValue":            mint,
				"l2Value":              l2Val,
				"l2Calldata":           calldata,
				"l2GasLimit":           gasLimit,
				"l2GasPerPubdataLimit": gasPerPubdata,
			}
			if l2Contract != "" {
				params["l2Contract"] = l2Contract
			}
			if refund != "" {
				params["refundRecipient"] = refund
			}
			txHash, err := client.Call(context.Background(), "hub_requestDirect", []interface{}{params})
			if err != nil {
				return err
			}
			cmd.Printf("Deposit forwarded, txHash = %s\n", txHash.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "account to send the call from")
	cmd.Flags().Uint64Var(&chainID, "chain-id", 0, "destination chain")
	cmd.Flags().StringVar(&mintValue, "mint-value", "0", "base token amount to take into custody")
	cmd.Flags().StringVar(&value, "value", "0", "attached native value")
	cmd.Flags().StringVar(&l2Contract, "l2-contract", "", "contract called on the destination chain")
	cmd.Flags().StringVar(&l2Value, "l2-value", "0", "value the L2 call carries")
	cmd.Flags().StringVar(&calldata, "calldata", "0x", "hex-encoded L2 calldata")
	cmd.Flags().Uint64Var(&gasLimit, "gas-limit", 0, "L2 gas limit")
	cmd.Flags().Uint64Var(&gasPerPubdata, "gas-per-pubdata", 0, "L2 gas per pubdata byte")
	cmd.Flags().StringVar(&refund, "refund", "", "refund recipient on the destination chain")
	_ = cmd.MarkFlagRequired("chain-id")
	_ = cmd.MarkFlagRequired("gas-limit")
	_ = cmd.MarkFlagRequired("gas-per-pubdata")
	return cmd
}

func newTwoBridgesCmd(client routectl.Client) *cobra.Command {
	var (
		from          string
		chainID       uint64
		mintValue     string
		value         string
		l2Value       string
		gasLimit      uint64
		gasPerPubdata uint64
		bridge        string
		bridgeValue   string
		bridgeData    string
		refund        string
	)
	cmd := &cobra.Command{
		Use:   "two-bridges",
		Short: "Run a deposit through a second bridge",
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
			l2Val, err := parseAmount(l2Value)
			if err != nil {
				return err
			}
			bridgeVal, err := parseAmount(bridgeValue)
			if err != nil {
				return err
			}
			params := map[string]interface{}{
				"from":                 caller,
				"value":                attached,
				"chainId":              chainID,
				"mintValue":            mint,
				"l2Value":              l2Val,
				"l2GasLimit":           gasLimit,
				"l2GasPerPubdataLimit": gasPerPubdata,
				"secondBridgeAddress":  bridge,
				"secondBridgeValue":    bridgeVal,
				"secondBridgeCalldata": bridgeData,
			}
			if refund != "" {
				params["refundRecipient"] = refund
			}
			txHash, err := client.Call(context.Background(), "hub_requestTwoBridges", []interface{}{params})
			if err != nil {
				return err
			}
			cmd.Printf("Deposit forwarded, txHash = %s\n", txHash.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "account to send the call from")
	cmd.Flags().Uint64Var(&chainID, "chain-id", 0, "destination chain")
	cmd.Flags().StringVar(&mintValue, "mint-value", "0", "base token amount to take into custody")
	cmd.Flags().StringVar(&value, "value", "0", "attached native value")
	cmd.Flags().StringVar(&l2Value, "l2-value", "0", "value the L2 call carries")
	cmd.Flags().Uint64Var(&gasLimit, "gas-limit", 0, "L2 gas limit")
	cmd.Flags().Uint64Var(&gasPerPubdata, "gas-per-pubdata", 0, "L2 gas per pubdata byte")
	cmd.Flags().StringVar(&bridge, "bridge", "", "second bridge contract")
	cmd.Flags().StringVar(&bridgeValue, "bridge-value", "0", "value handed to the second bridge")
	cmd.Flags().StringVar(&bridgeData, "bridge-calldata", "0x", "hex-encoded second bridge calldata")
	cmd.Flags().StringVar(&refund, "refund", "", "refund recipient on the destination chain")
	_ = cmd.MarkFlagRequired("chain-id")
	_ = cmd.MarkFlagRequired("gas-limit")
	_ = cmd.MarkFlagRequired("gas-per-pubdata")
	_ = cmd.MarkFlagRequired("bridge")
	return cmd
}

func newEstimateCmd(client routectl.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "estimate CHAIN_ID GAS_PRICE GAS_LIMIT GAS_PER_PUBDATA",
		Short: "Estimate the base cost of a deposit",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			chainID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return errors.Wrapf(err, "invalid chain id %s", args[0])
			}
			gasPrice, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			gasLimit, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return errors.Wrapf(err, "invalid gas limit %s", args[2])
			}
			gasPerPubdata, err := strconv.ParseUint(args[3], 10, 64)
			if err != nil {
				return errors.Wrapf(err, "invalid pubdata limit %s", args[3])
			}
			cost, err := client.Call(context.Background(), "hub_estimateBaseCost",
				[]interface{}{chainID, gasPrice, gasLimit, gasPerPubdata})
			if err != nil {
				return err
			}
			value, ok := new(big.Int).SetString(strings.TrimPrefix(cost.String(), "0x"), 16)
			if !ok {
				return errors.Errorf("malformed cost %s", cost.String())
			}
			cmd.Printf("Base cost: %s (%s)\n", value.String(), cost.String())
			return nil
		},
	}
}
