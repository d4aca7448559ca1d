// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package deposit

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/mock/gomock"

	"github.com/routehubproject/routehub-core/test/mock/mock_routectlclient"
	"github.com/routehubproject/routehub-core/testutil"
)

const (
	_depositor = "0x2fc8b1f0aab149e0c2f48e4a4f6e7dca85c4ebe7"
	_txHash    = "0x64ec0e2a0dbdbef07adea9995a0c05af295cbd0aad4ac29ac06d2cca9cc6eba5"
)

func TestParseAmount(t *testing.T) {
	require := require.New(t)
	for _, c := range []struct {
		in  string
		out string
	}{
		{"0", "0x0"},
		{"100", "0x64"},
		{"0x64", "0x64"},
		{"5000000000", "0x12a05f200"},
	} {
		v, err := parseAmount(c.in)
		require.NoError(err)
		require.Equal(c.out, v)
	}
	for _, bad := range []string{"", "-5", "0x", "ten"} {
		_, err := parseAmount(bad)
		require.Error(err, bad)
	}
}

func TestDepositDirectCmd(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	client := mock_routectlclient.NewMockClient(ctrl)

	client.EXPECT().Account("").Return(_depositor, nil)
	client.EXPECT().Call(gomock.Any(), "hub_requestDirect", []interface{}{
		map[string]interface{}{
			"from":                 _depositor,
			"value":                "0x64",
			"chainId":              uint64(7),
			"mintValue":            "0x64",
			"l2Value":              "0x3c",
			"l2Calldata":           "0xdeadbeef",
			"l2GasLimit":           uint64(21000),
			"l2GasPerPubdataLimit": uint64(800),
		},
	}).Return(gjson.Parse(`"`+_txHash+`"`), nil)

	out, err := testutil.ExecuteCmd(newDirectCmd(client),
		"--chain-id", "7", "--mint-value", "100", "--value", "100", "--l2-value", "60",
		"--calldata", "0xdeadbeef", "--gas-limit", "21000", "--gas-per-pubdata", "800")
	require.NoError(err)
	require.Contains(out, "Deposit forwarded, txHash = "+_txHash)
}

func TestDepositTwoBridgesCmd(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	client := mock_routectlclient.NewMockClient(ctrl)
	bridge := "0x5100000000000000000000000000000000000003"

	client.EXPECT().Account("").Return(_depositor, nil)
	client.EXPECT().Call(gomock.Any(), "hub_requestTwoBridges", []interface{}{
		map[string]interface{}{
			"from":                 _depositor,
			"value":                "0x96",
			"chainId":              uint64(7),
			"mintValue":            "0x64",
			"l2Value":              "0x0",
			"l2GasLimit":           uint64(42000),
			"l2GasPerPubdataLimit": uint64(800),
			"secondBridgeAddress":  bridge,
			"secondBridgeValue":    "0x32",
			"secondBridgeCalldata": "0x00112233",
		},
	}).Return(gjson.Parse(`"`+_txHash+`"`), nil)

	out, err := testutil.ExecuteCmd(newTwoBridgesCmd(client),
		"--chain-id", "7", "--mint-value", "100", "--value", "150", "--bridge", bridge,
		"--bridge-value", "50", "--bridge-calldata", "0x00112233",
		"--gas-limit", "42000", "--gas-per-pubdata", "800")
	require.NoError(err)
	require.Contains(out, "Deposit forwarded")
}

func TestDepositEstimateCmd(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	client := mock_routectlclient.NewMockClient(ctrl)

	client.EXPECT().Call(gomock.Any(), "hub_estimateBaseCost",
		[]interface{}{uint64(7), "0x2", uint64(1000000), uint64(800)}).
		Return(gjson.Parse(`"0x1c6bf52634000"`), nil)

	out, err := testutil.ExecuteCmd(newEstimateCmd(client), "7", "2", "1000000", "800")
	require.NoError(err)
	require.Contains(out, "Base cost: 500000000000000 (0x1c6bf52634000)")

	_, err = testutil.ExecuteCmd(newEstimateCmd(client), "7", "2", "a lot", "800")
	require.ErrorContains(err, "invalid gas limit")
}
