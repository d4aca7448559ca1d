// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package migrate

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/mock/gomock"

	"github.com/routehubproject/routehub-core/test/mock/mock_routectlclient"
	"github.com/routehubproject/routehub-core/testutil"
)

const (
	_chainAdmin = "0x543851eb4d8a30ce8d9aeac3c3ab5610c4b9ccff"
	_authority  = "0x5100000000000000000000000000000000000001"
	_newAdmin   = "0xbd7ef4b551ed4184ae24b1e9828c51ecfb7f4b50"
	_hubOnNine  = "0x8361ddf478f087a4e1e712629dbf92207b12d6f2"
)

func TestMigrateStartCmd(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	client := mock_routectlclient.NewMockClient(ctrl)

	client.EXPECT().Account(_chainAdmin).Return(_chainAdmin, nil)
	client.EXPECT().Call(gomock.Any(), "hub_startMigration", []interface{}{
		map[string]interface{}{
			"from":                 _chainAdmin,
			"value":                "0x28",
			"chainId":              uint64(9),
			"mintValue":            "0x28",
			"l2GasLimit":           uint64(800000),
			"l2GasPerPubdataLimit": uint64(800),
			"migratingChainId":     uint64(7),
			"newAdmin":             _newAdmin,
			"cutData":              "0x",
		},
	}).Return(gjson.Parse(`"0x00010203"`), nil)

	out, err := testutil.ExecuteCmd(newStartCmd(client),
		"--from", _chainAdmin,
		"--chain-id", "7",
		"--target", "9",
		"--new-admin", _newAdmin,
		"--mint-value", "40",
		"--value", "40",
		"--gas-limit", "800000",
		"--gas-per-pubdata", "800",
	)
	require.NoError(err)
	require.Contains(out, "mintData = 0x00010203")

	client.EXPECT().Account("").Return(_chainAdmin, nil)
	client.EXPECT().Call(gomock.Any(), "hub_startMigration", gomock.Any()).
		Return(gjson.Result{}, errors.New("chain 7 settles on chain 9"))
	_, err = testutil.ExecuteCmd(newStartCmd(client),
		"--chain-id", "7",
		"--target", "9",
		"--new-admin", _newAdmin,
		"--gas-limit", "800000",
		"--gas-per-pubdata", "800",
	)
	require.ErrorContains(err, "settles on chain 9")

	client.EXPECT().Account("").Return(_chainAdmin, nil)
	_, err = testutil.ExecuteCmd(newStartCmd(client),
		"--chain-id", "7",
		"--target", "9",
		"--new-admin", _newAdmin,
		"--mint-value", "a lot",
		"--gas-limit", "800000",
		"--gas-per-pubdata", "800",
	)
	require.ErrorContains(err, "invalid amount")
}

func TestMigrateWhitelistCmd(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	client := mock_routectlclient.NewMockClient(ctrl)

	client.EXPECT().Account(_authority).Return(_authority, nil)
	client.EXPECT().Call(gomock.Any(), "hub_registerSettlementLayer",
		[]interface{}{map[string]interface{}{"from": _authority, "chainId": uint64(9), "whitelisted": true}}).
		Return(gjson.Parse(`true`), nil)
	out, err := testutil.ExecuteCmd(newWhitelistCmd(client), "9", "--from", _authority)
	require.NoError(err)
	require.Contains(out, "Chain 9 whitelisted as a settlement layer.")

	client.EXPECT().Account(_authority).Return(_authority, nil)
	client.EXPECT().Call(gomock.Any(), "hub_registerSettlementLayer",
		[]interface{}{map[string]interface{}{"from": _authority, "chainId": uint64(9), "whitelisted": false}}).
		Return(gjson.Parse(`true`), nil)
	out, err = testutil.ExecuteCmd(newWhitelistCmd(client), "9", "--from", _authority, "--remove")
	require.NoError(err)
	require.Contains(out, "Chain 9 removed from the settlement-layer whitelist.")

	_, err = testutil.ExecuteCmd(newWhitelistCmd(client), "nine")
	require.ErrorContains(err, "invalid chain id nine")
}

func TestMigrateCounterpartCmd(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	client := mock_routectlclient.NewMockClient(ctrl)

	client.EXPECT().Account("").Return(_chainAdmin, nil)
	client.EXPECT().Call(gomock.Any(), "hub_registerCounterpart",
		[]interface{}{map[string]interface{}{"from": _chainAdmin, "chainId": uint64(9), "counterpart": _hubOnNine}}).
		Return(gjson.Parse(`true`), nil)
	out, err := testutil.ExecuteCmd(newCounterpartCmd(client), "9", _hubOnNine)
	require.NoError(err)
	require.Contains(out, "Counterpart of chain 9 set to "+_hubOnNine)
}

func TestMigrateLayerCmd(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	client := mock_routectlclient.NewMockClient(ctrl)

	client.EXPECT().Call(gomock.Any(), "hub_settlementLayer", []interface{}{uint64(7)}).
		Return(gjson.Parse(`"0x9"`), nil)
	out, err := testutil.ExecuteCmd(newLayerCmd(client), "7")
	require.NoError(err)
	require.Contains(out, "Chain 7 settles on chain 0x9.")

	client.EXPECT().Call(gomock.Any(), "hub_settlementLayer", []interface{}{uint64(9)}).
		Return(gjson.Parse(`"0x0"`), nil)
	out, err = testutil.ExecuteCmd(newLayerCmd(client), "9")
	require.NoError(err)
	require.Contains(out, "Chain 9 settles on this hub's domain.")
}
