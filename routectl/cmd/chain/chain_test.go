// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package chain

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
	_owner     = "0x07b1b0bfbe2a53e430fcbd9a23ebfaac10f93b31"
	_authority = "0x5100000000000000000000000000000000000001"
	_native    = "0x0000000000000000000000000000000000000001"
)

func TestChainShowCmd(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	client := mock_routectlclient.NewMockClient(ctrl)

	t.Run("resident chain", func(t *testing.T) {
		client.EXPECT().Call(gomock.Any(), "hub_chain", []interface{}{uint64(7)}).
			Return(gjson.Parse(`{"authority":"`+_authority+`","baseToken":"`+_native+`","settlementLayer":"0x0"}`), nil)
		client.EXPECT().Call(gomock.Any(), "hub_executionDomain", []interface{}{uint64(7)}).
			Return(gjson.Parse(`"0x35e58b44e6d5d10b346df0fd4eba6bf18cbd5940"`), nil)
		out, err := testutil.ExecuteCmd(newShowCmd(client), "7")
		require.NoError(err)
		require.Contains(out, _authority)
		require.Contains(out, _native)
		require.Contains(out, "0x35e58b44e6d5d10b346df0fd4eba6bf18cbd5940")
	})

	t.Run("unknown chain", func(t *testing.T) {
		client.EXPECT().Call(gomock.Any(), "hub_chain", []interface{}{uint64(77)}).
			Return(gjson.Result{}, errors.New("chain not registered: chain id = 77"))
		_, err := testutil.ExecuteCmd(newShowCmd(client), "77")
		require.ErrorContains(err, "chain not registered")
	})

	t.Run("bad id", func(t *testing.T) {
		_, err := testutil.ExecuteCmd(newShowCmd(client), "seven")
		require.ErrorContains(err, "invalid chain id")
	})
}

func TestChainCreateCmd(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	client := mock_routectlclient.NewMockClient(ctrl)

	client.EXPECT().Account("").Return(_owner, nil)
	client.EXPECT().Call(gomock.Any(), "hub_createChain", []interface{}{
		map[string]interface{}{
			"from":      _owner,
			"chainId":   uint64(7),
			"authority": _authority,
			"baseToken": _native,
			"admin":     _owner,
			"initData":  "0x",
		},
	}).Return(gjson.Parse(`"0x7"`), nil)

	out, err := testutil.ExecuteCmd(newCreateCmd(client), "7",
		"--authority", _authority, "--base-token", _native, "--admin", _owner)
	require.NoError(err)
	require.Contains(out, "Chain 0x7 created.")
}

func TestChainRegistryCmds(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	client := mock_routectlclient.NewMockClient(ctrl)

	client.EXPECT().Account(_owner).Return(_owner, nil)
	client.EXPECT().Call(gomock.Any(), "hub_registerAuthority",
		[]interface{}{map[string]interface{}{"from": _owner, "authority": _authority}}).Return(gjson.Parse(`true`), nil)
	out, err := testutil.ExecuteCmd(newRegisterAuthorityCmd(client), _authority, "--from", _owner)
	require.NoError(err)
	require.Contains(out, "Authority "+_authority+" registered.")

	client.EXPECT().Account(_owner).Return(_owner, nil)
	client.EXPECT().Call(gomock.Any(), "hub_deregisterAuthority",
		[]interface{}{map[string]interface{}{"from": _owner, "authority": _authority}}).Return(gjson.Parse(`true`), nil)
	out, err = testutil.ExecuteCmd(newDeregisterAuthorityCmd(client), _authority, "--from", _owner)
	require.NoError(err)
	require.Contains(out, "deregistered")

	client.EXPECT().Account(_owner).Return(_owner, nil)
	client.EXPECT().Call(gomock.Any(), "hub_registerToken",
		[]interface{}{map[string]interface{}{"from": _owner, "token": _native}}).Return(gjson.Parse(`true`), nil)
	out, err = testutil.ExecuteCmd(newRegisterTokenCmd(client), _native, "--from", _owner)
	require.NoError(err)
	require.Contains(out, "Base token "+_native+" registered.")
}
