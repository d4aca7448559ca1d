// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package config

import (
	"os"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/routehubproject/routehub-core/testutil"
)

const _testOwner = "0x07b1b0bfbe2a53e430fcbd9a23ebfaac10f93b31"

func TestNewDefaultConfig(t *testing.T) {
	// Default config doesn't have the owner address setup
	_, err := New(nil)
	require.Error(t, err)
	require.Equal(t, ErrInvalidCfg, errors.Cause(err))
}

func TestNewConfigWithoutValidation(t *testing.T) {
	cfg, err := New(nil, DoNotValidate)
	require.NoError(t, err)
	require.Equal(t, Default, cfg)
}

func TestNewConfigWithWrongConfigPath(t *testing.T) {
	_, err := New([]string{"wrong_path"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "open wrong_path: no such file or directory")
}

func TestNewConfigWithOverride(t *testing.T) {
	require := require.New(t)
	path, err := testutil.PathOfTempFile("config")
	require.NoError(err)
	defer testutil.CleanupPath(path)
	require.NoError(os.WriteFile(path, []byte(`
owner: "`+_testOwner+`"
hub:
    ownChainID: 9
    l1ChainID: 1
api:
    httpPort: 8545
`), 0600))

	cfg, err := New([]string{path})
	require.NoError(err)
	require.Equal(_testOwner, cfg.Owner)
	require.Equal(common.HexToAddress(_testOwner), cfg.OwnerAddress())
	require.Equal(uint64(9), cfg.Hub.OwnChainID)
	require.Equal(uint64(1), cfg.Hub.L1ChainID)
	require.Equal(8545, cfg.API.HTTPPort)
	// fields absent from the file keep their defaults
	require.Equal(Default.API.WebSocketPort, cfg.API.WebSocketPort)
	require.Equal(Default.Hub.EventBufferSize, cfg.Hub.EventBufferSize)
	require.Equal(Default.System, cfg.System)
}

func TestNewConfigWithEnvExpansion(t *testing.T) {
	require := require.New(t)
	path, err := testutil.PathOfTempFile("config")
	require.NoError(err)
	defer testutil.CleanupPath(path)
	require.NoError(os.WriteFile(path, []byte(`
owner: "${HUB_OWNER}"
`), 0600))
	t.Setenv("HUB_OWNER", _testOwner)

	cfg, err := New([]string{path})
	require.NoError(err)
	require.Equal(_testOwner, cfg.Owner)
}

func TestValidateOwner(t *testing.T) {
	require := require.New(t)
	cfg := Default
	require.Equal(ErrInvalidCfg, errors.Cause(ValidateOwner(cfg)))
	cfg.Owner = "definitely not an address"
	require.Equal(ErrInvalidCfg, errors.Cause(ValidateOwner(cfg)))
	cfg.Owner = _testOwner
	require.NoError(ValidateOwner(cfg))
}

func TestValidateHub(t *testing.T) {
	require := require.New(t)
	cfg := Default
	require.NoError(ValidateHub(cfg))

	cfg.Hub.OwnChainID = 0
	err := ValidateHub(cfg)
	require.Equal(ErrInvalidCfg, errors.Cause(err))
	require.Contains(err.Error(), "own chain id")

	cfg = Default
	cfg.Hub.L1ChainID = 1 << 48
	require.Equal(ErrInvalidCfg, errors.Cause(ValidateHub(cfg)))

	cfg = Default
	cfg.Hub.EventBufferSize = 0
	require.Equal(ErrInvalidCfg, errors.Cause(ValidateHub(cfg)))
}

func TestValidateAPI(t *testing.T) {
	require := require.New(t)
	cfg := Default
	require.NoError(ValidateAPI(cfg))

	cfg.API.HTTPPort = -1
	require.Equal(ErrInvalidCfg, errors.Cause(ValidateAPI(cfg)))

	cfg = Default
	cfg.API.WebSocketPort = 70000
	require.Equal(ErrInvalidCfg, errors.Cause(ValidateAPI(cfg)))

	cfg = Default
	cfg.API.BatchRequestLimit = -1
	require.Equal(ErrInvalidCfg, errors.Cause(ValidateAPI(cfg)))

	cfg = Default
	cfg.API.ListenerLimit = 0
	require.Equal(ErrInvalidCfg, errors.Cause(ValidateAPI(cfg)))
}

func TestOwnerAddressPanicsOnBadAddress(t *testing.T) {
	cfg := Default
	cfg.Owner = "oops"
	require.Panics(t, func() { cfg.OwnerAddress() })
}
