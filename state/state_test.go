// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package state

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	Owner common.Address
	Value uint64
}

func (r *testRecord) Serialize() ([]byte, error) {
	return rlp.EncodeToBytes(r)
}

func (r *testRecord) Deserialize(data []byte) error {
	return rlp.DecodeBytes(data, r)
}

type testPlainState struct {
	Name string
	Flag bool
}

func TestSerializer(t *testing.T) {
	require := require.New(t)

	r := &testRecord{
		Owner: common.HexToAddress("0x3b2d8a3f43e1a8276a78e958e2ae40b09db20d4f"),
		Value: 2026,
	}
	data, err := Serialize(r)
	require.NoError(err)

	var clone testRecord
	require.NoError(Deserialize(&clone, data))
	require.Equal(r.Owner, clone.Owner)
	require.Equal(r.Value, clone.Value)

	require.Error(Deserialize(&clone, []byte("not rlp")))
}

func TestGobFallback(t *testing.T) {
	require := require.New(t)

	s := testPlainState{Name: "routehub", Flag: true}
	data, err := Serialize(s)
	require.NoError(err)

	var clone testPlainState
	require.NoError(Deserialize(&clone, data))
	require.Equal(s, clone)

	require.Error(Deserialize(&clone, []byte{0xff}))
}
