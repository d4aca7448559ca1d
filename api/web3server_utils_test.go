// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package api

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/routehubproject/routehub-core/request"
)

func TestHexFormatting(t *testing.T) {
	require := require.New(t)
	require.Equal("0x0", uint64ToHex(0))
	require.Equal("0x3aa6", uint64ToHex(15014))
	require.Equal("0x0", bigToHex(nil))
	require.Equal("0x0", bigToHex(big.NewInt(0)))
	require.Equal("0x1e8480", bigToHex(big.NewInt(2000000)))
	require.Equal("0x", bytesToHex(nil))
	require.Equal("0xab", bytesToHex([]byte{0xab}))
}

func TestParseChainID(t *testing.T) {
	require := require.New(t)
	doc := gjson.Parse(`{"num":7,"hexs":"0x7","dec":"7","bad":"abc","flag":true}`)

	id, err := parseChainID(doc.Get("num"))
	require.NoError(err)
	require.Equal(request.ChainID(7), id)

	id, err = parseChainID(doc.Get("hexs"))
	require.NoError(err)
	require.Equal(request.ChainID(7), id)

	id, err = parseChainID(doc.Get("dec"))
	require.NoError(err)
	require.Equal(request.ChainID(7), id)

	_, err = parseChainID(doc.Get("bad"))
	require.Equal(errUnkownType, errors.Cause(err))
	_, err = parseChainID(doc.Get("flag"))
	require.Equal(errInvalidFormat, errors.Cause(err))
	_, err = parseChainID(doc.Get("missing"))
	require.Equal(errInvalidFormat, errors.Cause(err))
}

func TestParseAddress(t *testing.T) {
	require := require.New(t)
	doc := gjson.Parse(`{"addr":"0x3328358128832a260c76a4141e19e2a943cd4b6d","short":"0x123"}`)

	addr, err := parseAddress(doc.Get("addr"))
	require.NoError(err)
	require.Equal(_testAuthority, addr)

	_, err = parseAddress(doc.Get("short"))
	require.Equal(errUnkownType, errors.Cause(err))
	_, err = parseAddress(doc.Get("missing"))
	require.Equal(errUnkownType, errors.Cause(err))

	addr, err = parseOptionalAddress(doc.Get("missing"))
	require.NoError(err)
	require.Equal(common.Address{}, addr)
	_, err = parseOptionalAddress(doc.Get("short"))
	require.Error(err)
}

func TestParseBig(t *testing.T) {
	require := require.New(t)
	doc := gjson.Parse(`{"num":100,"hexs":"0x64","noprefix":"100","flag":true}`)

	b, err := parseBig(doc.Get("missing"))
	require.NoError(err)
	require.Nil(b)

	b, err = parseBig(doc.Get("num"))
	require.NoError(err)
	require.Equal(big.NewInt(100), b)

	b, err = parseBig(doc.Get("hexs"))
	require.NoError(err)
	require.Equal(big.NewInt(100), b)

	_, err = parseBig(doc.Get("noprefix"))
	require.Equal(errUnkownType, errors.Cause(err))
	_, err = parseBig(doc.Get("flag"))
	require.Equal(errUnkownType, errors.Cause(err))
}

func TestParseBytesAndHashes(t *testing.T) {
	require := require.New(t)
	doc := gjson.Parse(`{
		"data":"0x67656e65736973",
		"empty":"",
		"bad":"zz",
		"hash":"0x00000000000000000000000000000000000000000000000000000000000000ff",
		"shortHash":"0xff",
		"proof":["0x00000000000000000000000000000000000000000000000000000000000000aa","0x00000000000000000000000000000000000000000000000000000000000000bb"],
		"notArray":"0xaa",
		"deps":["0xab","0xcd"]
	}`)

	data, err := parseBytes(doc.Get("data"))
	require.NoError(err)
	require.Equal([]byte("genesis"), data)
	data, err = parseBytes(doc.Get("empty"))
	require.NoError(err)
	require.Nil(data)
	data, err = parseBytes(doc.Get("missing"))
	require.NoError(err)
	require.Nil(data)
	_, err = parseBytes(doc.Get("bad"))
	require.Equal(errUnkownType, errors.Cause(err))

	h, err := parseHash(doc.Get("hash"))
	require.NoError(err)
	require.Equal(common.HexToHash("0xff"), h)
	_, err = parseHash(doc.Get("shortHash"))
	require.Equal(errUnkownType, errors.Cause(err))

	hashes, err := parseHashes(doc.Get("proof"))
	require.NoError(err)
	require.Len(hashes, 2)
	require.Equal(common.HexToHash("0xbb"), hashes[1])
	hashes, err = parseHashes(doc.Get("missing"))
	require.NoError(err)
	require.Nil(hashes)
	_, err = parseHashes(doc.Get("notArray"))
	require.Equal(errInvalidFormat, errors.Cause(err))

	deps, err := parseFactoryDeps(doc.Get("deps"))
	require.NoError(err)
	require.Equal([][]byte{{0xab}, {0xcd}}, deps)
}

func TestParseDirect(t *testing.T) {
	require := require.New(t)

	minimal := gjson.Parse(`{"chainId":7}`)
	req, err := parseDirect(&minimal)
	require.NoError(err)
	require.Equal(request.ChainID(7), req.ChainID)
	require.Nil(req.MintValue)
	require.Nil(req.L2Value)
	require.Equal(common.Address{}, req.L2Contract)
	require.Zero(req.L2GasLimit)

	full := gjson.Parse(`{
		"chainId":"0x7",
		"mintValue":"0x64",
		"l2Contract":"0x543851eb4d8a30ce8d9aeac3c3ab5610c4b9ccff",
		"l2Value":50,
		"l2Calldata":"0xab",
		"l2GasLimit":1000000,
		"l2GasPerPubdataLimit":800,
		"factoryDeps":["0xcd"],
		"refundRecipient":"0x2fc8b1f0aab149e0c2f48e4a4f6e7dca85c4ebe7"
	}`)
	req, err = parseDirect(&full)
	require.NoError(err)
	require.Equal(request.ChainID(7), req.ChainID)
	require.Equal(big.NewInt(100), req.MintValue)
	require.Equal(big.NewInt(50), req.L2Value)
	require.Equal(_testAdmin, req.L2Contract)
	require.Equal([]byte{0xab}, req.L2Calldata)
	require.Equal(uint64(1000000), req.L2GasLimit)
	require.Equal(uint64(800), req.L2GasPerPubdataLimit)
	require.Equal([][]byte{{0xcd}}, req.FactoryDeps)
	require.Equal(_testCaller, req.RefundRecipient)

	broken := gjson.Parse(`{"chainId":7,"mintValue":"100"}`)
	_, err = parseDirect(&broken)
	require.Error(err)
}
