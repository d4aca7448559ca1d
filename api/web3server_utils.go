// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package api

import (
	"context"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/routehubproject/routehub-core/hub"
	"github.com/routehubproject/routehub-core/request"
)

func uint64ToHex(val uint64) string {
	return "0x" + strconv.FormatUint(val, 16)
}

func bigToHex(b *big.Int) string {
	if b == nil || b.Sign() == 0 {
		return "0x0"
	}
	return "0x" + b.Text(16)
}

func bytesToHex(b []byte) string {
	return hexutil.Encode(b)
}

// callContext builds the hub caller context from the from/value fields of a
// request object. Transport authentication is the embedding system's concern
func callContext(ctx context.Context, obj *gjson.Result) (context.Context, error) {
	from, err := parseAddress(obj.Get("from"))
	if err != nil {
		return nil, err
	}
	value, err := parseBig(obj.Get("value"))
	if err != nil {
		return nil, err
	}
	return hub.WithCallCtx(ctx, hub.CallCtx{Caller: from, Value: value}), nil
}

func parseChainID(in gjson.Result) (request.ChainID, error) {
	switch in.Type {
	case gjson.Number:
		return request.ChainID(in.Uint()), nil
	case gjson.String:
		s := in.String()
		base := 10
		if strings.HasPrefix(s, "0x") {
			s, base = s[2:], 16
		}
		id, err := strconv.ParseUint(s, base, 64)
		if err != nil {
			return 0, errors.Wrapf(errUnkownType, "chain id = %s", in.String())
		}
		return request.ChainID(id), nil
	default:
		return 0, errors.Wrap(errInvalidFormat, "missing or malformed chain id")
	}
}

func parseAddress(in gjson.Result) (common.Address, error) {
	if !in.Exists() || !common.IsHexAddress(in.String()) {
		return common.Address{}, errors.Wrapf(errUnkownType, "address = %s", in.String())
	}
	return common.HexToAddress(in.String()), nil
}

// parseOptionalAddress treats a missing field as the zero address
func parseOptionalAddress(in gjson.Result) (common.Address, error) {
	if !in.Exists() {
		return common.Address{}, nil
	}
	return parseAddress(in)
}

func parseBytes(in gjson.Result) ([]byte, error) {
	if !in.Exists() || in.String() == "" {
		return nil, nil
	}
	data, err := hexutil.Decode(in.String())
	if err != nil {
		return nil, errors.Wrapf(errUnkownType, "bytes = %s", in.String())
	}
	return data, nil
}

// parseBig treats a missing field as nil, which the hub reads as zero
func parseBig(in gjson.Result) (*big.Int, error) {
	switch in.Type {
	case gjson.Null:
		return nil, nil
	case gjson.Number:
		return new(big.Int).SetUint64(in.Uint()), nil
	case gjson.String:
		b, err := hexutil.DecodeBig(in.String())
		if err != nil {
			return nil, errors.Wrapf(errUnkownType, "numeric value = %s", in.String())
		}
		return b, nil
	default:
		return nil, errors.Wrapf(errUnkownType, "numeric value = %s", in.String())
	}
}

func parseHash(in gjson.Result) (common.Hash, error) {
	data, err := hexutil.Decode(in.String())
	if err != nil || len(data) != common.HashLength {
		return common.Hash{}, errors.Wrapf(errUnkownType, "hash = %s", in.String())
	}
	return common.BytesToHash(data), nil
}

func parseHashes(in gjson.Result) ([]common.Hash, error) {
	if !in.Exists() {
		return nil, nil
	}
	if !in.IsArray() {
		return nil, errors.Wrap(errInvalidFormat, "proof is not an array")
	}
	var hashes []common.Hash
	for _, elem := range in.Array() {
		h, err := parseHash(elem)
		if err != nil {
			return nil, err
		}
		hashes = append(hashes, h)
	}
	return hashes, nil
}

func parseFactoryDeps(in gjson.Result) ([][]byte, error) {
	if !in.Exists() {
		return nil, nil
	}
	if !in.IsArray() {
		return nil, errors.Wrap(errInvalidFormat, "factory deps is not an array")
	}
	var deps [][]byte
	for _, elem := range in.Array() {
		dep, err := parseBytes(elem)
		if err != nil {
			return nil, err
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

func parseDirect(obj *gjson.Result) (*request.Direct, error) {
	chainID, err := parseChainID(obj.Get("chainId"))
	if err != nil {
		return nil, err
	}
	mintValue, err := parseBig(obj.Get("mintValue"))
	if err != nil {
		return nil, err
	}
	l2Contract, err := parseOptionalAddress(obj.Get("l2Contract"))
	if err != nil {
		return nil, err
	}
	l2Value, err := parseBig(obj.Get("l2Value"))
	if err != nil {
		return nil, err
	}
	l2Calldata, err := parseBytes(obj.Get("l2Calldata"))
	if err != nil {
		return nil, err
	}
	factoryDeps, err := parseFactoryDeps(obj.Get("factoryDeps"))
	if err != nil {
		return nil, err
	}
	refund, err := parseOptionalAddress(obj.Get("refundRecipient"))
	if err != nil {
		return nil, err
	}
	return &request.Direct{
		ChainID:              chainID,
		MintValue:            mintValue,
		L2Contract:           l2Contract,
		L2Value:              l2Value,
		L2Calldata:           l2Calldata,
		L2GasLimit:           obj.Get("l2GasLimit").Uint(),
		L2GasPerPubdataLimit: obj.Get("l2GasPerPubdataLimit").Uint(),
		FactoryDeps:          factoryDeps,
		RefundRecipient:      refund,
	}, nil
}

func parseL2Transaction(obj *gjson.Result) (*request.L2Transaction, error) {
	chainID, err := parseChainID(obj.Get("chainId"))
	if err != nil {
		return nil, err
	}
	sender, err := parseAddress(obj.Get("sender"))
	if err != nil {
		return nil, err
	}
	contract, err := parseOptionalAddress(obj.Get("contract"))
	if err != nil {
		return nil, err
	}
	mintValue, err := parseBig(obj.Get("mintValue"))
	if err != nil {
		return nil, err
	}
	l2Value, err := parseBig(obj.Get("l2Value"))
	if err != nil {
		return nil, err
	}
	l2Calldata, err := parseBytes(obj.Get("l2Calldata"))
	if err != nil {
		return nil, err
	}
	factoryDeps, err := parseFactoryDeps(obj.Get("factoryDeps"))
	if err != nil {
		return nil, err
	}
	refund, err := parseOptionalAddress(obj.Get("refundRecipient"))
	if err != nil {
		return nil, err
	}
	return &request.L2Transaction{
		ChainID:              chainID,
		Sender:               sender,
		Contract:             contract,
		MintValue:            mintValue,
		L2Value:              l2Value,
		L2Calldata:           l2Calldata,
		L2GasLimit:           obj.Get("l2GasLimit").Uint(),
		L2GasPerPubdataLimit: obj.Get("l2GasPerPubdataLimit").Uint(),
		FactoryDeps:          factoryDeps,
		RefundRecipient:      refund,
	}, nil
}
