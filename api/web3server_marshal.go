// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package api

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/routehubproject/routehub-core/hub"
)

type (
	web3Response struct {
		id     int
		result interface{}
		err    error
	}

	web3Err struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}

	streamResponse struct {
		id     string
		result interface{}
	}

	chainObject struct {
		rec *hub.ChainRecord
	}
)

// error codes follow the JSON-RPC convention: -32601 unknown method, -32602
// invalid params, -32603 everything else
func errToCode(err error) int {
	switch errors.Cause(err) {
	case errMethodNotFound:
		return -32601
	case errInvalidFormat, errUnkownType, hub.ErrInvalidChainID, hub.ErrZeroAddress:
		return -32602
	default:
		return -32603
	}
}

func (obj *web3Response) MarshalJSON() ([]byte, error) {
	if obj.err == nil {
		return json.Marshal(&struct {
			Jsonrpc string      `json:"jsonrpc"`
			ID      int         `json:"id"`
			Result  interface{} `json:"result"`
		}{
			Jsonrpc: "2.0",
			ID:      obj.id,
			Result:  obj.result,
		})
	}
	return json.Marshal(&struct {
		Jsonrpc string   `json:"jsonrpc"`
		ID      int      `json:"id"`
		Error   *web3Err `json:"error"`
	}{
		Jsonrpc: "2.0",
		ID:      obj.id,
		Error: &web3Err{
			Code:    errToCode(obj.err),
			Message: obj.err.Error(),
		},
	})
}

func (obj *streamResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Jsonrpc string `json:"jsonrpc"`
		Method  string `json:"method"`
		Params  struct {
			Subscription string      `json:"subscription"`
			Result       interface{} `json:"result"`
		} `json:"params"`
	}{
		Jsonrpc: "2.0",
		Method:  "hub_subscription",
		Params: struct {
			Subscription string      `json:"subscription"`
			Result       interface{} `json:"result"`
		}{
			Subscription: obj.id,
			Result:       obj.result,
		},
	})
}

func (obj *chainObject) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Authority       common.Address `json:"authority"`
		BaseToken       common.Address `json:"baseToken"`
		SettlementLayer string         `json:"settlementLayer"`
	}{
		Authority:       obj.rec.Authority,
		BaseToken:       obj.rec.BaseToken,
		SettlementLayer: uint64ToHex(uint64(obj.rec.SettlementLayer)),
	})
}
