// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package e2etest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/routehubproject/routehub-core/request"
	"github.com/routehubproject/routehub-core/simulation"
	"github.com/routehubproject/routehub-core/testutil"
)

func TestLocalHub(t *testing.T) {
	require := require.New(t)
	cfg := testConfig(t)
	dbPath, err := testutil.PathOfTempFile("hub-e2e")
	require.NoError(err)
	defer testutil.CleanupPath(dbPath)
	cfg.DB.DbPath = dbPath

	test := newE2ETest(t, cfg)
	env := test.svr.Environment()
	authority := simulation.AuthorityAddress.Hex()
	native := request.NativeTokenAddress.Hex()

	// a fresh hub answers identity queries and rejects unknown chains
	require.Equal("0x1", test.mustCall("hub_chainId", "[]").String())
	require.False(test.mustCall("hub_settlementMode", "[]").Bool())
	require.True(strings.EqualFold(_owner, test.mustCall("hub_owner", "[]").String()))
	require.Equal(common.Address{}.Hex(), common.HexToAddress(test.mustCall("hub_admin", "[]").String()).Hex())
	test.callExpectError("hub_chain", "[7]", "chain not registered")
	test.callExpectError("hub_forwardTransaction",
		fmt.Sprintf(`[7,{"chainId":7,"sender":%q,"mintValue":0,"l2Value":0,"l2GasLimit":1,"l2GasPerPubdataLimit":1}]`, _depositor),
		"not operating as a settlement layer")
	t.Log("Query empty hub pass")

	// registry bootstrap: only the owner may install collaborators
	test.callExpectError("hub_registerAuthority",
		fmt.Sprintf(`[{"from":%q,"authority":%q}]`, _depositor, authority), "is not the owner")
	require.True(test.mustCall("hub_registerAuthority",
		fmt.Sprintf(`[{"from":%q,"authority":%q}]`, _owner, authority)).Bool())
	require.True(test.mustCall("hub_registerToken",
		fmt.Sprintf(`[{"from":%q,"token":%q}]`, _owner, native)).Bool())
	require.Equal("0x7", test.mustCall("hub_createChain",
		fmt.Sprintf(`[{"from":%q,"chainId":7,"authority":%q,"baseToken":%q,"admin":%q,"initData":"0x"}]`,
			_owner, authority, native, _chainAdmin)).String())
	require.Equal("0x9", test.mustCall("hub_createChain",
		fmt.Sprintf(`[{"from":%q,"chainId":9,"authority":%q,"baseToken":%q,"admin":%q,"initData":"0x"}]`,
			_owner, authority, native, _chainAdmin)).String())
	test.callExpectError("hub_createChain",
		fmt.Sprintf(`[{"from":%q,"chainId":7,"authority":%q,"baseToken":%q,"admin":%q,"initData":"0x"}]`,
			_owner, authority, native, _chainAdmin), "chain already exists")

	chain := test.mustCall("hub_chain", "[7]")
	require.True(strings.EqualFold(authority, chain.Get("authority").String()))
	require.True(strings.EqualFold(native, chain.Get("baseToken").String()))
	require.Equal("0x0", chain.Get("settlementLayer").String())
	require.True(strings.EqualFold(native, test.mustCall("hub_baseToken", "[7]").String()))
	require.Equal("0x0", test.mustCall("hub_settlementLayer", "[7]").String())

	dom7Addr := common.HexToAddress(test.mustCall("hub_executionDomain", "[7]").String())
	dom7, ok := env.Domain(dom7Addr)
	require.True(ok)
	dom9Addr := common.HexToAddress(test.mustCall("hub_executionDomain", "[9]").String())
	dom9, ok := env.Domain(dom9Addr)
	require.True(ok)
	require.NotEqual(dom7Addr, dom9Addr)
	t.Log("Create chains pass")

	// direct deposit: the attached value backs mintValue and the payload
	// lands on chain 7's execution domain
	txHash1 := test.mustCall("hub_requestDirect",
		fmt.Sprintf(`[{"from":%q,"value":100,"chainId":7,"mintValue":100,"l2Value":60,"l2Calldata":"0xdeadbeef","l2GasLimit":21000,"l2GasPerPubdataLimit":800}]`,
			_depositor)).String()
	require.Len(txHash1, 66)
	forwarded := dom7.Forwarded()
	require.Len(forwarded, 1)
	require.True(strings.EqualFold(_depositor, forwarded[0].Sender.Hex()))
	require.Equal("100", forwarded[0].MintValue.String())
	require.Equal("100", env.Custodian.Escrow(7, request.NativeTokenAddress).String())

	// a value short of mintValue leaves no trace
	test.callExpectError("hub_requestDirect",
		fmt.Sprintf(`[{"from":%q,"value":30,"chainId":7,"mintValue":100,"l2Value":60,"l2Calldata":"0x","l2GasLimit":21000,"l2GasPerPubdataLimit":800}]`,
			_depositor), "attached = 30, mintValue = 100")
	require.Len(dom7.Forwarded(), 1)
	require.Equal("100", env.Custodian.Escrow(7, request.NativeTokenAddress).String())
	t.Log("Direct deposit pass")

	// two-bridge deposit: the bridge hook shapes the payload and is called
	// back with the canonical hash
	bridgeCalldata := []byte{0x00, 0x11, 0x22, 0x33}
	txHash2 := test.mustCall("hub_requestTwoBridges",
		fmt.Sprintf(`[{"from":%q,"value":150,"chainId":7,"mintValue":100,"l2Value":0,"l2GasLimit":42000,"l2GasPerPubdataLimit":800,"secondBridgeAddress":%q,"secondBridgeValue":50,"secondBridgeCalldata":"0x00112233"}]`,
			_depositor, simulation.BridgeAddress.Hex())).String()
	require.Len(txHash2, 66)
	confirmed, ok := env.Bridge.Confirmed(env.Bridge.TxDataHash(common.HexToAddress(_depositor), bridgeCalldata))
	require.True(ok)
	require.Equal(txHash2, confirmed.Hex())
	forwarded = dom7.Forwarded()
	require.Len(forwarded, 2)
	require.Equal(simulation.BridgeAddress, forwarded[1].Sender)
	require.Equal(simulation.BridgeL2Counterpart, forwarded[1].Contract)
	require.Equal(bridgeCalldata, forwarded[1].L2Calldata)
	require.Equal("200", env.Custodian.Escrow(7, request.NativeTokenAddress).String())
	t.Log("Two-bridge deposit pass")

	// mailbox: the chain seals a batch and the hub relays inclusion proofs
	require.Equal(uint64(1), dom7.SealBatch())
	dom7.RecordMessage(request.Message{
		TxNumberInBatch: 3,
		Sender:          common.HexToAddress(_depositor),
		Data:            []byte("hello"),
	})
	msgParams := fmt.Sprintf(`[7,1,0,{"txNumberInBatch":3,"sender":%q,"data":"0x68656c6c6f"},[]]`, _depositor)
	require.True(test.mustCall("hub_proveMessageInclusion", msgParams).Bool())
	altered := fmt.Sprintf(`[7,1,0,{"txNumberInBatch":3,"sender":%q,"data":"0x68656c6c6e"},[]]`, _depositor)
	require.False(test.mustCall("hub_proveMessageInclusion", altered).Bool())
	require.True(test.mustCall("hub_proveTransactionStatus",
		fmt.Sprintf(`[7,%q,1,0,0,[],1]`, txHash1)).Bool())
	require.False(test.mustCall("hub_proveTransactionStatus",
		fmt.Sprintf(`[7,%q,1,0,0,[],0]`, txHash1)).Bool())
	require.Equal("0x1c6bf52634000", test.mustCall("hub_estimateBaseCost", `[7,"0x2",1000000,800]`).String())
	t.Log("Mailbox pass")

	// circuit breaker: deposits bounce while paused, state is untouched
	require.True(test.mustCall("hub_pause", fmt.Sprintf(`[{"from":%q}]`, _owner)).Bool())
	require.True(test.mustCall("hub_paused", "[]").Bool())
	test.callExpectError("hub_requestDirect",
		fmt.Sprintf(`[{"from":%q,"value":100,"chainId":7,"mintValue":100,"l2GasLimit":21000,"l2GasPerPubdataLimit":800}]`,
			_depositor), "hub is paused")
	require.Len(dom7.Forwarded(), 2)
	require.True(test.mustCall("hub_unpause", fmt.Sprintf(`[{"from":%q}]`, _owner)).Bool())
	require.False(test.mustCall("hub_paused", "[]").Bool())
	t.Log("Pause pass")

	// migration: chain 7 moves onto settlement layer 9
	require.True(test.mustCall("hub_registerSettlementLayer",
		fmt.Sprintf(`[{"from":%q,"chainId":9,"whitelisted":true}]`, authority)).Bool())
	require.True(test.mustCall("hub_registerCounterpart",
		fmt.Sprintf(`[{"from":%q,"chainId":9,"counterpart":%q}]`, _owner, _hubOnNine)).Bool())
	migrationParams := fmt.Sprintf(`[{"from":%q,"value":40,"chainId":9,"mintValue":40,"l2GasLimit":800000,"l2GasPerPubdataLimit":800,"migratingChainId":7,"newAdmin":%q,"cutData":"0x"}]`,
		_chainAdmin, _newAdmin)
	test.callExpectError("hub_startMigration",
		fmt.Sprintf(`[{"from":%q,"value":40,"chainId":9,"mintValue":40,"l2GasLimit":800000,"l2GasPerPubdataLimit":800,"migratingChainId":7,"newAdmin":%q,"cutData":"0x"}]`,
			_depositor, _newAdmin), "caller is not the chain admin")
	mintData := test.mustCall("hub_startMigration", migrationParams).String()
	require.True(strings.HasPrefix(mintData, "0x"))
	require.True(len(mintData) > 2)
	require.Equal("0x9", test.mustCall("hub_settlementLayer", "[7]").String())
	require.Equal("0x9", test.mustCall("hub_chain", "[7]").Get("settlementLayer").String())
	relayed := dom9.Forwarded()
	require.Len(relayed, 1)
	require.True(strings.EqualFold(_chainAdmin, relayed[0].Sender.Hex()))
	require.Equal(common.HexToAddress(_hubOnNine), relayed[0].Contract)
	require.True(len(relayed[0].L2Calldata) > 4)
	require.Equal("40", env.Custodian.Escrow(9, request.NativeTokenAddress).String())
	test.callExpectError("hub_startMigration", migrationParams, "chain 7 settles on chain 9")
	// deposits keep flowing to the migrated chain
	txHash3 := test.mustCall("hub_requestDirect",
		fmt.Sprintf(`[{"from":%q,"value":10,"chainId":7,"mintValue":10,"l2GasLimit":21000,"l2GasPerPubdataLimit":800}]`,
			_depositor)).String()
	require.Len(txHash3, 66)
	require.Len(dom7.Forwarded(), 3)
	t.Log("Migration pass")

	// admin handoff runs in two steps and only the named pending admin may accept
	require.True(test.mustCall("hub_setPendingAdmin",
		fmt.Sprintf(`[{"from":%q,"pendingAdmin":%q}]`, _owner, _newAdmin)).Bool())
	require.True(strings.EqualFold(_newAdmin, test.mustCall("hub_pendingAdmin", "[]").String()))
	test.callExpectError("hub_acceptAdmin",
		fmt.Sprintf(`[{"from":%q}]`, _depositor), "is not the pending admin")
	require.True(test.mustCall("hub_acceptAdmin", fmt.Sprintf(`[{"from":%q}]`, _newAdmin)).Bool())
	require.True(strings.EqualFold(_newAdmin, test.mustCall("hub_admin", "[]").String()))
	require.Equal(common.Address{}.Hex(), common.HexToAddress(test.mustCall("hub_pendingAdmin", "[]").String()).Hex())
	t.Log("Admin handoff pass")

	test.teardown()

	// the registry survives a restart on the same database
	test = newE2ETest(t, cfg)
	defer test.teardown()
	chain = test.mustCall("hub_chain", "[7]")
	require.True(strings.EqualFold(authority, chain.Get("authority").String()))
	require.Equal("0x9", chain.Get("settlementLayer").String())
	require.False(test.mustCall("hub_paused", "[]").Bool())
	require.True(strings.EqualFold(_newAdmin, test.mustCall("hub_admin", "[]").String()))
	t.Log("Restart pass")
}
