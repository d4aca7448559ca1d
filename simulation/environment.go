// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package simulation

import "github.com/ethereum/go-ethereum/common"

// Fixed deployment addresses of the default environment
var (
	AuthorityAddress = common.HexToAddress("0x5100000000000000000000000000000000000001")
	CustodianAddress = common.HexToAddress("0x5100000000000000000000000000000000000002")
	BridgeAddress    = common.HexToAddress("0x5100000000000000000000000000000000000003")
	TokenAddress     = common.HexToAddress("0x5100000000000000000000000000000000000004")
	// BridgeL2Counterpart is the L2 contract the default bridge's deposits target
	BridgeL2Counterpart = common.HexToAddress("0x5200000000000000000000000000000000000001")
)

// Environment bundles a directory with one of each collaborator, deployed at
// the fixed addresses, ready to be handed to a hub
type Environment struct {
	Directory *Directory
	Authority *Authority
	Custodian *Custodian
	Bridge    *Bridge
	Token     *Token
}

// NewEnvironment deploys the default environment
func NewEnvironment() *Environment {
	directory := NewDirectory()
	env := &Environment{
		Directory: directory,
		Authority: NewAuthority(AuthorityAddress, directory),
		Custodian: NewCustodian(CustodianAddress, directory),
		Bridge:    NewBridge(BridgeAddress, BridgeL2Counterpart),
		Token:     NewToken(TokenAddress),
	}
	directory.AddAuthority(AuthorityAddress, env.Authority)
	directory.AddSecondBridge(BridgeAddress, env.Bridge)
	directory.AddERC20(TokenAddress, env.Token)
	return env
}

// Domain returns the deployed execution domain at the address, if it is simulated
func (env *Environment) Domain(addr common.Address) (*Domain, bool) {
	dom, err := env.Directory.ExecutionDomain(addr)
	if err != nil {
		return nil, false
	}
	sim, ok := dom.(*Domain)
	return sim, ok
}
