// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package testutil

import (
	"math/rand"
	"net"
	"strconv"
	"sync"
	"time"
)

var (
	_usedPortsMu sync.Mutex
	_usedPorts   = make(map[int]bool)
)

func portIsFree(port int) bool {
	ln, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
	if err != nil {
		return false
	}
	ln.Close()
	return true
}

// RandomPort returns a free port number between 30000 and 50000, handing out
// each port at most once per process, or -1 if none is available
func RandomPort() int {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	portStart, portEnd := r.Intn(2000)+30000, 50000
	_usedPortsMu.Lock()
	defer _usedPortsMu.Unlock()
	for port := portStart; port < portEnd; port++ {
		if _usedPorts[port] || !portIsFree(port) {
			continue
		}
		_usedPorts[port] = true
		return port
	}
	return -1
}
