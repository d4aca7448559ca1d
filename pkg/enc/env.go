// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package enc holds the endianness used across the codebase.
package enc

import (
	"encoding/binary"
	"unsafe"
)

// MachineEndian is the endianness of the machine
var MachineEndian binary.ByteOrder

func init() {
	buf := [2]byte{}
	*(*uint16)(unsafe.Pointer(&buf[0])) = uint16(0xABCD)

	switch buf {
	case [2]byte{0xCD, 0xAB}:
		MachineEndian = binary.LittleEndian
	case [2]byte{0xAB, 0xCD}:
		MachineEndian = binary.BigEndian
	default:
		panic("could not determine native endianness")
	}
}
