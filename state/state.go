// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package state

import (
	"bytes"
	"encoding/gob"

	"github.com/pkg/errors"
)

type (
	// Serializer has Serialize method to serialize struct to binary data.
	Serializer interface {
		Serialize() ([]byte, error)
	}

	// Deserializer has Deserialize method to deserialize binary data to struct.
	Deserializer interface {
		Deserialize(data []byte) error
	}

	// State is the interface, which defines the common methods for state struct to be handled by the working store
	State interface {
		Serializer
		Deserializer
	}
)

var (
	// ErrStateSerializationFailed: failed to marshal state.
	ErrStateSerializationFailed = errors.New("failed to marshal state")

	// ErrStateDeserializationFailed: failed to unmarshal state.
	ErrStateDeserializationFailed = errors.New("failed to unmarshal state")

	// ErrStateNotExist: state does not exist.
	ErrStateNotExist = errors.New("state does not exist")

	// ErrNilValue: taking action on nil value.
	ErrNilValue = errors.New("nil value")
)

// Serialize check if input is Serializer, if it is, use the input's Serialize method, otherwise use Gob.
func Serialize(d interface{}) ([]byte, error) {
	if ss, ok := d.(Serializer); ok {
		return ss.Serialize()
	}
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(d); err != nil {
		return nil, errors.Wrapf(err, "error when serializing %T state", d)
	}
	return buf.Bytes(), nil
}

// Deserialize check if input is Deserializer, if it is, use the input's Deserialize method, otherwise use Gob.
func Deserialize(x interface{}, data []byte) error {
	if ss, ok := x.(Deserializer); ok {
		return ss.Deserialize(data)
	}
	buf := bytes.NewBuffer(data)
	e := gob.NewDecoder(buf)
	if err := e.Decode(x); err != nil {
		return errors.Wrapf(err, "error when deserializing %T state", x)
	}
	return nil
}
