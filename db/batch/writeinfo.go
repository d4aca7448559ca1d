// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package batch

type (
	// WriteType tells a Put from a Delete in the write queue
	WriteType uint8

	// WriteInfo is one staged write, the error message is attached to the
	// commit error when the underlying store rejects the write
	WriteInfo struct {
		writeType    WriteType
		namespace    string
		key          []byte
		value        []byte
		errorMessage string
	}

	// WriteInfoFilter returns true for writes that should be skipped
	WriteInfoFilter func(wi *WriteInfo) bool
)

const (
	// Put stages an insert or update
	Put WriteType = iota
	// Delete stages a removal
	Delete
)

// WriteType returns the type of the write
func (wi *WriteInfo) WriteType() WriteType { return wi.writeType }

// Namespace returns the namespace of the write
func (wi *WriteInfo) Namespace() string { return wi.namespace }

// ErrorMessage returns the message to attach to a commit error
func (wi *WriteInfo) ErrorMessage() string { return wi.errorMessage }

// Key returns a copy of the key
func (wi *WriteInfo) Key() []byte {
	k := make([]byte, len(wi.key))
	copy(k, wi.key)
	return k
}

// Value returns a copy of the value
func (wi *WriteInfo) Value() []byte {
	v := make([]byte, len(wi.value))
	copy(v, wi.value)
	return v
}

// Serialize flattens the write into type || namespace || key || value
func (wi *WriteInfo) Serialize() []byte {
	b := make([]byte, 0, 1+len(wi.namespace)+len(wi.key)+len(wi.value))
	b = append(b, byte(wi.writeType))
	b = append(b, wi.namespace...)
	b = append(b, wi.key...)
	b = append(b, wi.value...)
	return b
}
