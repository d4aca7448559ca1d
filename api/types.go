// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package api

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// MaxResponseSize is the max size of a batch response
var MaxResponseSize = 1024 * 1024 * 100 // 100MB

type (
	// Web3ResponseWriter is the writer of a web3 response
	Web3ResponseWriter interface {
		Write(interface{}) (int, error)
	}

	// responseWriter wraps a plain write handler
	responseWriter struct {
		writeHandler func(interface{}) (int, error)
	}

	// BatchWriter buffers the responses of a batch request
	BatchWriter struct {
		totalSize int
		writer    Web3ResponseWriter
		buf       []json.RawMessage
	}
)

// NewResponseWriter returns a new responseWriter
func NewResponseWriter(handler func(interface{}) (int, error)) Web3ResponseWriter {
	return &responseWriter{handler}
}

func (w *responseWriter) Write(in interface{}) (int, error) {
	return w.writeHandler(in)
}

// NewBatchWriter returns a new BatchWriter
func NewBatchWriter(singleWriter Web3ResponseWriter) *BatchWriter {
	return &BatchWriter{
		writer: singleWriter,
		buf:    make([]json.RawMessage, 0),
	}
}

// Write adds data into the batch buffer
func (w *BatchWriter) Write(in interface{}) (int, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return 0, err
	}
	w.totalSize += len(raw)
	if w.totalSize > MaxResponseSize {
		return w.totalSize, errors.New("response size exceeds limit")
	}
	w.buf = append(w.buf, raw)
	return w.totalSize, nil
}

// Flush writes out the buffered responses
func (w *BatchWriter) Flush() error {
	_, err := w.writer.Write(w.buf)
	return err
}
