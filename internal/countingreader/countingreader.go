/*
 * Copyright 2026 National Library of Norway.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *       http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package countingreader keeps track of how much has been pulled from a source.
package countingreader

import (
	"io"
	"sync/atomic"
)

// Reader counts the bytes read through it.
type Reader struct {
	source    io.ReadCloser
	bytesRead int64
}

// New makes a new Reader that counts the bytes read from source.
func New(source io.ReadCloser) *Reader {
	return &Reader{source: source}
}

func (r *Reader) Read(p []byte) (n int, err error) {
	n, err = r.source.Read(p)
	atomic.AddInt64(&r.bytesRead, int64(n))
	return
}

// Close closes the source.
func (r *Reader) Close() error {
	return r.source.Close()
}

// N gets the number of bytes that have been read so far.
// It is safe to call N while another goroutine reads.
func (r *Reader) N() int64 {
	return atomic.LoadInt64(&r.bytesRead)
}
