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

package warcstream

import (
	"bufio"
	"io"
	"iter"

	log "github.com/sirupsen/logrus"
)

type readerState int8

const (
	stateActive readerState = iota
	stateTerminated
)

// next returns the state following a parse that ended with err.
// Any error, including a clean end of stream, is terminal.
func (s readerState) next(err error) readerState {
	if err != nil {
		return stateTerminated
	}
	return s
}

// Reader reads consecutive WARC records from a stream.
//
// The stream is only read forward, so a Reader works on sources like standard input.
// After the first error a Reader stops for good: it never tries to find the next record
// after a corrupt one. A Reader must not be used from more than one goroutine at a time.
type Reader struct {
	r           *bufio.Reader
	unmarshaler *unmarshaler
	offset      int64
	state       readerState
}

// NewReader creates a Reader reading from r.
// If r is a *bufio.Reader with a buffer at least as large as the configured buffer size, it is used directly.
func NewReader(r io.Reader, opts ...Option) *Reader {
	o := newOptions(opts...)
	return &Reader{
		r:           bufio.NewReaderSize(r, o.bufferSize),
		unmarshaler: &unmarshaler{opts: o},
		state:       stateActive,
	}
}

// Next reads the next record.
//
// When there are no more records io.EOF is returned. Any other error is returned once and
// every call after that returns io.EOF, even if the source has more data.
// The error is either a *MalformedError or an *IOError.
func (wr *Reader) Next() (*Record, error) {
	if wr.state == stateTerminated {
		return nil, io.EOF
	}

	record, n, err := wr.unmarshaler.unmarshal(wr.r)
	wr.state = wr.state.next(err)
	switch err {
	case nil:
		wr.offset += n
		return record, nil
	case errEndOfStream:
		log.Debugf("end of stream after %d bytes", wr.offset)
		return nil, io.EOF
	default:
		setOffset(err, wr.offset)
		log.Debugf("stopped reading: %v", err)
		return nil, err
	}
}

// All returns an iterator over the remaining records. The sequence ends at the end of the
// stream or right after the first error is yielded.
func (wr *Reader) All() iter.Seq2[*Record, error] {
	return func(yield func(*Record, error) bool) {
		for {
			record, err := wr.Next()
			if err == io.EOF {
				return
			}
			if !yield(record, err) || err != nil {
				return
			}
		}
	}
}

// Offset returns the number of bytes consumed by the records read so far.
// Bytes belonging to a record that failed to parse are not counted.
func (wr *Reader) Offset() int64 {
	return wr.offset
}
