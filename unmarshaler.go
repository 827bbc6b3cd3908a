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
	"bytes"
	"io"
	"strconv"
	"strings"
)

const (
	// contentChunkSize bounds the memory committed to a content block before its bytes have arrived.
	contentChunkSize = 1 << 20
	// maxRetainedLine is the largest line scratch buffer kept from one record to the next.
	maxRetainedLine = 64 * 1024
)

// Unmarshaler parses single WARC records.
//
// Content-Length must be an unsigned decimal that fits in an int, optionally preceded by a single '+'.
type Unmarshaler interface {
	// Unmarshal consumes one record from b. It returns the record and the number of bytes the record
	// occupied in the stream. When an error is returned the byte count is 0.
	//
	// io.EOF is returned when b is at end of input. Any other error is either a *MalformedError or an *IOError.
	Unmarshal(b *bufio.Reader) (*Record, int64, error)
}

// unmarshaler keeps a scratch buffer for long lines and must not be shared between goroutines.
type unmarshaler struct {
	opts *options
	line []byte
}

// NewUnmarshaler creates an Unmarshaler configured with opts.
func NewUnmarshaler(opts ...Option) Unmarshaler {
	return &unmarshaler{opts: newOptions(opts...)}
}

// ParseRecord parses one record from b with default options.
func ParseRecord(b *bufio.Reader) (*Record, int64, error) {
	return NewUnmarshaler().Unmarshal(b)
}

func (u *unmarshaler) Unmarshal(b *bufio.Reader) (*Record, int64, error) {
	record, n, err := u.unmarshal(b)
	if err == errEndOfStream {
		err = io.EOF
	}
	return record, n, err
}

func (u *unmarshaler) unmarshal(r *bufio.Reader) (*Record, int64, error) {
	if cap(u.line) > maxRetainedLine {
		u.line = nil
	}
	var size int64
	lineNumber := 1

	// Find WARC version
	l, err := u.readLine(r)
	if err != nil && err != io.EOF {
		return nil, 0, newIOError(err)
	}
	if len(l) == 0 {
		return nil, 0, errEndOfStream
	}
	size += int64(len(l))
	version := string(bytes.TrimRight(l, sphtcrlf))
	if !strings.HasPrefix(version, versionPrefix) {
		return nil, 0, newMalformedError("Unknown WARC version", lineNumber)
	}

	// Parse WARC header
	header := make(Header, 16)
	var name, value string
	pending := false
	for {
		lineNumber++
		l, err = u.readLine(r)
		if err != nil && err != io.EOF {
			return nil, 0, newIOError(err)
		}
		size += int64(len(l))
		if string(l) == crlf {
			break
		}

		l = bytes.TrimRight(l, sphtcrlf)

		// Check for continuation
		if len(l) > 0 && (l[0] == sp || l[0] == ht) {
			if !pending {
				return nil, 0, newMalformedError("Invalid header block", lineNumber)
			}
			value += "\n" + string(bytes.TrimLeft(l, sphtcrlf))
			continue
		}

		if pending {
			header.Set(name, value)
		}
		i := bytes.IndexByte(l, ':')
		if i < 0 {
			return nil, 0, newMalformedError("Invalid header field", lineNumber)
		}
		name = string(bytes.Trim(l[:i], sphtcrlf))
		value = string(bytes.Trim(l[i+1:], sphtcrlf))
		pending = true
	}
	if pending {
		header.Set(name, value)
	}

	length, err := u.contentLength(header)
	if err != nil {
		return nil, 0, err
	}

	content, err := readContent(r, length)
	if err != nil {
		return nil, 0, err
	}
	size += length

	var trailer [4]byte
	if err := readFull(r, trailer[:]); err != nil {
		return nil, 0, err
	}
	if !bytes.Equal(trailer[:], endOfRecord) {
		return nil, 0, newMalformedError("No double linefeed after record content", 0)
	}
	size += int64(len(trailer))

	record := &Record{
		Version: version,
		Header:  header,
		Content: content,
		size:    size,
	}
	return record, size, nil
}

func (u *unmarshaler) contentLength(header Header) (int64, error) {
	field, ok := header[contentLengthKey]
	if !ok {
		return 0, newMalformedError("Content-Length is missing", 0)
	}
	length, err := strconv.ParseUint(strings.TrimPrefix(field.Value, "+"), 10, strconv.IntSize-1)
	if err != nil {
		return 0, newMalformedError("Content-Length is not a number", 0)
	}
	if u.opts.maxContentLength > 0 && length > uint64(u.opts.maxContentLength) {
		return 0, newMalformedError("Content-Length exceeds limit", 0)
	}
	return int64(length), nil
}

// readLine reads the next line from r including the line ending.
// An empty line is returned only at end of input.
// The returned slice is only valid until the next read from r.
func (u *unmarshaler) readLine(r *bufio.Reader) ([]byte, error) {
	u.line = u.line[:0]
	for {
		l, err := r.ReadSlice('\n')
		if err != bufio.ErrBufferFull {
			if len(u.line) == 0 {
				return l, err
			}
			u.line = append(u.line, l...)
			return u.line, err
		}
		u.line = append(u.line, l...)
	}
}

// readContent reads a content block of length bytes. Large blocks grow with the data actually read,
// so a truncated stream fails before the declared length is allocated.
func readContent(r io.Reader, length int64) ([]byte, error) {
	if length <= contentChunkSize {
		content := make([]byte, length)
		if err := readFull(r, content); err != nil {
			return nil, err
		}
		return content, nil
	}
	var buf bytes.Buffer
	buf.Grow(contentChunkSize)
	if _, err := io.CopyN(&buf, r, length); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, newIOError(err)
	}
	return buf.Bytes(), nil
}

// readFull fills p from r. End of input inside a record is always unexpected.
func readFull(r io.Reader, p []byte) error {
	if _, err := io.ReadFull(r, p); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return newIOError(err)
	}
	return nil
}
