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
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const warcinfoRecord = "WARC/1.1\r\n" +
	"WARC-Type: warcinfo\r\n" +
	"Content-Length: 4\r\n" +
	"\r\n" +
	"test" +
	"\r\n\r\n"

func Test_unmarshaler_Unmarshal(t *testing.T) {
	type expected struct {
		version string
		headers map[string]string
		content string
	}
	tests := []struct {
		name  string
		input string
		want  expected
	}{
		{"warcinfo", warcinfoRecord,
			expected{
				version: "WARC/1.1",
				headers: map[string]string{"warc-type": "warcinfo", "Content-Length": "4"},
				content: "test",
			}},
		{"full header", "WARC/1.0\r\n" +
			"WARC-Date: 2017-03-06T04:03:53Z\r\n" +
			"WARC-Record-ID: <urn:uuid:e9a0cecc-0221-11e7-adb1-0242ac120008>\r\n" +
			"WARC-Filename: temp-20170306040353.warc.gz\r\n" +
			"WARC-Type: warcinfo\r\n" +
			"Content-Type: application/warc-fields\r\n" +
			"Content-Length: 30\r\n" +
			"\r\n" +
			"format: WARC File Format 1.0\r\n" +
			"\r\n\r\n",
			expected{
				version: "WARC/1.0",
				headers: map[string]string{
					WarcDate:      "2017-03-06T04:03:53Z",
					WarcRecordID:  "<urn:uuid:e9a0cecc-0221-11e7-adb1-0242ac120008>",
					WarcFilename:  "temp-20170306040353.warc.gz",
					WarcType:      "warcinfo",
					ContentType:   "application/warc-fields",
					ContentLength: "30",
				},
				content: "format: WARC File Format 1.0\r\n",
			}},
		{"continuation lines", "WARC/1.1\r\n" +
			"X: a\r\n" +
			" b\r\n" +
			"WARC-Record-ID: multiline\r\n" +
			"\t  uuid value  \r\n" +
			"Content-Length: 0\r\n" +
			"\r\n" +
			"\r\n\r\n",
			expected{
				version: "WARC/1.1",
				headers: map[string]string{"x": "a\nb", "Warc-Record-ID": "multiline\nuuid value", ContentLength: "0"},
				content: "",
			}},
		{"last field wins", "WARC/1.1\r\n" +
			"WARC-Type: request\r\n" +
			"warc-type: response\r\n" +
			"Content-Length: 1\r\n" +
			"\r\n" +
			"x" +
			"\r\n\r\n",
			expected{
				version: "WARC/1.1",
				headers: map[string]string{WarcType: "response", ContentLength: "1"},
				content: "x",
			}},
		{"whitespace around name and value", "WARC/1.1  \r\n" +
			"Content-Length  :   3 \t\r\n" +
			"Empty:\r\n" +
			"\r\n" +
			"a\r\n" +
			"\r\n\r\n",
			expected{
				version: "WARC/1.1",
				headers: map[string]string{ContentLength: "3", "empty": ""},
				content: "a\r\n",
			}},
		{"value containing colon", "WARC/1.1\r\n" +
			"WARC-Target-URI: http://example.com:8080/\r\n" +
			"Content-Length: 0\r\n" +
			"\r\n" +
			"\r\n\r\n",
			expected{
				version: "WARC/1.1",
				headers: map[string]string{WarcTargetURI: "http://example.com:8080/", ContentLength: "0"},
				content: "",
			}},
		{"content with embedded record separator", "WARC/1.1\r\n" +
			"Content-Length: 8\r\n" +
			"\r\n" +
			"\r\n\r\nWARC" +
			"\r\n\r\n",
			expected{
				version: "WARC/1.1",
				headers: map[string]string{ContentLength: "8"},
				content: "\r\n\r\nWARC",
			}},
		{"content length with plus sign", "WARC/1.1\r\n" +
			"Content-Length: +4\r\n" +
			"\r\n" +
			"test" +
			"\r\n\r\n",
			expected{
				version: "WARC/1.1",
				headers: map[string]string{ContentLength: "+4"},
				content: "test",
			}},
		{"content larger than one chunk", "WARC/1.1\r\n" +
			"Content-Length: " + strconv.Itoa(contentChunkSize+10) + "\r\n" +
			"\r\n" +
			strings.Repeat("x", contentChunkSize+10) +
			"\r\n\r\n",
			expected{
				version: "WARC/1.1",
				headers: map[string]string{ContentLength: strconv.Itoa(contentChunkSize + 10)},
				content: strings.Repeat("x", contentChunkSize+10),
			}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			u := NewUnmarshaler()
			data := bufio.NewReader(strings.NewReader(tt.input + "WARC/1.1\r\n"))
			record, n, err := u.Unmarshal(data)
			require.NoError(t, err)

			assert.Equal(tt.want.version, record.Version)
			assert.Equal(len(tt.want.headers), record.Header.Len())
			for name, value := range tt.want.headers {
				v, ok := record.Header.Lookup(name)
				assert.True(ok, "missing field %s", name)
				assert.Equal(value, v, "field %s", name)
			}
			assert.Equal([]byte(tt.want.content), record.Content)
			assert.Equal(int64(len(tt.input)), n)
			assert.Equal(n, record.Size())

			// Nothing beyond the record is consumed
			rest, err := io.ReadAll(data)
			assert.NoError(err)
			assert.Equal("WARC/1.1\r\n", string(rest))
		})
	}
}

func Test_unmarshaler_Unmarshal_errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		opts      []Option
		reason    string
		line      int
		wantCause error
	}{
		{"unknown version", "WARC/2.0\r\nContent-Length: 0\r\n\r\n\r\n\r\n", nil, "Unknown WARC version", 1, nil},
		{"not a warc record", "HTTP/1.1 200 OK\r\n\r\n", nil, "Unknown WARC version", 1, nil},
		{"short version line", "WARC\r\n", nil, "Unknown WARC version", 1, nil},
		{"leading continuation", "WARC/1.1\r\n continued\r\nContent-Length: 0\r\n\r\n\r\n\r\n", nil, "Invalid header block", 2, nil},
		{"missing colon", "WARC/1.1\r\nWARC-Type: warcinfo\r\nContent-Type text/plain\r\n\r\n", nil, "Invalid header field", 3, nil},
		{"blank line without carriage return", "WARC/1.1\r\nContent-Length: 0\r\n\n\r\n\r\n", nil, "Invalid header field", 3, nil},
		{"end of input in header", "WARC/1.1\r\nContent-Length: 0\r\n", nil, "Invalid header field", 3, nil},
		{"end of input after version", "WARC/1.1", nil, "Invalid header field", 2, nil},
		{"missing content length", "WARC/1.1\r\nWARC-Type: warcinfo\r\n\r\ntest\r\n\r\n", nil, "Content-Length is missing", 0, nil},
		{"content length not a number", "WARC/1.1\r\nContent-Length: abc\r\n\r\ntest\r\n\r\n", nil, "Content-Length is not a number", 0, nil},
		{"negative content length", "WARC/1.1\r\nContent-Length: -4\r\n\r\ntest\r\n\r\n", nil, "Content-Length is not a number", 0, nil},
		{"empty content length", "WARC/1.1\r\nContent-Length:\r\n\r\n\r\n\r\n", nil, "Content-Length is not a number", 0, nil},
		{"content length overflow", "WARC/1.1\r\nContent-Length: 99999999999999999999999\r\n\r\n", nil, "Content-Length is not a number", 0, nil},
		{"content length above int", "WARC/1.1\r\nContent-Length: 9223372036854775808\r\n\r\n", nil, "Content-Length is not a number", 0, nil},
		{"content length with two signs", "WARC/1.1\r\nContent-Length: ++4\r\n\r\ntest\r\n\r\n", nil, "Content-Length is not a number", 0, nil},
		{"content length above max", warcinfoRecord, []Option{WithMaxContentLength(3)}, "Content-Length exceeds limit", 0, nil},
		{"wrong trailer", "WARC/1.1\r\nContent-Length: 4\r\n\r\ntestXXXX", nil, "No double linefeed after record content", 0, nil},
		{"trailer with single newline", "WARC/1.1\r\nContent-Length: 4\r\n\r\ntest\r\n\r", nil, "", 0, io.ErrUnexpectedEOF},
		{"truncated content", "WARC/1.1\r\nContent-Length: 10\r\n\r\ntest", nil, "", 0, io.ErrUnexpectedEOF},
		{"missing content", "WARC/1.1\r\nContent-Length: 10\r\n\r\n", nil, "", 0, io.ErrUnexpectedEOF},
		{"missing trailer", "WARC/1.1\r\nContent-Length: 4\r\n\r\ntest", nil, "", 0, io.ErrUnexpectedEOF},
		{"huge content length on truncated input", "WARC/1.1\r\nContent-Length: 300000000000000\r\n\r\nabc", nil, "", 0, io.ErrUnexpectedEOF},
		{"content larger than one chunk truncated", "WARC/1.1\r\nContent-Length: " + strconv.Itoa(contentChunkSize*3) + "\r\n\r\n" + strings.Repeat("x", contentChunkSize+1), nil, "", 0, io.ErrUnexpectedEOF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			u := NewUnmarshaler(tt.opts...)
			record, n, err := u.Unmarshal(bufio.NewReader(strings.NewReader(tt.input)))
			assert.Nil(record)
			assert.Equal(int64(0), n)
			require.Error(t, err)

			if tt.wantCause != nil {
				var ioErr *IOError
				require.True(t, errors.As(err, &ioErr), "expected IOError, got %T: %v", err, err)
				assert.ErrorIs(err, tt.wantCause)
				assert.NotErrorIs(err, ErrMalformed)
				return
			}

			var malformed *MalformedError
			require.True(t, errors.As(err, &malformed), "expected MalformedError, got %T: %v", err, err)
			assert.Equal(tt.reason, malformed.Reason)
			assert.Equal(tt.line, malformed.Line)
			assert.ErrorIs(err, ErrMalformed)
		})
	}
}

func Test_unmarshaler_Unmarshal_readError(t *testing.T) {
	failure := errors.New("connection reset")
	r := io.MultiReader(strings.NewReader("WARC/1.1\r\nContent-Length: 4\r\n\r\nte"), &failingReader{err: failure})

	_, n, err := NewUnmarshaler().Unmarshal(bufio.NewReader(r))
	assert.Equal(t, int64(0), n)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.ErrorIs(t, err, failure)
}

func Test_unmarshaler_Unmarshal_longLines(t *testing.T) {
	assert := assert.New(t)

	value := strings.Repeat("0123456789", 20)
	input := "WARC/1.1\r\n" +
		"WARC-Target-URI: " + value + "\r\n" +
		"  " + value + "\r\n" +
		"Content-Length: 4\r\n" +
		"\r\n" +
		"test\r\n\r\n"

	// 16 bytes is the smallest buffer bufio allows, forcing lines to be assembled from several reads
	record, n, err := NewUnmarshaler().Unmarshal(bufio.NewReaderSize(strings.NewReader(input), 16))
	require.NoError(t, err)
	assert.Equal(value+"\n"+value, record.Header.Get(WarcTargetURI))
	assert.Equal("test", string(record.Content))
	assert.Equal(int64(len(input)), n)
}

func Test_unmarshaler_readLine_releasesLongLines(t *testing.T) {
	long := "WARC/1.1\r\n" +
		"X-Long: " + strings.Repeat("a", 2*maxRetainedLine) + "\r\n" +
		"Content-Length: 0\r\n" +
		"\r\n" +
		"\r\n\r\n"
	u := &unmarshaler{opts: newOptions()}
	b := bufio.NewReaderSize(strings.NewReader(long+warcinfoRecord), 16)

	_, _, err := u.Unmarshal(b)
	require.NoError(t, err)
	assert.Greater(t, cap(u.line), maxRetainedLine)

	record, _, err := u.Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, "warcinfo", record.Type())
	assert.LessOrEqual(t, cap(u.line), maxRetainedLine)
}

func TestParseRecord(t *testing.T) {
	assert := assert.New(t)

	b := bufio.NewReader(strings.NewReader(warcinfoRecord))
	record, n, err := ParseRecord(b)
	require.NoError(t, err)
	assert.Equal("WARC/1.1", record.Version)
	assert.Equal("warcinfo", record.Header.Get("warc-type"))
	assert.Equal([]byte("test"), record.Content)
	assert.Equal(int64(len(warcinfoRecord)), n)

	record, n, err = ParseRecord(b)
	assert.Nil(record)
	assert.Equal(int64(0), n)
	assert.Equal(io.EOF, err)
}

type failingReader struct {
	err error
}

func (f *failingReader) Read([]byte) (int, error) {
	return 0, f.err
}
