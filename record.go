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
	"fmt"
	"strings"
)

const (
	sphtcrlf = " \t\r\n" // Space, Tab, Carriage return, Newline
	sp       = ' '       // Space
	ht       = '\t'      // Tab
	crlf     = "\r\n"    // Carriage return, Newline

	versionPrefix = "WARC/1."
)

// endOfRecord is the marker following the content block of every record.
var endOfRecord = []byte("\r\n\r\n")

// Record is one parsed WARC record.
type Record struct {
	// Version is the version line, e.g. WARC/1.1, without line ending.
	Version string
	Header  Header
	// Content is the content block. Its length equals the Content-Length field.
	Content []byte

	size int64
}

// Type returns the value of the WARC-Type field.
func (r *Record) Type() string {
	return r.Header.Get(WarcType)
}

// Size returns the number of bytes the record occupied in the stream, trailer included.
func (r *Record) Size() int64 {
	return r.size
}

func (r *Record) String() string {
	return fmt.Sprintf("WARC record: version: %s, type: %s, id: %s", r.Version, r.Type(), strings.Trim(r.Header.Get(WarcRecordID), "<>"))
}
