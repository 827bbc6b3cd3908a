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
	"sort"
	"strings"
)

const (
	// WARC header field name constants
	ContentLength             = "Content-Length"
	ContentType               = "Content-Type"
	WarcBlockDigest           = "WARC-Block-Digest"
	WarcConcurrentTo          = "WARC-Concurrent-To"
	WarcDate                  = "WARC-Date"
	WarcFilename              = "WARC-Filename"
	WarcIPAddress             = "WARC-IP-Address"
	WarcIdentifiedPayloadType = "WARC-Identified-Payload-Type"
	WarcPayloadDigest         = "WARC-Payload-Digest"
	WarcProfile               = "WARC-Profile"
	WarcRecordID              = "WARC-Record-ID"
	WarcRefersTo              = "WARC-Refers-To"
	WarcRefersToDate          = "WARC-Refers-To-Date"
	WarcRefersToTargetURI     = "WARC-Refers-To-Target-URI"
	WarcSegmentNumber         = "WARC-Segment-Number"
	WarcSegmentOriginID       = "WARC-Segment-Origin-ID"
	WarcSegmentTotalLength    = "WARC-Segment-Total-Length"
	WarcTargetURI             = "WARC-Target-URI"
	WarcTruncated             = "WARC-Truncated"
	WarcType                  = "WARC-Type"
	WarcWarcinfoID            = "WARC-Warcinfo-ID"
)

var contentLengthKey = NewCaseKey(ContentLength)

type nameValue struct {
	Name  string
	Value string
}

func (n nameValue) String() string {
	return n.Name + ": " + n.Value
}

// Header holds the fields of a record header.
//
// Field names are matched case insensitively. The name is also kept as it was
// written so that it can be shown with its original casing.
type Header map[CaseKey]nameValue

// Get gets the value associated with the given name. It is case insensitive.
// If the name doesn't exist, Get returns "".
func (h Header) Get(name string) string {
	return h[NewCaseKey(name)].Value
}

// Lookup is like Get, but also reports whether the field was present.
func (h Header) Lookup(name string) (string, bool) {
	nv, ok := h[NewCaseKey(name)]
	return nv.Value, ok
}

func (h Header) Has(name string) bool {
	_, ok := h[NewCaseKey(name)]
	return ok
}

// Set sets the field to value, replacing any field whose name differs only in case.
func (h Header) Set(name string, value string) {
	h[NewCaseKey(name)] = nameValue{Name: name, Value: value}
}

func (h Header) Len() int {
	return len(h)
}

// Name returns the field name for k as it appeared in the record.
func (h Header) Name(k CaseKey) string {
	return h[k].Name
}

// Names returns the field names with original casing, ordered by their normalized form.
func (h Header) Names() []string {
	keys := make([]CaseKey, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].normalized < keys[j].normalized
	})
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = h[k].Name
	}
	return names
}

func (h Header) String() string {
	sb := &strings.Builder{}
	for _, name := range h.Names() {
		sb.WriteString(h[NewCaseKey(name)].String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
