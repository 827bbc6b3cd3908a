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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeader(t *testing.T) {
	assert := assert.New(t)

	h := Header{}
	h.Set("Content-Type", "text/plain")
	h.Set("WARC-Record-ID", "<urn:uuid:e9a0cecc-0221-11e7-adb1-0242ac120008>")

	for _, name := range []string{"content-type", "Content-Type", "CONTENT-TYPE"} {
		assert.Equal("text/plain", h.Get(name))
		assert.True(h.Has(name))
	}

	v, ok := h.Lookup("Content-Length")
	assert.False(ok)
	assert.Equal("", v)
	assert.Equal("", h.Get("Content-Length"))
	assert.False(h.Has("Content-Length"))

	assert.Equal([]string{"Content-Type", "WARC-Record-ID"}, h.Names())
	assert.Equal("WARC-Record-ID", h.Name(NewCaseKey("warc-record-id")))
	assert.Equal("Content-Type: text/plain\nWARC-Record-ID: <urn:uuid:e9a0cecc-0221-11e7-adb1-0242ac120008>\n", h.String())

	h.Set("content-TYPE", "text/html")
	assert.Equal(2, h.Len())
	assert.Equal("text/html", h.Get("Content-Type"))
	assert.Equal("content-TYPE", h.Name(NewCaseKey("Content-Type")))
}

func TestRecord_String(t *testing.T) {
	h := Header{}
	h.Set(WarcType, "response")
	h.Set(WarcRecordID, "<urn:uuid:e9a0cecc-0221-11e7-adb1-0242ac120008>")
	r := &Record{Version: "WARC/1.1", Header: h}

	assert.Equal(t, "response", r.Type())
	assert.Equal(t, "WARC record: version: WARC/1.1, type: response, id: urn:uuid:e9a0cecc-0221-11e7-adb1-0242ac120008", r.String())
}
