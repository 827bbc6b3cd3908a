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

// Package tally accumulates record counts and content sizes per record type.
package tally

import (
	"sort"

	"github.com/nlnwa/warcstream"
)

// Row holds the totals for one record type.
type Row struct {
	Type    string
	Records int64
	Bytes   int64
}

// Counter sums records by the value of their WARC-Type field, compared case insensitively.
// Records without a WARC-Type are counted under the empty type.
type Counter struct {
	rows  map[warcstream.CaseKey]*Row
	total Row
}

func New() *Counter {
	return &Counter{rows: make(map[warcstream.CaseKey]*Row)}
}

// Add counts record.
func (c *Counter) Add(record *warcstream.Record) {
	k := warcstream.NewCaseKey(record.Type())
	row, ok := c.rows[k]
	if !ok {
		row = &Row{Type: k.String()}
		c.rows[k] = row
	}
	n := int64(len(record.Content))
	row.Records++
	row.Bytes += n
	c.total.Records++
	c.total.Bytes += n
}

// Get returns the totals for recordType.
func (c *Counter) Get(recordType string) Row {
	k := warcstream.NewCaseKey(recordType)
	if row, ok := c.rows[k]; ok {
		return *row
	}
	return Row{Type: k.String()}
}

// Rows returns the totals for every type seen, ordered by type.
func (c *Counter) Rows() []Row {
	rows := make([]Row, 0, len(c.rows))
	for _, row := range c.rows {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Type < rows[j].Type
	})
	return rows
}

// Total returns the totals over all types.
func (c *Counter) Total() Row {
	return c.total
}
