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

const defaultBufferSize = 64 * 1024

type options struct {
	bufferSize       int
	maxContentLength int64
}

// Option configures parsing of WARC records.
type Option interface {
	apply(*options)
}

// funcOption wraps a function that modifies options into an
// implementation of the Option interface.
type funcOption struct {
	f func(*options)
}

func (fo *funcOption) apply(po *options) {
	fo.f(po)
}

func newFuncOption(f func(*options)) *funcOption {
	return &funcOption{
		f: f,
	}
}

func defaultOptions() options {
	return options{
		bufferSize:       defaultBufferSize,
		maxContentLength: 0,
	}
}

func newOptions(opts ...Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}
	return &o
}

// WithBufferSize sets the size of the buffer a Reader puts in front of its source.
// Values below 16 are ignored by bufio.
// defaults to 64 KiB
func WithBufferSize(size int) Option {
	return newFuncOption(func(o *options) {
		o.bufferSize = size
	})
}

// WithMaxContentLength sets the largest Content-Length accepted. Records declaring a larger
// content block fail as malformed before any content is read.
// defaults to 0 (no limit)
func WithMaxContentLength(size int64) Option {
	return newFuncOption(func(o *options) {
		o.maxContentLength = size
	})
}
