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

package internal

import (
	"io"

	"github.com/nlnwa/warcstream"
	"github.com/nlnwa/warcstream/internal/countingreader"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ReaderOptions returns the reader options set by flags, environment or config file.
func ReaderOptions() []warcstream.Option {
	opts := []warcstream.Option{warcstream.WithMaxContentLength(viper.GetInt64("max-content-length"))}
	if size := viper.GetInt("buffer-size"); size > 0 {
		opts = append(opts, warcstream.WithBufferSize(size))
	}
	return opts
}

// Inputs returns the file names given as arguments, or standard input if there are none.
func Inputs(args []string) []string {
	if len(args) == 0 {
		return []string{warcstream.Stdin}
	}
	return args
}

// ReadFile calls fn for every record in the named file. It stops at the first error from
// the file or from fn. Errors are annotated with the file name.
func ReadFile(name string, fn func(offset int64, record *warcstream.Record) error) error {
	f, err := warcstream.Open(name)
	if err != nil {
		return err
	}
	src := countingreader.New(f)
	defer func() { _ = src.Close() }()

	r := warcstream.NewReader(src, ReaderOptions()...)
	for {
		offset := r.Offset()
		record, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Debugf("%s: %d bytes read from source, %d bytes in valid records", name, src.N(), r.Offset())
			return errors.Wrapf(err, "%s", name)
		}
		if err := fn(offset, record); err != nil {
			return err
		}
	}
	log.Debugf("%s: %d bytes read", name, src.N())
	return nil
}

// CropString shortens s to at most length bytes, marking the cut with "...".
func CropString(s string, length int) string {
	if len(s) <= length {
		return s
	}
	if length <= 3 {
		return s[:length]
	}
	return s[:length-3] + "..."
}
