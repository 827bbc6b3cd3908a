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
	"io"
	"os"

	"github.com/pkg/errors"
)

// Stdin is the name Open uses for standard input.
const Stdin = "-"

// Open opens the named file for reading. The name "-" and the empty name refer to standard input,
// which is not closed by the returned io.ReadCloser.
func Open(name string) (io.ReadCloser, error) {
	if name == "" || name == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %s", name)
	}
	return f, nil
}
