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
	"errors"
	"fmt"
)

// ErrMalformed matches every *MalformedError when used with errors.Is.
var ErrMalformed = errors.New("warcstream: malformed record")

// errEndOfStream signals that the input ended cleanly at a record boundary.
// It never leaves the package.
var errEndOfStream = errors.New("EOS")

// MalformedError is used when the stream violates the record format.
type MalformedError struct {
	Reason string
	// Line is the line within the record where the violation was found, counting the version line as 1.
	// It is 0 when the violation is in the content block or trailer.
	Line int
	// Offset is the stream offset of the start of the failing record.
	Offset int64
}

func newMalformedError(reason string, line int) *MalformedError {
	return &MalformedError{Reason: reason, Line: line}
}

func (e *MalformedError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("warcstream: %s at line %d of record at offset %d", e.Reason, e.Line, e.Offset)
	}
	return fmt.Sprintf("warcstream: %s in record at offset %d", e.Reason, e.Offset)
}

func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

// IOError is used when reading from the underlying source fails, including reads cut short by end of input.
type IOError struct {
	Cause  error
	Offset int64
}

func newIOError(cause error) *IOError {
	return &IOError{Cause: cause}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("warcstream: read error in record at offset %d: %v", e.Offset, e.Cause)
}

func (e *IOError) Unwrap() error {
	return e.Cause
}

// setOffset stamps the start offset of the failing record on err.
func setOffset(err error, offset int64) {
	switch e := err.(type) {
	case *MalformedError:
		e.Offset = offset
	case *IOError:
		e.Offset = offset
	}
}
