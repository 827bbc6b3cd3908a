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

// CaseKey is a header field name compared without regard to ASCII case.
//
// Only the lower cased form is kept, which makes CaseKey usable as a map key:
// two keys are equal exactly when their normalized forms are equal.
type CaseKey struct {
	normalized string
}

// NewCaseKey returns the CaseKey for s.
func NewCaseKey(s string) CaseKey {
	return CaseKey{normalized: asciiLower(s)}
}

// Equal reports whether s names the same key as k.
func (k CaseKey) Equal(s string) bool {
	if len(s) != len(k.normalized) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if lower(s[i]) != k.normalized[i] {
			return false
		}
	}
	return true
}

// String returns the normalized form. The original casing is not recoverable from a CaseKey.
func (k CaseKey) String() string {
	return k.normalized
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// asciiLower lower cases ASCII letters and leaves every other byte untouched.
// s is returned as is when it has no upper case letters.
func asciiLower(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			break
		}
	}
	if i == len(s) {
		return s
	}
	b := make([]byte, len(s))
	copy(b, s[:i])
	for ; i < len(s); i++ {
		b[i] = lower(s[i])
	}
	return string(b)
}
