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

/*
Package warcstream reads WARC records sequentially from a stream.

# WARC

The WARC format offers a standard way to structure, manage and store billions of resources collected from the web and elsewhere.
A WARC file is a concatenation of records, each made of a version line, a block of header fields, a content block whose
length is given by the Content-Length field, and two CRLF pairs.

To learn more about the WARC standard, read the specification at https://iipc.github.io/warc-specifications/specifications/warc-format/warc-1.1/

# Parse WARC records

The [Reader] reads records one at a time from any [io.Reader], including sources that can not seek, like standard input.
It is initialized with [NewReader]. Records are returned by [Reader.Next] or through the iterator returned by [Reader.All].
[Reader.Offset] tells how many bytes belong to the records read so far, which is also where a failing record starts.

The first malformed or truncated record stops the Reader. The error is returned once as a [*MalformedError] or an [*IOError];
after that the Reader behaves as if the stream had ended.

Single records can be parsed with [ParseRecord] or an [Unmarshaler] created by [NewUnmarshaler].

Header field names are case insensitive. [Header] is keyed by [CaseKey], but keeps the names as they were written.
*/
package warcstream
