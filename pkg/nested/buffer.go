// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package nested

import (
	"github.com/consensys/nestbuf/pkg/word"
)

// Buffer is a flat sequence of 256bit words holding the self-contained
// serialisation of exactly one Array.  Its layout (in word offsets, 0 based)
// consists of three regions in this fixed order:
//
//	word[0]        count of inner arrays (n)
//	word[1 .. n]   offset table, one entry per inner array
//	word[1+n ..]   data region
//
// Offset table entry i gives the word index, relative to the start of the
// data region, at which inner array i begins.  Each inner array occupies one
// length word followed by that many element words.  Observe that every
// reference within the buffer is such a small relative offset, never an
// absolute memory address, hence the buffer remains meaningful wherever it is
// subsequently copied.
type Buffer []word.Word

// WordCount returns the total number of words in this buffer.
func (p Buffer) WordCount() uint64 {
	return uint64(len(p))
}

// Count returns the number of inner arrays this buffer claims to hold (i.e.
// its header word), without validating the remainder of the buffer.  An empty
// buffer claims zero inner arrays.
func (p Buffer) Count() (uint64, bool) {
	if len(p) == 0 {
		return 0, true
	}
	//
	return p[0].AsUint64()
}

// Equals checks whether two buffers hold identical words.
func (p Buffer) Equals(o Buffer) bool {
	if len(p) != len(o) {
		return false
	}
	//
	for i, w := range p {
		if w != o[i] {
			return false
		}
	}
	//
	return true
}
