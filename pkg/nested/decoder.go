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
	"github.com/pkg/errors"

	"github.com/consensys/nestbuf/pkg/word"
)

// Decode reconstructs the array serialised in the given buffer, validating
// the buffer's structure eagerly as it goes.  The result shares no storage
// with the buffer.  Decoding a buffer produced by Encode always succeeds and
// yields an equal array; other well-formed buffers (e.g. with gaps between
// inner arrays, or offset tables out of order) also decode successfully
// unless strict canonical checking is enabled, in which case they are
// rejected with ErrNonCanonicalBuffer.
func Decode(buffer Buffer, config Config) (Array, error) {
	// Enforce configured ceiling.
	if buffer.WordCount() > config.ceiling() {
		return nil, errors.Wrapf(ErrCapacityExceeded, "%d word buffer exceeds ceiling of %d",
			buffer.WordCount(), config.ceiling())
	}
	// Handle empty buffer (symmetric with encoding's empty fast path).
	if len(buffer) == 0 {
		return Array{}, nil
	}
	// Read header word.
	n, ok := buffer[0].AsUint64()
	//
	if !ok {
		return nil, errors.Wrapf(ErrCapacityExceeded, "header count %s", buffer[0].String())
	} else if n == 0 {
		return Array{}, nil
	}
	// Check offset table is present in full, along with (at least) one
	// length word per inner array in the data region.
	if buffer.WordCount()-1 < n {
		return nil, errors.Wrapf(ErrTruncatedBuffer, "%d words holds no offset table for %d inner arrays",
			buffer.WordCount(), n)
	}
	//
	var (
		dataStart = 1 + n
		dataWords = buffer.WordCount() - dataStart
	)
	//
	if dataWords < n {
		return nil, errors.Wrapf(ErrTruncatedBuffer, "data region holds %d words for %d inner arrays", dataWords, n)
	}
	//
	var (
		arr = make(Array, n)
		// End of the previous inner array's data, used for canonical form
		// checking only.
		expected = uint64(0)
	)
	//
	for i := uint64(0); i < n; i++ {
		offset, length, err := readInnerHeader(buffer, i, dataStart, dataWords, config)
		//
		if err != nil {
			return nil, err
		}
		// Check canonical form (offsets ascending and gap-free).
		if config.StrictCanonical && offset != expected {
			return nil, errors.Wrapf(ErrNonCanonicalBuffer, "inner array %d at offset %d (expected %d)",
				i, offset, expected)
		}
		//
		expected = offset + 1 + length
		// Copy out the elements.
		var (
			start = dataStart + offset + 1
			inner = make([]word.Word, length)
		)
		//
		copy(inner, buffer[start:start+length])
		//
		arr[i] = inner
	}
	// In canonical form, the final inner array ends flush with the buffer.
	if config.StrictCanonical && expected != dataWords {
		return nil, errors.Wrapf(ErrNonCanonicalBuffer, "%d trailing words in data region", dataWords-expected)
	}
	//
	return arr, nil
}

// readInnerHeader reads and validates the offset table entry and length word
// for inner array i, ensuring both lie within the data region and that the
// claimed elements do not run past the end of the buffer.
func readInnerHeader(buffer Buffer, i uint64, dataStart uint64, dataWords uint64,
	config Config) (uint64, uint64, error) {
	// Read offset table entry.
	offset, ok := buffer[1+i].AsUint64()
	//
	if !ok || offset >= dataWords {
		return 0, 0, errors.Wrapf(ErrOffsetOutOfRange, "inner array %d at offset %s", i, buffer[1+i].String())
	}
	// Read length word.
	length, ok := buffer[dataStart+offset].AsUint64()
	//
	if !ok || length > config.ceiling() {
		return 0, 0, errors.Wrapf(ErrMalformedLength, "inner array %d has length %s",
			i, buffer[dataStart+offset].String())
	}
	// Check elements lie within the data region.  The subtraction cannot
	// underflow since the offset was bounds checked above.
	if length > dataWords-offset-1 {
		return 0, 0, errors.Wrapf(ErrTruncatedBuffer, "inner array %d of length %d at offset %d", i, length, offset)
	}
	//
	return offset, length, nil
}
