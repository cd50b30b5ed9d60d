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
	"math"

	"github.com/pkg/errors"

	"github.com/consensys/nestbuf/pkg/word"
)

// Encode serialises the given array into a fresh, self-contained buffer
// following the layout documented on Buffer.  The input is only ever read,
// never mutated, and the result shares no storage with it.  Encoding fails
// only when the total word count would exceed the configured ceiling (see
// Config.MaxTotalWords).
func Encode(arr Array, config Config) (Buffer, error) {
	var n = arr.Count()
	// Handle empty array.  The general path below sizes its work by the
	// inner array count, so the empty case is dealt with up front.
	if n == 0 {
		return Buffer{word.Zero}, nil
	}
	// First pass: determine overall size.
	totalWords, err := totalWordCount(arr, config)
	//
	if err != nil {
		return nil, err
	}
	//
	buffer := make(Buffer, 0, totalWords)
	// Write header word.
	buffer = append(buffer, word.Uint64(n))
	// Second pass: assign each inner array its relative offset within the
	// data region.  Successive offsets advance by one length word plus that
	// array's elements.
	offset := uint64(0)
	//
	for _, inner := range arr {
		buffer = append(buffer, word.Uint64(offset))
		offset += 1 + uint64(len(inner))
	}
	// Third pass: write the data region itself.
	for _, inner := range arr {
		buffer = append(buffer, word.Uint64(uint64(len(inner))))
		buffer = append(buffer, inner...)
	}
	//
	return buffer, nil
}

// totalWordCount determines the exact word count of the encoding of the given
// array, namely one header word, one offset table entry and one length word
// per inner array, plus all element words.  Fails if the count would overflow
// or exceed the configured ceiling.
func totalWordCount(arr Array, config Config) (uint64, error) {
	var (
		n     = arr.Count()
		total = uint64(1)
		ok    bool
	)
	// Offset table and length words.
	if total, ok = addChecked(total, 2*n); !ok {
		return 0, errors.Wrapf(ErrCapacityExceeded, "encoding %d inner arrays", n)
	}
	// Element words.
	for i, inner := range arr {
		if total, ok = addChecked(total, uint64(len(inner))); !ok {
			return 0, errors.Wrapf(ErrCapacityExceeded, "encoding inner array %d", i)
		}
	}
	// Enforce configured ceiling.
	if total > config.ceiling() {
		return 0, errors.Wrapf(ErrCapacityExceeded, "%d words exceeds ceiling of %d", total, config.ceiling())
	}
	//
	return total, nil
}

// addChecked adds two unsigned values, reporting whether the result wrapped
// around.
func addChecked(lhs uint64, rhs uint64) (uint64, bool) {
	if lhs > math.MaxUint64-rhs {
		return 0, false
	}
	//
	return lhs + rhs, true
}
