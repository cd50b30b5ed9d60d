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

// Array is an ordered sequence of inner arrays, each of which is itself an
// ordered sequence of 256bit words.  Inner arrays may have differing lengths
// (i.e. this is a ragged structure, not a rectangular matrix), and any of
// them (or the outer sequence itself) may be empty.  Element order is
// semantically significant throughout.
type Array [][]word.Word

// Count returns the number of inner arrays held by this array.
func (p Array) Count() uint64 {
	return uint64(len(p))
}

// TotalElements returns the total number of element words held across all
// inner arrays of this array.
func (p Array) TotalElements() uint64 {
	var total uint64
	//
	for _, inner := range p {
		total += uint64(len(inner))
	}
	//
	return total
}

// Equals checks whether two arrays hold exactly the same structure, meaning
// the same number of inner arrays with identical contents in identical order.
func (p Array) Equals(o Array) bool {
	if len(p) != len(o) {
		return false
	}
	//
	for i, inner := range p {
		if len(inner) != len(o[i]) {
			return false
		}
		//
		for j, jth := range inner {
			if jth != o[i][j] {
				return false
			}
		}
	}
	//
	return true
}
