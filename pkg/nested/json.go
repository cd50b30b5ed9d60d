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
	"encoding/json"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/consensys/nestbuf/pkg/word"
)

// FromJsonBytes parses an array from its JSON interchange form, namely an
// array of arrays of strings where each element is either a "0x" prefixed
// hexadecimal literal or a decimal literal.  Elements must fit within a
// single 256bit word.
func FromJsonBytes(data []byte) (Array, error) {
	var rawArrays [][]string
	// Unmarshal raw structure
	if err := json.Unmarshal(data, &rawArrays); err != nil {
		return nil, err
	}
	//
	arr := make(Array, len(rawArrays))
	//
	for i, rawInner := range rawArrays {
		inner := make([]word.Word, len(rawInner))
		//
		for j, item := range rawInner {
			w, err := parseWord(item)
			//
			if err != nil {
				return nil, errors.Wrapf(err, "element %d of inner array %d", j, i)
			}
			//
			inner[j] = w
		}
		//
		arr[i] = inner
	}
	//
	return arr, nil
}

// ToJsonBytes renders an array in its JSON interchange form.  When hex is
// true elements are written as "0x" prefixed hexadecimal literals, otherwise
// as decimal literals.
func ToJsonBytes(arr Array, hex bool) ([]byte, error) {
	rawArrays := make([][]string, len(arr))
	//
	for i, inner := range arr {
		rawInner := make([]string, len(inner))
		//
		for j, jth := range inner {
			if hex {
				rawInner[j] = jth.String()
			} else {
				val := jth.AsBigInt()
				rawInner[j] = val.String()
			}
		}
		//
		rawArrays[i] = rawInner
	}
	//
	return json.Marshal(rawArrays)
}

// parseWord parses a single element literal, which is either hexadecimal
// (with a "0x" prefix) or decimal.
func parseWord(item string) (word.Word, error) {
	var (
		val  big.Int
		base = 10
		text = item
	)
	//
	if strings.HasPrefix(item, "0x") {
		base = 16
		text = item[2:]
	}
	//
	if _, ok := val.SetString(text, base); !ok {
		return word.Zero, errors.Errorf("malformed literal \"%s\"", item)
	}
	//
	return word.FromBigInt(&val)
}
