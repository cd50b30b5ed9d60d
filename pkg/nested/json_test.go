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
	"strings"
	"testing"
)

func Test_Json_01(t *testing.T) {
	arr, err := FromJsonBytes([]byte(`[["1","2","3"],["0x04","0x05"]]`))
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	expected := Array{inner(1, 2, 3), inner(4, 5)}
	//
	if !arr.Equals(expected) {
		t.Errorf("invalid parse: %v (expected %v)", arr, expected)
	}
}

func Test_Json_02(t *testing.T) {
	var arr = Array{inner(1, 255), inner()}
	// Decimal rendering
	bytes, err := ToJsonBytes(arr, false)
	if err != nil {
		t.Fatal(err)
	}
	//
	if string(bytes) != `[["1","255"],[]]` {
		t.Errorf("invalid decimal rendering: %s", string(bytes))
	}
	// Hexadecimal rendering
	bytes, err = ToJsonBytes(arr, true)
	if err != nil {
		t.Fatal(err)
	}
	//
	if string(bytes) != `[["0x01","0xff"],[]]` {
		t.Errorf("invalid hex rendering: %s", string(bytes))
	}
}

func Test_Json_03(t *testing.T) {
	// Round trip through both renderings.
	for k := 0; k < 100; k++ {
		var arr = randArray(8, 8)
		//
		for _, hex := range []bool{false, true} {
			bytes, err := ToJsonBytes(arr, hex)
			if err != nil {
				t.Fatal(err)
			}
			//
			back, err := FromJsonBytes(bytes)
			if err != nil {
				t.Fatal(err)
			}
			//
			if !back.Equals(arr) {
				t.Errorf("invalid round trip: %v != %v", back, arr)
			}
		}
	}
}

func Test_Json_04(t *testing.T) {
	// Malformed literal
	if _, err := FromJsonBytes([]byte(`[["one"]]`)); err == nil {
		t.Errorf("malformed literal not detected")
	}
	// Literal too wide for a word (33 bytes)
	tooWide := `[["0x` + strings.Repeat("ff", 33) + `"]]`
	//
	if _, err := FromJsonBytes([]byte(tooWide)); err == nil {
		t.Errorf("overwide literal not detected")
	}
	// Negative literal
	if _, err := FromJsonBytes([]byte(`[["-1"]]`)); err == nil {
		t.Errorf("negative literal not detected")
	}
}
