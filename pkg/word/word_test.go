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
package word

import (
	"cmp"
	"math"
	"math/big"
	"math/rand/v2"
	"testing"
)

func Test_Word_00(t *testing.T) {
	checkWord(t, 0, 1)
}

func Test_Word_01(t *testing.T) {
	for i := uint64(0); i < 100; i++ {
		for j := uint64(0); j < 100; j++ {
			checkWord(t, i, j)
		}
	}
}

func Test_Word_02(t *testing.T) {
	var max uint = uint(math.MaxInt64)
	//
	for i := uint64(0); i < 10000; i++ {
		l := rand.UintN(max)
		r := rand.UintN(max)
		checkWord(t, uint64(l), uint64(r))
	}
}

func Test_Word_03(t *testing.T) {
	// The maximum word value (2^256 - 1) survives a big integer round trip.
	var (
		one big.Int
		val big.Int
	)
	//
	one.SetInt64(1)
	val.Lsh(&one, BitWidth)
	val.Sub(&val, &one)
	//
	w, err := FromBigInt(&val)
	if err != nil {
		t.Fatal(err)
	}
	//
	back := w.AsBigInt()
	if back.Cmp(&val) != 0 {
		t.Errorf("invalid round trip: %s != %s", back.String(), val.String())
	}
	// And no longer fit in 64 bits.
	if _, ok := w.AsUint64(); ok {
		t.Errorf("%s unexpectedly fits uint64", w.String())
	}
}

func Test_Word_04(t *testing.T) {
	// Values wider than 256 bits are rejected.
	var (
		one big.Int
		val big.Int
	)
	//
	one.SetInt64(1)
	val.Lsh(&one, BitWidth)
	//
	if _, err := FromBigInt(&val); err == nil {
		t.Errorf("word overflow not detected")
	}
	// As are negative values.
	val.SetInt64(-1)
	//
	if _, err := FromBigInt(&val); err == nil {
		t.Errorf("negative value not detected")
	}
}

func Test_Word_05(t *testing.T) {
	if Uint64(0).String() != "0x00" {
		t.Errorf("unexpected rendering %s", Uint64(0).String())
	}
	//
	if Uint64(255).String() != "0xff" {
		t.Errorf("unexpected rendering %s", Uint64(255).String())
	}
	//
	if Uint64(256).String() != "0x0100" {
		t.Errorf("unexpected rendering %s", Uint64(256).String())
	}
}

func checkWord(t *testing.T, lhs uint64, rhs uint64) {
	var (
		lw = Uint64(lhs)
		rw = Uint64(rhs)
	)
	//
	checkCmp(t, lw, rw, lhs, rhs)
	checkUint64(t, lw, lhs)
	checkUint64(t, rw, rhs)
}

func checkCmp(t *testing.T, lw, rw Word, lhs, rhs uint64) {
	//
	c1 := lw.Cmp(rw)
	c2 := cmp.Compare(lhs, rhs)
	//
	if c1 != c2 {
		t.Errorf("invalid comparison: %d ~ %d = %d (expected %d)", lhs, rhs, c1, c2)
	}
}

func checkUint64(t *testing.T, w Word, val uint64) {
	back, ok := w.AsUint64()
	//
	if !ok || back != val {
		t.Errorf("invalid round trip: %d != %d", back, val)
	}
}
