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
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"math/big"

	"github.com/pkg/errors"
)

// Size gives the number of bytes in a single word.
const Size = 32

// BitWidth gives the number of bits in a single word.
const BitWidth = 256

// Word is a fixed-width 256bit unsigned integer, stored in big endian form.
// This matches the machine word of the underlying virtual machine memory
// model, where every addressable cell is one such word.
type Word [Size]byte

// Zero is the all-zeroes word.
var Zero Word

// Uint64 constructs a word holding the given unsigned 64bit value.
func Uint64(val uint64) Word {
	var w Word
	//
	binary.BigEndian.PutUint64(w[Size-8:], val)
	//
	return w
}

// FromBytes constructs a word from a big endian byte sequence of at most Size
// bytes.  Shorter sequences are padded with leading zeroes.
func FromBytes(data []byte) (Word, error) {
	var w Word
	//
	if len(data) > Size {
		return w, errors.Errorf("word overflow (%d bytes)", len(data))
	}
	//
	copy(w[Size-len(data):], data)
	//
	return w, nil
}

// FromBigInt constructs a word from a given (non-negative) big integer.
func FromBigInt(val *big.Int) (Word, error) {
	if val.Sign() < 0 {
		return Zero, errors.Errorf("negative value %s", val.String())
	}
	//
	return FromBytes(val.Bytes())
}

// Bytes returns the full 32 byte big endian representation of this word.
func (p Word) Bytes() []byte {
	return p[:]
}

// Put writes the contents of this word into the given byte array, which must
// hold at least Size bytes.
func (p Word) Put(dst []byte) {
	copy(dst, p[:])
}

// AsBigInt returns a freshly allocated big integer holding this word's value.
func (p Word) AsBigInt() big.Int {
	var val big.Int
	return *val.SetBytes(p[:])
}

// AsUint64 attempts to narrow this word to an unsigned 64bit value.  The
// second result is false if the word does not fit.
func (p Word) AsUint64() (uint64, bool) {
	for _, b := range p[:Size-8] {
		if b != 0 {
			return 0, false
		}
	}
	//
	return binary.BigEndian.Uint64(p[Size-8:]), true
}

// IsZero checks whether this word holds the value zero.
func (p Word) IsZero() bool {
	return p == Zero
}

// Cmp compares two words numerically, returning -1, 0 or 1.
func (p Word) Cmp(o Word) int {
	return bytes.Compare(p[:], o[:])
}

// String returns a hexadecimal rendering of this word, with leading zero
// bytes trimmed (but always at least one digit pair).
func (p Word) String() string {
	var i int
	// Find first non-zero byte
	for i = 0; i < Size-1; i++ {
		if p[i] != 0 {
			break
		}
	}
	//
	return "0x" + hex.EncodeToString(p[i:])
}
