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
)

// Every failure mode of the codec is reported through one of the sentinel
// errors below, wrapped with positional context.  Callers discriminate using
// errors.Is.  All failures are deterministic given the same input, hence
// there is never any point retrying.
var (
	// ErrCapacityExceeded indicates a requested total word count, offset or
	// length would exceed the configured ceiling (or overflow outright).
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrTruncatedBuffer indicates a buffer shorter than its own structure
	// claims, such as an offset table cut short or inner array data running
	// past the end of the buffer.
	ErrTruncatedBuffer = errors.New("truncated buffer")
	// ErrOffsetOutOfRange indicates an offset table entry referencing a
	// location outside the buffer's data region.
	ErrOffsetOutOfRange = errors.New("offset out of range")
	// ErrMalformedLength indicates a length word too large to represent, or
	// beyond the configured ceiling.
	ErrMalformedLength = errors.New("malformed length")
	// ErrNonCanonicalBuffer indicates (under strict decoding only) an offset
	// table which is not ascending and gap-free.
	ErrNonCanonicalBuffer = errors.New("non-canonical buffer")
)
