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

// DefaultMaxTotalWords gives the default safety ceiling on the total number
// of words either operation is prepared to produce or consume.  At 32 bytes
// per word this corresponds to an 8GiB buffer, which is well beyond anything
// a sane embedding would hand us.
const DefaultMaxTotalWords uint64 = 1 << 28

// Config determines how the encode and decode operations behave.  The zero
// value is a valid configuration giving non-strict decoding with the default
// word ceiling.
type Config struct {
	// StrictCanonical causes decoding to reject any buffer whose offset
	// table is not ascending and gap-free (i.e. anything other than the
	// exact layout encoding produces).
	StrictCanonical bool
	// MaxTotalWords places a ceiling on the total word count of any buffer
	// encoded or decoded under this configuration.  Zero means
	// DefaultMaxTotalWords.
	MaxTotalWords uint64
}

// DefaultConfig returns the default (non-strict) configuration.
func DefaultConfig() Config {
	return Config{}
}

// ceiling returns the effective word ceiling for this configuration.
func (p Config) ceiling() uint64 {
	if p.MaxTotalWords == 0 {
		return DefaultMaxTotalWords
	}
	//
	return p.MaxTotalWords
}
