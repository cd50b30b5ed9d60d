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
package nbf

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
)

// Header provides a structured header for the container format.  In
// particular, it supports versioning, a payload compression scheme and
// embedded (binary) metadata.
type Header struct {
	Identifier   [8]byte
	MajorVersion uint16
	MinorVersion uint16
	Compression  uint8
	MetaData     []byte
}

// GetMetaData attempts to parse the metadata bytes as JSON which is then
// unmarshalled into a map.  This can fail if the embedded metadata bytes are
// not, in fact, JSON.  Observe that, if there are no metadata bytes, then an
// empty map is returned.
func (p *Header) GetMetaData() (map[string]string, error) {
	var metadata map[string]string
	// Check for empty metadata
	if len(p.MetaData) == 0 {
		return map[string]string{}, nil
	}
	// Attempt to unmarshal metadata bytes
	if err := json.Unmarshal(p.MetaData, &metadata); err != nil {
		return nil, err
	}
	//
	return metadata, nil
}

// SetMetaData attempts to set the metadata bytes for this header, using a
// JSON encoding of the given map.  If this fails, an error is returned and
// the metadata bytes are unaffected.
func (p *Header) SetMetaData(metadata map[string]string) error {
	bytes, err := json.Marshal(metadata)
	// Check for error
	if err != nil {
		return err
	}
	// success
	p.MetaData = bytes
	//
	return nil
}

// MarshalBinary converts the container header into a sequence of bytes.
// Observe that we don't use GobEncoding here to avoid being tied to that
// encoding scheme.
func (p *Header) MarshalBinary() ([]byte, error) {
	var (
		buffer     bytes.Buffer
		majorBytes [2]byte
		minorBytes [2]byte
		metaLength [4]byte
	)
	// Marshall version numbers
	binary.BigEndian.PutUint16(majorBytes[:], p.MajorVersion)
	binary.BigEndian.PutUint16(minorBytes[:], p.MinorVersion)
	binary.BigEndian.PutUint32(metaLength[:], uint32(len(p.MetaData)))
	// Write identifier
	buffer.Write(p.Identifier[:])
	// Write major version
	buffer.Write(majorBytes[:])
	// Write minor version
	buffer.Write(minorBytes[:])
	// Write compression scheme
	buffer.WriteByte(p.Compression)
	// Write metadata length
	buffer.Write(metaLength[:])
	// Write metadata itself
	buffer.Write(p.MetaData)
	// Done
	return buffer.Bytes(), nil
}

// UnmarshalBinary initialises this container header from a given set of data
// bytes.  This should match exactly the encoding above.
func (p *Header) UnmarshalBinary(buffer *bytes.Buffer) error {
	var (
		majorBytes      [2]byte
		minorBytes      [2]byte
		metaLengthBytes [4]byte
	)
	// Read identifier
	if n, err := buffer.Read(p.Identifier[:]); err != nil {
		return err
	} else if n != 8 {
		return errors.New("malformed container file")
	}
	// Read major version
	if n, err := buffer.Read(majorBytes[:]); err != nil {
		return err
	} else if n != len(majorBytes) {
		return errors.New("malformed container file")
	}
	// Read minor version
	if n, err := buffer.Read(minorBytes[:]); err != nil {
		return err
	} else if n != len(minorBytes) {
		return errors.New("malformed container file")
	}
	// Read compression scheme
	compression, err := buffer.ReadByte()
	if err != nil {
		return errors.New("malformed container file")
	}
	// Read metadata length
	if n, err := buffer.Read(metaLengthBytes[:]); err != nil {
		return err
	} else if n != len(metaLengthBytes) {
		return errors.New("malformed container file")
	}
	// Make space for the metadata
	var (
		metaLength        = binary.BigEndian.Uint32(metaLengthBytes[:])
		metaBytes  []byte = make([]byte, metaLength)
	)
	// Read metadata itself
	if n, err := buffer.Read(metaBytes[:]); err != nil {
		return err
	} else if n != len(metaBytes) {
		return errors.New("malformed container file")
	}
	// Finally assign everything over
	p.MajorVersion = binary.BigEndian.Uint16(majorBytes[:])
	p.MinorVersion = binary.BigEndian.Uint16(minorBytes[:])
	p.Compression = compression
	p.MetaData = metaBytes
	// Done
	return nil
}

// IsCompatible determines whether a given container file is compatible with
// this version of nestbuf.
func (p *Header) IsCompatible() bool {
	//
	return p.Identifier == NESTBUFF &&
		p.MajorVersion == NBF_MAJOR_VERSION &&
		p.MinorVersion <= NBF_MINOR_VERSION
}
