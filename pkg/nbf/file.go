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
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/consensys/nestbuf/pkg/nested"
	"github.com/consensys/nestbuf/pkg/word"
)

// NBF_MAJOR_VERSION gives the major version of the container file format.
// No matter what version, we should always have the NESTBUFF identifier
// first, followed by the header.  What follows after that, however, is
// determined by the major version.
const NBF_MAJOR_VERSION uint16 = 1

// NBF_MINOR_VERSION gives the minor version of the container file format.
// The expected interpretation is that older versions are compatible with
// newer ones, but not vice-versa.
const NBF_MINOR_VERSION uint16 = 0

// NESTBUFF is used as the file identifier for container file types.  This
// just helps us identify actual container files from corrupted files.
var NESTBUFF [8]byte = [8]byte{'n', 'e', 's', 't', 'b', 'u', 'f', 'f'}

// Available payload compression schemes.
const (
	COMPRESSION_NONE uint8 = iota
	COMPRESSION_ZSTD
)

// File is a programmatic representation of an underlying container file
// holding exactly one encoded buffer.
type File struct {
	// Header for the container file
	Header Header
	// Encoded word buffer
	Buffer nested.Buffer
}

// NewFile constructs a new container file with the default header for the
// currently supported version.
func NewFile(compression uint8, metadata []byte, buffer nested.Buffer) File {
	return File{
		Header{NESTBUFF, NBF_MAJOR_VERSION, NBF_MINOR_VERSION, compression, metadata},
		buffer,
	}
}

// IsNestedBufferFile checks whether the given data file begins with the
// expected "nestbuff" identifier.
func IsNestedBufferFile(data []byte) bool {
	var (
		nestbuff [8]byte
		buffer   = bytes.NewBuffer(data)
	)
	//
	if _, err := buffer.Read(nestbuff[:]); err != nil {
		return false
	}
	// Check whether header identified
	return nestbuff == NESTBUFF
}

// MarshalBinary converts the File into a sequence of bytes.
func (p *File) MarshalBinary() ([]byte, error) {
	var buffer bytes.Buffer
	// Bytes header
	headerBytes, err := p.Header.MarshalBinary()
	// Error check
	if err != nil {
		return nil, err
	}
	// Encode header
	buffer.Write(headerBytes)
	// Bytes payload
	payloadBytes, err := toPayloadBytes(p.Buffer, p.Header.Compression)
	// Error check
	if err != nil {
		return nil, err
	}
	// Encode payload
	buffer.Write(payloadBytes)
	// Done
	return buffer.Bytes(), nil
}

// UnmarshalBinary initialises this File from a given set of data bytes.  This
// should match exactly the encoding above.
func (p *File) UnmarshalBinary(data []byte) error {
	var err error
	//
	buffer := bytes.NewBuffer(data)
	// Read header
	if err = p.Header.UnmarshalBinary(buffer); err == nil && p.Header.IsCompatible() {
		// Decode payload
		p.Buffer, err = fromPayloadBytes(buffer.Bytes(), p.Header.Compression)
		// Done
		return err
	} else if err == nil {
		err = fmt.Errorf("incompatible container file was v%d.%d, but expected v%d.%d)",
			p.Header.MajorVersion, p.Header.MinorVersion, NBF_MAJOR_VERSION, NBF_MINOR_VERSION)
	}
	//
	return err
}

// toPayloadBytes writes a word buffer as a word count followed by the raw big
// endian words, compressed under the given scheme.
func toPayloadBytes(buffer nested.Buffer, compression uint8) ([]byte, error) {
	var payload bytes.Buffer
	// Write word count
	if err := binary.Write(&payload, binary.BigEndian, buffer.WordCount()); err != nil {
		return nil, err
	}
	// Write words themselves
	for _, w := range buffer {
		if n, err := payload.Write(w.Bytes()); err != nil {
			return nil, err
		} else if n != word.Size {
			return nil, fmt.Errorf("wrote insufficient word bytes (%d v %d)", n, word.Size)
		}
	}
	//
	return compressPayload(payload.Bytes(), compression)
}

// fromPayloadBytes parses a (possibly compressed) payload back into a word
// buffer, or produces an error if the payload was malformed in some way.
func fromPayloadBytes(data []byte, compression uint8) (nested.Buffer, error) {
	var wordCount uint64
	// Uncompress payload
	data, err := uncompressPayload(data, compression)
	//
	if err != nil {
		return nil, err
	}
	//
	payload := bytes.NewReader(data)
	// Read word count
	if err := binary.Read(payload, binary.BigEndian, &wordCount); err != nil {
		return nil, err
	}
	// Sanity check payload holds exactly that many words
	if payload.Len()%word.Size != 0 || uint64(payload.Len())/word.Size != wordCount {
		return nil, fmt.Errorf("malformed payload (%d bytes for %d words)", payload.Len(), wordCount)
	}
	//
	var (
		buffer = make(nested.Buffer, wordCount)
		wbytes [word.Size]byte
	)
	// Read words themselves
	for i := uint64(0); i < wordCount; i++ {
		if _, err := payload.Read(wbytes[:]); err != nil {
			return nil, err
		}
		//
		buffer[i], err = word.FromBytes(wbytes[:])
		//
		if err != nil {
			return nil, err
		}
	}
	// Done
	return buffer, nil
}

func compressPayload(data []byte, compression uint8) ([]byte, error) {
	switch compression {
	case COMPRESSION_NONE:
		return data, nil
	case COMPRESSION_ZSTD:
		encoder, err := zstd.NewWriter(nil)
		//
		if err != nil {
			return nil, err
		}
		//
		defer encoder.Close()
		//
		return encoder.EncodeAll(data, nil), nil
	default:
		return nil, fmt.Errorf("unknown compression scheme (%d)", compression)
	}
}

func uncompressPayload(data []byte, compression uint8) ([]byte, error) {
	switch compression {
	case COMPRESSION_NONE:
		return data, nil
	case COMPRESSION_ZSTD:
		decoder, err := zstd.NewReader(nil)
		//
		if err != nil {
			return nil, err
		}
		//
		defer decoder.Close()
		//
		return decoder.DecodeAll(data, nil)
	default:
		return nil, fmt.Errorf("unknown compression scheme (%d)", compression)
	}
}
