/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcodegen

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
)

// Compression selects the stream-compressor backend used to wrap a
// serialized matrix.
type Compression int

const (
	// None leaves the serialized bytes unwrapped.
	None Compression = iota
	// Deflate wraps the serialized bytes in raw DEFLATE (RFC 1951).
	Deflate
	// GZip wraps the serialized bytes in GZIP (RFC 1952).
	GZip
)

var magic = [3]byte{'Q', 'R', 'R'}

// ToBytes serializes the core matrix (magic header, core side, packed bits;
// the quiet zone is never serialized) and wraps the result with the given
// compressor.
func (m *QRMatrix) ToBytes(compression Compression) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(magic[:])
	buf.WriteByte(byte(m.coreSide))

	bb := make(bitWriter, 0, m.coreSide*m.coreSide)
	for _, c := range m.core {
		bb.appendBits(int(c), 1)
	}
	buf.Write(bb.packBytes())

	return compress(buf.Bytes(), compression)
}

func compress(raw []byte, compression Compression) ([]byte, error) {
	switch compression {
	case None:
		return raw, nil
	case Deflate:
		var out bytes.Buffer
		w, err := flate.NewWriter(&out, flate.DefaultCompression)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(raw); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return out.Bytes(), nil
	case GZip:
		var out bytes.Buffer
		w := gzip.NewWriter(&out)
		if _, err := w.Write(raw); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return out.Bytes(), nil
	default:
		return nil, newInvalidArgumentError("unrecognized compression backend: %d", compression)
	}
}

func decompress(data []byte, compression Compression) ([]byte, error) {
	switch compression {
	case None:
		return data, nil
	case Deflate:
		r := flate.NewReader(bytes.NewReader(data))
		defer r.Close()
		return io.ReadAll(r)
	case GZip:
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	default:
		return nil, newInvalidArgumentError("unrecognized compression backend: %d", compression)
	}
}

// FromBytes deserializes a matrix previously produced by ToBytes, validating
// the magic header, core-side range, and packed-bit length. quietZone need
// not match the original matrix's.
func FromBytes(data []byte, compression Compression, quietZone int) (*QRMatrix, error) {
	if quietZone < 0 {
		return nil, newInvalidArgumentError("quiet zone must be non-negative, got %d", quietZone)
	}

	raw, err := decompress(data, compression)
	if err != nil {
		return nil, newMalformedInputError("failed to decompress serialized data: %v", err)
	}
	if len(raw) < 4 {
		return nil, newMalformedInputError("serialized data shorter than the 4-byte header")
	}
	if raw[0] != magic[0] || raw[1] != magic[1] || raw[2] != magic[2] {
		return nil, newMalformedInputError("bad magic bytes: got %#v", raw[:3])
	}

	side := int(raw[3])
	if side < 21 || side > 177 || (side-21)%4 != 0 {
		return nil, newMalformedInputError("core side %d is not a valid QR symbol side", side)
	}
	version := (side-21)/4 + 1

	packed := raw[4:]
	needBits := side * side
	if len(packed) < (needBits+7)/8 {
		return nil, newTruncatedInputError("packed bit stream too short for a %dx%d core", side, side)
	}

	core := make([]byte, needBits)
	for i := range core {
		core[i] = packed[i>>3] >> uint(7-i&7) & 1
	}

	return newQRMatrix(version, quietZone, core, side), nil
}
