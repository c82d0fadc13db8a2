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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeBytes(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		seg := MakeBytes([]byte{})
		assert.Equal(t, Byte, seg.Mode)
		assert.Equal(t, 0, seg.NumChars)
		assert.Equal(t, 0, seg.Data.len())
	})
	t.Run("single zero byte", func(t *testing.T) {
		seg := MakeBytes([]byte{0x00})
		assert.Equal(t, Byte, seg.Mode)
		assert.Equal(t, 1, seg.NumChars)
		assert.Equal(t, bitWriter{0, 0, 0, 0, 0, 0, 0, 0}, seg.Data)
	})
	t.Run("utf8 bom", func(t *testing.T) {
		seg := MakeBytes([]byte{0xEF, 0xBB, 0xBF})
		assert.Equal(t, Byte, seg.Mode)
		assert.Equal(t, 3, seg.NumChars)
		assert.Equal(t, bitWriter{
			1, 1, 1, 0, 1, 1, 1, 1,
			1, 0, 1, 1, 1, 0, 1, 1,
			1, 0, 1, 1, 1, 1, 1, 1,
		}, seg.Data)
	})
}

func TestMakeNumeric(t *testing.T) {
	cases := []struct {
		text      string
		length    int
		bitLength int
		bytes     bitWriter
	}{
		{"", 0, 0, bitWriter{}},
		{"9", 1, 4, bitWriter{1, 0, 0, 1}},
		{"81", 2, 7, bitWriter{1, 0, 1, 0, 0, 0, 1}},
		{"673", 3, 10, bitWriter{1, 0, 1, 0, 1, 0, 0, 0, 0, 1}},
		{"3141592653", 10, 34, bitWriter{
			0, 1, 0, 0, 1, 1, 1, 0, 1, 0,
			0, 0, 1, 0, 0, 1, 1, 1, 1, 1,
			0, 1, 0, 0, 0, 0, 1, 0, 0, 1,
			0, 0, 1, 1,
		}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%q", tc.text), func(t *testing.T) {
			seg := MakeNumeric(tc.text)
			assert.Equal(t, Numeric, seg.Mode)
			assert.Equal(t, tc.length, seg.NumChars)
			assert.Equal(t, tc.bitLength, seg.Data.len())
			assert.Equal(t, tc.bytes, seg.Data)
		})
	}
}

func TestMakeAlphanumeric(t *testing.T) {
	cases := []struct {
		text      string
		length    int
		bitLength int
		bytes     bitWriter
	}{
		{"", 0, 0, bitWriter{}},
		{"A", 1, 6, bitWriter{0, 0, 1, 0, 1, 0}},
		{"%:", 2, 11, bitWriter{1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 0}},
		{"Q R", 3, 17, bitWriter{1, 0, 0, 1, 0, 1, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 1}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%q", tc.text), func(t *testing.T) {
			seg := MakeAlphanumeric(tc.text)
			assert.Equal(t, Alphanumeric, seg.Mode)
			assert.Equal(t, tc.length, seg.NumChars)
			assert.Equal(t, tc.bitLength, seg.Data.len())
			assert.Equal(t, tc.bytes, seg.Data)
		})
	}
}

func TestMakeECI(t *testing.T) {
	cases := []struct {
		input     int
		bitLength int
		bytes     bitWriter
	}{
		{127, 8, bitWriter{0, 1, 1, 1, 1, 1, 1, 1}},
		{10345, 16, bitWriter{1, 0, 1, 0, 1, 0, 0, 0, 0, 1, 1, 0, 1, 0, 0, 1}},
		{999999, 24, bitWriter{1, 1, 0, 0, 1, 1, 1, 1, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d", tc.input), func(t *testing.T) {
			seg, err := MakeECI(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, eciMode, seg.Mode)
			assert.Equal(t, 0, seg.NumChars)
			assert.Equal(t, tc.bitLength, seg.Data.len())
			assert.Equal(t, tc.bytes, seg.Data)
		})
	}

	t.Run("negative", func(t *testing.T) {
		_, err := MakeECI(-1)
		assert.Error(t, err)
	})
	t.Run("too large", func(t *testing.T) {
		_, err := MakeECI(1_000_000)
		assert.Error(t, err)
	})
}

func TestSegmentTotalBits(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0, segmentTotalBits([]*QRSegment{}, 1))
		assert.Equal(t, 0, segmentTotalBits([]*QRSegment{}, 40))
	})
	t.Run("one byte segment", func(t *testing.T) {
		segs := []*QRSegment{{Mode: Byte, NumChars: 3, Data: make(bitWriter, 24)}}
		assert.Equal(t, 36, segmentTotalBits(segs, 2))
		assert.Equal(t, 44, segmentTotalBits(segs, 10))
		assert.Equal(t, 44, segmentTotalBits(segs, 30))
	})
	t.Run("count indicator overflow", func(t *testing.T) {
		segs := []*QRSegment{{Mode: Byte, NumChars: 4093, Data: make(bitWriter, 32744)}}
		assert.Equal(t, -1, segmentTotalBits(segs, 1))
		assert.Equal(t, 32764, segmentTotalBits(segs, 10))
		assert.Equal(t, 32764, segmentTotalBits(segs, 27))
	})
}

func TestBuildSegmentsBitStream(t *testing.T) {
	seg := MakeNumeric("673")
	bits, err := buildSegmentsBitStream(EciDefault, []*QRSegment{seg}, 1)
	assert.NoError(t, err)
	// 4-bit mode indicator + 10-bit count indicator (v1-9) + 10-bit payload.
	assert.Equal(t, 24, bits.len())
	assert.Equal(t, bitWriter{0, 0, 0, 1}, bitWriter(bits[:4]))

	bits, err = buildSegmentsBitStream(EciUTF8, []*QRSegment{seg}, 1)
	assert.NoError(t, err)
	// ECI indicator (4) + assignment number (8, since 26 < 128) + the above 24.
	assert.Equal(t, 4+8+24, bits.len())
	assert.Equal(t, bitWriter{0, 1, 1, 1}, bitWriter(bits[:4]))
}
