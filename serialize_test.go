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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBytesHeader(t *testing.T) {
	m, err := Encode("01234567", Medium, WithQuietZone(0))
	require.NoError(t, err)

	data, err := m.ToBytes(None)
	require.NoError(t, err)

	assert.Equal(t, byte('Q'), data[0])
	assert.Equal(t, byte('R'), data[1])
	assert.Equal(t, byte('R'), data[2])
	assert.Equal(t, byte(21), data[3]) // version 1, numeric mode (scenario 2)
}

func TestRoundTripAllCompressionBackends(t *testing.T) {
	for _, compression := range []Compression{None, Deflate, GZip} {
		m, err := Encode("HELLO WORLD", Quartile)
		require.NoError(t, err)

		data, err := m.ToBytes(compression)
		require.NoError(t, err)

		got, err := FromBytes(data, compression, 0)
		require.NoError(t, err)

		assert.Equal(t, m.Version(), got.Version())
		for y := 0; y < m.coreSide; y++ {
			for x := 0; x < m.coreSide; x++ {
				assert.Equal(t, m.Get(y+m.quietZone, x+m.quietZone), got.Get(y, x), "cell (%d,%d)", x, y)
			}
		}
	}
}

func TestFromBytesAppliesRequestedQuietZone(t *testing.T) {
	m, err := Encode("version 5 content padded out with extra characters to force a larger symbol than version 1 would allow, here goes more filler text to push the payload well past the version 1 capacity threshold", Quartile)
	require.NoError(t, err)

	data, err := m.ToBytes(GZip)
	require.NoError(t, err)

	got, err := FromBytes(data, GZip, 2)
	require.NoError(t, err)

	size := got.Size()
	for x := 0; x < size; x++ {
		assert.False(t, got.Get(0, x))
		assert.False(t, got.Get(1, x))
		assert.False(t, got.Get(size-1, x))
		assert.False(t, got.Get(size-2, x))
	}
}

func TestFromBytesRejectsBadMagic(t *testing.T) {
	_, err := FromBytes([]byte{'X', 'R', 'R', 21, 0}, None, 0)
	assert.Error(t, err)
	var qerr *Error
	assert.ErrorAs(t, err, &qerr)
	assert.Equal(t, MalformedInput, qerr.Code)
}

func TestFromBytesRejectsShortHeader(t *testing.T) {
	_, err := FromBytes([]byte{'Q', 'R'}, None, 0)
	assert.Error(t, err)
}

func TestFromBytesRejectsTruncatedBody(t *testing.T) {
	_, err := FromBytes([]byte{'Q', 'R', 'R', 21}, None, 0)
	var qerr *Error
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, TruncatedInput, qerr.Code)
}

func TestFromBytesRejectsBadSide(t *testing.T) {
	_, err := FromBytes([]byte{'Q', 'R', 'R', 22, 0, 0, 0, 0}, None, 0)
	assert.Error(t, err)
}
