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

func TestNumDataCodewords(t *testing.T) {
	cases := [][3]int{
		{3, 1, 44},
		{3, 2, 34},
		{3, 3, 26},
		{6, 0, 136},
		{7, 0, 156},
		{9, 0, 232},
		{9, 1, 182},
		{12, 3, 158},
		{15, 0, 523},
		{16, 2, 325},
		{19, 3, 341},
		{21, 0, 932},
		{22, 0, 1006},
		{22, 1, 782},
		{22, 3, 442},
		{24, 0, 1174},
		{24, 3, 514},
		{28, 0, 1531},
		{30, 3, 745},
		{32, 3, 845},
		{33, 0, 2071},
		{33, 3, 901},
		{35, 0, 2306},
		{35, 1, 1812},
		{35, 2, 1286},
		{36, 3, 1054},
		{37, 3, 1096},
		{39, 1, 2216},
		{40, 1, 2334},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			assert.Equal(t, tc[2], numDataCodewords[tc[1]][tc[0]])
		})
	}
}

func TestNumRawDataModules(t *testing.T) {
	cases := [][2]int{
		{1, 208},
		{2, 359},
		{3, 567},
		{6, 1383},
		{7, 1568},
		{12, 3728},
		{15, 5243},
		{18, 7211},
		{22, 10068},
		{26, 13652},
		{32, 19723},
		{37, 25568},
		{40, 29648},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			assert.Equal(t, tc[1], numRawDataModules[tc[0]])
		})
	}
}

func TestAlignmentCentersFor(t *testing.T) {
	cases := [][9]int{
		{1, 0, -1, -1, -1, -1, -1, -1, -1},
		{2, 2, 6, 18, -1, -1, -1, -1, -1},
		{3, 2, 6, 22, -1, -1, -1, -1, -1},
		{6, 2, 6, 34, -1, -1, -1, -1, -1},
		{7, 3, 6, 22, 38, -1, -1, -1, -1},
		{8, 3, 6, 24, 42, -1, -1, -1, -1},
		{16, 4, 6, 26, 50, 74, -1, -1, -1},
		{25, 5, 6, 32, 58, 84, 110, -1, -1},
		{32, 6, 6, 34, 60, 86, 112, 138, -1},
		{33, 6, 6, 30, 58, 86, 114, 142, -1},
		{39, 7, 6, 26, 54, 82, 110, 138, 166},
		{40, 7, 6, 30, 58, 86, 114, 142, 170},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			centers := alignmentCentersFor(tc[0])
			assert.Equal(t, tc[1], len(centers))
			for i := range centers {
				assert.Equal(t, tc[i+2], int(centers[i]))
			}
		})
	}
}

func TestComputeECCInfoReconstructsTotal(t *testing.T) {
	for level := Low; level <= High; level++ {
		for version := 1; version <= 40; version++ {
			info := capacityInfo(version, level)
			got := info.BlocksInGroup1*info.CodewordsInGroup1 + info.BlocksInGroup2*info.CodewordsInGroup2
			assert.Equal(t, info.TotalDataCodewords, got)
		}
	}
}

func TestAlphanumericValue(t *testing.T) {
	cases := []struct {
		c     byte
		value int
		ok    bool
	}{
		{'0', 0, true},
		{'9', 9, true},
		{'A', 10, true},
		{'Z', 35, true},
		{' ', 36, true},
		{'%', 38, true},
		{'*', 39, true},
		{'+', 40, true},
		{'-', 41, true},
		{'.', 42, true},
		{'/', 43, true},
		{':', 44, true},
		{'a', 0, false},
		{',', 0, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.c), func(t *testing.T) {
			v, ok := alphanumericValue(tc.c)
			assert.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.value, v)
			}
		})
	}
}

// TestFormatBitsRoundTrip verifies the BCH(15,5) invariant: the 15-bit
// field, unmasked, divides evenly (in GF(2)) by the generator polynomial.
func TestFormatBitsRoundTrip(t *testing.T) {
	const generator = 0b10100110111
	for level := Low; level <= High; level++ {
		for mask := 0; mask < 8; mask++ {
			unmasked := int(formatBits(level, mask)) ^ 0b101010000010010
			rem := unmasked
			for i := 14; i >= 10; i-- {
				if rem&(1<<uint(i)) != 0 {
					rem ^= generator << uint(i-10)
				}
			}
			assert.Equal(t, 0, rem, "level %v mask %d", level, mask)
		}
	}
}

func TestVersionBitsRoundTrip(t *testing.T) {
	const generator = 0b1111100100101
	for version := 7; version <= 40; version++ {
		rem := int(versionBits(version))
		for i := 17; i >= 12; i-- {
			if rem&(1<<uint(i)) != 0 {
				rem ^= generator << uint(i-12)
			}
		}
		assert.Equal(t, 0, rem, "version %d", version)
	}
}
