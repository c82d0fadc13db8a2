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
 *
 * Modeled after https://github.com/nayuki/QR-Code-generator.
 * See https://www.thonky.com/qr-code-tutorial/introduction and
 * https://en.wikipedia.org/wiki/QR_code for an explanation of how QR codes
 * are formatted.
 */

package qrcodegen

import "strings"

// ECCInfo is the immutable, table-looked-up set of block parameters for one
// (version, level) pair.
type ECCInfo struct {
	TotalDataCodewords int
	EccPerBlock        int
	BlocksInGroup1     int
	CodewordsInGroup1  int
	BlocksInGroup2     int
	CodewordsInGroup2  int
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	// eccCodewordsPerBlock[level][version] is the number of Reed-Solomon ECC
	// codewords generated per block.
	eccCodewordsPerBlock = [4][41]int{
		//     0,  1,  2,  3,  4,  5,  6,  7,  8,  9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40
		{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},   // L
		{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28}, // M
		{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // Q
		{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // H
	}

	// numErrorCorrectionBlocksTable[level][version] is the total number of
	// Reed-Solomon blocks (group 1 + group 2).
	numErrorCorrectionBlocksTable = [4][41]int{
		{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
		{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
		{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
		{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
	}

	numRawDataModules [41]int
	numDataCodewords  [4][41]int
	eccInfoTable      [4][41]ECCInfo
	alignmentCenters  [41][]uint16
)

func init() {
	// numRawDataModules[version] is the number of modules available for data
	// plus ECC codewords (including remainder bits), after finder, separator,
	// timing, alignment, dark-module, and format/version regions are
	// excluded. In the range [208, 29648].
	for v := 1; v <= 40; v++ {
		result := (16*v+128)*v + 64
		if v >= 2 {
			numAlign := v/7 + 2
			result -= (25*numAlign-10)*numAlign - 55
			if v >= 7 {
				result -= 36
			}
		}
		if result < 208 || result > 29648 {
			panic("numRawDataModules miscalculated")
		}
		numRawDataModules[v] = result
	}

	for e := Low; e <= High; e++ {
		for v := 1; v <= 40; v++ {
			numDataCodewords[e][v] = numRawDataModules[v]/8 - eccCodewordsPerBlock[e][v]*numErrorCorrectionBlocksTable[e][v]
		}
	}

	for e := Low; e <= High; e++ {
		for v := 1; v <= 40; v++ {
			eccInfoTable[e][v] = computeECCInfo(e, v)
		}
	}

	for v := 1; v <= 40; v++ {
		alignmentCenters[v] = computeAlignmentCenters(v)
	}
}

// computeECCInfo derives the group-1/group-2 block split from the total
// block count and raw module count, the way ISO/IEC 18004 Table 13-22
// defines it: all blocks carry the same number of ECC codewords, the blocks
// in group 2 (if any) carry exactly one more data codeword than those in
// group 1, and group 2 holds the remainder of raw codewords left over after
// dividing evenly among all blocks.
func computeECCInfo(level ECCLevel, version int) ECCInfo {
	numBlocks := numErrorCorrectionBlocksTable[level][version]
	eccLen := eccCodewordsPerBlock[level][version]
	rawCodewords := numRawDataModules[version] / 8
	blockLen := rawCodewords / numBlocks
	numLongBlocks := rawCodewords % numBlocks
	numShortBlocks := numBlocks - numLongBlocks

	info := ECCInfo{
		TotalDataCodewords: numDataCodewords[level][version],
		EccPerBlock:        eccLen,
		BlocksInGroup1:     numShortBlocks,
		CodewordsInGroup1:  blockLen - eccLen,
	}
	if numLongBlocks > 0 {
		info.BlocksInGroup2 = numLongBlocks
		info.CodewordsInGroup2 = blockLen - eccLen + 1
	}
	if info.BlocksInGroup1*info.CodewordsInGroup1+info.BlocksInGroup2*info.CodewordsInGroup2 != info.TotalDataCodewords {
		panic("ECC info group split does not reconstruct total data codewords")
	}
	return info
}

// capacityInfo returns the ECCInfo for the given (version, level) pair.
func capacityInfo(version int, level ECCLevel) ECCInfo {
	return eccInfoTable[level][version]
}

// computeAlignmentCenters returns the ascending list of alignment-pattern
// center coordinates (shared by rows and columns) for a version, per
// ISO/IEC 18004 Annex E. Empty for version 1.
func computeAlignmentCenters(version int) []uint16 {
	if version == 1 {
		return nil
	}

	numAlign := version/7 + 2
	var step int
	if version == 32 {
		step = 26
	} else {
		step = (version*4+numAlign*2+1)/(numAlign*2-2) * 2
	}

	result := make([]uint16, numAlign)
	result[0] = 6
	for i, pos := len(result)-1, version*4+17-7; i >= 1; i-- {
		result[i] = uint16(pos)
		pos -= step
	}
	return result
}

// alignmentCentersFor returns the alignment-pattern center coordinates for
// a version; empty for version 1.
func alignmentCentersFor(version int) []uint16 {
	return alignmentCenters[version]
}

// remainderBits returns the number of zero bits appended after the
// interleaved data+ECC stream to fill out the symbol's raw module count to a
// whole byte count. One of 0, 3, 4, or 7.
func remainderBits(version int) int {
	return numRawDataModules[version] % 8
}

// alphanumericValue returns the 0-44 value of an alphanumeric-charset
// character, and false if it is not a member of the 45-character set.
func alphanumericValue(c byte) (int, bool) {
	i := strings.IndexByte(alphanumericCharset, c)
	if i < 0 {
		return 0, false
	}
	return i, true
}

// formatBits computes the 15-bit format information field: a 5-bit payload
// (level, mask) protected by a BCH(15,5) code and XORed with the fixed
// mask pattern, LSB-first.
func formatBits(level ECCLevel, mask int) uint16 {
	data := level.formatBits()<<3 | mask
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ (rem>>9)*0b10100110111
	}
	bits := data<<10 | rem
	bits ^= 0b101010000010010
	return uint16(bits)
}

// versionBits computes the 18-bit version information field for versions 7
// and up: the 6-bit version number protected by a BCH(18,6) code,
// LSB-first.
func versionBits(version int) uint32 {
	rem := version
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ (rem>>11)*0b1111100100101
	}
	bits := version<<12 | rem
	return uint32(bits)
}
