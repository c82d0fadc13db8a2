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

// splitAndInterleave partitions padded data codewords into the blocks
// info prescribes, computes each block's Reed-Solomon ECC codewords, and
// interleaves data then ECC column-major. The result is a MSB-first bit
// stream including the version's trailing remainder bits.
func splitAndInterleave(data []byte, info ECCInfo, version int) bitWriter {
	if len(data) != info.TotalDataCodewords {
		panic("qrcodegen: padded data length does not match ECCInfo.TotalDataCodewords")
	}

	numBlocks := info.BlocksInGroup1 + info.BlocksInGroup2
	blocks := make([][]byte, numBlocks)
	idx := 0
	for i := 0; i < info.BlocksInGroup1; i++ {
		blocks[i] = data[idx : idx+info.CodewordsInGroup1]
		idx += info.CodewordsInGroup1
	}
	for i := 0; i < info.BlocksInGroup2; i++ {
		blocks[info.BlocksInGroup1+i] = data[idx : idx+info.CodewordsInGroup2]
		idx += info.CodewordsInGroup2
	}

	divisor := reedSolomonComputeDivisor(info.EccPerBlock)
	eccBlocks := make([][]byte, numBlocks)
	for i, blk := range blocks {
		eccBlocks[i] = reedSolomonComputeRemainder(blk, divisor)
	}

	maxDataLen := max(info.CodewordsInGroup1, info.CodewordsInGroup2)
	out := make([]byte, 0, idx+info.EccPerBlock*numBlocks)
	for i := 0; i < maxDataLen; i++ {
		for _, blk := range blocks {
			if i < len(blk) {
				out = append(out, blk[i])
			}
		}
	}
	for i := 0; i < info.EccPerBlock; i++ {
		for _, ecc := range eccBlocks {
			out = append(out, ecc[i])
		}
	}

	bb := make(bitWriter, 0, len(out)*8+remainderBits(version))
	bb.appendBytes(out)
	bb.appendBits(0, remainderBits(version))
	return bb
}
