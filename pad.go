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

// padToCapacity appends the terminator, byte-alignment, and alternating pad
// bytes (0xEC, 0x11, ...) ISO/IEC 18004 §7.4.10 requires, bringing bits up
// to exactly targetBits.
// Panics if bits already exceeds targetBits; that is an internal sizing bug,
// since version selection has already checked the stream fits.
func padToCapacity(bits bitWriter, targetBits int) bitWriter {
	if bits.len() > targetBits {
		panic("qrcodegen: segment bit stream exceeds its target capacity")
	}

	terminatorLen := min(4, targetBits-bits.len())
	bits.appendBits(0, terminatorLen)

	if rem := bits.len() % 8; rem != 0 {
		bits.appendBits(0, 8-rem)
	}

	for padByte := 0xEC; bits.len() < targetBits; padByte ^= 0xEC ^ 0x11 {
		bits.appendBits(padByte, 8)
	}

	return bits
}
