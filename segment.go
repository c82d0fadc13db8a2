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

import "math"

// QRSegment is one mode-tagged chunk of a symbol's data bit stream. A
// symbol may carry more than one segment (EncodeSegments); Encode builds
// exactly one, chosen by analyzeText.
type QRSegment struct {
	Mode     EncodingMode
	NumChars int
	Data     bitWriter
}

// MakeNumeric builds a Numeric segment from a string of decimal digits:
// groups of 3 digits become 10 bits, a trailing pair becomes 7 bits, a
// trailing single digit becomes 4 bits.
func MakeNumeric(digits string) *QRSegment {
	bb := make(bitWriter, 0, len(digits)*3+(len(digits)+2)/3)
	for i := 0; i < len(digits); {
		n := min(len(digits)-i, 3)
		var d int
		for _, c := range []byte(digits[i : i+n]) {
			if c < '0' || c > '9' {
				panic("qrcodegen: MakeNumeric given a non-digit character")
			}
			d = d*10 + int(c-'0')
		}
		bb.appendBits(d, n*3+1)
		i += n
	}
	return &QRSegment{Mode: Numeric, NumChars: len(digits), Data: bb}
}

// MakeAlphanumeric builds an Alphanumeric segment: pairs of characters
// become v1*45+v2 packed into 11 bits, a trailing single character becomes
// 6 bits.
func MakeAlphanumeric(text string) *QRSegment {
	bb := make(bitWriter, 0, len(text)*6)
	var i int
	for i = 0; i+1 < len(text); i += 2 {
		v1, ok1 := alphanumericValue(text[i])
		v2, ok2 := alphanumericValue(text[i+1])
		if !ok1 || !ok2 {
			panic("qrcodegen: MakeAlphanumeric given a character outside the 45-char set")
		}
		bb.appendBits(v1*45+v2, 11)
	}
	if i < len(text) {
		v, ok := alphanumericValue(text[i])
		if !ok {
			panic("qrcodegen: MakeAlphanumeric given a character outside the 45-char set")
		}
		bb.appendBits(v, 6)
	}
	return &QRSegment{Mode: Alphanumeric, NumChars: len(text), Data: bb}
}

// MakeBytes builds a Byte segment from already-encoded payload bytes (one
// byte per 8 bits of data).
func MakeBytes(data []byte) *QRSegment {
	bb := make(bitWriter, 0, len(data)*8)
	bb.appendBytes(data)
	return &QRSegment{Mode: Byte, NumChars: len(data), Data: bb}
}

// MakeECI builds an ECI designator segment for the given assignment number,
// using the variable-width encoding ISO/IEC 18004 Annex D defines.
func MakeECI(assignValue int) (*QRSegment, error) {
	bb := make(bitWriter, 0, 24)
	switch {
	case assignValue < 0:
		return nil, newInvalidArgumentError("ECI assignment value must be non-negative")
	case assignValue < 1<<7:
		bb.appendBits(assignValue, 8)
	case assignValue < 1<<14:
		bb.appendBits(2, 2)
		bb.appendBits(assignValue, 14)
	case assignValue < 1_000_000:
		bb.appendBits(6, 3)
		bb.appendBits(assignValue, 21)
	default:
		return nil, newInvalidArgumentError("ECI assignment value out of range: %d", assignValue)
	}
	return &QRSegment{Mode: eciMode, NumChars: 0, Data: bb}, nil
}

// segmentTotalBits returns the total number of bits segs would occupy at
// the given version (mode indicator + character-count indicator + payload,
// per segment), or -1 if a segment's character count overflows its
// version's count-indicator field, or if the total overflows an int.
func segmentTotalBits(segs []*QRSegment, version int) int {
	result := int64(0)
	for _, seg := range segs {
		ccBits := seg.Mode.charCountBits(version)
		if seg.NumChars >= 1<<uint(ccBits) {
			return -1
		}
		result += int64(4 + int(ccBits) + len(seg.Data))
		if result > math.MaxInt32 {
			return -1
		}
	}
	return int(result)
}

// buildSegmentsBitStream concatenates an ECI designator (if non-default)
// and the segments' mode/count/payload bits, in transmission order.
func buildSegmentsBitStream(eci EciMode, segs []*QRSegment, version int) (bitWriter, error) {
	var bb bitWriter
	if eci != EciDefault {
		eciSeg, err := MakeECI(int(eci))
		if err != nil {
			return nil, err
		}
		bb.appendBits(int(eciSeg.Mode.indicator), 4)
		bb = append(bb, eciSeg.Data...)
	}
	for _, seg := range segs {
		bb.appendBits(int(seg.Mode.indicator), 4)
		bb.appendBits(seg.NumChars, int(seg.Mode.charCountBits(version)))
		bb = append(bb, seg.Data...)
	}
	return bb, nil
}
