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

// EncodingMode represents the mode (numeric, alphanumeric, byte, kanji, or
// ECI) of a segment.
type EncodingMode struct {
	indicator int8
	numBits   [3]int8 // Character-count indicator width for version ranges 1-9, 10-26, 27-40.
}

// EncodingMode values for a segment. Kanji is recognized (its indicator and
// count-width table are needed to size other segments' surrounding fields
// correctly) but MakeKanji is not implemented.
var (
	Numeric      = EncodingMode{0x1, [3]int8{10, 12, 14}}
	Alphanumeric = EncodingMode{0x2, [3]int8{9, 11, 13}}
	Byte         = EncodingMode{0x4, [3]int8{8, 16, 16}}
	Kanji        = EncodingMode{0x8, [3]int8{8, 10, 12}}
	eciMode      = EncodingMode{0x7, [3]int8{0, 0, 0}}
)

// charCountBits returns the width, in bits, of this mode's character-count
// indicator field for the given version.
func (m EncodingMode) charCountBits(version int) int8 {
	return m.numBits[(version+7)/17]
}

// EciMode is an ECI (Extended Channel Interpretation) assignment number.
// Only the values the library recognizes when encoding Byte-mode payloads
// are named; any value in [0, 999999] is otherwise a legal MakeECI argument.
type EciMode int

// Recognized ECI assignment numbers. EciDefault doubles as the "auto
// detect" request value on EncodeOptions: a caller who wants a specific ECI
// forced must pass EciISO8859_1, EciUTF8, or another assignment number.
const (
	EciDefault   EciMode = 0
	EciISO8859_1 EciMode = 3
	EciUTF8      EciMode = 26
)
