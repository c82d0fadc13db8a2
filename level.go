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

// ECCLevel represents the error correction strength of a QR code, one of
// four standard levels. The zero value is Low. Levels form a total order
// L < M < Q < H by increasing recovery capacity and decreasing data
// capacity.
type ECCLevel int8

// ECCLevel values, ordered from least to most recoverable.
const (
	Low      ECCLevel = iota // Recovers ~7% of data.
	Medium                   // Recovers ~15% of data.
	Quartile                 // Recovers ~25% of data.
	High                     // Recovers ~30% of data.
)

// String returns the single-letter ISO name of the level (L, M, Q, or H).
func (e ECCLevel) String() string {
	switch e {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		return "?"
	}
}

// formatBits returns the 2-bit field ISO/IEC 18004 uses to identify this
// level inside the 15-bit format information word. Note that this is not the
// same bit pattern as the ECCLevel enum order: L=01, M=00, Q=11, H=10.
func (e ECCLevel) formatBits() int {
	switch e {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("unknown ECC level")
	}
}
