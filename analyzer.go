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

import "golang.org/x/text/encoding/charmap"

// textAnalysis is the result of a single pass over input text: the
// narrowest applicable segment mode, the effective ECI, the data length
// used to size the symbol, and (for Byte mode) the already-encoded payload
// bytes.
type textAnalysis struct {
	mode   EncodingMode
	eci    EciMode
	length int
	bytes  []byte // Populated only when mode == Byte.
}

// analyzeText classifies text into the narrowest segment mode and resolves
// the effective ECI. requestedECI of EciDefault means auto-detect; any
// other value is forced and skips detection.
func analyzeText(text string, requestedECI EciMode, utf8BOM bool) (textAnalysis, error) {
	if len(text) == 0 {
		// Documented convention, not an ISO mandate.
		return textAnalysis{mode: Numeric, eci: requestedECI}, nil
	}

	var hasNonNumeric, hasNonAlphanumeric, hasNonASCII, hasNonISO8859_1 bool
	for _, r := range text {
		if r < '0' || r > '9' {
			hasNonNumeric = true
		}
		if r > 127 {
			hasNonAlphanumeric = true
			hasNonASCII = true
		} else if _, ok := alphanumericValue(byte(r)); !ok {
			hasNonAlphanumeric = true
		}
		if r > 255 {
			hasNonISO8859_1 = true
		}
		if hasNonNumeric && hasNonAlphanumeric && hasNonASCII && hasNonISO8859_1 {
			break // Early exit: every flag that could still flip has flipped.
		}
	}

	eci := requestedECI
	if eci == EciDefault {
		switch {
		case !hasNonASCII:
			eci = EciDefault
		case !hasNonISO8859_1:
			eci = EciISO8859_1
		default:
			eci = EciUTF8
		}
	}

	switch {
	case !hasNonNumeric:
		return textAnalysis{mode: Numeric, eci: eci, length: len(text)}, nil
	case !hasNonAlphanumeric:
		return textAnalysis{mode: Alphanumeric, eci: eci, length: len(text)}, nil
	}

	payload, err := encodeByteModePayload(text, eci, utf8BOM)
	if err != nil {
		return textAnalysis{}, err
	}
	return textAnalysis{mode: Byte, eci: eci, length: len(payload), bytes: payload}, nil
}

// encodeByteModePayload encodes text as the raw bytes a Byte-mode segment
// carries under the given ECI.
func encodeByteModePayload(text string, eci EciMode, utf8BOM bool) ([]byte, error) {
	switch eci {
	case EciDefault:
		// Reached only when the text is pure ASCII (a subset of ISO-8859-1),
		// so the conversion cannot fail.
		out, err := charmap.ISO8859_1.NewEncoder().String(text)
		if err != nil {
			panic("qrcodegen: ASCII text rejected by ISO-8859-1 encoder")
		}
		return []byte(out), nil
	case EciISO8859_1:
		out, err := charmap.ISO8859_1.NewEncoder().String(text)
		if err != nil {
			return nil, newInvalidArgumentError("text is not representable in ISO-8859-1 under the forced ECI")
		}
		return []byte(out), nil
	case EciUTF8:
		if utf8BOM {
			return append([]byte{0xEF, 0xBB, 0xBF}, text...), nil
		}
		return []byte(text), nil
	default:
		return nil, newUnsupportedModeError("ECI value is outside the recognized set for Byte-mode encoding")
	}
}
