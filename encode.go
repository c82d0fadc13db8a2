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

// autoVersion is the requestedVersion sentinel meaning "pick the smallest
// version that fits".
const autoVersion = -1

// EncodeOptions is the full configuration surface of the encoding entry
// points, built by functional options (WithUTF8BOM, WithECIMode,
// WithVersion, WithQuietZone, WithBoostECL).
type EncodeOptions struct {
	utf8BOM          bool
	eciMode          EciMode
	requestedVersion int
	quietZone        int
	boostECL         bool
}

func defaultEncodeOptions() EncodeOptions {
	return EncodeOptions{
		eciMode:          EciDefault,
		requestedVersion: autoVersion,
		quietZone:        4,
		boostECL:         true,
	}
}

// EncodeOption configures an EncodeOptions value.
type EncodeOption func(*EncodeOptions)

// WithUTF8BOM prepends a U+FEFF byte-order mark to a UTF-8-encoded payload.
func WithUTF8BOM(enabled bool) EncodeOption {
	return func(o *EncodeOptions) { o.utf8BOM = enabled }
}

// WithECIMode forces a specific ECI assignment, skipping auto-detection.
// Pass EciDefault to restore auto-detection.
func WithECIMode(eci EciMode) EncodeOption {
	return func(o *EncodeOptions) { o.eciMode = eci }
}

// WithVersion fixes the symbol version (1-40) instead of auto-selecting the
// smallest one that fits.
func WithVersion(version int) EncodeOption {
	return func(o *EncodeOptions) { o.requestedVersion = version }
}

// WithQuietZone sets the light border width added after mask selection.
// The default is 4, the ISO-recommended minimum.
func WithQuietZone(size int) EncodeOption {
	return func(o *EncodeOptions) { o.quietZone = size }
}

// WithBoostECL enables or disables automatically raising the error
// correction level when the chosen version has spare capacity at a
// stronger level (on by default).
func WithBoostECL(enabled bool) EncodeOption {
	return func(o *EncodeOptions) { o.boostECL = enabled }
}

// Encode classifies text into a single segment (via analyzeText) and builds
// a QR symbol for it at the given error correction level.
func Encode(text string, level ECCLevel, opts ...EncodeOption) (*QRMatrix, error) {
	o := defaultEncodeOptions()
	for _, opt := range opts {
		opt(&o)
	}

	analysis, err := analyzeText(text, o.eciMode, o.utf8BOM)
	if err != nil {
		return nil, err
	}

	var seg *QRSegment
	switch analysis.mode {
	case Numeric:
		seg = MakeNumeric(text)
	case Alphanumeric:
		seg = MakeAlphanumeric(text)
	case Byte:
		seg = MakeBytes(analysis.bytes)
	default:
		panic("qrcodegen: analyzeText returned an unrecognized mode")
	}

	return encodePipeline(analysis.eci, []*QRSegment{seg}, level, o)
}

// EncodeSegments builds a QR symbol from caller-supplied, already-classified
// segments, concatenated in order.
func EncodeSegments(segs []*QRSegment, level ECCLevel, opts ...EncodeOption) (*QRMatrix, error) {
	o := defaultEncodeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return encodePipeline(o.eciMode, segs, level, o)
}

func encodePipeline(eci EciMode, segs []*QRSegment, level ECCLevel, o EncodeOptions) (*QRMatrix, error) {
	if err := validateOptions(o); err != nil {
		return nil, err
	}
	for _, seg := range segs {
		if seg.Mode == Kanji {
			return nil, newUnsupportedModeError("Kanji segment encoding is not implemented")
		}
	}

	version, err := selectVersion(eci, segs, level, o.requestedVersion)
	if err != nil {
		return nil, err
	}
	if o.boostECL {
		level = boostECCLevel(eci, segs, level, version)
	}

	bits, err := buildSegmentsBitStream(eci, segs, version)
	if err != nil {
		return nil, err
	}
	info := capacityInfo(version, level)
	bits = padToCapacity(bits, info.TotalDataCodewords*8)

	interleaved := splitAndInterleave(bits.packBytes(), info, version)

	b := newQRBuilder(version)
	b.drawFunctionPatterns()
	b.placeData(interleaved)
	mask := b.selectMask(level)
	b.overlayFormatInfo(level, mask)
	if version >= 7 {
		b.overlayVersionInfo()
	}

	return newQRMatrix(version, o.quietZone, b.cells, b.side), nil
}

func validateOptions(o EncodeOptions) error {
	if o.requestedVersion != autoVersion && (o.requestedVersion < 1 || o.requestedVersion > 40) {
		return newInvalidArgumentError("requested_version must be -1 (auto) or in [1,40], got %d", o.requestedVersion)
	}
	if o.quietZone < 0 {
		return newInvalidArgumentError("quiet_zone_size must be non-negative, got %d", o.quietZone)
	}
	return nil
}

// requiredBits returns the number of bits segs (plus a leading ECI
// designator, if eci is non-default) would occupy at the given version, or
// -1 if any segment's character count overflows its count-indicator field,
// or the total overflows an int.
func requiredBits(eci EciMode, segs []*QRSegment, version int) int {
	total := 0
	if eci != EciDefault {
		eciSeg, err := MakeECI(int(eci))
		if err != nil {
			return -1
		}
		total += 4 + eciSeg.Data.len()
	}
	segBits := segmentTotalBits(segs, version)
	if segBits < 0 {
		return -1
	}
	return total + segBits
}

// selectVersion picks the smallest version whose data capacity at level
// fits the segments, or the caller's fixed requestedVersion if one was
// given.
func selectVersion(eci EciMode, segs []*QRSegment, level ECCLevel, requestedVersion int) (int, error) {
	if requestedVersion != autoVersion {
		info := capacityInfo(requestedVersion, level)
		req := requiredBits(eci, segs, requestedVersion)
		if req < 0 || req > info.TotalDataCodewords*8 {
			return 0, newCapacityExceededError("data does not fit in requested version %d at level %s", requestedVersion, level)
		}
		return requestedVersion, nil
	}

	for v := 1; v <= 40; v++ {
		info := capacityInfo(v, level)
		req := requiredBits(eci, segs, v)
		if req >= 0 && req <= info.TotalDataCodewords*8 {
			return v, nil
		}
	}
	return 0, newCapacityExceededError("data does not fit in any version at level %s", level)
}

// boostECCLevel raises level to the strongest one whose capacity at the
// already-chosen version still fits the segments.
func boostECCLevel(eci EciMode, segs []*QRSegment, level ECCLevel, version int) ECCLevel {
	req := requiredBits(eci, segs, version)
	for candidate := level + 1; candidate <= High; candidate++ {
		info := capacityInfo(version, candidate)
		if req < 0 || req > info.TotalDataCodewords*8 {
			break
		}
		level = candidate
	}
	return level
}
