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

// rect is a small bounding box used only while reserving function-module
// regions during construction. Rectangles never number more than a few
// dozen even at version 40 (three finders, up to 46 alignment patterns,
// two timing strips, the dark module, the format-info cells, and the
// version-info blocks), so a plain slice is searched linearly rather than
// spatially indexed.
type rect struct {
	x0, y0, w, h int
}

func (r rect) overlaps(o rect) bool {
	return r.x0 < o.x0+o.w && o.x0 < r.x0+r.w && r.y0 < o.y0+o.h && o.y0 < r.y0+r.h
}

// blockedModules is a one-bit-per-cell mask over the core (non-quiet-zone)
// region, marking cells reserved for finder/separator/alignment/timing
// patterns, the dark module, and the format/version information fields.
// Data placement and mask application read it and must not touch a cell it
// marks. It is materialized once, from a short-lived list of rectangles,
// before either of those hot paths runs.
type blockedModules struct {
	side int
	bits []byte
}

func newBlockedModules(side int, rects []rect) *blockedModules {
	m := &blockedModules{side: side, bits: make([]byte, (side*side+7)/8)}
	for _, r := range rects {
		x1, y1 := min(r.x0+r.w, side), min(r.y0+r.h, side)
		for y := max(r.y0, 0); y < y1; y++ {
			for x := max(r.x0, 0); x < x1; x++ {
				i := y*side + x
				m.bits[i>>3] |= 1 << uint(i&7)
			}
		}
	}
	return m
}

func (m *blockedModules) get(x, y int) bool {
	i := y*m.side + x
	return m.bits[i>>3]>>uint(i&7)&1 == 1
}

// qrBuilder is the transient pipeline state for one symbol under
// construction: the core module grid (no quiet zone), the version, and the
// blocked-module mask once it has been materialized.
type qrBuilder struct {
	version int
	side    int
	cells   []byte // 0 or 1 per cell, row-major (y*side + x)
	rects   []rect
	blocked *blockedModules
}

func newQRBuilder(version int) *qrBuilder {
	side := 21 + 4*(version-1)
	return &qrBuilder{version: version, side: side, cells: make([]byte, side*side)}
}

func (b *qrBuilder) set(x, y int, dark bool) {
	if dark {
		b.cells[y*b.side+x] = 1
	} else {
		b.cells[y*b.side+x] = 0
	}
}

func (b *qrBuilder) get(x, y int) bool {
	return b.cells[y*b.side+x] == 1
}

func (b *qrBuilder) reserve(x0, y0, w, h int) {
	b.rects = append(b.rects, rect{x0, y0, w, h})
}

// drawFunctionPatterns places every fixed structural element (finder,
// separator, timing, alignment, and reserved format/version areas) and
// records their bounding rectangles, then materializes the blocked-module
// mask. It must run before placeData and before mask evaluation.
func (b *qrBuilder) drawFunctionPatterns() {
	b.drawFinderPattern(3, 3)
	b.drawFinderPattern(b.side-4, 3)
	b.drawFinderPattern(3, b.side-4)

	b.drawAlignmentPatterns()
	b.drawTimingPatterns()
	b.drawDarkModule()
	b.reserveFormatInfo()
	if b.version >= 7 {
		b.reserveVersionInfo()
	}

	b.blocked = newBlockedModules(b.side, b.rects)
}

// drawFinderPattern draws one finder pattern plus its separator as a 9x9
// window centered at (cx, cy): a dark 1x1 center, a dark ring at distance
// 1, a light ring at distance 2, a dark 7x7 border at distance 3, and a
// light separator ring at distance 4 (Chebyshev distance from center).
func (b *qrBuilder) drawFinderPattern(cx, cy int) {
	x0, y0 := max(cx-4, 0), max(cy-4, 0)
	x1, y1 := min(cx+5, b.side), min(cy+5, b.side)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx, dy := x-cx, y-cy
			dist := max(abs(dx), abs(dy))
			b.set(x, y, dist != 2 && dist != 4)
		}
	}
	b.reserve(x0, y0, x1-x0, y1-y0)
}

// drawAlignmentPatterns draws a 5x5 nested square (outer ring and center
// dark) at every alignment center, skipping any whose bounding box
// intersects an already-reserved rectangle — which prunes exactly the
// three positions that would overlap a finder pattern.
func (b *qrBuilder) drawAlignmentPatterns() {
	centers := alignmentCentersFor(b.version)
	for _, cyU := range centers {
		for _, cxU := range centers {
			cx, cy := int(cxU), int(cyU)
			box := rect{cx - 2, cy - 2, 5, 5}
			overlapping := false
			for _, r := range b.rects {
				if box.overlaps(r) {
					overlapping = true
					break
				}
			}
			if overlapping {
				continue
			}
			for dy := -2; dy <= 2; dy++ {
				for dx := -2; dx <= 2; dx++ {
					dist := max(abs(dx), abs(dy))
					b.set(cx+dx, cy+dy, dist != 1)
				}
			}
			b.reserve(box.x0, box.y0, box.w, box.h)
		}
	}
}

// drawTimingPatterns draws the alternating row-6/column-6 timing patterns
// between the finder patterns, dark at even offsets.
func (b *qrBuilder) drawTimingPatterns() {
	for i := 8; i < b.side-8; i++ {
		dark := i%2 == 0
		b.set(i, 6, dark)
		b.set(6, i, dark)
	}
	b.reserve(8, 6, b.side-16, 1)
	b.reserve(6, 8, 1, b.side-16)
}

func (b *qrBuilder) drawDarkModule() {
	y := 4*b.version + 9
	b.set(8, y, true)
	b.reserve(8, y, 1, 1)
}

// formatInfoPositions returns the 15 (x1,y1,x2,y2) coordinate pairs that
// carry the two redundant copies of the format information field, indexed
// by bit position (0 = LSB).
func formatInfoPositions(side int) [15][4]int {
	var pos [15][4]int
	for i := 0; i < 6; i++ {
		pos[i] = [4]int{8, i, side - 1 - i, 8}
	}
	pos[6] = [4]int{8, 7, side - 7, 8}
	pos[7] = [4]int{8, 8, side - 8, 8}
	pos[8] = [4]int{7, 8, 8, side - 7}
	for i := 9; i < 15; i++ {
		pos[i] = [4]int{14 - i, 8, 8, side - 15 + i}
	}
	return pos
}

func (b *qrBuilder) reserveFormatInfo() {
	for _, p := range formatInfoPositions(b.side) {
		b.reserve(p[0], p[1], 1, 1)
		b.reserve(p[2], p[3], 1, 1)
	}
}

// overlayFormatInfo writes the 15-bit format information field for (level,
// mask) into both reserved copies.
func (b *qrBuilder) overlayFormatInfo(level ECCLevel, mask int) {
	bits := formatBits(level, mask)
	for i, p := range formatInfoPositions(b.side) {
		bit := (bits>>uint(i))&1 == 1
		b.set(p[0], p[1], bit)
		b.set(p[2], p[3], bit)
	}
}

func (b *qrBuilder) reserveVersionInfo() {
	b.reserve(b.side-11, 0, 3, 6)
	b.reserve(0, b.side-11, 6, 3)
}

// overlayVersionInfo writes the 18-bit version information field (versions
// 7 and up) into both mirrored 3x6 blocks.
func (b *qrBuilder) overlayVersionInfo() {
	if b.version < 7 {
		return
	}
	bits := versionBits(b.version)
	for i := 0; i < 18; i++ {
		bit := (bits>>uint(i))&1 == 1
		x, y := b.side-11+i%3, i/3
		b.set(x, y, bit)
		b.set(y, x, bit)
	}
}

// placeData writes the interleaved data+ECC+remainder bit stream into the
// data cells in the zigzag order ISO/IEC 18004 §7.7.3 specifies: columns
// right to left in 2-wide strips (skipping column 6), alternating vertical
// direction each strip. Bits are consumed MSB-first; if the stream runs out
// before all data cells are visited, the remaining cells stay light.
func (b *qrBuilder) placeData(bits bitWriter) {
	bitIdx := 0
	for right := b.side - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		upward := (right+1)&2 == 0
		for vert := 0; vert < b.side; vert++ {
			var y int
			if upward {
				y = b.side - 1 - vert
			} else {
				y = vert
			}
			for j := 0; j < 2; j++ {
				x := right - j
				if b.blocked.get(x, y) {
					continue
				}
				var bit bool
				if bitIdx < len(bits) {
					bit = bits[bitIdx] == 1
					bitIdx++
				}
				b.set(x, y, bit)
			}
		}
	}
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
