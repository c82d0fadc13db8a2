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

const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// finderLikePatternA and finderLikePatternB are the two 11-module runs
// (light=0, dark=1) that resemble a finder pattern's 1:1:3:1:1 ratio,
// penalized by N3 wherever they occur in a row or column.
var (
	finderLikePatternA = [11]byte{1, 0, 1, 1, 1, 0, 1, 0, 0, 0, 0}
	finderLikePatternB = [11]byte{0, 0, 0, 0, 1, 0, 1, 1, 1, 0, 1}
)

// maskApplies is the closed, tagged dispatch over the eight standard mask
// patterns: a single switch keyed on the mask index.
func maskApplies(mask, x, y int) bool {
	switch mask {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (y/2+x/3)%2 == 0
	case 5:
		return (x*y)%2+(x*y)%3 == 0
	case 6:
		return ((x*y)%2+(x*y)%3)%2 == 0
	case 7:
		return ((x+y)%2+(x*y)%3)%2 == 0
	default:
		panic("qrcodegen: mask index out of range")
	}
}

// applyMask XORs every non-blocked cell with the given mask pattern.
// Applying the same mask twice undoes it.
func (b *qrBuilder) applyMask(mask int) {
	for y := 0; y < b.side; y++ {
		for x := 0; x < b.side; x++ {
			if b.blocked.get(x, y) {
				continue
			}
			if maskApplies(mask, x, y) {
				b.set(x, y, !b.get(x, y))
			}
		}
	}
}

// cloneCells returns an independent copy of the grid, for scratch penalty
// evaluation.
func (b *qrBuilder) cloneCells() []byte {
	out := make([]byte, len(b.cells))
	copy(out, b.cells)
	return out
}

// penaltyScore evaluates the four ISO/IEC 18004 penalty rules over the
// current grid (including function modules, which do participate in
// run/pattern detection).
func (b *qrBuilder) penaltyScore() int {
	score := 0
	score += b.rowPenalty()
	score += b.columnPenalty()
	score += b.blockPenalty()
	score += b.balancePenalty()
	return score
}

func (b *qrBuilder) rowPenalty() int {
	score := 0
	for y := 0; y < b.side; y++ {
		row := make([]byte, b.side)
		for x := 0; x < b.side; x++ {
			row[x] = b.cells[y*b.side+x]
		}
		score += runPenalty(row)
		score += finderLikePenalty(row)
	}
	return score
}

func (b *qrBuilder) columnPenalty() int {
	score := 0
	for x := 0; x < b.side; x++ {
		col := make([]byte, b.side)
		for y := 0; y < b.side; y++ {
			col[y] = b.cells[y*b.side+x]
		}
		score += runPenalty(col)
		score += finderLikePenalty(col)
	}
	return score
}

// runPenalty implements N1: 3 points for a run of 5 identical modules, plus
// 1 for each module beyond the fifth in the same run.
func runPenalty(line []byte) int {
	score := 0
	runColor, runLen := line[0], 0
	for _, c := range line {
		if c == runColor {
			runLen++
		} else {
			runColor, runLen = c, 1
		}
		if runLen == 5 {
			score += penaltyN1
		} else if runLen > 5 {
			score++
		}
	}
	return score
}

// finderLikePenalty implements N3: 40 points for every occurrence, in this
// row or column, of the 11-module window matching either finder-like
// pattern.
func finderLikePenalty(line []byte) int {
	score := 0
	if len(line) < 11 {
		return 0
	}
	for start := 0; start+11 <= len(line); start++ {
		window := line[start : start+11]
		if matchesWindow(window, finderLikePatternA) || matchesWindow(window, finderLikePatternB) {
			score += penaltyN3
		}
	}
	return score
}

func matchesWindow(window []byte, pattern [11]byte) bool {
	for i, p := range pattern {
		if window[i] != p {
			return false
		}
	}
	return true
}

// blockPenalty implements N2: 3 points for every 2x2 block of identically
// colored modules.
func (b *qrBuilder) blockPenalty() int {
	score := 0
	for y := 0; y < b.side-1; y++ {
		for x := 0; x < b.side-1; x++ {
			c := b.cells[y*b.side+x]
			if c == b.cells[y*b.side+x+1] && c == b.cells[(y+1)*b.side+x] && c == b.cells[(y+1)*b.side+x+1] {
				score += penaltyN2
			}
		}
	}
	return score
}

// balancePenalty implements N4: score 10 times the distance, in steps of
// 5 percentage points, from the nearer of the two multiples of 5 bracketing
// the percentage of dark modules to 50%.
func (b *qrBuilder) balancePenalty() int {
	dark := 0
	for _, c := range b.cells {
		if c == 1 {
			dark++
		}
	}
	total := b.side * b.side
	percent := float64(dark) * 100 / float64(total)
	lower := math.Floor(percent/5) * 5
	upper := lower + 5
	distLower := math.Abs(lower-50) / 5
	distUpper := math.Abs(upper-50) / 5
	dist := distLower
	if distUpper < dist {
		dist = distUpper
	}
	return int(dist) * penaltyN4
}

// selectMask evaluates all eight mask patterns and returns the index of
// the one with the minimum penalty score, ties resolved to the lowest
// index. The live grid is left with the winning mask applied (without
// format/version info overlaid — the caller overlays those once, for the
// chosen mask, after this returns).
func (b *qrBuilder) selectMask(level ECCLevel) int {
	bestMask := 0
	bestScore := math.MaxInt32
	for mask := 0; mask < 8; mask++ {
		b.applyMask(mask)
		scratch := b.cloneCells()
		b.overlayFormatInfo(level, mask)
		if b.version >= 7 {
			b.overlayVersionInfo()
		}
		score := b.penaltyScore()
		b.cells = scratch // discard the scratch-overlaid format/version bits
		if score < bestScore {
			bestScore, bestMask = score, mask
		}
		b.applyMask(mask) // undo (XOR is self-inverse)
	}
	b.applyMask(bestMask)
	return bestMask
}
