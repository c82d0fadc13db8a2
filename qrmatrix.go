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

// QRMatrix is the finished, read-only artifact of an encoding call: the
// core module grid (finder/alignment/timing/data/format/version modules,
// masked and overlaid) plus an optional light quiet-zone border. Coordinates
// passed to Get include the quiet zone, if any.
type QRMatrix struct {
	version     int
	quietZone   int
	coreSide    int
	core        []byte // 0 or 1 per cell, row-major over the core (non-quiet) region
}

func newQRMatrix(version, quietZone int, core []byte, coreSide int) *QRMatrix {
	return &QRMatrix{version: version, quietZone: quietZone, coreSide: coreSide, core: core}
}

// Size returns the full side length, core plus quiet zone on both edges.
func (m *QRMatrix) Size() int {
	return m.coreSide + 2*m.quietZone
}

// Version returns the symbol version, 1 to 40.
func (m *QRMatrix) Version() int {
	return m.version
}

// Get reports whether the module at (row, col) is dark. Coordinates in the
// quiet-zone border are always light (false).
func (m *QRMatrix) Get(row, col int) bool {
	r, c := row-m.quietZone, col-m.quietZone
	if r < 0 || r >= m.coreSide || c < 0 || c >= m.coreSide {
		return false
	}
	return m.core[r*m.coreSide+c] == 1
}
