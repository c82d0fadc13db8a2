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

// reedSolomonComputeDivisor builds the Reed-Solomon generator polynomial
// G(x) = prod_{i=0}^{degree-1} (x - alpha^i) for the given ECC codeword
// count. Coefficients are stored highest-to-lowest power, excluding the
// leading x^degree term (always 1): the polynomial x^3 + 255x^2 + 8x + 93 is
// stored as []byte{255, 8, 93}.
func reedSolomonComputeDivisor(degree int) []byte {
	if degree < 1 || degree > 255 {
		panic("reedsolomon: degree out of range")
	}

	result := make([]byte, degree)
	result[degree-1] = 1 // Start with the monomial x^0.

	root := byte(1)
	for i := 0; i < degree; i++ {
		for j := 0; j < len(result); j++ {
			result[j] = gf256Mul(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = gf256Mul(root, 2)
	}
	return result
}

// reedSolomonComputeRemainder performs polynomial long division of
// data*x^len(divisor) by divisor in GF(256), returning the remainder
// (len(divisor) ECC codewords, by degree index: result[0] is the
// highest-degree coefficient).
func reedSolomonComputeRemainder(data, divisor []byte) []byte {
	result := make([]byte, len(divisor))
	for _, b := range data {
		factor := b ^ result[0]
		copy(result, result[1:])
		result[len(result)-1] = 0
		for i := range result {
			result[i] ^= gf256Mul(divisor[i], factor)
		}
	}
	return result
}
