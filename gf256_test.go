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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGF256MulZero(t *testing.T) {
	assert.Equal(t, byte(0), gf256Mul(0, 5))
	assert.Equal(t, byte(0), gf256Mul(5, 0))
}

func TestGF256MulIdentity(t *testing.T) {
	for a := 1; a < 256; a++ {
		assert.Equal(t, byte(a), gf256Mul(byte(a), 1))
	}
}

func TestGF256MulMatchesKnownVector(t *testing.T) {
	// alpha^1 * alpha^1 = alpha^2 = 4, since alpha = 2 here.
	assert.Equal(t, byte(4), gf256Mul(2, 2))
}

func TestGF256DivInverseOfMul(t *testing.T) {
	for a := 1; a < 256; a++ {
		for b := 1; b < 256; b += 37 {
			prod := gf256Mul(byte(a), byte(b))
			assert.Equal(t, byte(a), gf256Div(prod, byte(b)))
		}
	}
}

func TestGF256DivPanicsOnZeroDivisor(t *testing.T) {
	assert.Panics(t, func() { gf256Div(1, 0) })
}

func TestGF256ExpLogAreInverses(t *testing.T) {
	for i := 0; i < 255; i++ {
		assert.EqualValues(t, i, gf256Log[gf256Exp[i]])
	}
}
