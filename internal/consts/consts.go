// Copyright (c) 2023 Paweł Rybak
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package consts defines the fixed sizes shared by the three AES
// variants this module implements.
package consts

const (
	// BlockSize is the size in bytes of a single AES block.
	BlockSize = 16

	// WordSize is the size in bytes of one key-schedule word.
	WordSize = 4

	// NumLanes is the number of bit-sliced lanes an AesState holds,
	// one per bit position within a byte.
	NumLanes = 8

	// Nb is the number of 32-bit words in the AES state (always 4,
	// regardless of key length).
	Nb = 4
)

// Nk128, Nk192, Nk256 are the key lengths in 32-bit words for each variant.
const (
	Nk128 = 4
	Nk192 = 6
	Nk256 = 8
)

// Nr128, Nr192, Nr256 are the round counts for each variant.
const (
	Nr128 = 10
	Nr192 = 12
	Nr256 = 14
)

// RoundKeys128, RoundKeys192, RoundKeys256 are the number of sliced
// round keys produced by the key schedule for each variant (Nr + 1).
const (
	RoundKeys128 = Nr128 + 1
	RoundKeys192 = Nr192 + 1
	RoundKeys256 = Nr256 + 1
)
