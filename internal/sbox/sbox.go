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

// Package sbox implements the AES S-box (and its inverse) as a
// straight-line Boolean circuit instead of a 256-entry lookup table,
// so that SubBytes applies to all 16 bytes of a sliced state with no
// data-dependent memory access.
//
// The gate network is Boyar and Peralta's depth-16 circuit:
// https://eprint.iacr.org/2011/332.pdf
package sbox

import "github.com/go-ctaes/ctaesgo/internal/slicestate"

// SubBytes applies the AES S-box to every byte of s in place when inv
// is false, or its inverse when inv is true. The non-linear middle
// stage (M1..M63) is identical in both directions; only the linear
// input and output stages differ.
func SubBytes(s *slicestate.AesState, inv bool) {
	U0, U1, U2, U3 := s.Slice[7], s.Slice[6], s.Slice[5], s.Slice[4]
	U4, U5, U6, U7 := s.Slice[3], s.Slice[2], s.Slice[1], s.Slice[0]

	var T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 uint16
	var T11, T12, T13, T14, T15, T16, T17, T18, T19, T20 uint16
	var T21, T22, T23, T24, T25, T26, T27, D uint16

	if inv {
		// Undo linear postprocessing.
		T23 = U0 ^ U3
		T22 = ^(U1 ^ U3)
		T2 = ^(U0 ^ U1)
		T1 = U3 ^ U4
		T24 = ^(U4 ^ U7)
		R5 := U6 ^ U7
		T8 = ^(U1 ^ T23)
		T19 = T22 ^ R5
		T9 = ^(U7 ^ T1)
		T10 = T2 ^ T24
		T13 = T2 ^ R5
		T3 = T1 ^ R5
		T25 = ^(U2 ^ T1)
		R13 := U1 ^ U6
		T17 = ^(U2 ^ T19)
		T20 = T24 ^ R13
		T4 = U4 ^ T8
		R17 := ^(U2 ^ U5)
		R18 := ^(U5 ^ U6)
		R19 := ^(U2 ^ U4)
		D = U0 ^ R17
		T6 = T22 ^ R17
		T16 = R13 ^ R19
		T27 = T1 ^ R18
		T15 = T10 ^ T27
		T14 = T10 ^ R18
		T26 = T3 ^ T16
	} else {
		// Linear preprocessing.
		T1 = U0 ^ U3
		T2 = U0 ^ U5
		T3 = U0 ^ U6
		T4 = U3 ^ U5
		T5 = U4 ^ U6
		T6 = T1 ^ T5
		T7 = U1 ^ U2
		T8 = U7 ^ T6
		T9 = U7 ^ T7
		T10 = T6 ^ T7
		T11 = U1 ^ U5
		T12 = U2 ^ U5
		T13 = T3 ^ T4
		T14 = T6 ^ T11
		T15 = T5 ^ T11
		T16 = T5 ^ T12
		T17 = T9 ^ T16
		T18 = U3 ^ U7
		T19 = T7 ^ T18
		T20 = T1 ^ T19
		T21 = U6 ^ U7
		T22 = T7 ^ T21
		T23 = T2 ^ T22
		T24 = T2 ^ T10
		T25 = T20 ^ T17
		T26 = T3 ^ T16
		T27 = T1 ^ T12
		D = U7
	}

	// Non-linear transformation, identical in both directions.
	M1 := T13 & T6
	M6 := T3 & T16
	M11 := T1 & T15
	M13 := (T4 & T27) ^ M11
	M15 := (T2 & T10) ^ M11
	M20 := T14 ^ M1 ^ (T23 & T8) ^ M13
	M21 := (T19 & D) ^ M1 ^ T24 ^ M15
	M22 := T26 ^ M6 ^ (T22 & T9) ^ M13
	M23 := (T20 & T17) ^ M6 ^ M15 ^ T25
	M25 := M22 & M20
	M37 := M21 ^ ((M20 ^ M21) & (M23 ^ M25))
	M38 := M20 ^ M25 ^ (M21 | (M20 & M23))
	M39 := M23 ^ ((M22 ^ M23) & (M21 ^ M25))
	M40 := M22 ^ M25 ^ (M23 | (M21 & M22))
	M41 := M38 ^ M40
	M42 := M37 ^ M39
	M43 := M37 ^ M38
	M44 := M39 ^ M40
	M45 := M42 ^ M41
	M46 := M44 & T6
	M47 := M40 & T8
	M48 := M39 & D
	M49 := M43 & T16
	M50 := M38 & T9
	M51 := M37 & T17
	M52 := M42 & T15
	M53 := M45 & T27
	M54 := M41 & T10
	M55 := M44 & T13
	M56 := M40 & T23
	M57 := M39 & T19
	M58 := M43 & T3
	M59 := M38 & T22
	M60 := M37 & T20
	M61 := M42 & T1
	M62 := M45 & T4
	M63 := M41 & T2

	if inv {
		// Undo linear preprocessing.
		P0 := M52 ^ M61
		P1 := M58 ^ M59
		P2 := M54 ^ M62
		P3 := M47 ^ M50
		P4 := M48 ^ M56
		P5 := M46 ^ M51
		P6 := M49 ^ M60
		P7 := P0 ^ P1
		P8 := M50 ^ M53
		P9 := M55 ^ M63
		P10 := M57 ^ P4
		P11 := P0 ^ P3
		P12 := M46 ^ M48
		P13 := M49 ^ M51
		P14 := M49 ^ M62
		P15 := M54 ^ M59
		P16 := M57 ^ M61
		P17 := M58 ^ P2
		P18 := M63 ^ P5
		P19 := P2 ^ P3
		P20 := P4 ^ P6
		P22 := P2 ^ P7
		P23 := P7 ^ P8
		P24 := P5 ^ P7
		P25 := P6 ^ P10
		P26 := P9 ^ P11
		P27 := P10 ^ P18
		P28 := P11 ^ P25
		P29 := P15 ^ P20

		s.Slice[7] = P13 ^ P22
		s.Slice[6] = P26 ^ P29
		s.Slice[5] = P17 ^ P28
		s.Slice[4] = P12 ^ P22
		s.Slice[3] = P23 ^ P27
		s.Slice[2] = P19 ^ P24
		s.Slice[1] = P14 ^ P23
		s.Slice[0] = P9 ^ P16
	} else {
		// Linear postprocessing.
		L0 := M61 ^ M62
		L1 := M50 ^ M56
		L2 := M46 ^ M48
		L3 := M47 ^ M55
		L4 := M54 ^ M58
		L5 := M49 ^ M61
		L6 := M62 ^ L5
		L7 := M46 ^ L3
		L8 := M51 ^ M59
		L9 := M52 ^ M53
		L10 := M53 ^ L4
		L11 := M60 ^ L2
		L12 := M48 ^ M51
		L13 := M50 ^ L0
		L14 := M52 ^ M61
		L15 := M55 ^ L1
		L16 := M56 ^ L0
		L17 := M57 ^ L1
		L18 := M58 ^ L8
		L19 := M63 ^ L4
		L20 := L0 ^ L1
		L21 := L1 ^ L7
		L22 := L3 ^ L12
		L23 := L18 ^ L2
		L24 := L15 ^ L9
		L25 := L6 ^ L10
		L26 := L7 ^ L9
		L27 := L8 ^ L10
		L28 := L11 ^ L14
		L29 := L11 ^ L17

		s.Slice[7] = L6 ^ L24
		s.Slice[6] = ^(L16 ^ L26)
		s.Slice[5] = ^(L19 ^ L28)
		s.Slice[4] = L6 ^ L21
		s.Slice[3] = L20 ^ L22
		s.Slice[2] = L25 ^ L29
		s.Slice[1] = ^(L13 ^ L27)
		s.Slice[0] = ^(L6 ^ L23)
	}
}

// SubWord applies the forward S-box to each of the four bytes of a
// 32-bit word, by bit-slicing the word into the low nibble of each
// lane, running SubBytes, and reading the nibbles back. This reuses
// the constant-time circuit so the key schedule never needs a table.
func SubWord(x uint32) uint32 {
	var s slicestate.AesState
	for b := 0; b < 8; b++ {
		s.Slice[b] = uint16((x & 1) | ((x >> 7) & 2) | ((x >> 14) & 4) | ((x >> 21) & 8))
		x >>= 1
	}

	SubBytes(&s, false)

	var r uint32
	for b := 0; b < 8; b++ {
		t := uint32(s.Slice[b])
		r |= ((t & 1) | (t&2)<<7 | (t&4)<<14 | (t&8)<<21) << uint(b)
	}
	return r
}
