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

// Package slicestate implements the bit-sliced AES state and the
// linear transforms (ShiftRows, MixColumns, AddRoundKey) that operate
// on it. Every transform is a fixed sequence of masks, shifts and XORs
// over whole 16-bit lanes: no branch or memory address here depends on
// the state's contents.
//
// https://www.iacr.org/archive/ches2009/57470001/57470001.pdf
package slicestate

import "github.com/go-ctaes/ctaesgo/internal/consts"

// AesState is a single 128-bit AES state held as 8 lanes of 16 bits.
// Lane b holds bit b of each of the 16 state bytes; bit r*4+c of a
// lane is the state byte at row r, column c. Only the low 16 bits of
// each lane are meaningful.
type AesState struct {
	Slice [consts.NumLanes]uint16
}

// LoadWords packs four big-endian 32-bit words — one per state column
// — directly into sliced form. The key schedule uses this to slice
// round-key words without a round trip through a byte buffer.
func LoadWords(s *AesState, w [4]uint32) {
	for b := 0; b < consts.NumLanes; b++ {
		s.Slice[b] = 0
	}
	for c := 0; c < 4; c++ {
		word := w[c]
		for r := 0; r < 4; r++ {
			v := byte(word >> 24)
			word <<= 8
			for i := 0; i < consts.NumLanes; i++ {
				s.Slice[i] |= uint16((v>>uint(i))&1) << uint(r*4+c)
			}
		}
	}
}

// LoadBytes reads 16 plaintext/ciphertext bytes, column-major
// big-endian, into sliced form. Save(Load(x)) == x for every input.
func LoadBytes(s *AesState, data16 []byte) {
	var w [4]uint32
	for i := 0; i < 4; i++ {
		off := i * 4
		w[i] = uint32(data16[off])<<24 | uint32(data16[off+1])<<16 | uint32(data16[off+2])<<8 | uint32(data16[off+3])
	}
	LoadWords(s, w)
}

// SaveBytes is the exact inverse of LoadBytes.
func SaveBytes(data16 []byte, s *AesState) {
	idx := 0
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var v byte
			for b := 0; b < consts.NumLanes; b++ {
				v |= byte((s.Slice[b]>>uint(r*4+c))&1) << uint(b)
			}
			data16[idx] = v
			idx++
		}
	}
}

// ShiftRows cyclically rotates row r of the state left by r columns,
// applied to every lane independently via a fixed mask-and-shift.
//
// https://en.wikipedia.org/wiki/Advanced_Encryption_Standard
func ShiftRows(s *AesState) {
	for i := 0; i < consts.NumLanes; i++ {
		v := s.Slice[i]
		s.Slice[i] = (v & 0xF) | (v&0x10)<<3 | (v&0xE0)>>1 | (v&0x300)<<2 | (v&0xC00)>>2 | (v&0x7000)<<1 | (v&0x8000)>>3
	}
}

// InvShiftRows undoes ShiftRows.
func InvShiftRows(s *AesState) {
	for i := 0; i < consts.NumLanes; i++ {
		v := s.Slice[i]
		s.Slice[i] = (v & 0xF) | (v&0x70)<<1 | (v&0x80)>>3 | (v&0x300)<<2 | (v&0xC00)>>2 | (v&0x1000)<<3 | (v&0xE000)>>1
	}
}

// rot cyclically rotates a 16-bit lane by b groups of 4 bits, i.e. by
// b row-positions in all four columns simultaneously (row r+b moves to
// row r).
func rot(x uint16, b uint) uint16 {
	return (x >> (4 * b)) | (x << (4 * (4 - b)))
}

// MixColumns performs AES's GF(2^8) column mixing, expressed purely as
// XORs of rotated lanes: b_r = 02*a_r + 02*a_{r+1} + a_{r+1} + a_{r+2} + a_{r+3}.
//
// https://en.wikipedia.org/wiki/Rijndael_MixColumns
func MixColumns(s *AesState) {
	var a01, a123 [consts.NumLanes]uint16
	for i := 0; i < consts.NumLanes; i++ {
		a := s.Slice[i]
		a01[i] = a ^ rot(a, 1)
		a123[i] = rot(a01[i], 1) ^ rot(a, 3)
	}

	s.Slice[0] = a01[7] ^ a123[0]
	s.Slice[1] = a01[7] ^ a01[0] ^ a123[1]
	s.Slice[2] = a01[1] ^ a123[2]
	s.Slice[3] = a01[7] ^ a01[2] ^ a123[3]
	s.Slice[4] = a01[7] ^ a01[3] ^ a123[4]
	s.Slice[5] = a01[4] ^ a123[5]
	s.Slice[6] = a01[5] ^ a123[6]
	s.Slice[7] = a01[6] ^ a123[7]
}

// InvMixColumns undoes MixColumns, using the 0e/0b/0d/09 multiplier
// decomposition b_r = 8*(a_0..3) + 4*(a_0+a_2) + 2*(a_0+a_1) + (a_1+a_2+a_3).
func InvMixColumns(s *AesState) {
	var a01, a12, a123, a0123, a02 [consts.NumLanes]uint16
	for i := 0; i < consts.NumLanes; i++ {
		a := s.Slice[i]
		a01[i] = a ^ rot(a, 1)
		a12[i] = rot(a01[i], 1)
		a123[i] = a12[i] ^ rot(a, 3)
		a0123[i] = a ^ a123[i]
		a02[i] = a01[i] ^ a12[i]
	}

	s.Slice[0] = a123[0] ^ a01[7] ^ a02[6] ^ a0123[5]
	s.Slice[1] = a123[1] ^ a01[0] ^ a12[7] ^ a02[6] ^ a0123[5] ^ a0123[6]
	s.Slice[2] = a123[2] ^ a01[1] ^ a02[0] ^ a02[7] ^ a0123[6] ^ a0123[7]
	s.Slice[3] = a123[3] ^ a01[2] ^ a01[7] ^ a02[1] ^ a02[6] ^ a0123[0] ^ a0123[5] ^ a0123[7]
	s.Slice[4] = a123[4] ^ a01[3] ^ a12[7] ^ a02[2] ^ a02[6] ^ a0123[1] ^ a0123[5] ^ a0123[6]
	s.Slice[5] = a123[5] ^ a01[4] ^ a02[3] ^ a02[7] ^ a0123[2] ^ a0123[6] ^ a0123[7]
	s.Slice[6] = a123[6] ^ a01[5] ^ a02[4] ^ a0123[3] ^ a0123[7]
	s.Slice[7] = a123[7] ^ a01[6] ^ a02[5] ^ a0123[4]
}

// AddRoundKey performs a slice-wise XOR with a round key in sliced
// form. This is the whole of the AES round-key addition step.
//
// https://en.wikipedia.org/wiki/Advanced_Encryption_Standard
func AddRoundKey(s *AesState, round *AesState) {
	for b := 0; b < consts.NumLanes; b++ {
		s.Slice[b] ^= round.Slice[b]
	}
}
