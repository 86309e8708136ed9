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

package slicestate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadSaveBytesRoundTrip(t *testing.T) {
	inputs := [][16]byte{
		{},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff},
	}

	for _, in := range inputs {
		var s AesState
		LoadBytes(&s, in[:])

		var out [16]byte
		SaveBytes(out[:], &s)

		require.Equal(t, in, out)
	}
}

func TestLoadBytesColumnMajorLayout(t *testing.T) {
	// Byte index c*4+r holds the state element at column c, row r.
	// Placing a single non-zero byte at index c*4+r must surface as
	// bit (r*4+c) of every lane matching that byte's bits.
	var in [16]byte
	in[1*4+2] = 0xFF // column 1, row 2

	var s AesState
	LoadBytes(&s, in[:])

	for b := 0; b < len(s.Slice); b++ {
		require.Equal(t, uint16(1)<<(2*4+1), s.Slice[b], "lane %d", b)
	}
}

func TestShiftRowsInverse(t *testing.T) {
	var in [16]byte
	for i := range in {
		in[i] = byte(i + 1)
	}

	var s AesState
	LoadBytes(&s, in[:])

	ShiftRows(&s)
	InvShiftRows(&s)

	var out [16]byte
	SaveBytes(out[:], &s)
	require.Equal(t, in, out)
}

func TestShiftRowsRow0Unchanged(t *testing.T) {
	var in [16]byte
	for i := range in {
		in[i] = byte(i + 1)
	}

	var s AesState
	LoadBytes(&s, in[:])
	ShiftRows(&s)

	var out [16]byte
	SaveBytes(out[:], &s)

	for c := 0; c < 4; c++ {
		require.Equal(t, in[c*4+0], out[c*4+0], "row 0 column %d", c)
	}
}

func TestMixColumnsInverse(t *testing.T) {
	var in [16]byte
	for i := range in {
		in[i] = byte(i*31 + 7)
	}

	var s AesState
	LoadBytes(&s, in[:])

	MixColumns(&s)
	InvMixColumns(&s)

	var out [16]byte
	SaveBytes(out[:], &s)
	require.Equal(t, in, out)
}

func TestAddRoundKeyIsInvolution(t *testing.T) {
	var in [16]byte
	for i := range in {
		in[i] = byte(200 - i)
	}

	var rkBytes [16]byte
	for i := range rkBytes {
		rkBytes[i] = byte(i * 13)
	}

	var s, round AesState
	LoadBytes(&s, in[:])
	LoadBytes(&round, rkBytes[:])

	AddRoundKey(&s, &round)
	AddRoundKey(&s, &round)

	var out [16]byte
	SaveBytes(out[:], &s)
	require.Equal(t, in, out)
}
