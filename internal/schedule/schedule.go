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

// This package has been heavily inspired by Sam Trenholme's blog.
// I highly recommend giving it a read:
// https://www.samiam.org/key-schedule.html

// Package schedule expands a raw AES key into its sliced round-key
// schedule, using an 8-word ring buffer rather than a flat array:
// the smallest window that serves Nk in {4, 6, 8} while keeping all
// indexing branch-free.
package schedule

import (
	"github.com/go-ctaes/ctaesgo/internal/sbox"
	"github.com/go-ctaes/ctaesgo/internal/slicestate"
)

// xtime multiplies a GF(2^8) element by x (the polynomial "2"), modulo
// x^8 + x^4 + x^3 + x + 1, using masking instead of a branch.
func xtime(x byte) byte {
	return ((-(x >> 7)) & 0x1B) ^ (x << 1)
}

// Setup expands key (4*nk bytes) into nr+1 sliced round keys written
// into dst, for Nk in {4, 6, 8} and the matching Nr in {10, 12, 14}.
// It must not branch on any byte of key.
func Setup(dst []slicestate.AesState, key []byte, nk, nr int) {
	var rcon byte = 0x01
	var rk [8]uint32
	pos := 0
	next := 0

	// Phase 1: the first nk words come straight from the key.
	for i := 0; i < nk; i++ {
		off := i * 4
		rk[i] = uint32(key[off])<<24 | uint32(key[off+1])<<16 | uint32(key[off+2])<<8 | uint32(key[off+3])
		if i&3 == 3 {
			slicestate.LoadWords(&dst[next], [4]uint32{rk[i-3], rk[i-2], rk[i-1], rk[i]})
			next++
		}
	}

	// Phase 2: derive the remaining words.
	for i := nk; i < 4*(nr+1); i++ {
		temp := rk[(i+7)&7]
		switch {
		case pos == 0:
			temp = sbox.SubWord(temp<<8|temp>>24) ^ uint32(rcon)<<24
			rcon = xtime(rcon)
		case nk > 6 && pos == 4:
			temp = sbox.SubWord(temp)
		}
		pos++
		if pos == nk {
			pos = 0
		}

		rk[i&7] = rk[(i+8-nk)&7] ^ temp
		if i&3 == 3 {
			slicestate.LoadWords(&dst[next], [4]uint32{rk[(i+5)&7], rk[(i+6)&7], rk[(i+7)&7], rk[i&7]})
			next++
		}
	}
}
