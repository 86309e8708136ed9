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

// Package ctaesgo implements a constant-time, bit-sliced AES-128/192/256
// block cipher: key expansion plus single-block encrypt/decrypt. Every
// branch, memory address, and instruction trace is independent of the
// key and the block data, so the implementation is resistant to
// cache-timing and branch-timing side channels.
//
// Block-cipher modes of operation, padding, authenticated encryption,
// key derivation, and random-number generation are all out of scope:
// this package is a single-block primitive meant to be composed by a
// higher layer, not a drop-in replacement for crypto/cipher.
//
// https://www.iacr.org/archive/ches2009/57470001/57470001.pdf
package ctaesgo

import (
	"github.com/go-ctaes/ctaesgo/internal/consts"
	"github.com/go-ctaes/ctaesgo/internal/sbox"
	"github.com/go-ctaes/ctaesgo/internal/schedule"
	"github.com/go-ctaes/ctaesgo/internal/slicestate"
)

// Ctx128 holds the 11 sliced round keys derived from a 128-bit key.
type Ctx128 struct {
	rk [consts.RoundKeys128]slicestate.AesState
}

// Ctx192 holds the 13 sliced round keys derived from a 192-bit key.
type Ctx192 struct {
	rk [consts.RoundKeys192]slicestate.AesState
}

// Ctx256 holds the 15 sliced round keys derived from a 256-bit key.
type Ctx256 struct {
	rk [consts.RoundKeys256]slicestate.AesState
}

// Init128 expands a 128-bit key into ctx's round-key schedule. Init128
// requires exclusive access to ctx; it must not run concurrently with
// any other use of ctx.
func Init128(ctx *Ctx128, key [16]byte) {
	schedule.Setup(ctx.rk[:], key[:], consts.Nk128, consts.Nr128)
}

// Init192 expands a 192-bit key into ctx's round-key schedule.
func Init192(ctx *Ctx192, key [24]byte) {
	schedule.Setup(ctx.rk[:], key[:], consts.Nk192, consts.Nr192)
}

// Init256 expands a 256-bit key into ctx's round-key schedule.
func Init256(ctx *Ctx256, key [32]byte) {
	schedule.Setup(ctx.rk[:], key[:], consts.Nk256, consts.Nr256)
}

// Encrypt128 encrypts one 16-byte block under ctx. in and out may
// alias the same array.
func Encrypt128(ctx *Ctx128, out, in *[16]byte) { encryptBlock(ctx.rk[:], consts.Nr128, out, in) }

// Encrypt192 encrypts one 16-byte block under ctx. in and out may
// alias the same array.
func Encrypt192(ctx *Ctx192, out, in *[16]byte) { encryptBlock(ctx.rk[:], consts.Nr192, out, in) }

// Encrypt256 encrypts one 16-byte block under ctx. in and out may
// alias the same array.
func Encrypt256(ctx *Ctx256, out, in *[16]byte) { encryptBlock(ctx.rk[:], consts.Nr256, out, in) }

// Decrypt128 decrypts one 16-byte block under ctx. in and out may
// alias the same array.
func Decrypt128(ctx *Ctx128, out, in *[16]byte) { decryptBlock(ctx.rk[:], consts.Nr128, out, in) }

// Decrypt192 decrypts one 16-byte block under ctx. in and out may
// alias the same array.
func Decrypt192(ctx *Ctx192, out, in *[16]byte) { decryptBlock(ctx.rk[:], consts.Nr192, out, in) }

// Decrypt256 decrypts one 16-byte block under ctx. in and out may
// alias the same array.
func Decrypt256(ctx *Ctx256, out, in *[16]byte) { decryptBlock(ctx.rk[:], consts.Nr256, out, in) }

// encryptBlock is the round driver shared by Encrypt128/192/256: it
// differs across variants only in round count and schedule length, so
// the driver itself takes both as plain parameters rather than being
// copy-pasted three times.
func encryptBlock(rk []slicestate.AesState, nr int, out, in *[16]byte) {
	var s slicestate.AesState
	slicestate.LoadBytes(&s, in[:])
	slicestate.AddRoundKey(&s, &rk[0])

	for round := 1; round < nr; round++ {
		sbox.SubBytes(&s, false)
		slicestate.ShiftRows(&s)
		slicestate.MixColumns(&s)
		slicestate.AddRoundKey(&s, &rk[round])
	}

	sbox.SubBytes(&s, false)
	slicestate.ShiftRows(&s)
	slicestate.AddRoundKey(&s, &rk[nr])

	slicestate.SaveBytes(out[:], &s)
}

// decryptBlock runs the straight inverse cipher (not the Equivalent
// Inverse Cipher), so it can share the same key schedule as encryption
// instead of needing a second set of round constants.
func decryptBlock(rk []slicestate.AesState, nr int, out, in *[16]byte) {
	var s slicestate.AesState
	slicestate.LoadBytes(&s, in[:])
	slicestate.AddRoundKey(&s, &rk[nr])

	for round := nr - 1; round > 0; round-- {
		slicestate.InvShiftRows(&s)
		sbox.SubBytes(&s, true)
		slicestate.AddRoundKey(&s, &rk[round])
		slicestate.InvMixColumns(&s)
	}

	slicestate.InvShiftRows(&s)
	sbox.SubBytes(&s, true)
	slicestate.AddRoundKey(&s, &rk[0])

	slicestate.SaveBytes(out[:], &s)
}
