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

package schedule

import (
	"encoding/hex"
	"testing"

	"github.com/go-ctaes/ctaesgo/internal/slicestate"
	"github.com/stretchr/testify/require"
)

// TestSetupFirstRoundKeyIsRawKey checks the structural invariant that
// round key 0 is always just the first 16 bytes of the user key,
// copied verbatim with no transform, for every Nk in {4, 6, 8}.
func TestSetupFirstRoundKeyIsRawKey(t *testing.T) {
	cases := []struct {
		name   string
		keyHex string
		nk, nr int
	}{
		{"AES-128", "000102030405060708090a0b0c0d0e0f", 4, 10},
		{"AES-192", "000102030405060708090a0b0c0d0e0f1011121314151617", 6, 12},
		{"AES-256", "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f", 8, 14},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := hex.DecodeString(tc.keyHex)
			require.NoError(t, err)

			dst := make([]slicestate.AesState, tc.nr+1)
			Setup(dst, key, tc.nk, tc.nr)

			var gotRoundKey0 [16]byte
			slicestate.SaveBytes(gotRoundKey0[:], &dst[0])

			require.Equal(t, key[:16], gotRoundKey0[:])
		})
	}
}

// TestSetupProducesNrPlusOneRoundKeys checks the schedule always fills
// exactly nr+1 sliced round keys, with no leftover zero key at the end.
func TestSetupProducesNrPlusOneRoundKeys(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}

	dst := make([]slicestate.AesState, 15)
	Setup(dst, key, 8, 14)

	for i, rk := range dst {
		allZero := true
		for _, lane := range rk.Slice {
			if lane != 0 {
				allZero = false
				break
			}
		}
		require.False(t, allZero, "round key %d unexpectedly all-zero", i)
	}
}

// TestSetupIsDeterministic checks that expanding the same key twice
// yields byte-identical round keys.
func TestSetupIsDeterministic(t *testing.T) {
	key := []byte("supersecretkeythathastobe32bytes")
	require.Len(t, key, 32)

	dstA := make([]slicestate.AesState, 15)
	dstB := make([]slicestate.AesState, 15)
	Setup(dstA, key, 8, 14)
	Setup(dstB, key, 8, 14)

	require.Equal(t, dstA, dstB)
}
