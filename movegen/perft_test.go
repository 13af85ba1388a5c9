/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/nimblechess/enginecore/types"
)

// startPosResults holds perft(StartFen, depth) for depth 1..5.
var startPosResults = [...]uint64{20, 400, 8_902, 197_281, 4_865_609}

func Test_StandardPerft(t *testing.T) {
	for depth, want := range startPosResults {
		nodes, err := Perft(StartFen, depth+1)
		assert.NoError(t, err)
		assert.Equal(t, want, nodes, "depth %d", depth+1)
	}
}

// Table from the well-known "Kiwipete" position, exercising castling,
// en passant and promotion in the same tree.
func Test_KiwipetePerft(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	results := map[int]uint64{1: 48, 2: 2039, 3: 97_862}
	for depth, want := range results {
		nodes, err := Perft(fen, depth)
		assert.NoError(t, err)
		assert.Equal(t, want, nodes, "depth %d", depth)
	}
}

// Position 4 from the standard perft suite, exercising promotion-captures
// and castling rights loss via rook capture.
func Test_Position4Perft(t *testing.T) {
	fen := "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	results := map[int]uint64{1: 6, 2: 264, 3: 9_467}
	for depth, want := range results {
		nodes, err := Perft(fen, depth)
		assert.NoError(t, err)
		assert.Equal(t, want, nodes, "depth %d", depth)
	}
}

// Endgame position heavy on rook and pawn tactics, including en passant.
func Test_EndgamePerft(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	results := map[int]uint64{1: 14, 2: 191, 3: 2_812, 4: 43_238}
	for depth, want := range results {
		nodes, err := Perft(fen, depth)
		assert.NoError(t, err)
		assert.Equal(t, want, nodes, "depth %d", depth)
	}
}
