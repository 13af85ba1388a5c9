/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
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

package position

import (
	"sync"

	. "github.com/nimblechess/enginecore/types"
)

// Key is a Zobrist hash key identifying a position for transposition lookup.
type Key uint64

// zobrist holds one random term per (piece, square), per castling-rights
// state, per en-passant file, and one for side to move. A position's hash is
// the XOR of the terms for everything true about it; make/unmake maintain it
// incrementally by XORing out stale terms and XORing in fresh ones.
type zobrist struct {
	pieces         [PieceLength][SqLength]Key
	castlingRights [CastlingLength]Key
	enPassantFile  [FileLength]Key
	nextPlayer     Key
}

var zobristBase zobrist
var zobristOnce sync.Once

// zobristSeed is fixed and deterministic so that hash values (and therefore
// transposition table behaviour) are reproducible across runs.
const zobristSeed = 1070372

func initZobrist() {
	zobristOnce.Do(func() {
		r := newRandom(zobristSeed)
		for pc := Piece(PieceNone); pc < PieceLength; pc++ {
			for sq := SqA1; sq < SqNone; sq++ {
				zobristBase.pieces[pc][sq] = Key(r.rand64())
			}
		}
		for cr := CastlingRights(CastlingNone); cr <= CastlingAny; cr++ {
			zobristBase.castlingRights[cr] = Key(r.rand64())
		}
		for f := FileA; f < FileLength; f++ {
			zobristBase.enPassantFile[f] = Key(r.rand64())
		}
		zobristBase.nextPlayer = Key(r.rand64())
	})
}
