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
	. "github.com/nimblechess/enginecore/types"
)

// IsSquareAttacked reports whether any piece of bySide attacks sq. Checked
// cheapest-first: knight, king, pawns, then sliders behind a ray pre-filter.
func (p *Position) IsSquareAttacked(sq Square, bySide Color) bool {
	if AttacksBb(Knight, sq, BbZero)&p.piecesBb[bySide][Knight] != 0 {
		return true
	}
	if AttacksBb(King, sq, BbZero)&p.piecesBb[bySide][King] != 0 {
		return true
	}
	// a pawn of bySide attacks sq from the squares a pawn of the opposite
	// color standing on sq would itself attack.
	if PawnAttacks(bySide.Flip(), sq)&p.piecesBb[bySide][Pawn] != 0 {
		return true
	}

	occupied := p.OccupiedAll()
	diagonalSliders := p.piecesBb[bySide][Bishop] | p.piecesBb[bySide][Queen]
	if BishopRay(sq)&diagonalSliders != 0 {
		if AttacksBb(Bishop, sq, occupied)&diagonalSliders != 0 {
			return true
		}
	}
	lineSliders := p.piecesBb[bySide][Rook] | p.piecesBb[bySide][Queen]
	if RookRay(sq)&lineSliders != 0 {
		if AttacksBb(Rook, sq, occupied)&lineSliders != 0 {
			return true
		}
	}
	return false
}

// IsInCheck reports whether side's king is attacked by the opposing side.
func (p *Position) IsInCheck(side Color) bool {
	return p.IsSquareAttacked(p.kingSquare[side], side.Flip())
}
