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

// Package evaluator contains structures and functions to calculate
// the value of a chess position to be used in a chess engine search.
package evaluator

import (
	"github.com/op/go-logging"

	myLogging "github.com/nimblechess/enginecore/logging"
	"github.com/nimblechess/enginecore/movegen"
	"github.com/nimblechess/enginecore/position"
	. "github.com/nimblechess/enginecore/types"
)

var log = myLogging.GetLog()

var pieceTypes = [...]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// Evaluator computes a static score for a chess position using material
// balance and piece-square tables.
//  Create a new instance with NewEvaluator()
type Evaluator struct {
	log *logging.Logger
}

// NewEvaluator creates a new instance of an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		log: log,
	}
}

// Evaluate returns a static score for p from the side-to-move's perspective.
// If the side to move has no legal reply and is in check, the magnitude is
// the checkmate value; material and positional terms are skipped in that case.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	side := p.SideToMove()

	if !hasLegalMove(p) {
		if p.IsInCheck(side) {
			return -ValueCheckMate
		}
		return ValueDraw
	}

	value := material(p) + positional(p)

	// value is always computed from White's perspective internally; flip to
	// the side to move's perspective before returning.
	if side == Black {
		value = -value
	}
	return value
}

// hasLegalMove reports whether the side to move has at least one move that
// does not leave its own king in check.
func hasLegalMove(p *position.Position) bool {
	side := p.SideToMove()
	for _, m := range movegen.GeneratePseudoLegalMoves(p) {
		p.DoMove(m)
		left := p.IsInCheck(side)
		p.UndoMove(m)
		if !left {
			return true
		}
	}
	return false
}

// material sums piece-type values via popcount, White minus Black.
func material(p *position.Position) Value {
	var value int
	for _, pt := range pieceTypes {
		value += p.Pieces(White, pt).PopCount() * pt.ValueOf()
		value -= p.Pieces(Black, pt).PopCount() * pt.ValueOf()
	}
	return Value(value)
}

// positional sums piece-square bonuses for pawns, knights and kings, White
// minus Black. Bishops, rooks and queens have no table and score 0.
func positional(p *position.Position) Value {
	var value int
	for _, c := range [...]Color{White, Black} {
		sign := 1
		if c == Black {
			sign = -1
		}
		for _, pt := range pieceTypes {
			for bb := p.Pieces(c, pt); bb != BbZero; {
				sq := bb.PopLsb()
				value += sign * psqtValue(c, pt, sq)
			}
		}
	}
	return Value(value)
}
