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

// Package search implements a negamax search with alpha-beta pruning backed
// by a transposition table.
package search

import (
	myLogging "github.com/nimblechess/enginecore/logging"
	"github.com/nimblechess/enginecore/evaluator"
	"github.com/nimblechess/enginecore/movegen"
	"github.com/nimblechess/enginecore/moveslice"
	"github.com/nimblechess/enginecore/position"
	"github.com/nimblechess/enginecore/transpositiontable"
	. "github.com/nimblechess/enginecore/types"
)

var log = myLogging.GetLog()

// orderedMoves returns the pseudo-legal moves of p sorted captures-first,
// highest captured value first, so alpha-beta sees likely-good moves early.
func orderedMoves(p *position.Position) moveslice.MoveSlice {
	ms := moveslice.MoveSlice(movegen.GeneratePseudoLegalMoves(p))
	ms.SortByScore(func(m Move) int {
		if !m.IsCapture() {
			return 0
		}
		return p.PieceOn(m.To()).ValueOf()
	})
	return ms
}

// Search runs a fixed-depth negamax search from p and returns the best move
// found and its value from the side-to-move's perspective. It returns
// *NoLegalMoveError if the side to move has no legal reply; the caller can
// tell checkmate from stalemate via p.IsInCheck(p.SideToMove()).
func Search(p *position.Position, depth int, tt *transpositiontable.TtTable) (Move, Value, error) {
	eval := evaluator.NewEvaluator()
	best, bestValue, legalMoves := searchRoot(p, depth, -ValueInf, ValueInf, eval, tt)
	if legalMoves == 0 {
		return MoveNone, ValueNA, &NoLegalMoveError{Fen: p.Fen()}
	}
	return best, bestValue, nil
}

// searchRoot runs one ply of the negamax move loop at the root, returning
// the best move, its value, and the number of legal moves tried.
func searchRoot(p *position.Position, depth int, alpha, beta Value, eval *evaluator.Evaluator, tt *transpositiontable.TtTable) (Move, Value, int) {
	side := p.SideToMove()
	best := MoveNone
	bestValue := -ValueInf
	legalMoves := 0

	for _, m := range orderedMoves(p) {
		p.DoMove(m)
		if p.IsInCheck(side) {
			p.UndoMove(m)
			continue
		}
		legalMoves++

		value := -negamax(p, depth-1, -beta, -alpha, eval, tt)
		p.UndoMove(m)

		if value > bestValue {
			bestValue = value
			best = m
		}
		if bestValue > alpha {
			alpha = bestValue
		}
	}

	if legalMoves == 0 {
		return MoveNone, ValueNA, 0
	}
	return best, bestValue, legalMoves
}

// negamax searches p to depth plies and returns a value from the
// perspective of the side to move at p. alpha and beta bound the value of
// interest to the caller; a return value <= the original alpha is an
// upperbound, a return value >= beta is a lowerbound.
func negamax(p *position.Position, depth int, alpha, beta Value, eval *evaluator.Evaluator, tt *transpositiontable.TtTable) Value {
	originalAlpha := alpha

	if entry := tt.Probe(p.Hash()); entry != nil && int(entry.Depth) >= depth {
		switch entry.Type {
		case VtExact:
			return entry.Value
		case VtLowerbound:
			if entry.Value > alpha {
				alpha = entry.Value
			}
		case VtUpperbound:
			if entry.Value < beta {
				beta = entry.Value
			}
		}
		if alpha >= beta {
			return entry.Value
		}
	}

	if depth == 0 {
		return eval.Evaluate(p)
	}

	side := p.SideToMove()
	best := -ValueInf
	bestMove := MoveNone
	legalMoves := 0

	for _, m := range orderedMoves(p) {
		p.DoMove(m)
		if p.IsInCheck(side) {
			p.UndoMove(m)
			continue
		}
		legalMoves++

		value := -negamax(p, depth-1, -beta, -alpha, eval, tt)
		p.UndoMove(m)

		if value > best {
			best = value
			bestMove = m
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	if legalMoves == 0 {
		if p.IsInCheck(side) {
			best = -ValueCheckMate
		} else {
			best = ValueDraw
		}
		tt.Put(p.Hash(), MoveNone, best, int8(depth), VtExact)
		return best
	}

	vt := VtExact
	switch {
	case best <= originalAlpha:
		vt = VtUpperbound
	case best >= beta:
		vt = VtLowerbound
	}
	tt.Put(p.Hash(), bestMove, best, int8(depth), vt)

	return best
}
