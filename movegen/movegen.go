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

// Package movegen generates pseudo-legal moves for the side to move from a
// position's bitboards and the process-wide attack tables, and drives the
// perft correctness harness built on top of make/unmake.
package movegen

import (
	"github.com/nimblechess/enginecore/position"
	. "github.com/nimblechess/enginecore/types"
)

// GeneratePseudoLegalMoves returns every pseudo-legal move for the side to
// move in p. "Pseudo-legal" means own-king-safety is not checked here: the
// caller makes each move and tests IsInCheck to discover illegal ones.
func GeneratePseudoLegalMoves(p *position.Position) []Move {
	moves := make([]Move, 0, 64)
	side := p.SideToMove()
	own := p.Occupied(side)
	occupied := p.OccupiedAll()

	moves = genPawnMoves(p, side, moves)

	for _, pt := range [...]PieceType{Knight, Bishop, Rook, Queen} {
		from := p.Pieces(side, pt)
		for from != BbZero {
			sq := from.PopLsb()
			targets := AttacksBb(pt, sq, occupied) &^ own
			moves = emitTargets(p, moves, sq, pt, targets)
		}
	}

	kingSq := p.KingSquare(side)
	kingTargets := AttacksBb(King, kingSq, occupied) &^ own
	moves = emitTargets(p, moves, kingSq, King, kingTargets)

	moves = genCastles(p, side, moves)

	return moves
}

// emitTargets appends one move per set bit of targets, tagging quiet vs.
// capture by what (if anything) occupies the destination.
func emitTargets(p *position.Position, moves []Move, from Square, pt PieceType, targets Bitboard) []Move {
	for targets != BbZero {
		to := targets.PopLsb()
		captured := p.PieceOn(to)
		if captured == PieceNone {
			moves = append(moves, NewMove(from, to, Quiet, pt, PtNone))
		} else {
			moves = append(moves, NewMove(from, to, CaptureKind, pt, captured.TypeOf()))
		}
	}
	return moves
}

var promotionKinds = [...]Kind{PromoKnight, PromoBishop, PromoRook, PromoQueen}
var promotionCaptureKinds = [...]Kind{PromoCaptureKnight, PromoCaptureBishop, PromoCaptureRook, PromoCaptureQueen}

func genPawnMoves(p *position.Position, side Color, moves []Move) []Move {
	occupied := p.OccupiedAll()
	opponent := p.Occupied(side.Flip())
	forward := Direction(side.MoveDirection()) * North
	pawns := p.Pieces(side, Pawn)
	promoRank := side.PromotionRank()

	for bb := pawns; bb != BbZero; {
		from := bb.PopLsb()

		// single push
		one := from.To(forward)
		if one != SqNone && !occupied.Has(one) {
			moves = pushPawnMove(moves, from, one, promoRank)
			// double push, only from the pawn's starting rank
			if from.RankOf() == side.PawnRank() {
				two := one.To(forward)
				if two != SqNone && !occupied.Has(two) {
					moves = append(moves, NewMove(from, two, DoublePawnPush, Pawn, PtNone))
				}
			}
		}

		// captures
		for _, d := range pawnCaptureDirections(side) {
			to := from.To(d)
			if to == SqNone {
				continue
			}
			if opponent.Has(to) {
				captured := p.PieceOn(to).TypeOf()
				moves = pushPawnCapture(moves, from, to, captured, promoRank)
			} else if to == p.EnPassantSquare() {
				moves = append(moves, NewMove(from, to, EnPassantCapture, Pawn, Pawn))
			}
		}
	}
	return moves
}

func pawnCaptureDirections(side Color) [2]Direction {
	if side == White {
		return [2]Direction{Northeast, Northwest}
	}
	return [2]Direction{Southeast, Southwest}
}

func pushPawnMove(moves []Move, from, to Square, promoRank Rank) []Move {
	if to.RankOf() == promoRank {
		for _, k := range promotionKinds {
			moves = append(moves, NewMove(from, to, k, Pawn, PtNone))
		}
		return moves
	}
	return append(moves, NewMove(from, to, Quiet, Pawn, PtNone))
}

func pushPawnCapture(moves []Move, from, to Square, captured PieceType, promoRank Rank) []Move {
	if to.RankOf() == promoRank {
		for _, k := range promotionCaptureKinds {
			moves = append(moves, NewMove(from, to, k, Pawn, captured))
		}
		return moves
	}
	return append(moves, NewMove(from, to, CaptureKind, Pawn, captured))
}

// castleSpec describes one of the four possible castling moves.
type castleSpec struct {
	right    CastlingRights
	side     Color
	kingFrom Square
	kingTo   Square
	between  Bitboard
	kind     Kind
}

var castleSpecs = [...]castleSpec{
	{CastlingWhiteOO, White, SqE1, SqG1, SqF1.Bitboard() | SqG1.Bitboard(), CastleShort},
	{CastlingWhiteOOO, White, SqE1, SqC1, SqB1.Bitboard() | SqC1.Bitboard() | SqD1.Bitboard(), CastleLong},
	{CastlingBlackOO, Black, SqE8, SqG8, SqF8.Bitboard() | SqG8.Bitboard(), CastleShort},
	{CastlingBlackOOO, Black, SqE8, SqC8, SqB8.Bitboard() | SqC8.Bitboard() | SqD8.Bitboard(), CastleLong},
}

func genCastles(p *position.Position, side Color, moves []Move) []Move {
	occupied := p.OccupiedAll()
	rights := p.CastlingRights()
	opponent := side.Flip()
	for _, spec := range castleSpecs {
		if spec.side != side || !rights.Has(spec.right) {
			continue
		}
		if occupied&spec.between != 0 {
			continue
		}
		mid := (spec.kingFrom + spec.kingTo) / 2
		if p.IsSquareAttacked(spec.kingFrom, opponent) ||
			p.IsSquareAttacked(mid, opponent) ||
			p.IsSquareAttacked(spec.kingTo, opponent) {
			continue
		}
		moves = append(moves, NewMove(spec.kingFrom, spec.kingTo, spec.kind, King, PtNone))
	}
	return moves
}
