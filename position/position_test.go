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
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/nimblechess/enginecore/types"
)

func TestMain(m *testing.M) {
	if err := InitTables(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestPositionCreationStartFen(t *testing.T) {
	p := New()
	assert.Equal(t, SqA1.Bitboard()|SqH1.Bitboard(), p.piecesBb[White][Rook])
	assert.Equal(t, SqA8.Bitboard()|SqH8.Bitboard(), p.piecesBb[Black][Rook])
	assert.Equal(t, SqB1.Bitboard()|SqG1.Bitboard(), p.piecesBb[White][Knight])
	assert.Equal(t, SqD1.Bitboard(), p.piecesBb[White][Queen])
	assert.Equal(t, SqE1.Bitboard(), p.piecesBb[White][King])
	assert.Equal(t, Rank2_Bb, p.piecesBb[White][Pawn])
	assert.Equal(t, Rank7_Bb, p.piecesBb[Black][Pawn])
	assert.Equal(t, White, p.sideToMove)
	assert.Equal(t, CastlingAny, p.castlingRights)
	assert.Equal(t, SqNone, p.epSquare)
	assert.Equal(t, 0, p.halfMoveClock)
	assert.Equal(t, 1, p.fullMoveNumber)
	assert.Equal(t, SqE1, p.kingSquare[White])
	assert.Equal(t, SqE8, p.kingSquare[Black])
	assert.Equal(t, StartFen, p.Fen())
}

func TestPositionCreationArbitraryFen(t *testing.T) {
	fen := "r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14"
	p, err := NewFen(fen)
	assert.NoError(t, err)
	assert.Equal(t, Black, p.sideToMove)
	assert.True(t, p.castlingRights.Has(CastlingBlackOO))
	assert.True(t, p.castlingRights.Has(CastlingBlackOOO))
	assert.False(t, p.castlingRights.Has(CastlingWhiteOO))
	assert.Equal(t, SqE3, p.epSquare)
	assert.Equal(t, 0, p.halfMoveClock)
	assert.Equal(t, 14, p.fullMoveNumber)
	assert.Equal(t, fen, p.Fen())
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		p, err := NewFen(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.Fen())
	}
}

func TestInvalidFen(t *testing.T) {
	_, err := NewFen("not a fen")
	assert.Error(t, err)

	_, err = NewFen("")
	assert.Error(t, err)

	_, err = NewFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	_, ok := err.(*FenError)
	assert.True(t, ok)
}

func TestDoMoveUndoMoveQuiet(t *testing.T) {
	p := New()
	before := *p
	m := NewMove(SqE2, SqE4, DoublePawnPush, Pawn, PtNone)

	p.DoMove(m)
	assert.Equal(t, Black, p.sideToMove)
	assert.Equal(t, SqE3, p.epSquare)
	assert.NotEqual(t, before.hash, p.hash)

	p.UndoMove(m)
	assert.Equal(t, before.board, p.board)
	assert.Equal(t, before.piecesBb, p.piecesBb)
	assert.Equal(t, before.occupiedBb, p.occupiedBb)
	assert.Equal(t, before.hash, p.hash)
	assert.Equal(t, before.sideToMove, p.sideToMove)
	assert.Equal(t, before.epSquare, p.epSquare)
	assert.Equal(t, before.castlingRights, p.castlingRights)
	assert.Equal(t, before.halfMoveClock, p.halfMoveClock)
	assert.Equal(t, before.fullMoveNumber, p.fullMoveNumber)
}

func TestDoMoveUndoMoveCapture(t *testing.T) {
	p, err := NewFen("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	assert.NoError(t, err)
	before := *p

	m := NewMove(SqE4, SqD5, CaptureKind, Pawn, Pawn)
	p.DoMove(m)
	assert.Equal(t, MakePiece(White, Pawn), p.PieceOn(SqD5))
	assert.Equal(t, PieceNone, p.PieceOn(SqE4))
	assert.Equal(t, 0, p.halfMoveClock)

	p.UndoMove(m)
	assert.Equal(t, before.board, p.board)
	assert.Equal(t, before.piecesBb, p.piecesBb)
	assert.Equal(t, before.hash, p.hash)
}

func TestDoMoveUndoMoveEnPassant(t *testing.T) {
	p, err := NewFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)
	before := *p

	m := NewMove(SqE5, SqD6, EnPassantCapture, Pawn, Pawn)
	p.DoMove(m)
	assert.Equal(t, MakePiece(White, Pawn), p.PieceOn(SqD6))
	assert.Equal(t, PieceNone, p.PieceOn(SqD5))
	assert.Equal(t, PieceNone, p.PieceOn(SqE5))

	p.UndoMove(m)
	assert.Equal(t, before.board, p.board)
	assert.Equal(t, before.piecesBb, p.piecesBb)
	assert.Equal(t, before.hash, p.hash)
}

func TestDoMoveUndoMoveCastling(t *testing.T) {
	p, err := NewFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	before := *p

	m := NewMove(SqE1, SqG1, CastleShort, King, PtNone)
	p.DoMove(m)
	assert.Equal(t, MakePiece(White, King), p.PieceOn(SqG1))
	assert.Equal(t, MakePiece(White, Rook), p.PieceOn(SqF1))
	assert.Equal(t, PieceNone, p.PieceOn(SqE1))
	assert.Equal(t, PieceNone, p.PieceOn(SqH1))
	assert.False(t, p.castlingRights.Has(CastlingWhiteOO))
	assert.False(t, p.castlingRights.Has(CastlingWhiteOOO))

	p.UndoMove(m)
	assert.Equal(t, before.board, p.board)
	assert.Equal(t, before.castlingRights, p.castlingRights)
	assert.Equal(t, before.hash, p.hash)
}

func TestDoMoveUndoMovePromotion(t *testing.T) {
	p, err := NewFen("1k6/4P3/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	before := *p

	m := NewMove(SqE7, SqE8, PromoQueen, Pawn, PtNone)
	p.DoMove(m)
	assert.Equal(t, MakePiece(White, Queen), p.PieceOn(SqE8))
	assert.Equal(t, PieceNone, p.PieceOn(SqE7))

	p.UndoMove(m)
	assert.Equal(t, before.board, p.board)
	assert.Equal(t, before.piecesBb, p.piecesBb)
	assert.Equal(t, before.hash, p.hash)
}

func TestRookMoveRemovesCastlingRight(t *testing.T) {
	p, err := NewFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	m := NewMove(SqA1, SqB1, Quiet, Rook, PtNone)
	p.DoMove(m)
	assert.False(t, p.castlingRights.Has(CastlingWhiteOOO))
	assert.True(t, p.castlingRights.Has(CastlingWhiteOO))
}

func TestIsSquareAttackedStartPosition(t *testing.T) {
	p := New()
	assert.False(t, p.IsSquareAttacked(SqE4, White))
	assert.False(t, p.IsSquareAttacked(SqE4, Black))
	assert.True(t, p.IsSquareAttacked(SqE3, White))
	assert.True(t, p.IsSquareAttacked(SqD3, White))
}

func TestIsInCheck(t *testing.T) {
	p, err := NewFen("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, p.IsSquareAttacked(SqE1, Black))
	assert.True(t, p.IsInCheck(White))
	assert.False(t, p.IsInCheck(Black))
}

func TestCopyIsIndependent(t *testing.T) {
	p := New()
	cp := p.Copy()
	m := NewMove(SqE2, SqE4, DoublePawnPush, Pawn, PtNone)
	cp.DoMove(m)
	assert.NotEqual(t, p.sideToMove, cp.sideToMove)
	assert.Equal(t, White, p.sideToMove)
}
