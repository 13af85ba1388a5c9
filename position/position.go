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

// Package position implements the board representation: twelve piece
// bitboards plus aggregates, FEN parsing/emission, Zobrist hashing, and the
// reversible make/unmake machinery the generator, perft driver and search
// all share.
package position

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/nimblechess/enginecore/types"
)

// undoState is the irreversible part of Position snapshotted before each
// DoMove, so UndoMove can restore it without recomputation.
type undoState struct {
	captured       PieceType
	epSquare       Square
	castlingRights CastlingRights
	halfMoveClock  int
	hash           Key
}

// Position is the canonical board datum: twelve piece bitboards indexed by
// (side, piece kind), aggregate occupancy per side, the irreversible state
// (side to move, castling rights, en-passant target, halfmove clock,
// fullmove number), the Zobrist hash, and a fixed-capacity undo stack.
type Position struct {
	board      [SqLength]Piece
	piecesBb   [ColorLength][PtLength]Bitboard
	occupiedBb [ColorLength]Bitboard
	kingSquare [ColorLength]Square

	sideToMove     Color
	castlingRights CastlingRights
	epSquare       Square
	halfMoveClock  int
	fullMoveNumber int
	hash           Key

	ply  int
	undo [MaxMoves]undoState
}

// New returns a Position set up at the standard starting position.
func New() *Position {
	p, err := NewFen(StartFen)
	if err != nil {
		panic(fmt.Sprintf("start fen must always be valid: %s", err))
	}
	return p
}

// NewFen parses fen and returns the Position it describes, or a *FenError if
// fen is malformed.
func NewFen(fen string) (*Position, error) {
	initZobrist()
	p := &Position{epSquare: SqNone}
	if err := p.setupFromFen(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// PieceOn returns the piece on sq, or PieceNone if sq is empty.
func (p *Position) PieceOn(sq Square) Piece { return p.board[sq] }

// Pieces returns the bitboard of pieces of the given color and kind.
func (p *Position) Pieces(c Color, pt PieceType) Bitboard { return p.piecesBb[c][pt] }

// Occupied returns the aggregate occupancy bitboard for color c.
func (p *Position) Occupied(c Color) Bitboard { return p.occupiedBb[c] }

// OccupiedAll returns the union of both sides' occupancy.
func (p *Position) OccupiedAll() Bitboard { return p.occupiedBb[White] | p.occupiedBb[Black] }

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the current en-passant target, or SqNone.
func (p *Position) EnPassantSquare() Square { return p.epSquare }

// HalfMoveClock returns the halfmove clock (since the last pawn move or capture).
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// FullMoveNumber returns the fullmove number.
func (p *Position) FullMoveNumber() int { return p.fullMoveNumber }

// Hash returns the current Zobrist position hash.
func (p *Position) Hash() Key { return p.hash }

// Ply returns the number of makes not yet undone (the undo stack depth).
func (p *Position) Ply() int { return p.ply }

// Copy returns an independent deep copy, for parallel search workers that
// each need their own mutable position.
func (p *Position) Copy() *Position {
	cp := *p
	return &cp
}

func (p *Position) putPiece(pc Piece, sq Square) {
	c := pc.ColorOf()
	pt := pc.TypeOf()
	p.board[sq] = pc
	p.piecesBb[c][pt].PushSquare(sq)
	p.occupiedBb[c].PushSquare(sq)
	if pt == King {
		p.kingSquare[c] = sq
	}
	p.hash ^= zobristBase.pieces[pc][sq]
}

func (p *Position) removePiece(sq Square) Piece {
	pc := p.board[sq]
	c := pc.ColorOf()
	pt := pc.TypeOf()
	p.board[sq] = PieceNone
	p.piecesBb[c][pt].PopSquare(sq)
	p.occupiedBb[c].PopSquare(sq)
	p.hash ^= zobristBase.pieces[pc][sq]
	return pc
}

func (p *Position) movePiece(from, to Square) {
	p.putPiece(p.removePiece(from), to)
}

func (p *Position) setCastlingRights(cr CastlingRights) {
	p.hash ^= zobristBase.castlingRights[p.castlingRights]
	p.castlingRights = cr
	p.hash ^= zobristBase.castlingRights[p.castlingRights]
}

func (p *Position) clearEnPassant() {
	if p.epSquare != SqNone {
		p.hash ^= zobristBase.enPassantFile[p.epSquare.FileOf()]
		p.epSquare = SqNone
	}
}

func (p *Position) setEnPassant(sq Square) {
	p.epSquare = sq
	p.hash ^= zobristBase.enPassantFile[sq.FileOf()]
}

// castleRookSquares maps a castle move's king destination square to the
// rook's (from, to) squares for the same move.
var castleRookSquares = map[Square][2]Square{
	SqG1: {SqH1, SqF1},
	SqC1: {SqA1, SqD1},
	SqG8: {SqH8, SqF8},
	SqC8: {SqA8, SqD8},
}

// homeCastlingRight maps a rook's home square to the castling right it guards.
var homeCastlingRight = map[Square]CastlingRights{
	SqH1: CastlingWhiteOO,
	SqA1: CastlingWhiteOOO,
	SqH8: CastlingBlackOO,
	SqA8: CastlingBlackOOO,
}

// DoMove applies m to the position and pushes an undo record. DoMove does
// not check legality: the caller applies the move, then checks IsInCheck for
// the side that just moved and calls UndoMove if the move turns out illegal.
func (p *Position) DoMove(m Move) {
	if p.ply >= MaxMoves {
		panic("position: exceeded maximum supported game length")
	}
	mover := p.sideToMove
	from, to, kind := m.From(), m.To(), m.Kind()

	p.undo[p.ply] = undoState{
		captured:       m.Captured,
		epSquare:       p.epSquare,
		castlingRights: p.castlingRights,
		halfMoveClock:  p.halfMoveClock,
		hash:           p.hash,
	}
	p.ply++

	p.clearEnPassant()

	switch kind {
	case CastleShort, CastleLong:
		rook := castleRookSquares[to]
		p.movePiece(from, to)
		p.movePiece(rook[0], rook[1])
		if mover == White {
			p.setCastlingRights(p.castlingRights &^ CastlingWhite)
		} else {
			p.setCastlingRights(p.castlingRights &^ CastlingBlack)
		}
		p.halfMoveClock++

	case EnPassantCapture:
		capSq := to.To(Direction(mover.Flip().MoveDirection()) * North)
		p.removePiece(capSq)
		p.movePiece(from, to)
		p.halfMoveClock = 0

	case PromoKnight, PromoBishop, PromoRook, PromoQueen,
		PromoCaptureKnight, PromoCaptureBishop, PromoCaptureRook, PromoCaptureQueen:
		if m.IsCapture() {
			p.removePiece(to)
		}
		p.removePiece(from)
		p.putPiece(MakePiece(mover, m.PromotionPieceType()), to)
		p.halfMoveClock = 0

	default: // Quiet, DoublePawnPush, CaptureKind
		if m.IsCapture() {
			p.removePiece(to)
			p.halfMoveClock = 0
		} else if m.Piece == Pawn {
			p.halfMoveClock = 0
		} else {
			p.halfMoveClock++
		}
		p.movePiece(from, to)
		if kind == DoublePawnPush {
			p.setEnPassant(to.To(Direction(mover.Flip().MoveDirection()) * North))
		}
	}

	// castling-rights invalidation for plain king/rook moves and rook captures,
	// independent of the switch above (a castle move already cleared its own rights).
	if p.castlingRights != CastlingNone {
		cr := p.castlingRights
		if m.Piece == King && kind != CastleShort && kind != CastleLong {
			if mover == White {
				cr &^= CastlingWhite
			} else {
				cr &^= CastlingBlack
			}
		}
		if right, ok := homeCastlingRight[from]; ok {
			cr &^= right
		}
		if right, ok := homeCastlingRight[to]; ok {
			cr &^= right
		}
		if cr != p.castlingRights {
			p.setCastlingRights(cr)
		}
	}

	if mover == Black {
		p.fullMoveNumber++
	}
	p.sideToMove = p.sideToMove.Flip()
	p.hash ^= zobristBase.nextPlayer
}

// UndoMove reverses the most recent DoMove, restoring the position exactly,
// including the hash and aggregate occupancies.
func (p *Position) UndoMove(m Move) {
	p.sideToMove = p.sideToMove.Flip()
	mover := p.sideToMove

	p.ply--
	u := p.undo[p.ply]

	from, to, kind := m.From(), m.To(), m.Kind()

	switch kind {
	case CastleShort, CastleLong:
		rook := castleRookSquares[to]
		p.movePiece(to, from)
		p.movePiece(rook[1], rook[0])

	case EnPassantCapture:
		p.movePiece(to, from)
		capSq := to.To(Direction(mover.Flip().MoveDirection()) * North)
		p.putPiece(MakePiece(mover.Flip(), Pawn), capSq)

	case PromoKnight, PromoBishop, PromoRook, PromoQueen,
		PromoCaptureKnight, PromoCaptureBishop, PromoCaptureRook, PromoCaptureQueen:
		p.removePiece(to)
		p.putPiece(MakePiece(mover, Pawn), from)
		if u.captured != PtNone {
			p.putPiece(MakePiece(mover.Flip(), u.captured), to)
		}

	default: // Quiet, DoublePawnPush, CaptureKind
		p.movePiece(to, from)
		if u.captured != PtNone {
			p.putPiece(MakePiece(mover.Flip(), u.captured), to)
		}
	}

	p.castlingRights = u.castlingRights
	p.epSquare = u.epSquare
	p.halfMoveClock = u.halfMoveClock
	p.hash = u.hash
	if mover == Black {
		p.fullMoveNumber--
	}
}

// String renders the FEN followed by an ASCII board.
func (p *Position) String() string {
	var os strings.Builder
	os.WriteString(p.Fen())
	os.WriteString("\n")
	os.WriteString(p.StringBoard())
	return os.String()
}

// StringBoard renders an 8x8 ASCII board with rank 8 on top.
func (p *Position) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			os.WriteString("| ")
			os.WriteString(p.board[SquareOf(f, r)].String())
			os.WriteString(" ")
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return os.String()
}

// Fen renders the position as a standard six-field FEN string.
func (p *Position) Fen() string {
	var fen strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				fen.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			fen.WriteString(pc.String())
		}
		if empty > 0 {
			fen.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			fen.WriteString("/")
		}
		if r == Rank1 {
			break
		}
	}
	fen.WriteString(" ")
	fen.WriteString(p.sideToMove.Str())
	fen.WriteString(" ")
	fen.WriteString(castlingRightsString(p.castlingRights))
	fen.WriteString(" ")
	fen.WriteString(p.epSquare.String())
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.halfMoveClock))
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.fullMoveNumber))
	return fen.String()
}

func castlingRightsString(cr CastlingRights) string {
	if cr == CastlingNone {
		return "-"
	}
	var os strings.Builder
	if cr.Has(CastlingWhiteOO) {
		os.WriteString("K")
	}
	if cr.Has(CastlingWhiteOOO) {
		os.WriteString("Q")
	}
	if cr.Has(CastlingBlackOO) {
		os.WriteString("k")
	}
	if cr.Has(CastlingBlackOOO) {
		os.WriteString("q")
	}
	return os.String()
}

// setupFromFen parses a standard six-field FEN and initializes p. Trailing
// fields (side to move, castling, en passant, clocks) are optional and
// default as if the position were White to move with no special rights.
func (p *Position) setupFromFen(fen string) error {
	fen = strings.TrimSpace(fen)
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return &FenError{Fen: fen, Msg: "fen must not be empty"}
	}

	sq := SqA8
	file := FileA
	for _, c := range fields[0] {
		switch {
		case c == '/':
			if file != FileLength {
				return &FenError{Fen: fen, Msg: "rank ended before reaching the h-file"}
			}
			sq = sq.To(South).To(South)
			file = FileA
		case c >= '1' && c <= '8':
			n := int(c - '0')
			sq += Square(n)
			file += File(n)
		default:
			pc := PieceFromChar(string(c))
			if pc == PieceNone {
				return &FenError{Fen: fen, Msg: fmt.Sprintf("invalid piece character %q", string(c))}
			}
			if file >= FileLength {
				return &FenError{Fen: fen, Msg: "too many squares in rank"}
			}
			p.putPiece(pc, sq)
			sq++
			file++
		}
	}
	if file != FileLength {
		return &FenError{Fen: fen, Msg: "last rank did not fill all eight files"}
	}

	p.fullMoveNumber = 1
	p.epSquare = SqNone
	p.sideToMove = White

	if len(fields) >= 2 {
		switch fields[1] {
		case "w":
			p.sideToMove = White
		case "b":
			p.sideToMove = Black
			p.hash ^= zobristBase.nextPlayer
		default:
			return &FenError{Fen: fen, Msg: "side to move must be 'w' or 'b'"}
		}
	}

	if len(fields) >= 3 {
		if fields[2] != "-" {
			for _, c := range fields[2] {
				switch c {
				case 'K':
					p.castlingRights.Add(CastlingWhiteOO)
				case 'Q':
					p.castlingRights.Add(CastlingWhiteOOO)
				case 'k':
					p.castlingRights.Add(CastlingBlackOO)
				case 'q':
					p.castlingRights.Add(CastlingBlackOOO)
				default:
					return &FenError{Fen: fen, Msg: fmt.Sprintf("invalid castling character %q", string(c))}
				}
			}
		}
		p.hash ^= zobristBase.castlingRights[p.castlingRights]
	}

	if len(fields) >= 4 && fields[3] != "-" {
		ep := MakeSquare(fields[3])
		if ep == SqNone {
			return &FenError{Fen: fen, Msg: fmt.Sprintf("invalid en passant square %q", fields[3])}
		}
		p.epSquare = ep
		p.hash ^= zobristBase.enPassantFile[ep.FileOf()]
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return &FenError{Fen: fen, Msg: "halfmove clock must be a non-negative integer"}
		}
		p.halfMoveClock = n
	}

	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return &FenError{Fen: fen, Msg: "fullmove number must be a positive integer"}
		}
		p.fullMoveNumber = n
	}

	return nil
}
