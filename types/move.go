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

package types

import "strings"

// MoveWord is the 16-bit packed move encoding.
//  bits 0-3   kind tag
//  bits 4-9   destination square
//  bits 10-15 source square
type MoveWord uint16

// Kind is the 4-bit move kind tag. Capture is bit 2 of the tag, promotion is
// bit 3, castle is the pattern 001x.
type Kind uint8

//noinspection ALL
const (
	Quiet              Kind = 0
	DoublePawnPush     Kind = 1
	CastleShort        Kind = 2
	CastleLong         Kind = 3
	CaptureKind        Kind = 4
	EnPassantCapture   Kind = 5
	PromoKnight        Kind = 8
	PromoBishop        Kind = 9
	PromoRook          Kind = 10
	PromoQueen         Kind = 11
	PromoCaptureKnight Kind = 12
	PromoCaptureBishop Kind = 13
	PromoCaptureRook   Kind = 14
	PromoCaptureQueen  Kind = 15
)

const (
	kindMask uint16 = 0xF
	toShift  uint   = 4
	toMask   uint16 = 0x3F << toShift
	fromShift uint  = 10
	fromMask  uint16 = 0x3F << fromShift
)

// NewMoveWord packs a from/to/kind triple into the 16-bit move encoding.
func NewMoveWord(from, to Square, k Kind) MoveWord {
	return MoveWord(uint16(k) | uint16(to)<<toShift | uint16(from)<<fromShift)
}

// Kind returns the move's kind tag.
func (m MoveWord) Kind() Kind {
	return Kind(uint16(m) & kindMask)
}

// To returns the destination square.
func (m MoveWord) To() Square {
	return Square((uint16(m) & toMask) >> toShift)
}

// From returns the source square.
func (m MoveWord) From() Square {
	return Square((uint16(m) & fromMask) >> fromShift)
}

// IsCapture reports whether the move's kind tag has the capture bit set.
func (m MoveWord) IsCapture() bool {
	return uint8(m.Kind())&0x4 != 0
}

// IsPromotion reports whether the move's kind tag has the promotion bit set.
func (m MoveWord) IsPromotion() bool {
	return uint8(m.Kind())&0x8 != 0
}

// IsCastle reports whether the move is a short or long castle.
func (m MoveWord) IsCastle() bool {
	k := m.Kind()
	return k == CastleShort || k == CastleLong
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m MoveWord) IsEnPassant() bool {
	return m.Kind() == EnPassantCapture
}

// PromotionPieceType returns the piece type promoted to, or PtNone if the
// move is not a promotion.
func (m MoveWord) PromotionPieceType() PieceType {
	switch m.Kind() {
	case PromoKnight, PromoCaptureKnight:
		return Knight
	case PromoBishop, PromoCaptureBishop:
		return Bishop
	case PromoRook, PromoCaptureRook:
		return Rook
	case PromoQueen, PromoCaptureQueen:
		return Queen
	default:
		return PtNone
	}
}

// StringUci renders the move word as UCI move text, e.g. "e2e4" or "e7e8q".
func (m MoveWord) StringUci() string {
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.IsPromotion() {
		os.WriteString(strings.ToLower(m.PromotionPieceType().Char()))
	}
	return os.String()
}

// Move is a move produced by the generator or decoded from UCI text. It
// wraps the 16-bit wire encoding with the moving piece type and, if any,
// the captured piece type cached alongside it so make/unmake and move
// ordering never need to re-scan the board to recover them.
type Move struct {
	Word     MoveWord
	Piece    PieceType // the moving piece's type
	Captured PieceType // PtNone unless the move is a capture
}

// MoveNone is the zero-value sentinel for "no move". MoveWord(0) decodes to
// a quiet move from a1 to a1, which can never occur as a real chess move.
var MoveNone = Move{}

// NewMove constructs an augmented Move.
func NewMove(from, to Square, k Kind, piece, captured PieceType) Move {
	return Move{Word: NewMoveWord(from, to, k), Piece: piece, Captured: captured}
}

// From returns the source square.
func (m Move) From() Square { return m.Word.From() }

// To returns the destination square.
func (m Move) To() Square { return m.Word.To() }

// Kind returns the move's kind tag.
func (m Move) Kind() Kind { return m.Word.Kind() }

// IsCapture reports whether the move captures a piece (including en passant).
func (m Move) IsCapture() bool { return m.Word.IsCapture() }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Word.IsPromotion() }

// IsCastle reports whether the move is a castle.
func (m Move) IsCastle() bool { return m.Word.IsCastle() }

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.Word.IsEnPassant() }

// PromotionPieceType returns the piece type promoted to, or PtNone.
func (m Move) PromotionPieceType() PieceType { return m.Word.PromotionPieceType() }

// IsNone reports whether m is the MoveNone sentinel.
func (m Move) IsNone() bool { return m == MoveNone }

// StringUci renders the move as UCI move text.
func (m Move) StringUci() string { return m.Word.StringUci() }

// String renders a move for debug/log output.
func (m Move) String() string {
	if m.IsNone() {
		return "(none)"
	}
	var os strings.Builder
	os.WriteString(m.StringUci())
	os.WriteString(" {")
	os.WriteString(m.Piece.Char())
	if m.Captured != PtNone {
		os.WriteString("x")
		os.WriteString(m.Captured.Char())
	}
	os.WriteString("}")
	return os.String()
}
