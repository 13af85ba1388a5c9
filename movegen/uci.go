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

package movegen

import (
	"strings"

	"github.com/nimblechess/enginecore/position"
	. "github.com/nimblechess/enginecore/types"
)

var uciPromoPieces = map[byte]PieceType{
	'n': Knight,
	'b': Bishop,
	'r': Rook,
	'q': Queen,
}

// MoveFromUci decodes UCI move text ("<from><to>[promo]", e.g. "e2e4" or
// "e7e8q") and resolves it against p's legal moves. It returns
// *position.MoveDecodeError if the text is malformed or does not name a
// legal move in p.
func MoveFromUci(p *position.Position, text string) (Move, error) {
	text = strings.TrimSpace(text)
	if len(text) != 4 && len(text) != 5 {
		return MoveNone, &position.MoveDecodeError{Text: text, Msg: "expected 4 or 5 characters"}
	}

	from := MakeSquare(text[0:2])
	if from == SqNone {
		return MoveNone, &position.MoveDecodeError{Text: text, Msg: "invalid from-square"}
	}
	to := MakeSquare(text[2:4])
	if to == SqNone {
		return MoveNone, &position.MoveDecodeError{Text: text, Msg: "invalid to-square"}
	}

	wantPromo := PtNone
	if len(text) == 5 {
		pt, ok := uciPromoPieces[text[4]]
		if !ok {
			return MoveNone, &position.MoveDecodeError{Text: text, Msg: "invalid promotion piece"}
		}
		wantPromo = pt
	}

	side := p.SideToMove()
	for _, m := range GeneratePseudoLegalMoves(p) {
		if m.From() != from || m.To() != to || m.PromotionPieceType() != wantPromo {
			continue
		}
		p.DoMove(m)
		inCheck := p.IsInCheck(side)
		p.UndoMove(m)
		if inCheck {
			continue
		}
		return m, nil
	}

	return MoveNone, &position.MoveDecodeError{Text: text, Msg: "not a legal move in this position"}
}
