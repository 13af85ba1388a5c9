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
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nimblechess/enginecore/logging"
	"github.com/nimblechess/enginecore/position"
	. "github.com/nimblechess/enginecore/types"
)

var log = logging.GetLog()
var out = message.NewPrinter(language.German)

// PerftStats counts the leaves of the legal move tree below a position to a
// fixed depth; the golden-path harness move generation is checked against.
type PerftStats struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
}

// NewPerft returns an empty PerftStats counter set.
func NewPerft() *PerftStats {
	return &PerftStats{}
}

// Run computes perft(depth) from fen and returns the node count, logging a
// summary of the statistics gathered along the way.
func (pf *PerftStats) Run(fen string, depth int) (uint64, error) {
	pf.reset()
	pos, err := position.NewFen(fen)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	nodes := pf.search(pos, depth)
	elapsed := time.Since(start)
	pf.Nodes = nodes

	log.Debugf("perft fen=%q depth=%d nodes=%d elapsed=%s", fen, depth, nodes, elapsed)
	out.Printf("perft depth=%d nodes=%d captures=%d en-passant=%d castles=%d promotions=%d checks=%d mates=%d\n",
		depth, pf.Nodes, pf.CaptureCounter, pf.EnpassantCounter, pf.CastleCounter, pf.PromotionCounter, pf.CheckCounter, pf.CheckMateCounter)

	return nodes, nil
}

// search is the recursive perft core shared with plain Perft: generate
// pseudo-legal moves, make each, discard it (and don't recurse) if it left
// the mover's own king in check, otherwise recurse and accumulate.
func (pf *PerftStats) search(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	mover := pos.SideToMove()
	for _, m := range GeneratePseudoLegalMoves(pos) {
		pos.DoMove(m)
		if pos.IsInCheck(mover) {
			pos.UndoMove(m)
			continue
		}
		if depth == 1 {
			nodes++
			pf.tally(pos, m)
		} else {
			nodes += pf.search(pos, depth-1)
		}
		pos.UndoMove(m)
	}
	return nodes
}

func (pf *PerftStats) tally(pos *position.Position, m Move) {
	if m.IsCapture() {
		pf.CaptureCounter++
	}
	if m.IsEnPassant() {
		pf.EnpassantCounter++
	}
	if m.IsCastle() {
		pf.CastleCounter++
	}
	if m.IsPromotion() {
		pf.PromotionCounter++
	}
	side := pos.SideToMove()
	if pos.IsInCheck(side) {
		pf.CheckCounter++
		mated := true
		for _, reply := range GeneratePseudoLegalMoves(pos) {
			pos.DoMove(reply)
			legal := !pos.IsInCheck(side)
			pos.UndoMove(reply)
			if legal {
				mated = false
				break
			}
		}
		if mated {
			pf.CheckMateCounter++
		}
	}
}

// reset zeroes all counters before a new run.
func (pf *PerftStats) reset() {
	*pf = PerftStats{}
}

// Perft is a convenience one-shot wrapper for Run that discards statistics.
func Perft(fen string, depth int) (uint64, error) {
	return NewPerft().Run(fen, depth)
}
