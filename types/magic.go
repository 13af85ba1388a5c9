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

package types

import (
	"fmt"
	"sync"

	"github.com/nimblechess/enginecore/magicdata"
)

// TableInitError reports a failure while building the process-wide attack
// tables: a missing or malformed magic resource, or a magic multiplier that
// collides while populating a square's attack table.
type TableInitError struct {
	Msg string
}

func (e *TableInitError) Error() string {
	return fmt.Sprintf("attack table init failed: %s", e.Msg)
}

// Magic holds all magic bitboard data relevant for a single square.
// https://www.chessprogramming.org/Magic_Bitboards
type Magic struct {
	Mask    Bitboard
	Magic   uint64
	Attacks []Bitboard
	Shift   uint
}

// index calculates the index in Attacks for the given occupancy.
//   occ      &= mask
//   occ      *= magic
//   occ     >>= shift
func (m *Magic) index(occupied Bitboard) uint {
	occ := uint64(occupied & m.Mask)
	occ *= m.Magic
	return uint(occ >> m.Shift)
}

var (
	pseudoAttacks [PtLength][SqLength]Bitboard
	pawnAttacks   [2][SqLength]Bitboard

	rookMagics   [SqLength]Magic
	bishopMagics [SqLength]Magic

	rookRay   [SqLength]Bitboard // empty-board rook ray, a cheap pre-filter
	bishopRay [SqLength]Bitboard // empty-board bishop ray, a cheap pre-filter

	tablesOnce sync.Once
	tablesErr  error
)

var rookDirections = [4]Direction{North, South, East, West}
var bishopDirections = [4]Direction{Northeast, Northwest, Southeast, Southwest}

// knightOffset is one of the eight knight/king move deltas in
// (fileDelta, rankDelta) form.
type knightOffset struct{ df, dr int }

var knightOffsets = [8]knightOffset{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8]knightOffset{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// InitTables builds the process-wide attack tables: pawn/knight/king pseudo
// attacks and the rook/bishop magic lookup tables loaded from the packaged
// magic resource. It is idempotent and safe to call from multiple
// goroutines; only the first call does any work and every caller observes
// its result.
func InitTables() error {
	tablesOnce.Do(func() {
		initBb()
		initPawnAttacks()
		initKnightAndKingAttacks()
		tablesErr = initMagicTables()
	})
	return tablesErr
}

func initPawnAttacks() {
	for sq := SqA1; sq < SqNone; sq++ {
		b := sq.Bitboard()
		pawnAttacks[White][sq] = ShiftBitboard(b, Northeast) | ShiftBitboard(b, Northwest)
		pawnAttacks[Black][sq] = ShiftBitboard(b, Southeast) | ShiftBitboard(b, Southwest)
	}
}

func initKnightAndKingAttacks() {
	for sq := SqA1; sq < SqNone; sq++ {
		f, r := int(sq.FileOf()), int(sq.RankOf())
		var kn, kg Bitboard
		for _, o := range knightOffsets {
			nf, nr := f+o.df, r+o.dr
			if nf >= 0 && nf < FileLength && nr >= 0 && nr < RankLength {
				kn.PushSquare(SquareOf(File(nf), Rank(nr)))
			}
		}
		for _, o := range kingOffsets {
			nf, nr := f+o.df, r+o.dr
			if nf >= 0 && nf < FileLength && nr >= 0 && nr < RankLength {
				kg.PushSquare(SquareOf(File(nf), Rank(nr)))
			}
		}
		pseudoAttacks[Knight][sq] = kn
		pseudoAttacks[King][sq] = kg
	}
}

// PawnAttacks returns the squares a pawn of the given color on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard { return pawnAttacks[c][sq] }

// initMagicTables loads the packaged magic multipliers, derives each
// square's relevant-occupancy mask from sliding-piece geometry, and
// populates the dense attack lookup tables by enumerating every occupancy
// subset of the mask (Carry-Rippler). Unlike the original runtime PRNG
// search, the magic multiplier itself comes from the embedded resource;
// a multiplier that fails to produce a collision-free table is reported as
// a TableInitError rather than retried, since there is no generator to retry
// with.
func initMagicTables() error {
	rookEntries, bishopEntries, err := magicdata.Load()
	if err != nil {
		return &TableInitError{Msg: err.Error()}
	}
	if err := populate(&rookMagics, rookEntries, rookDirections); err != nil {
		return err
	}
	if err := populate(&bishopMagics, bishopEntries, bishopDirections); err != nil {
		return err
	}
	for sq := SqA1; sq < SqNone; sq++ {
		rookRay[sq] = slidingAttack(&rookDirections, sq, BbZero)
		bishopRay[sq] = slidingAttack(&bishopDirections, sq, BbZero)
	}
	return nil
}

func populate(magics *[SqLength]Magic, entries [64]magicdata.Entry, directions [4]Direction) error {
	for sq := SqA1; sq < SqNone; sq++ {
		edges := ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())
		mask := slidingAttack(&directions, sq, BbZero) &^ edges

		m := &magics[sq]
		m.Mask = mask
		m.Magic = entries[sq].Magic
		m.Shift = uint(64 - mask.PopCount())

		size := 1 << uint(mask.PopCount())
		m.Attacks = make([]Bitboard, size)
		filled := make([]bool, size)

		var failure error
		EnumerateSubsets(mask, func(occ Bitboard) {
			if failure != nil {
				return
			}
			attack := slidingAttack(&directions, sq, occ)
			idx := m.index(occ)
			if filled[idx] {
				if m.Attacks[idx] != attack {
					failure = &TableInitError{Msg: fmt.Sprintf("magic collision at square %s", sq)}
				}
				return
			}
			filled[idx] = true
			m.Attacks[idx] = attack
		})
		if failure != nil {
			return failure
		}
	}
	return nil
}

// slidingAttack calculates sliding attacks along the given directions for
// the given square and board occupation. Only used at attack-table build
// time, never during move generation or search.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for i := 0; i < 4; i++ {
		s := sq
		for {
			next := s.To(directions[i])
			if next == SqNone {
				break
			}
			s = next
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// AttacksBb returns a bitboard representing all the squares attacked by a
// piece of the given type pt (not pawn) placed on s. Sliding pieces use the
// magic bitboard attack arrays; knight and king use the precomputed pseudo
// attacks.
func AttacksBb(pt PieceType, s Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		m := &bishopMagics[s]
		return m.Attacks[m.index(occupied)]
	case Rook:
		m := &rookMagics[s]
		return m.Attacks[m.index(occupied)]
	case Queen:
		mb := &bishopMagics[s]
		mr := &rookMagics[s]
		return mb.Attacks[mb.index(occupied)] | mr.Attacks[mr.index(occupied)]
	default:
		return pseudoAttacks[pt][s]
	}
}

// RookRay returns the empty-board rook ray from sq, a cheap pre-filter
// usable before a magic lookup when testing for a possible attack.
func RookRay(sq Square) Bitboard { return rookRay[sq] }

// BishopRay returns the empty-board bishop ray from sq, a cheap pre-filter
// usable before a magic lookup when testing for a possible attack.
func BishopRay(sq Square) Bitboard { return bishopRay[sq] }
