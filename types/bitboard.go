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

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard holds one bit per square on the board.
type Bitboard uint64

// various constant bitboards for convenience
//noinspection ALL
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = 1

	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb Bitboard = FileA_Bb << 1
	FileC_Bb Bitboard = FileA_Bb << 2
	FileD_Bb Bitboard = FileA_Bb << 3
	FileE_Bb Bitboard = FileA_Bb << 4
	FileF_Bb Bitboard = FileA_Bb << 5
	FileG_Bb Bitboard = FileA_Bb << 6
	FileH_Bb Bitboard = FileA_Bb << 7

	Rank1_Bb Bitboard = 0xFF
	Rank2_Bb Bitboard = Rank1_Bb << (8 * 1)
	Rank3_Bb Bitboard = Rank1_Bb << (8 * 2)
	Rank4_Bb Bitboard = Rank1_Bb << (8 * 3)
	Rank5_Bb Bitboard = Rank1_Bb << (8 * 4)
	Rank6_Bb Bitboard = Rank1_Bb << (8 * 5)
	Rank7_Bb Bitboard = Rank1_Bb << (8 * 6)
	Rank8_Bb Bitboard = Rank1_Bb << (8 * 7)
)

// fileBb/rankBb index File/Rank directly to their mask bitboard.
var fileBb = [FileLength]Bitboard{FileA_Bb, FileB_Bb, FileC_Bb, FileD_Bb, FileE_Bb, FileF_Bb, FileG_Bb, FileH_Bb}
var rankBb = [RankLength]Bitboard{Rank1_Bb, Rank2_Bb, Rank3_Bb, Rank4_Bb, Rank5_Bb, Rank6_Bb, Rank7_Bb, Rank8_Bb}

// Bb returns the file mask bitboard.
func (f File) Bb() Bitboard { return fileBb[f] }

// Bb returns the rank mask bitboard.
func (r Rank) Bb() Bitboard { return rankBb[r] }

// sqBb is the precomputed square-to-bitboard lookup, one bit set per square.
var sqBb [SqLength]Bitboard

func initBb() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = Bitboard(1) << uint(sq)
	}
	initSquareDistance()
}

// Bitboard returns a single-bit Bitboard for the square.
func (sq Square) Bitboard() Bitboard {
	return sqBb[sq]
}

// PushSquare sets the bit for the square in b.
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.Bitboard()
}

// PushSquare sets the bit for the square.
func (b *Bitboard) PushSquare(s Square) {
	*b |= s.Bitboard()
}

// PopSquare clears the bit for the square in b.
func PopSquare(b Bitboard, s Square) Bitboard {
	return b &^ s.Bitboard()
}

// PopSquare clears the bit for the square.
func (b *Bitboard) PopSquare(s Square) {
	*b &^= s.Bitboard()
}

// Has reports whether the square's bit is set.
func (b Bitboard) Has(s Square) bool {
	return b&s.Bitboard() != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the square of the least significant set bit, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the square of the most significant set bit, or SqNone if b is empty.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb returns the Lsb square and clears it from the bitboard.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// ShiftBitboard shifts all bits of b by one square in direction d, clearing
// bits that would wrap around a file edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileH_Bb) << 1
	case West:
		return (b &^ FileA_Bb) >> 1
	case Northeast:
		return (b &^ FileH_Bb) << 9
	case Southeast:
		return (b &^ FileH_Bb) >> 7
	case Southwest:
		return (b &^ FileA_Bb) >> 9
	case Northwest:
		return (b &^ FileA_Bb) << 7
	}
	return b
}

// EnumerateSubsets calls yield once for each subset of mask, including the
// empty subset and mask itself, using the Carry-Rippler trick. Used only at
// attack-table build time.
func EnumerateSubsets(mask Bitboard, yield func(subset Bitboard)) {
	subset := Bitboard(0)
	for {
		yield(subset)
		subset = (subset - mask) & mask
		if subset == 0 {
			break
		}
	}
}

// Str returns a raw 64-character string of the bits, msb first.
func (b Bitboard) Str() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// StrBoard returns an 8x8 ASCII board representation of the bitboard with
// rank 8 on top and file a on the left.
func (b Bitboard) StrBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return os.String()
}
