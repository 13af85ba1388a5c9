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

import "fmt"

// Square represents exactly one square on a chess board. a1 is 0, h1 is 7,
// a8 is 56, h8 is 63 (little-endian rank-file mapping).
type Square int8

//noinspection ALL
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8   // 63
	SqNone // 64
)

// SqLength is the number of squares on a chess board.
const SqLength = 64

// IsValid checks if sq represents a valid square on a chess board (sq < 64).
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq < SqNone
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// SquareOf returns a square from a file and a rank. Returns SqNone for
// invalid files or ranks.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int8(r)<<3 + int8(f))
}

// MakeSquare parses a two character square string (e.g. "e4") and returns
// the corresponding square, or SqNone if the string is not a valid square.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := File(s[0] - 'a')
	rank := Rank(s[1] - '1')
	if !file.IsValid() || !rank.IsValid() {
		return SqNone
	}
	return SquareOf(file, rank)
}

// String returns the file letter followed by the rank number (e.g. "e5").
// Returns "-" for an invalid square.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// To returns the square reached by moving one step in direction d from sq,
// or SqNone if that would leave the board.
func (sq Square) To(d Direction) Square {
	switch d {
	case North:
		if sq.RankOf() == Rank8 {
			return SqNone
		}
	case South:
		if sq.RankOf() == Rank1 {
			return SqNone
		}
	case East:
		if sq.FileOf() == FileH {
			return SqNone
		}
	case West:
		if sq.FileOf() == FileA {
			return SqNone
		}
	case Northeast:
		if sq.FileOf() == FileH || sq.RankOf() == Rank8 {
			return SqNone
		}
	case Southeast:
		if sq.FileOf() == FileH || sq.RankOf() == Rank1 {
			return SqNone
		}
	case Southwest:
		if sq.FileOf() == FileA || sq.RankOf() == Rank1 {
			return SqNone
		}
	case Northwest:
		if sq.FileOf() == FileA || sq.RankOf() == Rank8 {
			return SqNone
		}
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
	return sq + Square(d)
}

// squareDistance[s1][s2] is the Chebyshev distance between two squares,
// precomputed at init time.
var squareDistance [SqLength][SqLength]int

func initSquareDistance() {
	for s1 := SqA1; s1 < SqNone; s1++ {
		for s2 := SqA1; s2 < SqNone; s2++ {
			fd := fileDistance(s1.FileOf(), s2.FileOf())
			rd := rankDistance(s1.RankOf(), s2.RankOf())
			if fd > rd {
				squareDistance[s1][s2] = fd
			} else {
				squareDistance[s1][s2] = rd
			}
		}
	}
}

// SquareDistance returns the Chebyshev distance in squares between two squares.
func SquareDistance(s1, s2 Square) int {
	return squareDistance[s1][s2]
}

func fileDistance(f1, f2 File) int {
	d := int(f2) - int(f1)
	if d < 0 {
		return -d
	}
	return d
}

func rankDistance(r1, r2 Rank) int {
	d := int(r2) - int(r1)
	if d < 0 {
		return -d
	}
	return d
}
