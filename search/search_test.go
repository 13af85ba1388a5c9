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

package search

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nimblechess/enginecore/config"
	"github.com/nimblechess/enginecore/position"
	"github.com/nimblechess/enginecore/transpositiontable"
	. "github.com/nimblechess/enginecore/types"
)

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	if err := InitTables(); err != nil {
		panic(err)
	}
	config.Setup()
	code := m.Run()
	os.Exit(code)
}

// TestSearchFindsMateInOne sets up a back-rank mate position where white
// mates in one move with Qd1-d8# and asserts Search finds it at depth 1.
// The black king on h8 is boxed in by its own pawns on g7 and h7; g8 is its
// only flight square, and it lies on the queen's checking ray.
func TestSearchFindsMateInOne(t *testing.T) {
	p, err := position.NewFen("7k/6pp/8/8/8/8/8/3QK3 w - - 0 1")
	assert.NoError(t, err)

	tt := transpositiontable.NewTtTable(1)
	m, value, err := Search(p, 1, tt)
	assert.NoError(t, err)
	assert.Equal(t, SqD1, m.From())
	assert.Equal(t, SqD8, m.To())
	assert.True(t, value.IsCheckMateValue())
	assert.True(t, value > 0, "mate in one must score as a large positive value for the side delivering it")
}

// TestSearchReportsNoLegalMoveOnStalemate checks that Search returns
// NoLegalMoveError for a position where the side to move has no legal
// reply and is not in check.
func TestSearchReportsNoLegalMoveOnStalemate(t *testing.T) {
	p, err := position.NewFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)

	tt := transpositiontable.NewTtTable(1)
	_, _, err = Search(p, 2, tt)
	assert.Error(t, err)
	_, ok := err.(*NoLegalMoveError)
	assert.True(t, ok)
	assert.False(t, p.IsInCheck(p.SideToMove()))
}

// TestSearchReportsNoLegalMoveOnCheckmate checks that Search returns
// NoLegalMoveError for a position where the side to move is checkmated.
func TestSearchReportsNoLegalMoveOnCheckmate(t *testing.T) {
	p, err := position.NewFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.NoError(t, err)

	tt := transpositiontable.NewTtTable(1)
	_, _, err = Search(p, 2, tt)
	assert.Error(t, err)
	_, ok := err.(*NoLegalMoveError)
	assert.True(t, ok)
	assert.True(t, p.IsInCheck(p.SideToMove()))
}

// TestSearchIsStableUnderDeepening checks that a deeper search does not
// reverse the obviously best move in a simple material-winning position:
// white can capture an undefended rook with the queen.
func TestSearchIsStableUnderDeepening(t *testing.T) {
	p, err := position.NewFen("4k3/8/8/3r4/8/8/8/3QK3 w - - 0 1")
	assert.NoError(t, err)

	tt := transpositiontable.NewTtTable(1)
	m, _, err := Search(p, 3, tt)
	assert.NoError(t, err)
	assert.Equal(t, SqD1, m.From())
	assert.Equal(t, SqD5, m.To())
}

// TestParallelSearchFindsMateInOne checks that the multi-worker root search
// finds the same mate in one as the single-threaded search.
func TestParallelSearchFindsMateInOne(t *testing.T) {
	p, err := position.NewFen("7k/6pp/8/8/8/8/8/3QK3 w - - 0 1")
	assert.NoError(t, err)

	m, value, err := ParallelSearch(p, 1, 4)
	assert.NoError(t, err)
	assert.Equal(t, SqD1, m.From())
	assert.Equal(t, SqD8, m.To())
	assert.True(t, value.IsCheckMateValue())
}

// TestParallelSearchReportsNoLegalMove checks that ParallelSearch surfaces
// NoLegalMoveError for a checkmated side to move, same as Search.
func TestParallelSearchReportsNoLegalMove(t *testing.T) {
	p, err := position.NewFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.NoError(t, err)

	_, _, err = ParallelSearch(p, 2, 4)
	assert.Error(t, err)
	_, ok := err.(*NoLegalMoveError)
	assert.True(t, ok)
}
