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

package evaluator

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nimblechess/enginecore/config"
	"github.com/nimblechess/enginecore/position"
	. "github.com/nimblechess/enginecore/types"
)

// make tests run in the project's root directory
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

func TestEvaluateStartPositionIsZero(t *testing.T) {
	e := NewEvaluator()
	p := position.New()
	assert.Equal(t, Value(0), e.Evaluate(p))
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	e := NewEvaluator()
	// white is up a queen
	p, err := position.NewFen("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, Value(9), e.Evaluate(p))
}

func TestEvaluateIsSideToMoveRelative(t *testing.T) {
	e := NewEvaluator()
	white, err := position.NewFen("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	assert.NoError(t, err)
	black, err := position.NewFen("4k3/8/8/8/8/8/8/3QK3 b - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, e.Evaluate(white), -e.Evaluate(black))
}

func TestEvaluateCheckmateIsExtremal(t *testing.T) {
	e := NewEvaluator()
	// fool's mate: black delivers mate with the queen on h4
	p, err := position.NewFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.NoError(t, err)
	assert.Equal(t, -ValueCheckMate, e.Evaluate(p))
}

func TestEvaluatePawnPsqtFavorsCenter(t *testing.T) {
	central, err := position.NewFen("4k3/8/8/8/3P4/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	edge, err := position.NewFen("4k3/8/8/8/P7/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	e := NewEvaluator()
	assert.True(t, e.Evaluate(central) > e.Evaluate(edge))
}
