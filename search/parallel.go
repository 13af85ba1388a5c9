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
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/nimblechess/enginecore/evaluator"
	"github.com/nimblechess/enginecore/position"
	"github.com/nimblechess/enginecore/transpositiontable"
	. "github.com/nimblechess/enginecore/types"
)

// ttSizeMbPerWorker is the size of each worker's private transposition
// table. Workers do not share a table, so this stays small.
const ttSizeMbPerWorker = 16

// ParallelSearch splits the root moves of p across workers root positions
// and searches each split concurrently to depth, each worker on its own
// position copy and its own transposition table. It returns the best move
// and value found across all workers, from the side-to-move's perspective.
// It returns *NoLegalMoveError if the side to move has no legal reply.
func ParallelSearch(p *position.Position, depth int, workers int) (Move, Value, error) {
	if workers < 1 {
		workers = 1
	}

	side := p.SideToMove()
	rootMoves := legalRootMoves(p, side)
	if len(rootMoves) == 0 {
		return MoveNone, ValueNA, &NoLegalMoveError{Fen: p.Fen()}
	}

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		best      = MoveNone
		bestValue = -ValueInf
	)

	sem := semaphore.NewWeighted(int64(workers))
	ctx := context.Background()

	for _, m := range rootMoves {
		m := m
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Errorf("parallel search semaphore acquire failed: %v", err)
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			worker := p.Copy()
			worker.DoMove(m)
			value := -negamax(worker, depth-1, -ValueInf, ValueInf, evaluator.NewEvaluator(), transpositiontable.NewTtTable(ttSizeMbPerWorker))

			mu.Lock()
			if value > bestValue {
				bestValue = value
				best = m
			}
			mu.Unlock()
		}()
	}

	wg.Wait()

	return best, bestValue, nil
}

// legalRootMoves returns the pseudo-legal moves of p that do not leave side
// in check after being played.
func legalRootMoves(p *position.Position, side Color) []Move {
	var legal []Move
	for _, m := range orderedMoves(p) {
		p.DoMove(m)
		inCheck := p.IsInCheck(side)
		p.UndoMove(m)
		if !inCheck {
			legal = append(legal, m)
		}
	}
	return legal
}
