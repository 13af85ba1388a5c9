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

package moveslice

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/nimblechess/enginecore/types"
)

var (
	e2e4 = NewMove(SqE2, SqE4, DoublePawnPush, Pawn, PtNone)
	d7d5 = NewMove(SqD7, SqD5, DoublePawnPush, Pawn, PtNone)
	e4d5 = NewMove(SqE4, SqD5, CaptureKind, Pawn, Pawn)
	d8d5 = NewMove(SqD8, SqD5, CaptureKind, Queen, Pawn)
	b1c3 = NewMove(SqB1, SqC3, Quiet, Knight, PtNone)
)

func TestNew(t *testing.T) {
	ma := New(5)
	assert.Equal(t, 0, len(ma))
	assert.Equal(t, 5, cap(ma))
}

func TestPushBackAndPopBack(t *testing.T) {
	ma := New(5)
	assert.Panics(t, func() { ma.PopBack() })

	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.PushBack(e4d5)
	assert.Equal(t, 3, len(ma))

	m := ma.PopBack()
	assert.Equal(t, e4d5, m)
	assert.Equal(t, 2, len(ma))
}

func TestPushFrontAndPopFront(t *testing.T) {
	ma := New(5)
	assert.Panics(t, func() { ma.PopFront() })

	ma.PushFront(e2e4)
	ma.PushFront(d7d5)
	assert.Equal(t, d7d5, ma.Front())

	m := ma.PopFront()
	assert.Equal(t, d7d5, m)
	assert.Equal(t, e2e4, ma.Front())
}

func TestAccess(t *testing.T) {
	ma := New(5)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.PushBack(e4d5)

	assert.Equal(t, e2e4, ma.Front())
	assert.Equal(t, e4d5, ma.Back())
	assert.Equal(t, ma.At(1), d7d5)

	ma.Set(1, b1c3)
	assert.Equal(t, b1c3, ma.At(1))
}

func TestClear(t *testing.T) {
	ma := New(5)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.Clear()
	assert.Equal(t, 0, len(ma))
}

func TestStringUci(t *testing.T) {
	ma := New(5)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.PushBack(b1c3)
	assert.Equal(t, "e2e4 d7d5 b1c3", ma.StringUci())
}

func TestSortByScore(t *testing.T) {
	ma := New(5)
	ma.PushBack(b1c3)
	ma.PushBack(d8d5)
	ma.PushBack(e2e4)
	ma.PushBack(e4d5)

	ma.SortByScore(func(m Move) int {
		if m.IsCapture() {
			return 1
		}
		return 0
	})

	assert.True(t, ma.At(0).IsCapture())
	assert.True(t, ma.At(1).IsCapture())
	assert.False(t, ma.At(2).IsCapture())
	assert.False(t, ma.At(3).IsCapture())
}

func TestFilter(t *testing.T) {
	ma := New(5)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.PushBack(e4d5)
	ma.PushBack(b1c3)

	ma.Filter(func(i int) bool {
		return ma.At(i) != e4d5
	})

	assert.Equal(t, 3, len(ma))
	assert.Equal(t, "e2e4 d7d5 b1c3", ma.StringUci())
}

func TestFilterCopy(t *testing.T) {
	ma := New(5)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.PushBack(e4d5)
	ma.PushBack(b1c3)

	dest := New(5)
	ma.FilterCopy(&dest, func(i int) bool {
		return ma.At(i) != e4d5
	})

	assert.Equal(t, 4, len(ma), "the source is untouched by FilterCopy")
	assert.Equal(t, 3, len(dest))
	assert.Equal(t, "e2e4 d7d5 b1c3", dest.StringUci())
}

func TestForEachParallel(t *testing.T) {
	noOfItems := 100
	ma := New(noOfItems)
	for i := 0; i < noOfItems; i++ {
		ma.PushBack(e2e4)
	}

	var mu sync.Mutex
	var counter int
	ma.ForEachParallel(func(i int) {
		mu.Lock()
		counter++
		mu.Unlock()
	})

	assert.Equal(t, noOfItems, counter)
}
