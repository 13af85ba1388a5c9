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

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nimblechess/enginecore/position"
	. "github.com/nimblechess/enginecore/types"
)

func TestNewSizesToPowerOfTwo(t *testing.T) {
	tt := NewTtTable(2)
	assert.Equal(t, uint64(65_536), tt.maxNumberOfEntries)
	assert.Equal(t, int(tt.maxNumberOfEntries), cap(tt.data))
}

func TestZeroSizeDisablesStorage(t *testing.T) {
	tt := NewTtTable(0)
	assert.Equal(t, uint64(0), tt.maxNumberOfEntries)
	m := NewMove(SqE2, SqE4, DoublePawnPush, Pawn, PtNone)
	tt.Put(position.Key(42), m, Value(10), 3, VtExact)
	assert.Nil(t, tt.Probe(position.Key(42)))
}

func TestPutAndProbe(t *testing.T) {
	tt := NewTtTable(1)
	m := NewMove(SqG1, SqF3, Quiet, Knight, PtNone)
	tt.Put(position.Key(1234), m, Value(55), 4, VtExact)

	e := tt.Probe(position.Key(1234))
	assert.NotNil(t, e)
	assert.Equal(t, m, e.Move)
	assert.Equal(t, Value(55), e.Value)
	assert.Equal(t, int8(4), e.Depth)
	assert.Equal(t, VtExact, e.Type)
	assert.Equal(t, uint64(1), tt.Len())
}

func TestProbeMiss(t *testing.T) {
	tt := NewTtTable(1)
	assert.Nil(t, tt.Probe(position.Key(999)))
}

func TestShallowerEntryDoesNotReplaceDeeper(t *testing.T) {
	tt := NewTtTable(1)
	mask := tt.hashKeyMask
	// pick two keys that collide on the same slot
	keyA := position.Key(mask + 1)
	keyB := position.Key(2 * (mask + 1))

	deep := NewMove(SqE2, SqE4, DoublePawnPush, Pawn, PtNone)
	shallow := NewMove(SqD2, SqD4, DoublePawnPush, Pawn, PtNone)

	tt.Put(keyA, deep, Value(1), 6, VtExact)
	tt.Put(keyB, shallow, Value(2), 2, VtExact)

	e := tt.Probe(keyA)
	assert.NotNil(t, e)
	assert.Equal(t, deep, e.Move, "a shallower, colliding entry must not evict a deeper one")
}

func TestClearResetsTable(t *testing.T) {
	tt := NewTtTable(1)
	tt.Put(position.Key(7), NewMove(SqA2, SqA4, DoublePawnPush, Pawn, PtNone), Value(1), 1, VtExact)
	assert.Equal(t, uint64(1), tt.Len())
	tt.Clear()
	assert.Equal(t, uint64(0), tt.Len())
	assert.Nil(t, tt.Probe(position.Key(7)))
}
