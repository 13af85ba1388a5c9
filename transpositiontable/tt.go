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

// Package transpositiontable implements a transposition table (cache) for
// the search, keyed on the Zobrist position hash. TtTable is not safe for
// concurrent use by multiple searchers; each parallel search worker owns its
// own table.
package transpositiontable

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nimblechess/enginecore/logging"
	"github.com/nimblechess/enginecore/position"
	. "github.com/nimblechess/enginecore/types"
)

var out = message.NewPrinter(language.German)
var log = logging.GetLog()

// MB is the number of bytes in a megabyte.
const MB = 1024 * 1024

// TtEntrySize is the number of bytes budgeted per TtEntry when sizing the
// table. It is larger than the in-memory size of a TtEntry (16 bytes on
// 64-bit platforms), so a table occupies less memory than requested.
const TtEntrySize = 24

// MaxSizeInMB is the maximal memory usage of a single table.
const MaxSizeInMB = 65_536

// TtEntry is one slot of the transposition table: the position the entry
// was computed for, the best move found, its search value, the depth it was
// searched to, and how that value relates to the true minimax value.
type TtEntry struct {
	Key   position.Key
	Move  Move
	Value Value
	Depth int8
	Type  ValueType
}

// TtTable is a fixed-capacity, direct-mapped hash table of TtEntry, sized to
// a power of two number of entries so the hash can be a bit mask.
//  Create with NewTtTable()
type TtTable struct {
	data               []TtEntry
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	Stats              TtStats
}

// TtStats holds statistical counters on table usage.
type TtStats struct {
	NumberOfPuts       uint64
	NumberOfCollisions uint64
	NumberOfOverwrites uint64
	NumberOfUpdates    uint64
	NumberOfProbes     uint64
	NumberOfHits       uint64
	NumberOfMisses     uint64
}

// NewTtTable creates a TtTable sized to fit within sizeInMByte megabytes.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize resizes the table, clearing all entries. Not safe to call while a
// search is concurrently probing or putting into this table.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		log.Warningf("requested tt size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB)
		sizeInMByte = MaxSizeInMB
	}

	tt.sizeInByte = uint64(sizeInMByte) * MB
	if tt.sizeInByte == 0 {
		tt.maxNumberOfEntries = 0
	} else {
		tt.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/TtEntrySize))))
	}
	tt.hashKeyMask = tt.maxNumberOfEntries - 1
	tt.sizeInByte = tt.maxNumberOfEntries * TtEntrySize
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)

	log.Debugf("tt resized to %d MB, %d entries", tt.sizeInByte/MB, tt.maxNumberOfEntries)
}

// Probe returns a pointer to the entry for key, or nil on a miss.
func (tt *TtTable) Probe(key position.Key) *TtEntry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	tt.Stats.NumberOfProbes++
	e := &tt.data[tt.hash(key)]
	if e.Key == key {
		tt.Stats.NumberOfHits++
		return e
	}
	tt.Stats.NumberOfMisses++
	return nil
}

// Put stores a search result, classified per the spec's replacement policy:
// a new slot is always taken; a colliding slot is overwritten only if the
// new entry was searched at least as deep as the one it replaces.
func (tt *TtTable) Put(key position.Key, move Move, value Value, depth int8, vt ValueType) {
	if tt.maxNumberOfEntries == 0 {
		return
	}
	tt.Stats.NumberOfPuts++
	e := &tt.data[tt.hash(key)]

	switch {
	case e.Key == 0:
		tt.numberOfEntries++
	case e.Key != key:
		tt.Stats.NumberOfCollisions++
		if depth < e.Depth {
			return
		}
		tt.Stats.NumberOfOverwrites++
	default:
		tt.Stats.NumberOfUpdates++
	}

	e.Key = key
	e.Move = move
	e.Value = value
	e.Depth = depth
	e.Type = vt
}

// Clear empties the table without changing its capacity.
func (tt *TtTable) Clear() {
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// Hashfull returns how full the table is, in permill, as reported by UCI.
func (tt *TtTable) Hashfull() int {
	if tt.maxNumberOfEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / tt.maxNumberOfEntries)
}

// Len returns the number of occupied slots.
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

func (tt *TtTable) String() string {
	return out.Sprintf("tt: %d MB, %d/%d entries (%d permill), puts=%d hits=%d misses=%d collisions=%d",
		tt.sizeInByte/MB, tt.numberOfEntries, tt.maxNumberOfEntries, tt.Hashfull(),
		tt.Stats.NumberOfPuts, tt.Stats.NumberOfHits, tt.Stats.NumberOfMisses, tt.Stats.NumberOfCollisions)
}

func (tt *TtTable) hash(key position.Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}
