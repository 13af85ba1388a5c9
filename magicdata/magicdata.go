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

// Package magicdata packages the magic-bitboard multiplier table that ships
// with the binary. It knows nothing about chess geometry or the Bitboard
// type - it only decodes the embedded TOML resource into plain records,
// leaving mask derivation and attack-table population to types.InitTables.
package magicdata

import (
	_ "embed"
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
)

//go:embed magics.toml
var resource []byte

// Record is one square's magic multiplier as read from the packaged resource.
type Record struct {
	Square int    `toml:"square"`
	Magic  string `toml:"magic"`
}

type table struct {
	Rook   []Record `toml:"rook"`
	Bishop []Record `toml:"bishop"`
}

// Entry is a decoded magic multiplier for one square.
type Entry struct {
	Square int
	Magic  uint64
}

// Load decodes the embedded magic resource into 64-entry rook and bishop
// tables indexed by square. Returns an error if the resource is malformed,
// missing an entry, or has a duplicate/out-of-range square tag.
func Load() (rook [64]Entry, bishop [64]Entry, err error) {
	var t table
	if _, decErr := toml.Decode(string(resource), &t); decErr != nil {
		return rook, bishop, fmt.Errorf("magicdata: malformed resource: %w", decErr)
	}
	if err := fill(&rook, t.Rook, "rook"); err != nil {
		return rook, bishop, err
	}
	if err := fill(&bishop, t.Bishop, "bishop"); err != nil {
		return rook, bishop, err
	}
	return rook, bishop, nil
}

func fill(dst *[64]Entry, records []Record, kind string) error {
	var seen [64]bool
	if len(records) != 64 {
		return fmt.Errorf("magicdata: %s table has %d records, want 64", kind, len(records))
	}
	for _, r := range records {
		if r.Square < 0 || r.Square > 63 {
			return fmt.Errorf("magicdata: %s record has invalid square %d", kind, r.Square)
		}
		if seen[r.Square] {
			return fmt.Errorf("magicdata: %s table has duplicate square %d", kind, r.Square)
		}
		seen[r.Square] = true
		magic, parseErr := strconv.ParseUint(r.Magic, 0, 64)
		if parseErr != nil {
			return fmt.Errorf("magicdata: %s square %d has malformed magic %q: %w", kind, r.Square, r.Magic, parseErr)
		}
		dst[r.Square] = Entry{Square: r.Square, Magic: magic}
	}
	return nil
}
