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

// enginecore is a command line harness for the engine core: it loads a
// position from a FEN, then runs perft or a fixed-depth search on it and
// prints the result. It is not a UCI frontend.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nimblechess/enginecore/config"
	"github.com/nimblechess/enginecore/logging"
	"github.com/nimblechess/enginecore/movegen"
	"github.com/nimblechess/enginecore/position"
	"github.com/nimblechess/enginecore/search"
	"github.com/nimblechess/enginecore/transpositiontable"
	. "github.com/nimblechess/enginecore/types"
)

var out = message.NewPrinter(language.German)

func main() {
	fen := flag.String("fen", StartFen, "FEN of the position to load")
	perft := flag.Int("perft", 0, "run perft to the given depth and print the node count")
	searchDepth := flag.Int("depth", 0, "run a fixed-depth search and print the best move")
	ttSize := flag.Int("ttsize", 32, "transposition table size in MB for -depth")
	workers := flag.Int("workers", 1, "number of parallel root search workers for -depth; 1 runs the single-threaded search")
	flag.Parse()

	config.Setup()
	log := logging.GetLog()

	if err := InitTables(); err != nil {
		log.Errorf("attack table init failed: %v", err)
		fmt.Println(err)
		os.Exit(1)
	}

	if *perft == 0 && *searchDepth == 0 {
		fmt.Println("nothing to do: pass -perft <depth> or -depth <depth>")
		os.Exit(1)
	}

	if *perft > 0 {
		nodes, err := movegen.Perft(*fen, *perft)
		if err != nil {
			log.Errorf("perft failed: %v", err)
			fmt.Println(err)
			os.Exit(1)
		}
		out.Printf("perft(%d) = %d nodes\n", *perft, nodes)
	}

	if *searchDepth > 0 {
		p, err := position.NewFen(*fen)
		if err != nil {
			log.Errorf("invalid fen %q: %v", *fen, err)
			fmt.Println(err)
			os.Exit(1)
		}

		var move = MoveNone
		var value = ValueNA
		if *workers > 1 {
			move, value, err = search.ParallelSearch(p, *searchDepth, *workers)
		} else {
			tt := transpositiontable.NewTtTable(*ttSize)
			move, value, err = search.Search(p, *searchDepth, tt)
		}
		if err != nil {
			log.Errorf("search failed: %v", err)
			fmt.Println(err)
			os.Exit(1)
		}
		out.Printf("bestmove %s (%s)\n", move.StringUci(), value.String())
	}
}
