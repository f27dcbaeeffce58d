// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command chesscore is an interactive driver over pkg/board: it reads
// make/unmake/perft/fen/print commands from stdin and is the external
// collaborator that consumes board's public surface (LegalMoves, Make,
// Unmake, Hash, FEN) without reaching into its internals.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"

	"laptudirm.com/x/chesscore/pkg/board"
	"laptudirm.com/x/chesscore/pkg/chesserr"
	"laptudirm.com/x/chesscore/pkg/move"
	"laptudirm.com/x/chesscore/pkg/square"
	"laptudirm.com/x/chesscore/pkg/zobrist"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	fmt.Println("chesscore by Rak Laptudirm")

	b := board.New()

	args := os.Args[1:]
	if len(args) != 0 {
		return dispatch(b, strings.Join(args, " "))
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := dispatch(b, line); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	return scanner.Err()
}

// dispatch runs a single REPL command against b. It returns only errors
// worth surfacing to the user; a failed make/unmake/fen leaves b
// unchanged, per the board package's error-handling contract.
func dispatch(b *board.Board, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "make":
		return cmdMake(b, args)
	case "unmake":
		b.Unmake()
		return nil
	case "perft":
		return cmdPerft(b, args)
	case "fen":
		return cmdFEN(b, args)
	case "print":
		cmdPrint(b)
		return nil
	case "quit", "exit":
		os.Exit(0)
		return nil
	default:
		return chesserr.New(chesserr.InvalidInput, "chesscore", fmt.Sprintf("unknown command %q", cmd))
	}
}

func cmdMake(b *board.Board, args []string) error {
	const context = "chesscore make"
	if len(args) != 1 {
		return chesserr.New(chesserr.InvalidInput, context, "usage: make <move>")
	}

	mv, err := move.Parse(args[0])
	if err != nil {
		return err
	}
	return b.Make(mv)
}

func cmdFEN(b *board.Board, args []string) error {
	const context = "chesscore fen"
	if len(args) == 0 {
		fmt.Println(b.FEN())
		return nil
	}

	parsed, err := board.FromFEN(strings.Join(args, " "))
	if err != nil {
		return err
	}
	*b = *parsed
	return nil
}

func cmdPrint(b *board.Board) {
	fmt.Println()
	for sq := square.H8; sq <= square.A1; sq++ {
		fmt.Printf(" %s", b.PieceAt(sq))
		if sq.File() == square.FileA {
			fmt.Println()
		}
	}
	fmt.Println()
	fmt.Printf("fen: %s\n", b.FEN())
	fmt.Printf("hash: %016x\n", uint64(b.Hash()))
}

func cmdPerft(b *board.Board, args []string) error {
	const context = "chesscore perft"
	if len(args) != 1 {
		return chesserr.New(chesserr.InvalidInput, context, "usage: perft <depth>")
	}

	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 0 {
		return chesserr.New(chesserr.InvalidInput, context, "depth must be a non-negative integer")
	}

	rootMoves := b.LegalMoves()

	bar := progressbar.NewOptions(len(rootMoves),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("move"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
	)

	tps := make(map[perftKey]uint64)

	var total uint64
	for _, mv := range rootMoves {
		b.MakeUnchecked(mv)
		nodes := perft(b, depth-1, tps)
		b.Unmake()

		fmt.Printf("%s: %d\n", mv, nodes)
		total += nodes
		_ = bar.Add(1)
	}
	fmt.Printf("Nodes searched: %d\n", total)
	return nil
}

// perft counts the leaf positions reachable from b at depth plies,
// memoized in tps on (hash, remaining depth) so transpositions reached by
// different move orders are only explored once.
func perft(b *board.Board, depth int, tps map[perftKey]uint64) uint64 {
	if depth == 0 {
		return 1
	}

	moves := b.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	key := perftKey{hash: b.Hash(), depth: depth}
	if n, ok := tps[key]; ok {
		return n
	}

	var nodes uint64
	for _, mv := range moves {
		b.MakeUnchecked(mv)
		nodes += perft(b, depth-1, tps)
		b.Unmake()
	}

	tps[key] = nodes
	return nodes
}

type perftKey struct {
	hash  zobrist.Key
	depth int
}
