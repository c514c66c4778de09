package engine

import (
	"testing"

	. "github.com/oneQuasi/artifact/pkg/common"
)

func findMoveLAN(p *Position, lan string) Move {
	for _, mv := range GenerateLegalMoves(p) {
		if mv.String() == lan {
			return mv
		}
	}
	return MoveEmpty
}

//https://www.chessprogramming.org/SEE_-_The_Swap_Algorithm
func TestSeeGE(t *testing.T) {
	var tests = []struct {
		fen       string
		lan       string
		threshold int
		want      bool
	}{
		// rook wins a pawn
		{"1k1r4/1pp4p/p7/4p3/8/P5P1/1PP4P/2K1R3 w - - 0 1", "e1e5", 0, true},
		{"1k1r4/1pp4p/p7/4p3/8/P5P1/1PP4P/2K1R3 w - - 0 1", "e1e5", 1, true},
		{"1k1r4/1pp4p/p7/4p3/8/P5P1/1PP4P/2K1R3 w - - 0 1", "e1e5", 2, false},
		// knight takes a defended pawn
		{"1k1r3q/1ppn3p/p4b2/4p3/8/P2N2P1/1PP1R1BP/2K1Q3 w - - 0 1", "d3e5", 0, false},
		// pawn trade
		{"7k/8/4p3/3p4/4P3/8/8/7K w - - 0 1", "e4d5", 0, true},
		{"7k/8/4p3/3p4/4P3/8/8/7K w - - 0 1", "e4d5", 1, false},
		// queen grabs a pawn defended by a pawn
		{"7k/8/3p4/4p3/8/8/4Q3/7K w - - 0 1", "e2e5", 0, false},
		// undefended piece
		{"7k/8/8/4n3/8/8/4R3/7K w - - 0 1", "e2e5", 0, true},
		{"7k/8/8/4n3/8/8/4R3/7K w - - 0 1", "e2e5", 4, true},
		{"7k/8/8/4n3/8/8/4R3/7K w - - 0 1", "e2e5", 5, false},
	}
	for i, test := range tests {
		var p, err = NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(i, test.fen, err)
		}
		var mv = findMoveLAN(&p, test.lan)
		if mv == MoveEmpty {
			t.Fatal(i, test.fen, test.lan, "move not found")
		}
		if got := SeeGE(&p, mv, test.threshold); got != test.want {
			t.Error(i, test.fen, test.lan, test.threshold, got)
		}
	}
}
