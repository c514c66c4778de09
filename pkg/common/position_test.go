package common

import (
	"strings"
	"testing"
)

var testFens = []string{
	InitialPositionFen,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
}

func TestFenRoundTrip(t *testing.T) {
	for _, fen := range testFens {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(fen, err)
		}
		// move counters are not tracked exactly, compare the first 4 fields
		var want = strings.Join(strings.Fields(fen)[:4], " ")
		var got = strings.Join(strings.Fields(p.String())[:4], " ")
		if got != want {
			t.Errorf("fen round trip: got %q, want %q", got, want)
		}
	}
}

func TestMakeMoveKeyConsistency(t *testing.T) {
	for _, fen := range testFens {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(fen, err)
		}
		var buffer [MaxMoves]OrderedMove
		var child Position
		for _, m := range p.GenerateMoves(buffer[:]) {
			if !p.MakeMove(m.Move, &child) {
				continue
			}
			if child.Key != child.computeKey() {
				t.Errorf("%v %v: incremental key %v != computed %v",
					fen, m.Move, child.Key, child.computeKey())
			}
		}
	}
}

func TestMakeMoveDoesNotModifyParent(t *testing.T) {
	var p, err = NewPositionFromFEN(InitialPositionFen)
	if err != nil {
		t.Fatal(err)
	}
	var before = p
	var buffer [MaxMoves]OrderedMove
	var child Position
	for _, m := range p.GenerateMoves(buffer[:]) {
		p.MakeMove(m.Move, &child)
		if p != before {
			t.Fatalf("parent modified by %v", m.Move)
		}
	}
}

func TestMirrorPosition(t *testing.T) {
	for _, fen := range testFens {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(fen, err)
		}
		var mirror = MirrorPosition(&p)
		var back = MirrorPosition(&mirror)
		if back != p {
			t.Errorf("double mirror differs for %v", fen)
		}
	}
}

func TestParseMoveSAN(t *testing.T) {
	var tests = []struct {
		fen string
		san string
		lan string
	}{
		{InitialPositionFen, "e4", "e2e4"},
		{InitialPositionFen, "Nf3", "g1f3"},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", "O-O", "e1g1"},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1", "O-O-O", "e8c8"},
		{"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", "dxc8=Q+", "d7c8q"},
		{"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", "Nd5", "c3d5"},
	}
	for _, test := range tests {
		var p, err = NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(test.fen, err)
		}
		var mv = ParseMoveSAN(&p, test.san)
		if mv.String() != test.lan {
			t.Errorf("%v %v: got %v, want %v", test.fen, test.san, mv, test.lan)
		}
	}
}
