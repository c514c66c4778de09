package eval

import (
	"testing"

	"github.com/oneQuasi/artifact/pkg/common"
)

func TestEvaluateSymmetry(t *testing.T) {
	var fens = []string{
		common.InitialPositionFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"8/8/6p1/1p2pk1p/1Pp1p2P/2PbP1P1/3N1P2/4K3 w - - 12 58",
	}
	var e = NewEvaluationService()
	for _, fen := range fens {
		var p, err = common.NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(fen, err)
		}
		var mirror = common.MirrorPosition(&p)
		var v1 = e.Evaluate(&p)
		var v2 = e.Evaluate(&mirror)
		if v1 != v2 {
			t.Errorf("%v: %v != mirrored %v", fen, v1, v2)
		}
	}
}

func TestEvaluateStartpos(t *testing.T) {
	var e = NewEvaluationService()
	var p, err = common.NewPositionFromFEN(common.InitialPositionFen)
	if err != nil {
		t.Fatal(err)
	}
	var v = e.Evaluate(&p)
	if v < -50 || v > 50 {
		t.Errorf("startpos eval %v out of range", v)
	}
}

func TestEvaluateMaterialUp(t *testing.T) {
	var e = NewEvaluationService()
	// white is a queen up
	var p, err = common.NewPositionFromFEN("6k1/5ppp/8/8/8/8/5PPP/5QK1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if v := e.Evaluate(&p); v < 300 {
		t.Errorf("queen up eval %v too low", v)
	}
	// same position from the defender's point of view
	var black, err2 = common.NewPositionFromFEN("6k1/5ppp/8/8/8/8/5PPP/5QK1 b - - 0 1")
	if err2 != nil {
		t.Fatal(err2)
	}
	if v := e.Evaluate(&black); v > -300 {
		t.Errorf("queen down eval %v too high", v)
	}
}
