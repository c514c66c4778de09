package engine

import (
	"context"
	"testing"

	"github.com/oneQuasi/artifact/pkg/common"
	eval "github.com/oneQuasi/artifact/pkg/eval/pesto"
)

func newTestEngine() *Engine {
	var e = NewEngine(func() interface{} {
		return eval.NewEvaluationService()
	})
	e.Options.Hash = 4
	return e
}

func searchFEN(t *testing.T, fen string, limits common.LimitsType) common.SearchInfo {
	t.Helper()
	var p, err = common.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatal(fen, err)
	}
	var e = newTestEngine()
	return e.Search(context.Background(), common.SearchParams{
		Positions: []common.Position{p},
		Limits:    limits,
	})
}

func TestSearchStartposDepth1(t *testing.T) {
	var result = searchFEN(t, common.InitialPositionFen, common.LimitsType{Depth: 1})
	if result.Depth < 1 {
		t.Fatal("no iteration completed", result.Depth)
	}
	if len(result.MainLine) == 0 {
		t.Fatal("empty main line")
	}
	var p, _ = common.NewPositionFromFEN(common.InitialPositionFen)
	var legal = common.GenerateLegalMoves(&p)
	if len(legal) != 20 {
		t.Fatal("startpos must have 20 moves", len(legal))
	}
	if findMoveIndex(legal, result.MainLine[0]) < 0 {
		t.Error("best move is not legal", result.MainLine[0])
	}
	if result.Score.Mate != 0 {
		t.Error("mate score from the initial position", result.Score)
	}
	if result.Score.Centipawns < -150 || result.Score.Centipawns > 150 {
		t.Error("startpos score out of range", result.Score)
	}
}

func TestSearchMateIn1(t *testing.T) {
	var result = searchFEN(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1",
		common.LimitsType{Depth: 5})
	if result.Score.Mate != 1 {
		t.Fatal("expected mate in 1", result.Score)
	}
	if len(result.MainLine) == 0 || result.MainLine[0].String() != "a1a8" {
		t.Error("expected Ra8", result.MainLine)
	}
}

func TestSearchMateIn2(t *testing.T) {
	var result = searchFEN(t, "6k1/8/6K1/8/8/8/8/5Q2 w - - 0 1",
		common.LimitsType{Depth: 6})
	if result.Score.Mate != 2 {
		t.Fatal("expected mate in 2", result.Score)
	}
}

func TestSearchGettingMated(t *testing.T) {
	// black only has pawn moves and gets Qg7# whatever happens
	var result = searchFEN(t, "7k/p7/5KQ1/8/8/8/8/8 b - - 0 1",
		common.LimitsType{Depth: 5})
	if result.Score.Mate != -1 {
		t.Fatal("expected a mated score", result.Score)
	}
}

func TestSearchNodeLimit(t *testing.T) {
	var result = searchFEN(t, common.InitialPositionFen,
		common.LimitsType{Nodes: 50000})
	if result.Depth < 1 {
		t.Fatal("no iteration completed", result.Depth)
	}
	if len(result.MainLine) == 0 {
		t.Fatal("empty main line")
	}
	// cancellation is polled, allow bounded overshoot
	if result.Nodes > 500000 {
		t.Error("node budget ignored", result.Nodes)
	}
}

func TestSearchSingleLegalMove(t *testing.T) {
	// the cornered king has Kb8 and nothing else
	var result = searchFEN(t, "k7/7R/1K6/8/8/8/8/8 b - - 0 1",
		common.LimitsType{Depth: 5})
	if len(result.MainLine) != 1 || result.MainLine[0].String() != "a8b8" {
		t.Fatal("expected the only legal move", result.MainLine)
	}
}

func TestSearchWithGameHistory(t *testing.T) {
	// shuffle moves so the root position already occurred twice; repetition
	// detection walks the supplied history
	var p, err = common.NewPositionFromFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 10 30")
	if err != nil {
		t.Fatal(err)
	}
	var positions = []common.Position{p}
	var moves = []string{"a1b1", "g8h8", "b1a1", "h8g8"}
	for _, lan := range moves {
		var next, ok = positions[len(positions)-1].MakeMoveLAN(lan)
		if !ok {
			t.Fatal("bad move", lan)
		}
		positions = append(positions, next)
	}
	var e = newTestEngine()
	var result = e.Search(context.Background(), common.SearchParams{
		Positions: positions,
		Limits:    common.LimitsType{Depth: 6},
	})
	if len(result.MainLine) == 0 {
		t.Fatal("empty main line")
	}
	// a rook up, white must avoid the drawing shuffle
	if result.Score.Mate == 0 && result.Score.Centipawns <= 0 {
		t.Error("winning side settled for the repetition", result.Score)
	}
}
