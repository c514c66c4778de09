package epd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	var content = `2rr3k/pp3pp1/1nnqbN1p/3pN3/2pP4/2P3Q1/PPB4P/R4RK1 w - - bm Qg6; id "WAC.001";
8/7p/5k2/5p2/p1p2P2/Pr1pPK2/1P1R3P/8 b - - bm Rxb2; id "WAC.002";
bad line without opcodes
`
	var path = filepath.Join(t.TempDir(), "suite.epd")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	var items, err = LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %v", len(items))
	}
	if got := items[0].BestMoves[0].String(); got != "g3g6" {
		t.Error("WAC.001 best move", got)
	}
	if got := items[1].BestMoves[0].String(); got != "b3b2" {
		t.Error("WAC.002 best move", got)
	}
}
