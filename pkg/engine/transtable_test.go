package engine

import (
	"testing"

	. "github.com/oneQuasi/artifact/pkg/common"
)

func TestTransTableRoundTrip(t *testing.T) {
	var tt = newTransTable(1)
	var key = uint64(0x123456789abcdef0)
	var move = Move(12345)
	tt.Update(key, 7, 42, boundExact, move)
	depth, score, bound, gotMove, ok := tt.Read(key)
	if !ok {
		t.Fatal("entry not found")
	}
	if depth != 7 || score != 42 || bound != boundExact || gotMove != move {
		t.Error(depth, score, bound, gotMove)
	}
}

func TestTransTableKeyMismatch(t *testing.T) {
	var tt = newTransTable(1)
	var key = uint64(0x123456789abcdef0)
	tt.Update(key, 7, 42, boundExact, Move(1))
	// same bucket, different verification bits
	var other = key ^ (uint64(1) << 40)
	if _, _, _, _, ok := tt.Read(other); ok {
		t.Error("hit on mismatched key")
	}
}

func TestTransTableReplacement(t *testing.T) {
	var tt = newTransTable(1)
	var key = uint64(0x123456789abcdef0)

	tt.Update(key, 10, 1, boundLower, Move(1))
	// too shallow, keeps the old entry
	tt.Update(key, 2, 2, boundLower, Move(2))
	if depth, _, _, _, ok := tt.Read(key); !ok || depth != 10 {
		t.Error("shallow store replaced a deep entry", depth)
	}
	// exact bound always replaces
	tt.Update(key, 2, 3, boundExact, Move(3))
	if depth, score, _, _, ok := tt.Read(key); !ok || depth != 2 || score != 3 {
		t.Error("exact store did not replace", depth, score)
	}

	// a colliding key loses to a fresh deeper entry
	var other = key ^ (uint64(1) << 40)
	tt.Update(other, 1, 4, boundLower, Move(4))
	if _, _, _, _, ok := tt.Read(other); ok {
		t.Error("shallow store evicted a same-date deeper entry")
	}
	// but wins once the incumbent is stale
	tt.IncDate()
	tt.Update(other, 1, 4, boundLower, Move(4))
	if _, score, _, _, ok := tt.Read(other); !ok || score != 4 {
		t.Error("stale entry survived", score)
	}
}

func TestMateScoreEncoding(t *testing.T) {
	// table scores are node relative, search scores are root relative
	var v = winIn(5)
	var stored = valueToTT(v, 3)
	if got := valueFromTT(stored, 3); got != v {
		t.Error(got, v)
	}
	var l = lossIn(5)
	stored = valueToTT(l, 3)
	if got := valueFromTT(stored, 3); got != l {
		t.Error(got, l)
	}
}

func TestMateDistanceOrdering(t *testing.T) {
	if !(winIn(2) > winIn(4)) {
		t.Error("closer mates must score higher")
	}
	if !(winIn(4) > 0 && winIn(4) >= valueWin) {
		t.Error("wins must dominate evals")
	}
	if !(lossIn(2) < lossIn(4)) {
		t.Error("closer losses must score lower")
	}
	if got := newUciScore(winIn(3)).Mate; got != 2 {
		t.Error("mate in 2 plies from uci side", got)
	}
	if got := newUciScore(lossIn(2)).Mate; got != -1 {
		t.Error("mated in 2 plies from uci side", got)
	}
	if got := newUciScore(100); got.Mate != 0 || got.Centipawns != 100 {
		t.Error(got)
	}
}
