package storage

import (
	"testing"
	"time"
)

func TestSaveAndLoadRuns(t *testing.T) {
	var store, err = Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var runs = []Run{
		{Timestamp: base, Suite: "wac.epd", Eval: "pesto", MoveTime: 1000, Total: 300, Solved: 250, Nodes: 1_000_000, Duration: 300_000},
		{Timestamp: base.Add(time.Hour), Suite: "wac.epd", Eval: "pesto", MoveTime: 1000, Total: 300, Solved: 260, Nodes: 1_100_000, Duration: 300_000},
	}
	for _, run := range runs {
		if err := store.SaveRun(run); err != nil {
			t.Fatal(err)
		}
	}

	var loaded, err2 = store.Runs()
	if err2 != nil {
		t.Fatal(err2)
	}
	if len(loaded) != len(runs) {
		t.Fatalf("expected %v runs, got %v", len(runs), len(loaded))
	}
	// keys sort by timestamp, oldest first
	for i := range runs {
		if !loaded[i].Timestamp.Equal(runs[i].Timestamp) || loaded[i].Solved != runs[i].Solved {
			t.Errorf("run %v mismatch: %+v != %+v", i, loaded[i], runs[i])
		}
	}
}
