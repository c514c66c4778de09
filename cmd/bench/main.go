package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/oneQuasi/artifact/internal/epd"
	"github.com/oneQuasi/artifact/internal/evalbuilder"
	"github.com/oneQuasi/artifact/internal/storage"
	"github.com/oneQuasi/artifact/pkg/common"
	"github.com/oneQuasi/artifact/pkg/engine"
)

func main() {
	var (
		flgEpd         string
		flgEval        string
		flgMoveTime    int
		flgHash        int
		flgConcurrency int
		flgDB          string
		flgHistory     bool
	)
	flag.StringVar(&flgEpd, "epd", "", "path to the EPD test suite")
	flag.StringVar(&flgEval, "eval", "", "specifies evaluation function")
	flag.IntVar(&flgMoveTime, "movetime", 1000, "time per position, ms")
	flag.IntVar(&flgHash, "hash", 128, "hash size per engine, MB")
	flag.IntVar(&flgConcurrency, "concurrency", runtime.NumCPU(), "number of engines solving in parallel")
	flag.StringVar(&flgDB, "db", "", "path to the run history database")
	flag.BoolVar(&flgHistory, "history", false, "print past runs and exit")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags)

	if err := run(logger, flgEpd, flgEval, flgMoveTime, flgHash, flgConcurrency, flgDB, flgHistory); err != nil {
		logger.Fatal(err)
	}
}

func run(logger *log.Logger,
	epdPath, evalName string,
	moveTime, hash, concurrency int,
	dbPath string, history bool) error {

	var store *storage.Storage
	if dbPath != "" {
		var err error
		store, err = storage.Open(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	if history {
		if store == nil {
			return fmt.Errorf("-history needs -db")
		}
		return printHistory(store)
	}

	if epdPath == "" {
		return fmt.Errorf("-epd is required")
	}

	var items, err = epd.LoadFile(epdPath)
	if err != nil {
		return err
	}
	logger.Println("benchmark started",
		"suite", epdPath,
		"positions", len(items),
		"eval", evalName,
		"moveTime", moveTime,
		"concurrency", concurrency)

	var start = time.Now()
	var solved, nodes int64

	g, ctx := errgroup.WithContext(context.Background())

	var tasks = make(chan epd.Item)
	g.Go(func() error {
		defer close(tasks)
		for _, item := range items {
			select {
			case tasks <- item:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < concurrency; i++ {
		g.Go(func() error {
			var eng = engine.NewEngine(evalbuilder.Get(evalName))
			eng.Options.Hash = hash
			eng.Prepare()
			for item := range tasks {
				var result = eng.Search(ctx, common.SearchParams{
					Positions: []common.Position{item.Position},
					Limits:    common.LimitsType{MoveTime: moveTime},
				})
				atomic.AddInt64(&nodes, result.Nodes)
				if len(result.MainLine) != 0 && containsMove(item.BestMoves, result.MainLine[0]) {
					atomic.AddInt64(&solved, 1)
				} else {
					logger.Println("failed", item.Content)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	var elapsed = time.Since(start)
	var nps = nodes * 1000 / (elapsed.Milliseconds() + 1)
	logger.Println("benchmark finished",
		"solved", solved,
		"total", len(items),
		"nodes", nodes,
		"nps", nps,
		"elapsed", elapsed)

	if store != nil {
		return store.SaveRun(storage.Run{
			Timestamp: start,
			Suite:     epdPath,
			Eval:      evalName,
			MoveTime:  moveTime,
			Total:     len(items),
			Solved:    int(solved),
			Nodes:     nodes,
			Duration:  elapsed.Milliseconds(),
		})
	}
	return nil
}

func containsMove(moves []common.Move, move common.Move) bool {
	for _, m := range moves {
		if m == move {
			return true
		}
	}
	return false
}

func printHistory(store *storage.Storage) error {
	var runs, err = store.Runs()
	if err != nil {
		return err
	}
	for _, run := range runs {
		fmt.Printf("%v suite=%v eval=%v movetime=%vms solved=%v/%v nodes=%v time=%vms\n",
			run.Timestamp.Format(time.RFC3339),
			run.Suite, run.Eval, run.MoveTime,
			run.Solved, run.Total, run.Nodes, run.Duration)
	}
	return nil
}
