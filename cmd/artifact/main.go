package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/oneQuasi/artifact/internal/evalbuilder"
	"github.com/oneQuasi/artifact/pkg/engine"
	"github.com/oneQuasi/artifact/pkg/uci"
)

const (
	name   = "Artifact"
	author = "oneQuasi"
)

var (
	versionName = "dev"
	flgEval     string
)

func main() {
	flag.StringVar(&flgEval, "eval", "", "specifies evaluation function")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

	logger.Println(name,
		"VersionName", versionName,
		"RuntimeVersion", runtime.Version(),
		"GOARCH", runtime.GOARCH,
		"GOOS", runtime.GOOS,
		"NumCPU", runtime.NumCPU(),
	)

	var eng = engine.NewEngine(evalbuilder.Get(flgEval))

	var protocol = uci.New(name, author, versionName, eng,
		[]uci.Option{
			&uci.IntOption{Name: "Hash", Min: 4, Max: 1 << 16, Value: &eng.Options.Hash},
			&uci.IntOption{Name: "Threads", Min: 1, Max: runtime.NumCPU(), Value: &eng.Options.Threads},
			&uci.BoolOption{Name: "ExperimentSettings", Value: &eng.Options.ExperimentSettings},
			&uci.BoolOption{Name: "AspirationWindows", Value: &eng.Options.AspirationWindows},
			&uci.BoolOption{Name: "NullMovePruning", Value: &eng.Options.NullMovePruning},
			&uci.BoolOption{Name: "ReverseFutility", Value: &eng.Options.ReverseFutility},
			&uci.BoolOption{Name: "Probcut", Value: &eng.Options.Probcut},
			&uci.BoolOption{Name: "SingularExt", Value: &eng.Options.SingularExt},
			&uci.BoolOption{Name: "Lmp", Value: &eng.Options.Lmp},
			&uci.BoolOption{Name: "Futility", Value: &eng.Options.Futility},
			&uci.BoolOption{Name: "See", Value: &eng.Options.See},
			&uci.BoolOption{Name: "CheckExt", Value: &eng.Options.CheckExt},
		},
	)
	protocol.Run(logger)
}
