package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

func main() {
	var (
		pattern string
		size    int
		list    bool
		verbose bool
	)
	flag.StringVar(&pattern, "run", "*", "glob selecting the scenarios to run")
	flag.IntVar(&size, "n", 100_000, "number of items used by the bulk scenarios")
	flag.BoolVar(&list, "list", false, "list the scenario names and exit")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	if verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if list {
		for _, s := range scenarios {
			fmt.Println(s.name)
		}
		return
	}

	if size < 0 {
		slog.Error("Invalid size", "n", size)
		os.Exit(1)
	}

	selected, err := selectScenarios(pattern)
	if err != nil {
		slog.Error("Failed selecting scenarios", "error", err)
		os.Exit(1)
	}
	if len(selected) == 0 {
		slog.Warn("No scenario matched", "run", pattern)
		return
	}

	if failed := runAll(selected, config{size: size}); failed > 0 {
		slog.Error("Scenarios failed", "failed", failed, "total", len(selected))
		os.Exit(1)
	}
}
