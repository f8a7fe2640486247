package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"fin-analyst/internal/trace"
)

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	var (
		tickers    string
		configPath string
	)
	flag.StringVar(&tickers, "ticker", "", "ticker symbol(s) to value, comma separated")
	flag.StringVar(&configPath, "config", "config.yaml", "path to config file")
	flag.Parse()

	if tickers == "" {
		fmt.Fprintln(os.Stderr, "usage: analyst -ticker NVDA[,AAPL,...] [-config config.yaml]")
		os.Exit(2)
	}

	ctx := context.Background()
	must(initializeSystem())
	defer func() { _ = trace.Shutdown(ctx) }()

	cfg := loadConfig(ctx, configPath)
	compressOldLogs(ctx)

	analyzer, src := initializeAnalyzer(cfg)

	exitCode := 0
	for _, ticker := range strings.Split(tickers, ",") {
		snap, hist, err := src.Snapshot(ctx, ticker)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[%s] snapshot error: %v\n", ticker, err)
			exitCode = 1
			continue
		}
		bundle, err := analyzer.Analyze(ctx, snap, hist)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[%s] analysis error: %v\n", ticker, err)
			exitCode = 1
			continue
		}
		b, err := json.MarshalIndent(bundle, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "[%s] encode error: %v\n", ticker, err)
			exitCode = 1
			continue
		}
		fmt.Println(string(b))
	}
	os.Exit(exitCode)
}
