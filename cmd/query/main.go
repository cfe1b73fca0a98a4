package main

import (
	"flag"
	"os"

	"ecom-data-lab/internal/config"
	"ecom-data-lab/internal/db"
	"ecom-data-lab/internal/logging"
	"ecom-data-lab/internal/report"
)

func main() {
	var (
		storePath = flag.String("store", "", "override the store path")
		outputDir = flag.String("output", "", "override the output directory")
	)
	flag.Parse()

	log := logging.New()
	defer func() { _ = log.Sync() }()

	cfg := config.Load()
	if *storePath != "" {
		cfg.StorePath = *storePath
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	gdb, err := db.Open(cfg.StorePath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			log.Warnf("failed to close store: %v", err)
		}
	}()

	results, err := report.Run(gdb, cfg.OutputDir, os.Stdout, log)
	if err != nil {
		log.Fatalf("query run aborted: %v", err)
	}
	log.Infof("exported %d result sets to %s", len(results), cfg.OutputDir)
}
