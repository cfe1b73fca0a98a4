package main

import (
	"flag"
	"os"

	"ecom-data-lab/internal/config"
	"ecom-data-lab/internal/db"
	"ecom-data-lab/internal/ingest"
	"ecom-data-lab/internal/logging"
)

func main() {
	var (
		dataDir   = flag.String("data", "", "override the data directory")
		storePath = flag.String("store", "", "override the store path")
	)
	flag.Parse()

	log := logging.New()
	defer func() { _ = log.Sync() }()

	cfg := config.Load()
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *storePath != "" {
		cfg.StorePath = *storePath
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

	results, err := ingest.Run(gdb, cfg.DataDir, log)
	if err != nil {
		log.Fatalf("load aborted, nothing committed: %v", err)
	}

	if err := ingest.Report(gdb, results, os.Stdout); err != nil {
		log.Fatalf("failed to report validations: %v", err)
	}

	log.Infof("ingestion complete; store at %s", cfg.StorePath)
}
