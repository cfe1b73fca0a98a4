package main

import (
	"flag"

	"ecom-data-lab/internal/config"
	"ecom-data-lab/internal/data"
	"ecom-data-lab/internal/logging"
)

func main() {
	var (
		customers = flag.Int("customers", 0, "override the number of customers to generate")
		products  = flag.Int("products", 0, "override the number of products to generate")
		orders    = flag.Int("orders", 0, "override the number of orders to generate")
		seed      = flag.Int64("seed", 0, "override the RNG seed")
		dataDir   = flag.String("data", "", "override the data directory")
	)
	flag.Parse()

	log := logging.New()
	defer func() { _ = log.Sync() }()

	cfg := config.Load()
	if *customers > 0 {
		cfg.Customers = *customers
	}
	if *products > 0 {
		cfg.Products = *products
	}
	if *orders > 0 {
		cfg.Orders = *orders
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	ds := data.Generate(data.GenConfig{
		Seed:      cfg.Seed,
		Customers: cfg.Customers,
		Products:  cfg.Products,
		Orders:    cfg.Orders,
	})

	summaries, err := data.WriteCSVFiles(cfg.DataDir, ds)
	if err != nil {
		log.Fatalf("failed to write dataset: %v", err)
	}
	for _, s := range summaries {
		log.Infof("wrote %d rows -> %s", s.Rows, s.File)
	}
	log.Infof("synthetic data generation complete (seed=%d)", cfg.Seed)
}
