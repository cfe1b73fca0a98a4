package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config captures the directory layout and dataset sizing shared by the three
// stage binaries. Every field has a default and can be overridden via an
// ECOM_* environment variable (e.g. ECOM_NUM_ORDERS=1000).
type Config struct {
	DataDir   string
	StorePath string
	OutputDir string
	Seed      int64
	Customers int
	Products  int
	Orders    int
}

// Load resolves configuration from defaults and the environment.
func Load() Config {
	v := viper.New()
	v.SetDefault("data_dir", "data")
	v.SetDefault("store_path", "db/ecom.db")
	v.SetDefault("output_dir", "output")
	v.SetDefault("seed", 42)
	v.SetDefault("num_customers", 300)
	v.SetDefault("num_products", 120)
	v.SetDefault("num_orders", 400)

	v.SetEnvPrefix("ECOM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return Config{
		DataDir:   v.GetString("data_dir"),
		StorePath: v.GetString("store_path"),
		OutputDir: v.GetString("output_dir"),
		Seed:      v.GetInt64("seed"),
		Customers: v.GetInt("num_customers"),
		Products:  v.GetInt("num_products"),
		Orders:    v.GetInt("num_orders"),
	}
}
