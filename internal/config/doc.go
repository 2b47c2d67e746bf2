// Package config loads the soda CLI configuration.
//
// Settings come from, in increasing precedence: built-in defaults, an
// optional soda.yaml or soda.json, and SODA_* environment variables
// (SODA_LOG_LEVEL, SODA_BENCH_ITEMS, ...). Command-line flags override
// all of them.
//
// # Configuration File Structure
//
//	log_level: debug
//	debug: false
//	metrics: true
//	bench:
//	  items: 200
//	  frames: 120
//	demo:
//	  clicks: 5
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Items:", cfg.Bench.Items)
package config
