// Package main is the entry point for the ranking updater. One run
// fetches the division's sources, merges them with the prior snapshot,
// and persists the result.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/germanium324/jpa-ranking/internal/config"
	"github.com/germanium324/jpa-ranking/internal/utils"
	"github.com/germanium324/jpa-ranking/pkg/pipeline"
)

// Version is set during build using ldflags
var version = "dev"

func main() {
	versionFlag := flag.Bool("version", false, "Print version information and exit")
	configFlag := flag.String("config", "", "Path to YAML config file (default: CONFIG_PATH env or ./config.yaml)")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("ranking-updater version %s\n", version)
		return
	}

	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Ranking updater starting...")
	log.Printf("Version: %s", version)

	var cfg *config.Config
	var err error
	if *configFlag != "" {
		cfg, err = config.LoadFile(*configFlag)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Target division: %q (code %s)", cfg.DivisionLabel, cfg.DivisionCode)

	snap, err := pipeline.New(cfg).Run()
	if err != nil {
		// The run itself already completed; only persisting failed.
		fmt.Fprintf(os.Stderr, "Failed to save snapshot: %v\n", err)
		os.Exit(1)
	}

	utils.DisplaySnapshot(&snap)
	log.Println("Run complete")
}
