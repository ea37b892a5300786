package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"

	"github.com/ironsheep/sprite-cutout/internal/batch"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("remove-backgrounds %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("SPRITE_CUTOUT_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("remove-backgrounds v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	switch os.Getenv("SPRITE_CUTOUT_PROFILE") {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	cfg, err := batch.ConfigFromEnv()
	if err != nil {
		log.Printf("Configuration error: %v; using defaults", err)
		cfg = batch.DefaultConfig()
	}

	runner := batch.NewRunner(cfg, batch.WithLogger(log.Default()), batch.WithDebug(debug))
	summary := runner.Run()

	if debug {
		for _, res := range summary.Failed() {
			log.Printf("%s: %s: %v", res.Status, res.Source, res.Err())
		}
	}
}

func printHelp() {
	fmt.Println("remove-backgrounds - strip sprite backgrounds into transparent PNGs")
	fmt.Println()
	fmt.Println("Usage: remove-backgrounds [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  SPRITE_CUTOUT_LOG_LEVEL=debug       Enable debug logging")
	fmt.Printf("  %s=<dir>        Source directory (default %s)\n", batch.EnvInputDir, batch.DefaultInputDir)
	fmt.Printf("  %s=<dir>       Destination directory (default %s)\n", batch.EnvOutputDir, batch.DefaultOutputDir)
	fmt.Printf("  %s=<list>     Comma-separated fallback chain (default edge-sampled,fixed-threshold)\n", batch.EnvStrategies)
	fmt.Println("  SPRITE_CUTOUT_PROFILE=cpu|mem       Write a pprof profile to the working directory")
	fmt.Println()
	fmt.Println("Strategies: fixed-threshold, edge-sampled, corner-mode.")
	fmt.Println("The process always exits 0; failed images are reported in the log.")
}
