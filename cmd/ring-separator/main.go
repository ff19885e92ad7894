package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ironsheep/ring-separator/internal/pipeline"
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
			fmt.Printf("ring-separator %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			cfg := pipeline.DefaultConfig()
			fmt.Println("ring-separator - split bright rings from an image into their own layer")
			fmt.Println()
			fmt.Println("Usage: ring-separator")
			fmt.Println()
			fmt.Println("Reads:")
			fmt.Printf("  %s\n", cfg.InputPath)
			fmt.Println("Writes:")
			fmt.Printf("  %s    rings on a transparent background\n", cfg.ForegroundPath)
			fmt.Printf("  %s    source with the rings blurred over\n", cfg.BackgroundPath)
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug    Enable debug logging\n", pipeline.LogLevelEnv)
			return
		}
	}

	logger := pipeline.NewLogger(os.Stderr, pipeline.LevelFromEnv(os.Getenv(pipeline.LogLevelEnv)))
	logger.Debug("ring-separator", "version", Version, "built", BuildTime, "commit", GitCommit)

	cfg := pipeline.DefaultConfig()
	ctx := pipeline.WithLogger(context.Background(), logger)
	if _, err := pipeline.Run(ctx, cfg); err != nil {
		logger.Fatal("separation failed", "err", err)
	}

	printCreated(os.Stdout, cfg)
}

// printCreated writes one confirmation line per output file.
func printCreated(w io.Writer, cfg pipeline.Config) {
	fmt.Fprintf(w, "✓ Created %s\n", filepath.Base(cfg.ForegroundPath))
	fmt.Fprintf(w, "✓ Created %s\n", filepath.Base(cfg.BackgroundPath))
}
