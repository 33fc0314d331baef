package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/image-regions/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and --help before flag parsing
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-regions %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			cfg := pipeline.DefaultConfig()
			printUsage(newFlagSet(&cfg))
			return
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := pipeline.DefaultConfig()
	fs := newFlagSet(&cfg)
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	cfg.Debug = os.Getenv("IMAGE_REGIONS_LOG_LEVEL") == "debug"

	if cfg.Debug {
		log.Printf("image-regions v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if _, err := pipeline.Run(cfg); err != nil {
		log.Fatalf("Segmentation failed: %v", err)
	}
}

// newFlagSet binds command-line flags to cfg. Flag defaults are taken from
// cfg's current values.
func newFlagSet(cfg *pipeline.Config) *flag.FlagSet {
	fs := flag.NewFlagSet("image-regions", flag.ContinueOnError)
	fs.StringVar(&cfg.InputPath, "in", cfg.InputPath, "input image (png, jpeg, gif, bmp, tiff, webp)")
	fs.StringVar(&cfg.EdgesPath, "edges", cfg.EdgesPath, "output path for the edge map (empty to skip)")
	fs.StringVar(&cfg.ComponentsPath, "components", cfg.ComponentsPath, "output path for the flat component map (empty to skip)")
	fs.StringVar(&cfg.ResultPath, "result", cfg.ResultPath, "output path for the highlighted image (empty to skip)")
	fs.StringVar(&cfg.LabelsPath, "labels", cfg.LabelsPath, "output path for the zstd label grid (empty to skip)")
	fs.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "region-growing similarity threshold (sum of RGB differences)")
	fs.Usage = func() { printUsage(fs) }
	return fs
}

func printUsage(fs *flag.FlagSet) {
	def := pipeline.DefaultConfig()
	fmt.Println("image-regions - segment an image into similar-color regions and highlight them")
	fmt.Println()
	fmt.Println("Usage: image-regions [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fs.SetOutput(os.Stdout)
	fs.PrintDefaults()
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  IMAGE_REGIONS_LOG_LEVEL=debug    Enable debug logging")
	fmt.Println()
	fmt.Printf("With no options, reads %s and writes %s, %s and %s (threshold %d).\n",
		def.InputPath, def.EdgesPath, def.ComponentsPath, def.ResultPath, def.Threshold)
}
