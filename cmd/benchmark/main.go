package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"noise-go/pkg/benchmark"
)

// Version information - will be set at build time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// Command-line flags
var (
	componentFlag     string
	iterationsFlag    int
	seedFlag          uint
	widthFlag         int
	heightFlag        int
	workersFlag       int
	outputFlag        string
	allComponentsFlag bool
	helpFlag          bool
)

func init() {
	flag.StringVar(&componentFlag, "component", "perlin", "Component to benchmark (hash, perlin, value, fractal, mapbuild, reference)")
	flag.IntVar(&iterationsFlag, "iterations", 1_000_000, "Number of samples to draw")
	flag.UintVar(&seedFlag, "seed", 1337, "Seed for the permutation table")
	flag.IntVar(&widthFlag, "width", 512, "Raster width for the mapbuild benchmark")
	flag.IntVar(&heightFlag, "height", 512, "Raster height for the mapbuild benchmark")
	flag.IntVar(&workersFlag, "workers", 0, "Row workers for the mapbuild benchmark (0 = one per CPU)")
	flag.StringVar(&outputFlag, "output", "", "Output file for results (CSV format)")
	flag.BoolVar(&allComponentsFlag, "allcomponents", false, "Run benchmarks for all components")
	flag.BoolVar(&helpFlag, "help", false, "Show help")

	// Parse flags
	flag.Parse()

	// Show help if requested
	if helpFlag {
		printUsage()
		os.Exit(0)
	}
}

func printUsage() {
	fmt.Printf("noise-go Benchmark Tool %s (built %s)\n\n", Version, BuildTime)
	fmt.Println("Usage: benchmark [options]")
	fmt.Println("\nOptions:")
	flag.PrintDefaults()

	fmt.Println("\nExamples:")
	fmt.Println("  benchmark --component hash --iterations 10000000")
	fmt.Println("  benchmark --component mapbuild --width 1024 --height 1024 --workers 4")
	fmt.Println("  benchmark --component reference --seed 42")
	fmt.Println("  benchmark --allcomponents --output results.csv")
}

func parseComponent(compStr string) (benchmark.Component, error) {
	switch strings.ToLower(compStr) {
	case "hash":
		return benchmark.ComponentHash, nil
	case "perlin":
		return benchmark.ComponentPerlin, nil
	case "value":
		return benchmark.ComponentValue, nil
	case "fractal":
		return benchmark.ComponentFractal, nil
	case "mapbuild":
		return benchmark.ComponentMapBuild, nil
	case "reference":
		return benchmark.ComponentReference, nil
	default:
		return 0, fmt.Errorf("unknown component: %s", compStr)
	}
}

func main() {
	fmt.Printf("noise-go Benchmark Tool %s (built %s)\n\n", Version, BuildTime)

	// Setup benchmark options
	opts := &benchmark.Options{
		Iterations: iterationsFlag,
		Seed:       uint32(seedFlag),
		Width:      widthFlag,
		Height:     heightFlag,
		Workers:    workersFlag,
	}

	// Store results
	var results []*benchmark.Results

	// Run benchmarks for all components or just the specified one
	if allComponentsFlag {
		log.Println("Running benchmarks for all components...")

		allResults, err := benchmark.RunAll(opts)
		if err != nil {
			log.Printf("Some benchmarks failed: %v", err)
		}
		results = append(results, allResults...)

	} else {
		// Parse component
		component, err := parseComponent(componentFlag)
		if err != nil {
			log.Fatalf("Invalid component: %v", err)
		}

		opts.Component = component

		// Run benchmark
		log.Printf("Running benchmark for %s...", component)
		log.Printf("Iterations: %d, Seed: %d", opts.Iterations, opts.Seed)

		startTime := time.Now()
		result, err := benchmark.Run(opts)
		if err != nil {
			log.Fatalf("Benchmark failed: %v", err)
		}

		log.Printf("Benchmark completed in %v", time.Since(startTime))

		// Print results
		benchmark.PrintResults(result)

		results = append(results, result)
	}

	// Save results to file if specified
	if outputFlag != "" && len(results) > 0 {
		log.Printf("Saving results to %s", outputFlag)
		if err := benchmark.SaveResultsToFile(results, outputFlag); err != nil {
			log.Fatalf("Failed to save results: %v", err)
		}
		log.Printf("Results saved successfully")
	}
}
