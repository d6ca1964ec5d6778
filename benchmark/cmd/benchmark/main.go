package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pixelmend/go-inpaint/backends"
	"github.com/pixelmend/go-inpaint/backends/remote"
	"github.com/pixelmend/go-inpaint/benchmark"
)

func main() {
	var (
		backendName   = flag.String("backend", "local", "Backend to benchmark: local or remote")
		endpoint      = flag.String("endpoint", "", "Remote backend endpoint URL (required for -backend remote)")
		output        = flag.String("output", "", "Optional path for a JSON results file")
		quick         = flag.Bool("quick", false, "Run quick benchmark scenarios")
		comprehensive = flag.Bool("comprehensive", false, "Run comprehensive benchmark scenarios")
		selections    = flag.Bool("selections", false, "Compare different selection sizes")
		timeout       = flag.Duration("timeout", 30*time.Minute, "Benchmark timeout duration")
	)
	flag.Parse()

	var backend backends.Inpainter
	switch backends.BackendType(*backendName) {
	case backends.BackendLocal:
		backend = backends.NewLocal()
	case backends.BackendRemote:
		if *endpoint == "" {
			log.Fatal("Remote backend requires an endpoint (-endpoint)")
		}
		backend = remote.New(*endpoint)
	default:
		log.Fatalf("Unknown backend %q", *backendName)
	}

	suite := benchmark.NewSuite(backend)
	if *quick {
		suite.AddScenarioSet(benchmark.GetQuickScenarios())
	}
	if *comprehensive {
		suite.AddScenarioSet(benchmark.GetComprehensiveScenarios())
	}
	if *selections {
		suite.AddScenarioSet(benchmark.GetSelectionSizeScenarios())
	}
	if !*quick && !*comprehensive && !*selections {
		suite.AddScenarioSet(benchmark.GetQuickScenarios())
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	fmt.Println("Starting benchmark execution...")
	start := time.Now()
	results, err := suite.Run(ctx)
	if err != nil {
		log.Fatalf("Benchmark execution failed: %v", err)
	}
	fmt.Printf("Benchmark completed in %v\n", time.Since(start))

	fmt.Printf("\n=== BENCHMARK RESULTS SUMMARY ===\n")
	var bestThroughput float64
	var bestScenario string
	for _, result := range results {
		if result.ImagesPerSecond > bestThroughput {
			bestThroughput = result.ImagesPerSecond
			bestScenario = result.Scenario.Name
		}
		fmt.Printf("  %s: %.2f images/s, %.2f MPix/s, mean %v (%.2f MB memory)\n",
			result.Scenario.Name,
			result.ImagesPerSecond,
			result.MegapixelsPerS,
			result.MeanDuration.Round(time.Microsecond),
			float64(result.MemoryStats.AllocBytes)/(1024*1024))
	}
	fmt.Printf("\nBest performing scenario: %s (%.2f images/s)\n", bestScenario, bestThroughput)

	if *output != "" {
		if err := suite.ExportJSON(*output); err != nil {
			log.Fatalf("Failed to write results: %v", err)
		}
		fmt.Printf("Results saved to: %s\n", *output)
	}
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "Benchmark tool for inpainting backends.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -quick\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "  %s -comprehensive -selections -output results.json\n",
			filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "  %s -backend remote -endpoint http://localhost:8080/inpaint -quick\n",
			filepath.Base(os.Args[0]))
	}
}
