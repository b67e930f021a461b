// Package main provides a performance benchmarking tool for the Transitscope CLI.
// It measures execution times across catalog systems and command types, running
// each test multiple times and averaging the successful runs, generating CSV
// output for performance analysis and documentation.
//
// Prerequisites:
// - transitscope binary installed and available in PATH
//
// Usage: go run benchmark/main.go
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (average and best of the successful runs).
type BenchmarkResult struct {
	System   string
	Command  string
	AvgTime  string
	BestTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Timeout       time.Duration
	Runs          int
	Workers       int
	FitIterations int
	Systems       []string
}

func main() {
	config := BenchmarkConfig{
		Timeout:       time.Minute,
		Runs:          4,
		Workers:       4,
		FitIterations: 200,
		Systems:       []string{"TRAPPIST-1", "HD 209458", "Proxima Cen"},
	}

	if err := checkPrerequisites(); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the transitscope binary exists
func checkPrerequisites() error {
	if _, err := exec.LookPath("transitscope"); err != nil {
		return fmt.Errorf("transitscope binary not found in PATH")
	}
	return nil
}

// runBenchmarks executes all benchmark tests across configured systems
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d systems, %v timeout, %d runs per command\n",
		len(config.Systems), config.Timeout, config.Runs)

	for _, system := range config.Systems {
		fmt.Printf("Benchmarking %s\n", system)

		// Profile lookup
		result := runBenchmarkSuite(config, system, "profile", "profile lookup", []string{"profile", system})
		results = append(results, result)

		// Lightcurve generation
		result = runBenchmarkSuite(config, system, "lightcurve", "lightcurve generation", []string{"lightcurve", system})
		results = append(results, result)

		// Transit fit with a longer search
		args := []string{"fit", system, "--iterations", fmt.Sprintf("%d", config.FitIterations)}
		desc := fmt.Sprintf("transit fit (%d iterations)", config.FitIterations)
		result = runBenchmarkSuite(config, system, "fit", desc, args)
		results = append(results, result)
	}

	// Whole-catalog batch survey
	fmt.Printf("Benchmarking whole-catalog batch\n")
	args := []string{"batch", "--workers", fmt.Sprintf("%d", config.Workers)}
	desc := fmt.Sprintf("batch survey (%d workers)", config.Workers)
	results = append(results, runBenchmarkSuite(config, "catalog", "batch", desc, args))

	return results
}

// runBenchmarkSuite runs a command repeatedly and summarizes the successful timings
func runBenchmarkSuite(config BenchmarkConfig, label, command, description string, args []string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", description, label)

	times := runBenchmark(config, command, args)

	avgTime := "TIMEOUT"
	bestTime := "TIMEOUT"
	if len(times) > 0 {
		var sum float64
		best := times[0]
		for _, t := range times {
			sum += t
			if t < best {
				best = t
			}
		}
		avgTime = fmt.Sprintf("%.3fs", sum/float64(len(times)))
		bestTime = fmt.Sprintf("%.3fs", best)
	}

	fmt.Printf("  Average: %s, Best: %s\n", avgTime, bestTime)

	return BenchmarkResult{
		System:   label,
		Command:  command,
		AvgTime:  avgTime,
		BestTime: bestTime,
	}
}

// runBenchmark executes a transitscope command multiple times and returns the successful timings
func runBenchmark(config BenchmarkConfig, command string, args []string) []float64 {
	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("transitscope", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output, command) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}
	return times
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte, command string) bool {
	outputStr := string(output)

	var completionPhrase string
	switch command {
	case "profile", "sources":
		completionPhrase = "Lookup completed in"
	case "fit":
		completionPhrase = "Search completed in"
	case "batch":
		return strings.Contains(outputStr, "Batch completed in") &&
			strings.Contains(outputStr, "workers")
	default:
		completionPhrase = "Generation completed in"
	}

	return strings.Contains(outputStr, completionPhrase)
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/transitscope_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"system", "cmd", "avg_time", "best_time"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.System, result.Command, result.AvgTime, result.BestTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "profile", "Profile Lookup:")
	printCommandSummary(results, "lightcurve", "Lightcurve Generation:")
	printCommandSummary(results, "fit", "Transit Fit:")
	printCommandSummary(results, "batch", "Batch Survey:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-12s: Avg: %s, Best: %s\n", result.System, result.AvgTime, result.BestTime)
		}
	}
}
