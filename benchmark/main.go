// Package main provides a performance benchmarking tool for the
// monthly-file-diff CLI. It generates synthetic period trees of increasing
// size, runs the scan command multiple times per tree, treating the first run
// as cold and averaging the rest as warm, and writes CSV output for
// performance analysis and documentation.
//
// Prerequisites:
// - monthly-file-diff binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where the synthetic trees are generated
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// BenchmarkResult holds the result of one benchmark run.
type BenchmarkResult struct {
	Fixture  string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir  string
	Timeout  time.Duration
	Runs     int
	Fixtures []FixtureSpec
}

// FixtureSpec describes one synthetic tree: Periods month folders, each with
// FilesPerDir files at every level down to Depth.
type FixtureSpec struct {
	Name        string
	Periods     int
	FilesPerDir int
	Depth       int
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir: os.Args[1],
		Timeout: 5 * time.Minute,
		Runs:    4,
		Fixtures: []FixtureSpec{
			{Name: "small", Periods: 12, FilesPerDir: 10, Depth: 2},
			{Name: "medium", Periods: 24, FilesPerDir: 100, Depth: 3},
			{Name: "large", Periods: 60, FilesPerDir: 500, Depth: 3},
		},
	}

	if _, err := exec.LookPath("monthly-file-diff"); err != nil {
		fmt.Println("Prerequisites check failed: monthly-file-diff not found in PATH")
		os.Exit(1)
	}

	var results []BenchmarkResult
	for _, spec := range config.Fixtures {
		fmt.Printf("Generating fixture %q (%d periods, %d files/dir, depth %d)...\n",
			spec.Name, spec.Periods, spec.FilesPerDir, spec.Depth)
		base, err := generateFixture(config.WorkDir, spec)
		if err != nil {
			fmt.Printf("Fixture generation failed: %v\n", err)
			os.Exit(1)
		}

		result, err := runBenchmark(config, spec, base)
		if err != nil {
			fmt.Printf("Benchmark failed for %s: %v\n", spec.Name, err)
			os.Exit(1)
		}
		results = append(results, result)
	}

	if err := writeResults(os.Stdout, results); err != nil {
		fmt.Printf("Cannot write results: %v\n", err)
		os.Exit(1)
	}
}

// generateFixture materializes one synthetic tree and returns its base path.
// Period folders are named YYYY_MM starting at 2020-01.
func generateFixture(workDir string, spec FixtureSpec) (string, error) {
	base := filepath.Join(workDir, spec.Name)
	if err := os.RemoveAll(base); err != nil {
		return "", err
	}

	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < spec.Periods; i++ {
		month := start.AddDate(0, i, 0)
		dir := filepath.Join(base, fmt.Sprintf("%04d_%02d", month.Year(), month.Month()))
		if err := populateDir(dir, month, spec, spec.Depth); err != nil {
			return "", err
		}
	}
	return base, nil
}

func populateDir(dir string, month time.Time, spec FixtureSpec, levels int) error {
	if levels == 0 {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for i := 0; i < spec.FilesPerDir; i++ {
		name := fmt.Sprintf("report%03d_%02d-%04d.dat", i, month.Month(), month.Year())
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			return err
		}
	}
	return populateDir(filepath.Join(dir, "sub"), month, spec, levels-1)
}

// runBenchmark executes the scan repeatedly against one fixture. The first
// run is reported as cold; the remaining runs are averaged as warm.
func runBenchmark(config BenchmarkConfig, spec FixtureSpec, base string) (BenchmarkResult, error) {
	template := filepath.Join(base, "{yyyy}_{mm}")
	args := []string{"scan", template,
		"--max-depth", fmt.Sprint(spec.Depth),
		"--output-file", filepath.Join(config.WorkDir, spec.Name+".csv"),
	}

	var cold time.Duration
	var warmTotal time.Duration
	for run := 0; run < config.Runs; run++ {
		elapsed, err := timedRun(config.Timeout, args)
		if err != nil {
			return BenchmarkResult{}, err
		}
		if run == 0 {
			cold = elapsed
		} else {
			warmTotal += elapsed
		}
		fmt.Printf("  run %d: %v\n", run+1, elapsed.Round(time.Millisecond))
	}

	warm := warmTotal / time.Duration(config.Runs-1)
	return BenchmarkResult{
		Fixture:  spec.Name,
		ColdTime: cold.Round(time.Millisecond).String(),
		WarmTime: warm.Round(time.Millisecond).String(),
	}, nil
}

func timedRun(timeout time.Duration, args []string) (time.Duration, error) {
	cmd := exec.Command("monthly-file-diff", args...)
	cmd.Stdout = nil
	cmd.Stderr = nil

	start := time.Now()
	done := make(chan error, 1)
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		return time.Since(start), err
	case <-time.After(timeout):
		_ = cmd.Process.Kill()
		return 0, fmt.Errorf("timed out after %v", timeout)
	}
}

// writeResults emits the collected timings as CSV.
func writeResults(w *os.File, results []BenchmarkResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"fixture", "cold", "warm"}); err != nil {
		return err
	}
	for _, r := range results {
		if err := cw.Write([]string{r.Fixture, r.ColdTime, r.WarmTime}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
