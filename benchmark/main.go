// Package main provides a performance benchmarking tool for the vo2peak
// pipeline. It runs the full analysis over synthetic ramp tests of increasing
// length, treating the first run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Usage: go run benchmark/main.go
package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/spiroflow/vo2peak/core"
	"github.com/spiroflow/vo2peak/internal/contract"
	"github.com/spiroflow/vo2peak/schema"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Rows     int
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Runs     int
	RowSizes []int
}

func main() {
	config := BenchmarkConfig{
		Runs:     5,
		RowSizes: []int{60, 600, 6000, 60000, 600000},
	}

	cfg := &contract.Config{
		SamplingInterval: 10,
		WindowDuration:   30,
		WindowRows:       3,
		PlateauThreshold: 0.15,
		DefaultBodyMass:  70,
	}

	var results []BenchmarkResult
	for _, rows := range config.RowSizes {
		raw := syntheticRampTest(rows)

		var cold time.Duration
		var warmTotal time.Duration
		for run := 0; run < config.Runs; run++ {
			start := time.Now()
			if _, err := core.Run(raw, cfg); err != nil {
				fmt.Printf("Benchmark run failed at %d rows: %v\n", rows, err)
				os.Exit(1)
			}
			elapsed := time.Since(start)
			if run == 0 {
				cold = elapsed
			} else {
				warmTotal += elapsed
			}
		}
		warm := warmTotal / time.Duration(config.Runs-1)

		results = append(results, BenchmarkResult{
			Rows:     rows,
			ColdTime: cold.String(),
			WarmTime: warm.String(),
		})
		fmt.Printf("%8d rows: cold %s, warm %s\n", rows, cold, warm)
	}

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}
}

// syntheticRampTest generates a plausible incremental test: V'O2 climbs
// toward a plateau while ventilation outpaces it near the end.
func syntheticRampTest(rows int) *schema.RawTable {
	header := []string{"t", "V'O2", "V'CO2", "V'E", "HR", "BodyMass"}
	records := make([][]string, rows)
	for i := range records {
		progress := float64(i) / float64(rows)
		vo2 := 0.4 + 3.0*(1-math.Exp(-3*progress))
		vco2 := vo2 * (0.85 + 0.3*progress)
		ve := vo2 * (24 + 14*progress)
		hr := 70 + 120*progress

		records[i] = []string{
			strconv.Itoa(i * 10),
			strconv.FormatFloat(vo2, 'f', 3, 64),
			strconv.FormatFloat(vco2, 'f', 3, 64),
			strconv.FormatFloat(ve, 'f', 1, 64),
			strconv.FormatFloat(hr, 'f', 0, 64),
			"72",
		}
	}
	return &schema.RawTable{Header: header, Records: records}
}

// saveResults writes the benchmark table as CSV next to the benchmark.
func saveResults(results []BenchmarkResult) error {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"rows", "cold_time", "warm_time"}); err != nil {
		return err
	}
	for _, result := range results {
		record := []string{strconv.Itoa(result.Rows), result.ColdTime, result.WarmTime}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return nil
}
