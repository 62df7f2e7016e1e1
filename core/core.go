// Package core has the data-normalization and metric-derivation pipeline.
package core

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spiroflow/vo2peak/internal/contract"
	"github.com/spiroflow/vo2peak/internal/outwriter"
	"github.com/spiroflow/vo2peak/internal/xlsx"
	"github.com/spiroflow/vo2peak/schema"
)

// ErrNoOxygenUptake reports a structurally invalid dataset: after alias
// normalization, no column resolves to the primary oxygen-uptake channel.
// This is the only malformed-input condition the core refuses to compute.
var ErrNoOxygenUptake = errors.New("dataset has no oxygen uptake channel")

// Run executes the full pipeline on one raw table: normalize, smooth,
// derive, then detect peaks and build the decile table. Data flows strictly
// forward; no stage mutates the output of a completed stage.
func Run(raw *schema.RawTable, cfg *contract.Config) (*schema.AnalysisResult, error) {
	normalized, err := NormalizeTable(raw, cfg)
	if err != nil {
		return nil, err
	}

	smoothed := SmoothTable(normalized, cfg)
	DeriveMetrics(smoothed, cfg)

	summary := DetectPeaks(smoothed, cfg)
	deciles := BuildDecileTable(smoothed, summary.VO2Peak, cfg)

	return &schema.AnalysisResult{
		Smoothed: smoothed,
		Summary:  summary,
		Deciles:  deciles,
	}, nil
}

// GetAnalysisResult reads the configured dataset and runs the pipeline
// without printing anything. MCP handlers and tests use this entry point.
func GetAnalysisResult(cfg *contract.Config, reader contract.DatasetReader) (*schema.AnalysisResult, error) {
	raw, err := reader.Read(cfg.DatasetPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read dataset: %w", err)
	}
	return Run(raw, cfg)
}

// ExecuteAnalyze runs the pipeline and prints the metrics summary and the
// percentage-of-peak table. It serves as the main entry point for the
// 'analyze' command.
func ExecuteAnalyze(cfg *contract.Config, reader contract.DatasetReader) error {
	logAnalysisHeader(cfg)
	start := time.Now()
	result, err := GetAnalysisResult(cfg, reader)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.WriteAnalysis(result, cfg, duration)
}

// ExecuteSmooth runs the pipeline and prints the smoothed sample table.
func ExecuteSmooth(cfg *contract.Config, reader contract.DatasetReader) error {
	logAnalysisHeader(cfg)
	start := time.Now()
	result, err := GetAnalysisResult(cfg, reader)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.WriteSamples(result.Smoothed, cfg, duration)
}

// ExecuteDeciles runs the pipeline and prints the percentage-of-peak table.
func ExecuteDeciles(cfg *contract.Config, reader contract.DatasetReader) error {
	logAnalysisHeader(cfg)
	start := time.Now()
	result, err := GetAnalysisResult(cfg, reader)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.WriteDeciles(result.Deciles, cfg, duration)
}

// ExecuteExport runs the pipeline and writes all three artifacts as one
// multi-sheet xlsx workbook.
func ExecuteExport(cfg *contract.Config, reader contract.DatasetReader, outPath string) error {
	logAnalysisHeader(cfg)
	result, err := GetAnalysisResult(cfg, reader)
	if err != nil {
		return err
	}
	if err := xlsx.WriteWorkbook(result, cfg, outPath); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	fmt.Printf("💾 Wrote workbook to %s\n", outPath)
	return nil
}

// logAnalysisHeader prints a concise, 2-line header for each analysis run.
// Structured output modes stay header-free so stdout remains parseable.
func logAnalysisHeader(cfg *contract.Config) {
	if cfg.Output != schema.TextOut {
		return
	}
	datasetName := filepath.Base(cfg.DatasetPath)
	if datasetName == "" || datasetName == "." {
		datasetName = "stdin"
	}

	// Line 1: the dataset being analyzed
	fmt.Printf("🫁 Dataset: %s (format: %s)\n", datasetName, cfg.InputFormat)

	// Line 2: the smoothing parameters in effect
	fmt.Printf("📐 Window: %gs trailing mean, %gs sampling, plateau < %g L/min\n",
		cfg.WindowDuration, cfg.SamplingInterval, cfg.PlateauThreshold)
}
