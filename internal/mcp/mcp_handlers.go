package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spiroflow/vo2peak/core"
	"github.com/spiroflow/vo2peak/internal/contract"
	"github.com/spiroflow/vo2peak/internal/dataset"
	"github.com/spiroflow/vo2peak/schema"

	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// requestConfig clones the base config and applies the per-request smoothing
// overrides shared by every tool.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()

	path := request.GetString("dataset_path", "")
	if path == "" {
		return nil, fmt.Errorf("dataset_path is required")
	}
	cfg.DatasetPath = path
	cfg.InputFormat = schema.AutoIn

	if w := request.GetFloat("window", 0); w > 0 {
		cfg.WindowDuration = w
	}
	if s := request.GetFloat("sampling_interval", 0); s > 0 {
		cfg.SamplingInterval = s
	}
	if err := contract.RevalidateWindow(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (h *toolHandler) handleAnalyzeDataset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid analysis parameters: %v", err)), nil
	}
	if t := request.GetFloat("plateau_threshold", 0); t > 0 {
		cfg.PlateauThreshold = t
	}
	if m := request.GetFloat("body_mass", 0); m > 0 {
		cfg.DefaultBodyMass = m
	}

	result, err := core.GetAnalysisResult(cfg, dataset.NewReader(cfg))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	output := struct {
		Summary     schema.MetricsSummary `json:"summary"`
		EffortLabel string                `json:"effort_label"`
		Deciles     []schema.DecileRow    `json:"deciles"`
	}{
		Summary:     result.Summary,
		EffortLabel: schema.GetEffortLabel(result.Summary.RERTerminal),
		Deciles:     result.Deciles,
	}
	jsonData, _ := json.MarshalIndent(output, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetDeciles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid analysis parameters: %v", err)), nil
	}

	result, err := core.GetAnalysisResult(cfg, dataset.NewReader(cfg))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	deciles := result.Deciles
	if deciles == nil {
		deciles = []schema.DecileRow{}
	}
	jsonData, _ := json.MarshalIndent(deciles, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSmoothedSamples(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid analysis parameters: %v", err)), nil
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	result, err := core.GetAnalysisResult(cfg, dataset.NewReader(cfg))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	table := result.Smoothed
	rows := table.Rows()
	if cfg.ResultLimit > 0 && cfg.ResultLimit < rows {
		rows = cfg.ResultLimit
	}

	series := make(map[string][]*float64, len(table.Columns))
	for _, column := range table.Columns {
		series[column] = table.Series[column][:rows]
	}
	output := struct {
		Columns []string              `json:"columns"`
		Rows    int                   `json:"rows"`
		Series  map[string][]*float64 `json:"series"`
	}{
		Columns: table.Columns,
		Rows:    rows,
		Series:  series,
	}
	jsonData, _ := json.MarshalIndent(output, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}
