// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/spiroflow/vo2peak/internal/contract"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the vo2peak MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"VO2peak Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: analyze_dataset ---
	s.AddTool(mcp.NewTool("analyze_dataset",
		mcp.WithDescription("Run the full cardiopulmonary exercise test analysis: peak oxygen uptake, plateau verdict, ventilation and heart-rate maxima, terminal RER and the percentage-of-peak table."),
		mcp.WithString("dataset_path", mcp.Description("Path to the exported dataset (xlsx or csv)."), mcp.Required()),
		mcp.WithNumber("window", mcp.Description("Smoothing window in seconds. Defaults to 30.")),
		mcp.WithNumber("sampling_interval", mcp.Description("Seconds between sample rows. Defaults to 10.")),
		mcp.WithNumber("plateau_threshold", mcp.Description("VO2 increment in L/min below which uptake counts as flat. Defaults to 0.15.")),
		mcp.WithNumber("body_mass", mcp.Description("Fallback body mass in kg when the dataset has no mass column. Defaults to 70.")),
	), h.handleAnalyzeDataset)

	// --- 2. Tool: get_deciles ---
	s.AddTool(mcp.NewTool("get_deciles",
		mcp.WithDescription("Return the percentage-of-peak table: for each 10% threshold of peak oxygen uptake, the first sample row that reached it."),
		mcp.WithString("dataset_path", mcp.Description("Path to the exported dataset (xlsx or csv)."), mcp.Required()),
		mcp.WithNumber("window", mcp.Description("Smoothing window in seconds.")),
		mcp.WithNumber("sampling_interval", mcp.Description("Seconds between sample rows.")),
	), h.handleGetDeciles)

	// --- 3. Tool: get_smoothed_samples ---
	s.AddTool(mcp.NewTool("get_smoothed_samples",
		mcp.WithDescription("Return the normalized sample table with smoothed and derived columns (trailing means, VO2 per kg, RER)."),
		mcp.WithString("dataset_path", mcp.Description("Path to the exported dataset (xlsx or csv)."), mcp.Required()),
		mcp.WithNumber("window", mcp.Description("Smoothing window in seconds.")),
		mcp.WithNumber("sampling_interval", mcp.Description("Seconds between sample rows.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of sample rows returned.")),
	), h.handleGetSmoothedSamples)

	return s
}

// StartMCPServer starts the vo2peak MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
