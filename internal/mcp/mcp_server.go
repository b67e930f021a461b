// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/transitlab/transitscope/internal/contract"
)

// NewMCPServer initializes and configures the Transitscope MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.CatalogClient) *server.MCPServer {
	s := server.NewMCPServer(
		"Transitscope Survey Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	// --- 1. Tool: get_profile ---
	s.AddTool(mcp.NewTool("get_profile",
		mcp.WithDescription("Fuse the catalog sources into a verified system profile with per-field provenance."),
		mcp.WithString("identifier", mcp.Description("System identifier, e.g. 'TRAPPIST-1'."), mcp.Required()),
	), h.handleGetProfile)

	// --- 2. Tool: generate_lightcurve ---
	s.AddTool(mcp.NewTool("generate_lightcurve",
		mcp.WithDescription("Generate the synthetic time-domain transit light curve for a system."),
		mcp.WithString("identifier", mcp.Description("System identifier, e.g. 'TRAPPIST-1'."), mcp.Required()),
		mcp.WithNumber("period_days", mcp.Description("Override the orbital period in days.")),
		mcp.WithNumber("depth", mcp.Description("Override the fractional transit depth.")),
		mcp.WithNumber("duration_hours", mcp.Description("Override the transit duration in hours.")),
		mcp.WithNumber("epoch_hours", mcp.Description("Override the mid-transit epoch in hours.")),
		mcp.WithNumber("samples", mcp.Description("Number of time samples to generate.")),
	), h.handleGenerateLightCurve)

	// --- 3. Tool: generate_periodogram ---
	s.AddTool(mcp.NewTool("generate_periodogram",
		mcp.WithDescription("Generate the synthetic period-power spectrum for a system."),
		mcp.WithString("identifier", mcp.Description("System identifier, e.g. 'TRAPPIST-1'."), mcp.Required()),
		mcp.WithNumber("period_days", mcp.Description("Override the orbital period in days.")),
		mcp.WithNumber("depth", mcp.Description("Override the fractional transit depth.")),
		mcp.WithNumber("duration_hours", mcp.Description("Override the transit duration in hours.")),
		mcp.WithNumber("epoch_hours", mcp.Description("Override the mid-transit epoch in hours.")),
		mcp.WithNumber("samples", mcp.Description("Number of trial periods in the spectrum.")),
	), h.handleGeneratePeriodogram)

	// --- 4. Tool: fit_transit ---
	s.AddTool(mcp.NewTool("fit_transit",
		mcp.WithDescription("Run the stochastic transit parameter search against a synthetic observed curve."),
		mcp.WithString("identifier", mcp.Description("System identifier, e.g. 'TRAPPIST-1'."), mcp.Required()),
		mcp.WithNumber("period_days", mcp.Description("Override the initial orbital period in days.")),
		mcp.WithNumber("depth", mcp.Description("Override the initial fractional transit depth.")),
		mcp.WithNumber("duration_hours", mcp.Description("Override the initial transit duration in hours.")),
		mcp.WithNumber("epoch_hours", mcp.Description("Override the mid-transit epoch in hours.")),
		mcp.WithNumber("iterations", mcp.Description("Number of optimizer iterations to run.")),
	), h.handleFitTransit)

	return s
}

// StartMCPServer starts the Transitscope MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.CatalogClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}
