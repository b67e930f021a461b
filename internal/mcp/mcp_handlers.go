package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/transitlab/transitscope/core"
	"github.com/transitlab/transitscope/internal/contract"
	"github.com/transitlab/transitscope/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.CatalogClient
}

// cloneForRequest builds a per-request config from the base config plus the
// required identifier argument.
func (h *toolHandler) cloneForRequest(request mcp.CallToolRequest) (*contract.Config, error) {
	identifier := strings.TrimSpace(request.GetString("identifier", ""))
	if identifier == "" {
		return nil, fmt.Errorf("identifier is required")
	}
	cfg := h.baseCfg.Clone()
	cfg.Identifier = identifier
	return cfg, nil
}

// applyParamArguments layers the optional transit parameter arguments over
// the config, mirroring the command line override flags.
func applyParamArguments(cfg *contract.Config, request mcp.CallToolRequest) {
	if v := request.GetFloat("period_days", 0); v > 0 {
		cfg.PeriodDays = v
	}
	if v := request.GetFloat("depth", 0); v > 0 {
		cfg.Depth = v
	}
	if v := request.GetFloat("duration_hours", 0); v > 0 {
		cfg.DurationHours = v
	}
	if v := request.GetFloat("epoch_hours", -1); v >= 0 {
		cfg.EpochHours = v
	}
}

func (h *toolHandler) handleGetProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.cloneForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid profile parameters: %v", err)), nil
	}

	profile, _, err := core.GetProfileResult(core.WithSuppressHeader(ctx), cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("profile lookup failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(profile, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGenerateLightCurve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.cloneForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid generation parameters: %v", err)), nil
	}
	applyParamArguments(cfg, request)
	if n := request.GetInt("samples", 0); n > 0 {
		cfg.Generation.CurveSamples = n
	}

	bundle, _, err := core.GetSignalBundle(core.WithSuppressHeader(ctx), cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("generation failed: %v", err)), nil
	}

	output := struct {
		Identifier string                   `json:"identifier"`
		Params     schema.TransitParameters `json:"params"`
		LightCurve []schema.LightCurvePoint `json:"light_curve"`
	}{bundle.Identifier, bundle.Params, bundle.LightCurve}
	jsonData, _ := json.MarshalIndent(output, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGeneratePeriodogram(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.cloneForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid generation parameters: %v", err)), nil
	}
	applyParamArguments(cfg, request)
	if n := request.GetInt("samples", 0); n > 0 {
		cfg.Generation.SpectrumSamples = n
	}

	bundle, _, err := core.GetSignalBundle(core.WithSuppressHeader(ctx), cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("generation failed: %v", err)), nil
	}

	output := struct {
		Identifier  string                    `json:"identifier"`
		Params      schema.TransitParameters  `json:"params"`
		Periodogram []schema.PeriodPowerPoint `json:"periodogram"`
	}{bundle.Identifier, bundle.Params, bundle.Periodogram}
	jsonData, _ := json.MarshalIndent(output, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleFitTransit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.cloneForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid fit parameters: %v", err)), nil
	}
	applyParamArguments(cfg, request)
	if n := request.GetInt("iterations", 0); n > 0 {
		cfg.Optimizer.Iterations = n
		if cfg.Optimizer.ExploreIterations > n {
			cfg.Optimizer.ExploreIterations = n
		}
	}

	fit, _, err := core.GetFitResult(core.WithSuppressHeader(ctx), cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("fit failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(fit, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
