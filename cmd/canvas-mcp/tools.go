package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openlms/canvas-mcp/internal/canvas/common"
	"github.com/openlms/canvas-mcp/internal/canvas/tools"
)

// registerTools registers every catalogue operation on the MCP server, wiring
// each to a handler that dispatches with the configured Canvas credentials.
func registerTools(s *server.MCPServer, d *tools.Dispatcher, cfg *common.Config) {
	for _, op := range d.Registry().All() {
		s.AddTool(buildMCPTool(op), makeToolHandler(d, cfg, op.Name))
	}
}

// buildMCPTool converts a catalogue operation into an mcp.Tool with the
// appropriate schema.
func buildMCPTool(op *tools.Operation) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(op.Description)}
	for _, arg := range op.Args {
		opts = append(opts, buildArgOption(arg))
	}
	return mcp.NewTool(op.Name, opts...)
}

// buildArgOption maps an argument spec to the appropriate mcp-go tool option.
func buildArgOption(arg tools.ArgSpec) mcp.ToolOption {
	var opts []mcp.PropertyOption
	if arg.Description != "" {
		opts = append(opts, mcp.Description(arg.Description))
	}
	if arg.Required {
		opts = append(opts, mcp.Required())
	}

	switch arg.Type {
	case tools.ArgInt:
		return mcp.WithNumber(arg.Name, opts...)
	case tools.ArgBool:
		return mcp.WithBoolean(arg.Name, opts...)
	case tools.ArgStringList:
		opts = append([]mcp.PropertyOption{mcp.WithStringItems()}, opts...)
		return mcp.WithArray(arg.Name, opts...)
	case tools.ArgIntList:
		opts = append([]mcp.PropertyOption{mcp.Items(map[string]any{"type": "number"})}, opts...)
		return mcp.WithArray(arg.Name, opts...)
	default:
		return mcp.WithString(arg.Name, opts...)
	}
}

// makeToolHandler routes an MCP tool call through the dispatcher. Faults come
// back as error results; successes as the result JSON, with a markdown summary
// prepended for the operations that have one.
func makeToolHandler(d *tools.Dispatcher, cfg *common.Config, toolName string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		env := d.Dispatch(ctx, tools.Call{
			Tool:           toolName,
			Args:           request.GetArguments(),
			CanvasAPIURL:   cfg.Canvas.APIURL,
			CanvasAPIToken: cfg.Canvas.APIToken,
		})

		if env.Error != nil {
			return errorResult(*env.Error), nil
		}

		data, err := json.MarshalIndent(env.Result, "", "  ")
		if err != nil {
			return errorResult(fmt.Sprintf("Error encoding result: %v", err)), nil
		}

		if summary := summarizeResult(toolName, data); summary != "" {
			return textResult(summary + "\n\n" + string(data)), nil
		}
		return textResult(string(data)), nil
	}
}

// --- Helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}
