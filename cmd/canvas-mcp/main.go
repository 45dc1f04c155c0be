package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/openlms/canvas-mcp/internal/canvas/api"
	"github.com/openlms/canvas-mcp/internal/canvas/common"
	"github.com/openlms/canvas-mcp/internal/canvas/tools"
)

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for Claude Desktop)")
	configFile := flag.String("config", "canvas-mcp.toml", "Path to config file")
	flag.Parse()

	cfg, err := common.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load version
	common.LoadVersionFromFile()

	// Setup logging. Stdio transport must keep stdout clean for the protocol;
	// the console writer targets stderr, so both transports share one config.
	logger := common.NewLoggerFromConfig(cfg.Logging)

	registry := tools.NewDefaultRegistry()
	dispatcher := tools.NewDispatcher(registry, logger,
		api.WithTimeout(cfg.Canvas.GetTimeout()),
		api.WithDefaultPerPage(cfg.Canvas.DefaultPerPage),
		api.WithDebug(cfg.Canvas.EnableDebug),
	)

	// Create MCP server with tool definitions
	mcpServer := server.NewMCPServer(
		cfg.MCP.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	// Register the full Canvas catalogue
	registerTools(mcpServer, dispatcher, cfg)

	if *stdio {
		// Stdio transport — reads stdin, writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	port := cfg.MCP.Port

	// Streamable HTTP transport — listens on configured port
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	log.Printf("Starting MCP Streamable HTTP on :%s", port)
	fmt.Fprintf(os.Stderr, "Starting MCP Streamable HTTP on :%s\n", port)

	if err := httpServer.Start(":" + port); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
