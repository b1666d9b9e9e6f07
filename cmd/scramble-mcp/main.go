package main

import (
	"context"

	"github.com/AndreasThinks/ankh-morpork-scramble/internal/config"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/engine"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/logging"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/mcptools"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/store"
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/version"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		logging.Fatal("Invalid environment configuration", err, nil)
	}
	rosters, err := config.LoadRosters(settings.ConfigPath)
	if err != nil {
		logging.Fatal("Missing or invalid roster configuration", err, logging.Fields{"config_path": settings.ConfigPath})
	}

	// The stdio server keeps matches in memory only; a database would
	// outlive the agent session that created the games for no benefit.
	deps := &mcptools.Deps{
		Store:   store.New(nil),
		Exec:    engine.NewExecutor(nil),
		Rosters: rosters,
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "ankh-morpork-scramble",
		Version: version.Version,
	}, nil)
	mcptools.Register(server, deps)

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logging.Fatal("MCP server exited", err, nil)
	}
}
