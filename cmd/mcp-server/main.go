package main

import (
	"context"
	"log"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	internalTypes "github.com/tejas-uk/splitwise-mcp/internal/types"
	"github.com/tejas-uk/splitwise-mcp/pkg/splitwise"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := setupLogging(cfg.LogLevel)

	var retryConfig *internalTypes.RetryConfig
	if cfg.MaxRetries > 0 {
		retryConfig = &internalTypes.RetryConfig{
			MaxRetries: cfg.MaxRetries,
			RetryWait:  1 * time.Second,
			MaxWait:    30 * time.Second,
		}
	}

	// Initialize Splitwise client
	client, err := splitwise.NewClient(&splitwise.ClientOptions{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Timeout:     cfg.Timeout,
		Logger:      &slogAdapter{logger: logger},
		RetryConfig: retryConfig,
		SentryDSN:   cfg.SentryDSN,
	})
	if err != nil {
		log.Fatalf("failed to initialize Splitwise client: %v", err)
	}
	defer client.Close()

	// Resolve the acting user's id so create_expense can enforce the
	// caller-in-split policy. A failure here disables the check rather
	// than preventing startup.
	var callerID int64
	if cfg.RequireCallerInSplit {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		user, err := client.Users.Current(ctx)
		cancel()
		if err != nil {
			logger.Warn("could not resolve current user; caller-in-split check disabled", "error", err)
		} else {
			callerID = user.ID
			logger.Info("authenticated", "user", user.FullName(), "id", user.ID)
		}
	}

	// Create MCP server
	impl := &mcp.Implementation{
		Name:    "splitwise",
		Version: "1.0.0",
	}

	server := mcp.NewServer(impl, nil)

	// Register all tools
	registerTools(server, client, callerID)

	// Run server over stdio transport (for Claude Desktop)
	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
