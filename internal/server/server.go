// Package server exposes the MSA pipeline as Model Context Protocol tools.
// The transport is the MCP stdio server; this package only registers the two
// tools, decodes their arguments and maps pipeline errors to tool errors.
package server

import (
	"context"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/seqforge/mmseqs-msa/pkg/logger"
	"github.com/seqforge/mmseqs-msa/pkg/msa"
)

const serverName = "mmseqs2"

// Config carries the deployment settings of the tool server.
type Config struct {
	// DatabasePath is the reference database used when a tool call names none.
	DatabasePath string
	// MaxConcurrent caps how many pipeline runs may execute at once. Each run
	// forks an mmseqs process tree, so the cap protects the host from call
	// bursts.
	MaxConcurrent int64
}

// Server registers the MSA tools on an MCP server and serves them over stdio.
type Server struct {
	runner    *msa.Runner
	log       logger.Logger
	defaultDB string
	sem       *semaphore.Weighted
	mcp       *mcpserver.MCPServer
}

// New wires a tool server around the given pipeline runner.
func New(runner *msa.Runner, log logger.Logger, cfg Config, version string) *Server {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 1
	}

	s := &Server{
		runner:    runner,
		log:       log,
		defaultDB: cfg.DatabasePath,
		sem:       semaphore.NewWeighted(cfg.MaxConcurrent),
		mcp: mcpserver.NewMCPServer(serverName, version,
			mcpserver.WithToolCapabilities(false),
			mcpserver.WithRecovery(),
		),
	}

	s.registerTools()

	return s
}

// ServeStdio blocks serving tool calls on stdin/stdout until the client
// disconnects.
func (s *Server) ServeStdio() error {
	s.log.Info("serving MCP tools on stdio",
		zap.String("server", serverName), zap.String("database", s.defaultDB))

	return mcpserver.ServeStdio(s.mcp)
}

// acquire takes a pipeline slot, honouring call cancellation while waiting.
func (s *Server) acquire(ctx context.Context) error {
	return s.sem.Acquire(ctx, 1)
}

func (s *Server) release() {
	s.sem.Release(1)
}
