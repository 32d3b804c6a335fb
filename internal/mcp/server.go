// Package mcp exposes the literature store as an MCP tool server so agents
// can manage sources, notes, statuses, and entity links over tool calls.
// The adapter is a thin pass-through: it marshals tool arguments into the
// store and renders its results, never bypassing store validation.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server is the MCP server for the literature store.
type Server struct {
	store  types.Store
	server *mcp.Server
}

// NewServer creates an MCP server backed by the given store.
func NewServer(store types.Store) *Server {
	impl := &mcp.Implementation{
		Name:    "stacks",
		Version: Version,
	}

	s := &Server{
		store:  store,
		server: mcp.NewServer(impl, nil),
	}

	s.registerTools()

	return s
}

// Run starts the MCP server over stdio. It blocks until the context is
// cancelled or the transport closes.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
