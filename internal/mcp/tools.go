package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mesh-intelligence/stacks/internal/search"
	"github.com/mesh-intelligence/stacks/pkg/types"
)

// SourceRef identifies an existing source by its logical identity. Tools
// that operate on a source resolve it through this triple rather than
// asking agents to track opaque IDs.
type SourceRef struct {
	SourceType      string `json:"source_type" jsonschema:"source type: paper, webpage, book, video, or blog"`
	IdentifierType  string `json:"identifier_type" jsonschema:"identifier type: arxiv, doi, isbn, url, or semantic_scholar"`
	IdentifierValue string `json:"identifier_value" jsonschema:"identifier value, e.g. 1706.03762 for arXiv"`
}

// AddSourceInput is the input schema for the add_source tool.
type AddSourceInput struct {
	Title           string `json:"title" jsonschema:"title of the source"`
	SourceType      string `json:"source_type" jsonschema:"source type: paper, webpage, book, video, or blog"`
	IdentifierType  string `json:"identifier_type" jsonschema:"identifier type: arxiv, doi, isbn, url, or semantic_scholar"`
	IdentifierValue string `json:"identifier_value" jsonschema:"identifier value, e.g. 1706.03762 for arXiv"`
	NoteTitle       string `json:"initial_note_title,omitempty" jsonschema:"optional title for an initial note"`
	NoteContent     string `json:"initial_note_content,omitempty" jsonschema:"optional content for an initial note"`
}

// SourceOutput carries full source details plus a readable summary.
type SourceOutput struct {
	Source  *types.Source `json:"source"`
	Summary string        `json:"summary"`
}

// AddNoteInput is the input schema for the add_note tool.
type AddNoteInput struct {
	SourceRef
	NoteTitle   string `json:"note_title" jsonschema:"title of the note, unique per source"`
	NoteContent string `json:"note_content" jsonschema:"content of the note"`
}

// UpdateStatusInput is the input schema for the update_status tool.
type UpdateStatusInput struct {
	SourceRef
	Status string `json:"status" jsonschema:"new reading status: unread, reading, completed, or archived"`
}

// LinkEntityInput is the input schema for the link_to_entity tool.
type LinkEntityInput struct {
	SourceRef
	EntityName   string `json:"entity_name" jsonschema:"name of the concept to link"`
	RelationType string `json:"relation_type" jsonschema:"relation type: discusses, introduces, extends, evaluates, applies, or critiques"`
	Notes        string `json:"notes,omitempty" jsonschema:"optional notes about the relationship"`
}

// ListSourcesInput is the input schema for the list_sources tool.
type ListSourcesInput struct {
	SourceType string `json:"source_type,omitempty" jsonschema:"optional filter by source type"`
	Status     string `json:"status,omitempty" jsonschema:"optional filter by reading status"`
	Limit      int    `json:"limit,omitempty" jsonschema:"maximum number of results (default 50)"`
}

// ListSourcesOutput is the output schema for the list_sources tool.
type ListSourcesOutput struct {
	Sources []types.SourceSummary `json:"sources"`
	Count   int                   `json:"count"`
}

// SearchSourcesInput is the input schema for the search_sources tool.
type SearchSourcesInput struct {
	Query string `json:"query" jsonschema:"text to match against source titles"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results (default 10)"`
}

// StatsOutput is the output schema for the database_stats tool.
type StatsOutput struct {
	Stats *types.Stats `json:"stats"`
}

// searchScanLimit caps how many summaries search_sources pulls before
// ranking in memory.
const searchScanLimit = 1000

// defaultSearchLimit caps search_sources results when the agent does not
// supply a positive limit.
const defaultSearchLimit = 10

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_source",
		Description: "Add a new source to the literature collection, optionally with an initial note",
	}, s.handleAddSource)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_note",
		Description: "Add a note to an existing source",
	}, s.handleAddNote)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_status",
		Description: "Update the reading status of a source",
	}, s.handleUpdateStatus)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "link_to_entity",
		Description: "Link a source to a named concept with a typed relationship",
	}, s.handleLinkEntity)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_source_details",
		Description: "Get full details for a source, including its notes and entity links",
	}, s.handleGetSourceDetails)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_sources",
		Description: "List sources with optional type and status filters",
	}, s.handleListSources)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_sources",
		Description: "Search sources by title",
	}, s.handleSearchSources)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "database_stats",
		Description: "Get aggregate statistics for the literature collection",
	}, s.handleStats)
}

// resolveSource looks a source up by its logical identity and fails when
// it does not exist, since the calling tool targets a specific source.
func (s *Server) resolveSource(ref SourceRef) (*types.Source, error) {
	src, err := s.store.FindSourceByIdentifier(ref.IdentifierType, ref.IdentifierValue, ref.SourceType)
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("no %s found with %s %q",
			ref.SourceType, ref.IdentifierType, ref.IdentifierValue)
	}
	return src, nil
}

func (s *Server) handleAddSource(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AddSourceInput,
) (*mcp.CallToolResult, SourceOutput, error) {
	// Advisory validation first, for readable early feedback; the store
	// re-validates and is the authority.
	if errs := search.ValidateSourceInput(search.SourceInput{
		Title:           input.Title,
		SourceType:      input.SourceType,
		IdentifierType:  input.IdentifierType,
		IdentifierValue: input.IdentifierValue,
	}); len(errs) > 0 {
		return nil, SourceOutput{}, fmt.Errorf("validation failed: %v", errs)
	}

	id, err := s.store.AddSource(input.Title, input.SourceType, input.IdentifierType, input.IdentifierValue)
	if err != nil {
		return nil, SourceOutput{}, err
	}

	// The initial note is a second unit of work: the source stays
	// persisted even if the note fails.
	if input.NoteTitle != "" && input.NoteContent != "" {
		if err := s.store.AddNote(id, input.NoteTitle, input.NoteContent); err != nil {
			return nil, SourceOutput{}, fmt.Errorf("source %s created, but initial note failed: %w", id, err)
		}
	}

	return s.sourceOutput(id)
}

func (s *Server) handleAddNote(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AddNoteInput,
) (*mcp.CallToolResult, SourceOutput, error) {
	src, err := s.resolveSource(input.SourceRef)
	if err != nil {
		return nil, SourceOutput{}, err
	}

	if err := s.store.AddNote(src.ID, input.NoteTitle, input.NoteContent); err != nil {
		return nil, SourceOutput{}, err
	}

	return s.sourceOutput(src.ID)
}

func (s *Server) handleUpdateStatus(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input UpdateStatusInput,
) (*mcp.CallToolResult, SourceOutput, error) {
	src, err := s.resolveSource(input.SourceRef)
	if err != nil {
		return nil, SourceOutput{}, err
	}

	if err := s.store.UpdateStatus(src.ID, input.Status); err != nil {
		return nil, SourceOutput{}, err
	}

	return s.sourceOutput(src.ID)
}

func (s *Server) handleLinkEntity(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input LinkEntityInput,
) (*mcp.CallToolResult, SourceOutput, error) {
	src, err := s.resolveSource(input.SourceRef)
	if err != nil {
		return nil, SourceOutput{}, err
	}

	if err := s.store.LinkToEntity(src.ID, input.EntityName, input.RelationType, input.Notes); err != nil {
		return nil, SourceOutput{}, err
	}

	return s.sourceOutput(src.ID)
}

func (s *Server) handleGetSourceDetails(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SourceRef,
) (*mcp.CallToolResult, SourceOutput, error) {
	src, err := s.resolveSource(input)
	if err != nil {
		return nil, SourceOutput{}, err
	}
	return s.sourceOutput(src.ID)
}

func (s *Server) handleListSources(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListSourcesInput,
) (*mcp.CallToolResult, ListSourcesOutput, error) {
	sources, err := s.store.ListSources(types.ListOptions{
		Type:   input.SourceType,
		Status: input.Status,
		Limit:  input.Limit,
	})
	if err != nil {
		return nil, ListSourcesOutput{}, err
	}

	return nil, ListSourcesOutput{Sources: sources, Count: len(sources)}, nil
}

func (s *Server) handleSearchSources(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SearchSourcesInput,
) (*mcp.CallToolResult, ListSourcesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	sources, err := s.store.ListSources(types.ListOptions{Limit: searchScanLimit})
	if err != nil {
		return nil, ListSourcesOutput{}, err
	}

	results := search.ByTitle(sources, input.Query)
	if len(results) > limit {
		results = results[:limit]
	}

	return nil, ListSourcesOutput{Sources: results, Count: len(results)}, nil
}

func (s *Server) handleStats(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, StatsOutput, error) {
	stats, err := s.store.Stats()
	if err != nil {
		return nil, StatsOutput{}, err
	}
	return nil, StatsOutput{Stats: stats}, nil
}

// sourceOutput fetches the full aggregate for id and pairs it with a
// readable summary.
func (s *Server) sourceOutput(id string) (*mcp.CallToolResult, SourceOutput, error) {
	src, err := s.store.GetSourceByID(id)
	if err != nil {
		return nil, SourceOutput{}, err
	}
	if src == nil {
		return nil, SourceOutput{}, fmt.Errorf("%w: %s", types.ErrNotFound, id)
	}
	return nil, SourceOutput{Source: src, Summary: search.FormatSummary(src)}, nil
}
