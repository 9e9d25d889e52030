// Package mcp exposes the outreach service as MCP tools over stdio, so an
// assistant can look up content and draft messages on the user's behalf.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sandevgo/reachout/internal/core"
	"github.com/sandevgo/reachout/pkg/log"
)

const serverName = "reachout"

type Server struct {
	svc     core.OutreachService
	mcp     *server.MCPServer
	version string
	in      io.Reader
	out     io.Writer
}

func NewServer(svc core.OutreachService, version string) *Server {
	s := &Server{
		svc:     svc,
		version: version,
		in:      os.Stdin,
		out:     os.Stdout,
	}
	s.mcp = server.NewMCPServer(serverName, version, server.WithToolCapabilities(true))
	s.registerTools()
	return s
}

func personArgs() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("name", mcp.Required(), mcp.Description("Full name of the person")),
		mcp.WithString("company", mcp.Description("Company, used for search and redacted from the message")),
		mcp.WithString("designation", mcp.Description("Job title, used for search and redacted from the message")),
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("search_content",
		append([]mcp.ToolOption{
			mcp.WithDescription("Find recent articles and posts about a person"),
		}, personArgs()...)...,
	), s.searchContent)

	s.mcp.AddTool(mcp.NewTool("generate_message",
		append([]mcp.ToolOption{
			mcp.WithDescription("Write a short LinkedIn connection message that references the person's recent content"),
			mcp.WithString("title", mcp.Description("Title of content to reference instead of searching")),
			mcp.WithString("snippet", mcp.Description("Summary of that content, required with title")),
		}, personArgs()...)...,
	), s.generateMessage)

	s.mcp.AddTool(mcp.NewTool("message_history",
		mcp.WithDescription("List the messages generated in this session"),
	), s.messageHistory)

	s.mcp.AddTool(mcp.NewTool("api_usage",
		mcp.WithDescription("Show how many calls were made to each external service"),
	), s.apiUsage)
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("version", s.version).Msg("starting mcp stdio server")
	err := server.NewStdioServer(s.mcp).Listen(ctx, s.in, s.out)
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}

func person(req mcp.CallToolRequest) (core.Person, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return core.Person{}, err
	}
	p := core.Person{
		Name:        name,
		Company:     req.GetString("company", ""),
		Designation: req.GetString("designation", ""),
	}.Normalized()
	if p.Name == "" {
		return p, core.ErrEmptyPerson
	}
	return p, nil
}

func (s *Server) searchContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := person(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rs, err := s.svc.SearchContent(ctx, p)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(rs)
}

type generateResult struct {
	Message *core.GeneratedMessage `json:"message"`
	Notices []string               `json:"notices,omitempty"`
}

func (s *Server) generateMessage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := person(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var manual *core.ResultSet
	title, snippet := req.GetString("title", ""), req.GetString("snippet", "")
	if title != "" || snippet != "" {
		if title == "" || snippet == "" {
			return mcp.NewToolResultError("title and snippet must be given together"), nil
		}
		manual = core.NewManualResultSet(title, snippet)
	}

	rs, msg, err := s.svc.Generate(ctx, p, manual)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("person", p.Name).Msg("mcp generate failed")
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(generateResult{Message: msg, Notices: rs.Notices})
}

func (s *Server) messageHistory(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	msgs, err := s.svc.History(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if msgs == nil {
		msgs = []core.GeneratedMessage{}
	}
	return jsonResult(msgs)
}

func (s *Server) apiUsage(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.svc.Usage())
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}
