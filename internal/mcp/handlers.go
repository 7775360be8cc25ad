package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/docview/internal/linkcheck"
	"github.com/ziadkadry99/docview/internal/route"
)

// handleListRoutes returns the route table as a Markdown table.
func (s *Server) handleListRoutes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	b.WriteString("| Hash | Document |\n|------|----------|\n")
	for _, e := range s.table.Entries() {
		fmt.Fprintf(&b, "| `%s` | `%s` |\n", route.Href(e.Key), e.Path)
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleResolveLink resolves one href against the route table.
func (s *Server) handleResolveLink(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	current, err := request.RequireString("current")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: current"), nil
	}
	href, err := request.RequireString("href")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: href"), nil
	}

	resolver := s.renderer.Resolver()
	res := resolver.Link(route.DocumentPath(current), href)

	var b strings.Builder
	fmt.Fprintf(&b, "Kind: %s\n", res.Kind)
	if !res.Rewritten() {
		fmt.Fprintf(&b, "The link is left unchanged: %s\n", res.Href)
		return mcp.NewToolResultText(b.String()), nil
	}
	fmt.Fprintf(&b, "Document: %s\n", res.Target)
	fmt.Fprintf(&b, "Hash: %s\n", res.NewHref)
	if resolver.Known(res) {
		b.WriteString("Routed: yes\n")
	} else {
		b.WriteString("Routed: no (a reload on this hash shows the index)\n")
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleGetDocument loads and returns one routed document.
func (s *Server) handleGetDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key := route.ParseHash(request.GetString("route", ""))
	p := s.table.KeyToPath(key)

	raw, err := s.loader.Load(ctx, p)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if request.GetString("format", "markdown") != "html" {
		return mcp.NewToolResultText(string(raw)), nil
	}

	doc, err := s.renderer.Render(p, raw)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render %s: %v", p, err)), nil
	}
	return mcp.NewToolResultText(doc.HTML), nil
}

// handleCheckLinks audits the route table.
func (s *Server) handleCheckLinks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, err := linkcheck.New(s.table, s.loader, s.renderer, nil).Run(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("check failed: %v", err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Checked %d documents and %d internal links: %d errors, %d warnings.\n",
		report.Documents, report.Links, report.Errors(), report.Warnings())
	for _, f := range report.Findings {
		if f.Href != "" {
			fmt.Fprintf(&b, "- [%s] %s: %s -> %s: %s\n", f.Severity, f.Source, f.Href, f.Target, f.Message)
		} else {
			fmt.Fprintf(&b, "- [%s] %s: %s\n", f.Severity, f.Source, f.Message)
		}
	}
	return mcp.NewToolResultText(b.String()), nil
}
