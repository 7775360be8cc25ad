package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listRoutesTool defines the list_routes MCP tool.
var listRoutesTool = mcp.NewTool("list_routes",
	mcp.WithDescription("List every documentation route: its hash route key and the Markdown document it loads."),
)

// resolveLinkTool defines the resolve_link MCP tool.
var resolveLinkTool = mcp.NewTool("resolve_link",
	mcp.WithDescription("Resolve an href as written in a Markdown document to the document path and hash route the viewer navigates to."),
	mcp.WithString("current",
		mcp.Required(),
		mcp.Description("Path of the document containing the link, e.g. architecture/overview.md"),
	),
	mcp.WithString("href",
		mcp.Required(),
		mcp.Description("The link target as authored, e.g. ../storage.md"),
	),
)

// getDocumentTool defines the get_document MCP tool.
var getDocumentTool = mcp.NewTool("get_document",
	mcp.WithDescription("Get a documentation page by route key or hash. Unknown routes fall back to the index page."),
	mcp.WithString("route",
		mcp.Description("Route key (architecture/overview) or hash (#/architecture/overview). Empty for the index."),
	),
	mcp.WithString("format",
		mcp.Description("Output format (default markdown)"),
		mcp.Enum("markdown", "html"),
	),
)

// checkLinksTool defines the check_links MCP tool.
var checkLinksTool = mcp.NewTool("check_links",
	mcp.WithDescription("Load every routed document and report documents that fail to load and internal links to unknown or missing documents."),
)
