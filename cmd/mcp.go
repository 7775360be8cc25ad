package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/docview/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the route table, link resolver and documents as tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := newViewer()
		if err != nil {
			return err
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "docview MCP server started on stdio (routes=%d)\n", len(v.table.Entries()))

		srv := mcpserver.NewServer(v.table, v.loader, v.renderer, v.log)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
