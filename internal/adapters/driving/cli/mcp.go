package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/recap-cli/internal/adapters/driven/dom"
	"github.com/custodia-labs/recap-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so assistants and browser
automation can classify court pages and resolve their identifiers.

Tools: classify_page, resolve_page and, when the archive is configured,
check_availability. Resources: recap://courts, recap://tabs and
recap://tabs/{tabId}.

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  recap mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  recap mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := newMCPServer()
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

func newMCPServer() (*mcp.Server, error) {
	ports := &mcp.Ports{
		Classifier:   classifierService,
		Resolver:     resolverService,
		TabCache:     tabCacheService,
		Availability: availabilityService,
		Navigation:   navigationService,
		Parse:        dom.Parse,
	}
	return mcp.NewServer(ports, mcp.WithVersion(version))
}
