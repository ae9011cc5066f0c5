package cli

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kith-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose check-ins to AI assistants",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server",
	Long: `Run a Model Context Protocol server that lets an assistant list due
check-ins, read a contact's history and complete or reschedule check-ins.

The server speaks JSON-RPC over stdin/stdout unless --port is given, in
which case it serves streamable HTTP on --host:--port.

  kith mcp serve
  kith mcp serve --port 8765

Register it with an assistant as:

  {"mcpServers": {"kith": {"command": "kith", "args": ["mcp", "serve"]}}}`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "serve HTTP on this port instead of stdio")
	mcpServeCmd.Flags().String("host", "127.0.0.1", "interface to bind in HTTP mode")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if checkInService == nil {
		return errors.New("check-in service not configured")
	}
	port, _ := cmd.Flags().GetInt("port")
	host, _ := cmd.Flags().GetString("host")
	if port < 0 || port > 65535 {
		return fmt.Errorf("invalid port %d", port)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		CheckIns:   checkInService,
		Contacts:   contactService,
		Categories: categoryService,
		Dashboard:  dashboardService,
	})
	if err != nil {
		return err
	}

	if port == 0 {
		return server.Run(cmd.Context())
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	cmd.PrintErrf("kith MCP server on http://%s\n", addr)
	return server.RunHTTP(cmd.Context(), addr)
}
