package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/wordgrams/internal/adapters/driving/mcp"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Prints the wordgrams build version and the version the MCP server reports to clients.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("wordgrams version %s (mcp server %s)\n", version, mcp.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
