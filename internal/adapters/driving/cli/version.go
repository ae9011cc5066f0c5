package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kith-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print version information",
	Annotations: map[string]string{annotationNoServices: "true"},
	Run: func(cmd *cobra.Command, _ []string) {
		if short, _ := cmd.Flags().GetBool("short"); short {
			cmd.Println(version)
			return
		}
		cmd.Printf("kith %s (%s, %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		cmd.Printf("  export format: v%d\n", domain.SnapshotVersion)
		cmd.Printf("  mcp server:    %s\n", mcp.Version)
	},
}

func init() {
	versionCmd.Flags().Bool("short", false, "Print only the version number")
	rootCmd.AddCommand(versionCmd)
}
