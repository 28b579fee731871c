package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/kbukum/numkit/version"
)

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print the numkit version",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoSetup: "true"},
	Run: func(cmd *cobra.Command, _ []string) {
		info := version.Get()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "numkit %s\n", info.Short())
		if !info.BuildDate.IsZero() {
			fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate.Format("2006-01-02T15:04:05Z07:00"))
		}
		fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
