package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is the hipkey release version, overridable at link time.
var Version = "0.1.0"

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the hipkey version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("hipkey %s (%s/%s)\n", Version, runtime.GOOS, runtime.GOARCH)
		},
	}

	RootCmd.AddCommand(cmd)
}
