package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is stamped by the release build with
// -ldflags "-X .../cmd.version=v1.2.3". Plain go install builds fall
// back to the module version recorded in the binary, if any.
var version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the linuxplus version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("linuxplus", resolveVersion())
	},
}

func resolveVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
