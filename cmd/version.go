package cmd

import (
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"svgflat.dev/pkg/svgflat/internal/adapter"
	"svgflat.dev/pkg/svgflat/internal/domain"
)

const develVersion = "(devel)"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show svgflat build and format information",
		Long: `Prints the svgflat module version and the Go toolchain it was built with,
followed by the supported export formats and the default curve sample count.`,
		Run: func(cmd *cobra.Command, _ []string) {
			version, goVersion := buildVersions()

			cmd.Printf("svgflat %s\n", version)
			cmd.Printf("go      %s\n", goVersion)
			cmd.Printf("formats %s\n", formatList())
			cmd.Printf("samples %d (default)\n", domain.DefaultSamples)
		},
	}
}

// buildVersions reads the module and toolchain versions embedded by the Go
// linker. Builds outside module mode report "(devel)".
func buildVersions() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return develVersion, "unknown"
	}

	version := info.Main.Version
	if version == "" {
		version = develVersion
	}

	return version, info.GoVersion
}

func formatList() string {
	formats := adapter.Formats()
	names := make([]string, 0, len(formats))

	for _, f := range formats {
		names = append(names, string(f))
	}

	return strings.Join(names, ", ")
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
