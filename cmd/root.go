// Package cmd provides the root command and CLI setup for svgflat.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"svgflat.dev/pkg/svgflat/internal/adapter"
	"svgflat.dev/pkg/svgflat/internal/controller"
	"svgflat.dev/pkg/svgflat/internal/domain"
	m "svgflat.dev/pkg/svgflat/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var documentLoader adapter.DocumentLoader
var previewRenderer adapter.PreviewRenderer

// workflow overrides the workflow built per command when set.
var workflow domain.Workflow

// Root-level flags shared by every flattening command.
var (
	outputFlag      string
	excludePatterns []string
	parallelFlag    int
	shardFlag       string
	strictFlag      bool
	samplesFlag     int
	logFileFlag     string
	verboseFlag     bool
)

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	documentLoader = adapter.NewSVGDocumentLoader(fsAdapter)
	previewRenderer = adapter.NewPNGPreviewRenderer()
}

const pathPatternsHelp = `Supports path patterns:
  - drawing.svg     a single file
  - ./art           SVG files directly inside art
  - ./art/...       SVG files in art and all of its subdirectories
  - ./a ./b         multiple paths`

const rootLongDescription = `svgflat flattens the path data of SVG documents (M, L, H, V, Q and Z
commands, absolute and relative) into polylines of absolute points.
Quadratic curves are sampled at a fixed number of points.

` + pathPatternsHelp

const convertLongDescription = `Flatten documents and export one file per document into the output
directory. Use -o - to write to standard output.

` + pathPatternsHelp

const listLongDescription = `List documents with their element, subpath and point counts.

` + pathPatternsHelp

const previewLongDescription = `Render a PNG preview of the flattened polylines of every document.

` + pathPatternsHelp

const verifyLongDescription = `Check that flattened polylines survive a round trip through encoded path
data. Mismatches are shown as diffs and make the command fail.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "svgflat",
		Short: "Flatten SVG path data into polylines",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			if configErr != nil {
				slog.Warn("Failed to read config file", "error", configErr)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&outputFlag, outputFlagName, "o", viper.GetString(outputConfigKey), "output directory (- for standard output)")
	bindFlagToConfig(flags.Lookup(outputFlagName), outputConfigKey)

	flags.StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.IntVarP(&parallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of documents flattened in parallel")
	bindFlagToConfig(flags.Lookup(runParallelFlagName), runParallelConfigKey)

	flags.StringVarP(&shardFlag, shardFlagName, "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")

	flags.BoolVar(&strictFlag, strictFlagName, viper.GetBool(runStrictConfigKey), "fail when any path element cannot be flattened")
	bindFlagToConfig(flags.Lookup(strictFlagName), runStrictConfigKey)

	flags.IntVarP(&samplesFlag, samplesFlagName, "n", viper.GetInt(samplesConfigKey), "points per quadratic curve")
	bindFlagToConfig(flags.Lookup(samplesFlagName), samplesConfigKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// resolveWorkflow returns the workflow for cmd, wired with a parser that
// uses the configured sample count.
func resolveWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	if workflow != nil {
		return workflow, nil
	}

	flattener, err := domain.NewFlattener(viper.GetInt(samplesConfigKey))
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", samplesFlagName, err)
	}

	ui := controller.NewUI(cmd, controller.IsTTY(os.Stdout))

	return domain.NewWorkflow(fsAdapter, documentLoader, previewRenderer, ui, domain.NewParser(flattener)), nil
}

// sourceArgs collects the document selection shared by every command.
func sourceArgs(args []string) domain.SourceArgs {
	shardIndex, totalShards := parseShardFlag(shardFlag)

	return domain.SourceArgs{
		Paths:           parsePaths(args),
		Exclude:         viper.GetStringSlice(excludeConfigKey),
		Threads:         viper.GetInt(runParallelConfigKey),
		ShardIndex:      shardIndex,
		TotalShardCount: totalShards,
	}
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}

func parsePaths(args []string) []m.FilePath {
	paths := make([]m.FilePath, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.FilePath(arg))
	}

	return paths
}
