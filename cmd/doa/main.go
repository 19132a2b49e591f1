package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/guangie88/doa/internal/app"
	doaerrors "github.com/guangie88/doa/internal/errors"
	"github.com/guangie88/doa/internal/ui"
)

// version is set at build time via ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "doa",
	Short:   "doa - declarative docker run wrapper",
	Version: version,
	Long: `doa turns declarative container run specs into docker run invocations,
expanding embedded shell expressions ($VAR, ${VAR}, ` + "`cmd`" + `, $(cmd)) in every
string field before the command line reaches docker.`,
}

var runCmd = &cobra.Command{
	Use:   "run <name>",
	Short: "Run a named spec from a spec file",
	Long: `Run looks up the named entry in the spec YAML file, interpolates every
string field, assembles the docker run command line, and executes it. The
container's captured stdout and stderr are copied to doa's own streams.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")
		if file == "" {
			fmt.Fprintln(os.Stderr, "Error: --file flag is required")
			os.Exit(1)
		}

		dryRun, _ := cmd.Flags().GetBool("dry-run")
		noPreflight, _ := cmd.Flags().GetBool("no-preflight")

		runner := app.NewRunner()
		err := runner.Run(context.Background(), app.Options{
			SpecFile:    file,
			Name:        args[0],
			DryRun:      dryRun,
			NoPreflight: noPreflight,
		})
		if err != nil {
			doaerrors.HandleError(err)
			os.Exit(1)
		}
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the named specs in a spec file",
	Long: `List prints every entry of the spec YAML file together with its help
text, so the available invocations can be discovered without reading the file.`,
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")
		if file == "" {
			fmt.Fprintln(os.Stderr, "Error: --file flag is required")
			os.Exit(1)
		}

		entries, err := app.List(file)
		if err != nil {
			doaerrors.HandleError(err)
			os.Exit(1)
		}

		console := ui.NewConsole()
		for _, entry := range entries {
			console.PrintSpecEntry(entry.Name, entry.Help)
		}
	},
}

func init() {
	runCmd.Flags().StringP("file", "f", "", "Path to the spec YAML file (required)")
	runCmd.Flags().Bool("dry-run", false, "Print the rendered docker command without running it")
	runCmd.Flags().Bool("no-preflight", false, "Skip the Docker daemon reachability check")
	if err := runCmd.MarkFlagRequired("file"); err != nil {
		slog.Error("Failed to mark file flag as required for run command", "error", err)
	}
	rootCmd.AddCommand(runCmd)

	listCmd.Flags().StringP("file", "f", "", "Path to the spec YAML file (required)")
	if err := listCmd.MarkFlagRequired("file"); err != nil {
		slog.Error("Failed to mark file flag as required for list command", "error", err)
	}
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
