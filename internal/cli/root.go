// Package cli implements the simspace command line: listing registered
// methods, converting datasets between files and SQLite, and building
// indices from datasets.
package cli

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/viant/simspace/internal/logging"

	// built-in methods register themselves with method.Default
	_ "github.com/viant/simspace/method/cover"
	_ "github.com/viant/simspace/method/dummy"
	_ "github.com/viant/simspace/method/seqsearch"
)

type globalOptions struct {
	verbose   bool
	logFormat string
}

// NewRootCommand creates the root command.
func NewRootCommand(version, commit, date string) *cobra.Command {
	g := &globalOptions{}
	rootCmd := &cobra.Command{
		Use:   "simspace",
		Short: "Similarity search dataset and index tool",
		Long: `simspace loads vector datasets through a named space, converts them between
text files (optionally gzip, zstd or lz4 compressed) and SQLite, and builds
search indices with any registered method.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if g.verbose {
				level = slog.LevelInfo
			}
			switch g.logFormat {
			case "text":
				logging.SetDefault(logging.NewText(cmd.ErrOrStderr(), level))
			case "json":
				logging.SetDefault(logging.NewJSON(cmd.ErrOrStderr(), level))
			default:
				return fmt.Errorf("unsupported log format %q", g.logFormat)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log load and build progress")
	rootCmd.PersistentFlags().StringVar(&g.logFormat, "log-format", "text", "log format (text, json)")

	rootCmd.AddCommand(newMethodsCommand())
	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newBuildCommand(g))
	rootCmd.AddCommand(newVersionCommand(version, commit, date))
	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			if version == "" {
				version = "dev"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "simspace %s (%s) built on %s\n", version, commit, date)
			fmt.Fprintf(cmd.OutOrStdout(), "Go version: %s\n", runtime.Version())
		},
	}
}
