package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwtly10/weave"
	"github.com/jwtly10/weave/internal/cli"
)

// version is set at build time via ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "weave <path>",
		Short: "Weave a literate Nim source into AsciiDoc",
		Long: `weave reads a Nim source file in which documentation lines start with "#-"
and writes an AsciiDoc document to stdout. Documentation lines become prose
and every run of code lines is wrapped in a [source,nim] listing block.`,
		Version:      version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			processor := cli.NewProcessor(weave.AsciiDoc)
			_, err := processor.ProcessFile(args[0], cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
