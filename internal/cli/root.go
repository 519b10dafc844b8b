// Package cli provides the Cobra command structure for oxinot-preview.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/0010capacity/oxinot/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root oxinot-preview command with all
// subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var themePath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "oxinot-preview",
		Short: "Hybrid live-preview renderer for markdown notes",
		Long: `oxinot-preview renders markdown notes the way a live-preview editor
shows them: syntax markers hide behind their visual form, the cursor
line stays raw, and checkboxes, code cards, and block embeds render as
widgets in the document flow.

It understands CommonMark plus the note-taking extensions: wiki-links,
block references and embeds, callouts, comments, highlights,
strikethrough, footnotes, and pipe tables.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withExitCode(ExitInvalidUsage, err)
	})

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&themePath, "theme", "", "path to theme file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newRenderCommand(&themePath, &color))
	rootCmd.AddCommand(newDecorationsCommand(&themePath, &color))
	rootCmd.AddCommand(newHandlersCommand(&themePath))
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// noteArg validates the single <file> positional argument, flagging the
// failure as a usage error.
func noteArg() cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(1)(cmd, args); err != nil {
			return withExitCode(ExitInvalidUsage, err)
		}
		return nil
	}
}
