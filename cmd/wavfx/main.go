// SPDX-License-Identifier: EPL-2.0

// Command wavfx inspects WAV files and runs effect chains over audio files.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ik5/wavfx/internal/logger"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wavfx",
		Short:         "Inspect 16-bit PCM WAV files and apply mono and reverb effects",
		SilenceUsage:  true, // Don't print usage on error
		SilenceErrors: true, // main logs the error
		Long: `wavfx validates canonical 16-bit PCM WAV files and runs them through a
chain of effects: a stereo to mono downmix and a feedback delay reverb.

AIFF, MP3 and Ogg Vorbis inputs are decoded and written out as WAV.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flags().Changed("verbose") {
				verbose, err := cmd.Flags().GetBool("verbose")
				if err != nil {
					logger.Warn("reading verbose flag", "error", err)
					return
				}
				logger.SetVerbose(verbose)
			}
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newInfoCmd(),
		newProcessCmd(),
		newFormatsCmd(),
	)

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		logger.ErrorContext(ctx, "command failed", "error", err)
		os.Exit(1)
	}
}
