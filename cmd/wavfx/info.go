// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/wavfx"
)

func newInfoCmd() *cobra.Command {
	var lenient bool

	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Print the header and layout of an audio file",
		Long: `Loads the file the same way process does and prints the canonical WAV
header it would be written with.

Examples:
  wavfx info voice.wav
  wavfx info --lenient recorder.wav`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []wavfx.Option
			if lenient {
				opts = append(opts, wavfx.WithLenient())
			}

			f, err := wavfx.Load(args[0], opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := f.Dump(out); err != nil {
				return err
			}

			frames := f.Buffer().SamplesPerChannel()
			var duration time.Duration
			if rate := f.SampleRate(); rate > 0 {
				duration = time.Duration(float64(frames) / float64(rate) * float64(time.Second))
			}
			_, err = fmt.Fprintf(out, "\nFrames: %d\nDuration: %v\nStereo: %t\n",
				frames, duration.Round(time.Millisecond), f.IsStereo())

			return err
		},
	}

	cmd.Flags().BoolVar(&lenient, "lenient", false, "Accept WAV files with extra chunks")

	return cmd
}
