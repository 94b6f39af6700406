// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/wavfx"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the input file extensions wavfx can read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range wavfx.DefaultRegistry().Formats() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), f); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
