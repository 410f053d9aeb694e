package main

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/pixeldesk/internal/terminal"
	"github.com/spf13/cobra"
)

var termCmd = &cobra.Command{
	Use:   "term <command...>",
	Short: "Print a terminal command's response without starting the desktop",
	Example: `  pixeldesk term help
  pixeldesk term skills`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res := terminal.Run(strings.Join(args, " "), terminal.Handlers{
			Music: func(terminal.MusicArgs) (terminal.Result, error) {
				return terminal.Result{}, fmt.Errorf("music playback needs the desktop")
			},
		})
		out := cmd.OutOrStdout()
		if res.Kind == terminal.KindError {
			out = cmd.ErrOrStderr()
		}
		for _, line := range res.Lines {
			fmt.Fprintln(out, line)
		}
		if res.Kind == terminal.KindError {
			return fmt.Errorf("term %q failed", strings.Join(args, " "))
		}
		return nil
	},
}
