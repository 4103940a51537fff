package main

import (
	"context"

	"github.com/aretw0/sprout/internal/cli"
	"github.com/spf13/cobra"
)

var drawCmd = &cobra.Command{
	Use:   "draw [preset]",
	Short: "Grow a preset and export its geometry",
	Long: `Grows the preset, interprets the last generation with a turtle and writes the lines and
markers as JSON (default) or as plain text records (--set format=text).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()
		return cli.Draw(ctx, globalOptions(cmd), presetArg(args))
	},
}

func init() {
	rootCmd.AddCommand(drawCmd)
}
