package main

import (
	"context"

	"github.com/aretw0/sprout/internal/cli"
	"github.com/spf13/cobra"
)

var growCmd = &cobra.Command{
	Use:   "grow [preset]",
	Short: "Print every generation of a preset",
	Long:  `Rewrites the preset axiom generation by generation and prints each symbol sequence, starting with the axiom.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()
		return cli.Grow(ctx, globalOptions(cmd), presetArg(args))
	},
}

func init() {
	rootCmd.AddCommand(growCmd)
}
