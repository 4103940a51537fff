package main

import (
	"github.com/aretw0/sprout/internal/cli"
	"github.com/spf13/cobra"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [preset]",
	Short: "Describe a preset and its rule graph",
	Long:  `Prints the preset parameters, its production rules and a Mermaid diagram (graph TD) of the rule graph.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		graphOnly, _ := cmd.Flags().GetBool("graph")
		return cli.Inspect(globalOptions(cmd), presetArg(args), graphOnly)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("graph", false, "Print only the Mermaid rule graph")
}
