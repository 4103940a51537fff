package main

import (
	"fmt"
	"os"

	"github.com/aretw0/sprout/internal/cli"
	"github.com/aretw0/sprout/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sprout",
	Short: "Sprout grows stochastic L-systems into drawable geometry",
	Long: `Sprout rewrites an axiom with probabilistic production rules and maps the result
to line segments and markers with a 2D or 3D turtle.`,
	Run: func(cmd *cobra.Command, args []string) {
		if tui.IsTerminal(os.Stdout) {
			tui.PrintBanner(os.Stdout)
		}
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalOptions reads the persistent flags.
func globalOptions(cmd *cobra.Command) cli.Options {
	configPath, _ := cmd.Flags().GetString("config")
	sets, _ := cmd.Flags().GetStringArray("set")
	debug, _ := cmd.Flags().GetBool("debug")
	metrics, _ := cmd.Flags().GetBool("metrics")
	return cli.Options{
		ConfigPath: configPath,
		Sets:       sets,
		Debug:      debug,
		Metrics:    metrics,
		Out:        cmd.OutOrStdout(),
		Err:        cmd.ErrOrStderr(),
	}
}

func presetArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", "", "Run profile file (YAML or JSON)")
	rootCmd.PersistentFlags().StringArray("set", nil, "Override a profile key (key=value, repeatable)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().Bool("metrics", false, "Print Prometheus metrics to stderr after the run")
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}
