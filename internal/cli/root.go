package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "gameloop",
	Short: "Fixed-timestep game loop driver",
	Long: `gameloop drives a simulation at a fixed update rate while rendering
once per step with an interpolation fraction for the time left over.

The run command exercises the loop with a placeholder game that only counts
updates and renders.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("gameloop version {{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
