// sat2d is a separating axis theorem collision sandbox.
//
// Usage:
//
//	sat2d run                 - Open the interactive sandbox window
//	sat2d collide [scene]     - Print the player's collisions for a scene file
//
// Global flags:
//
//	--env <name>    - Config environment, reads config/config.<name>.yaml (default: $ENV or local)
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/meghashyamc/sat2d/config"
	"github.com/meghashyamc/sat2d/game"
)

var flagEnv string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sat2d",
	Short: "Separating axis collision sandbox for convex 2D shapes",
	Long: `sat2d tests convex polygons and circles for overlap with the separating
axis theorem and reports the minimum translation vector.

Examples:
  sat2d run
  sat2d collide scenes/demo.yaml`,
	SilenceUsage: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive sandbox",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagEnv)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		g, err := game.NewGame(cfg)
		if err != nil {
			return err
		}
		if err := g.Run(); err != nil {
			slog.Error("error running sandbox", "err", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnv, "env", "", "Config environment (default: $ENV or local)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(collideCmd)
}
