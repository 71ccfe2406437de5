package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/meghashyamc/sat2d/config"
	"github.com/meghashyamc/sat2d/scene"
)

var collideCmd = &cobra.Command{
	Use:   "collide [scene.yaml]",
	Short: "Test the scene's player against every obstacle",
	Long: `Loads a scene (the configured one, or the built-in scene when none is
configured) and prints one line per obstacle with the minimum translation
vector that separates the player from it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := config.Load(flagEnv)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			path = cfg.GetSceneFile()
		}

		return runCollide(cmd.OutOrStdout(), path)
	},
}

var errSceneQuery = errors.New("some collision queries failed")

func runCollide(w io.Writer, path string) error {
	sc, err := scene.Load(path)
	if err != nil {
		return err
	}

	built, err := sc.Build()
	if err != nil {
		return err
	}

	failed := false
	for _, r := range built.Collisions() {
		switch {
		case r.Err != nil:
			failed = true
			fmt.Fprintf(w, "%-16s error      %v\n", r.Name, r.Err)
		case r.Colliding:
			fmt.Fprintf(w, "%-16s collides   mtv=(%.4f, %.4f) |%.4f|\n", r.Name, r.MTV.X, r.MTV.Y, r.MTV.Magnitude())
		default:
			fmt.Fprintf(w, "%-16s separated\n", r.Name)
		}
	}

	if failed {
		return errSceneQuery
	}
	return nil
}
