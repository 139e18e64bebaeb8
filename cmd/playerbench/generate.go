package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"playerbench/internal/dataset"
)

var (
	generateOut  string
	generateSeed uint64
)

var generateCmd = &cobra.Command{
	Use:   "generate <count>",
	Short: "Write a CSV file of synthetic players",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Output path (default synthetic_player_data(<count>).csv)")
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "Random seed (0 picks one from the clock)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid player count %q: %w", args[0], err)
	}

	seed := generateSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	players, err := dataset.Synthetic(n, dataset.NewRand(seed))
	if err != nil {
		return err
	}

	path := generateOut
	if path == "" {
		path = dataset.SyntheticName(n) + ".csv"
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := dataset.WriteCSV(f, players); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d players to %s\n", n, path)
	return nil
}
