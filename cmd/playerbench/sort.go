package main

import (
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"playerbench/internal/dataset"
	"playerbench/internal/model"
	"playerbench/internal/report"
	"playerbench/internal/sorting"
	"playerbench/internal/telemetry"
)

var askOne = survey.AskOne

var (
	sortStat      string
	sortAlgorithm string
	sortTop       int
	sortAscending bool
)

var sortCmd = &cobra.Command{
	Use:   "sort <csv file>",
	Short: "Sort the players of a CSV file by a stat and show the leaders",
	Long: `Loads players from a CSV file, sorts them by the chosen stat with the chosen
algorithm and prints the top of the ranking. Missing choices are asked for
interactively.`,
	Args: cobra.ExactArgs(1),
	RunE: runSort,
}

func init() {
	rootCmd.AddCommand(sortCmd)

	sortCmd.Flags().StringVarP(&sortStat, "stat", "s", "", "Stat to sort by (ppg, apg, bpg, spg)")
	sortCmd.Flags().StringVarP(&sortAlgorithm, "algorithm", "a", "", "Algorithm to sort with (reference, insertion, heap)")
	sortCmd.Flags().IntVarP(&sortTop, "top", "t", 10, "Number of players to show (0 shows all)")
	sortCmd.Flags().BoolVar(&sortAscending, "ascending", false, "Rank the lowest values first")
}

func runSort(cmd *cobra.Command, args []string) error {
	players, err := dataset.LoadCSV(args[0])
	if err != nil {
		return err
	}

	statName, algName := sortStat, sortAlgorithm
	if statName == "" {
		options := make([]string, 0, len(model.Stats))
		for _, s := range model.Stats {
			options = append(options, string(s))
		}
		prompt := &survey.Select{
			Message: "Sort by which stat?",
			Options: options,
			Description: func(value string, _ int) string {
				return model.Stat(value).Label()
			},
		}
		if err := askOne(prompt, &statName); err != nil {
			return err
		}
	}
	stat, err := model.ParseStat(statName)
	if err != nil {
		return err
	}

	if algName == "" {
		prompt := &survey.Select{
			Message: "Sort with which algorithm?",
			Options: sorting.Names,
		}
		if err := askOne(prompt, &algName); err != nil {
			return err
		}
	}
	sorter, err := sorting.Lookup[model.Player, float64](algName)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := sorter.Sort(players, stat.Key(!sortAscending)); err != nil {
		return err
	}
	elapsed := time.Since(start)
	telemetry.LogDebug("sorted players", "algorithm", sorter.Name(), "stat", stat, "players", len(players), "elapsed", elapsed)

	shown := players
	if sortTop > 0 && sortTop < len(players) {
		shown = players[:sortTop]
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Sorted %d players by %s with %s sort in %s\n",
		len(players), stat.Label(), sorter.Name(), elapsed.Round(time.Microsecond))
	return report.Players(cmd.OutOrStdout(), shown, stat)
}
