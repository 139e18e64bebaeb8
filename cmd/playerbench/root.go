package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"playerbench/internal/config"
	"playerbench/internal/telemetry"
)

var exit = os.Exit
var cfgFile string

// logCloser releases the log file opened by initConfig.
var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:   "playerbench",
	Short: "Compare sorting algorithms on basketball player statistics",
	Long: `playerbench times insertion sort, heap sort and the Go standard library sort
on player records loaded from CSV files or generated on the fly, and reports
the mean running time of every algorithm for every data set size.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'playerbench --help' for usage.")
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "Append JSON logs to this file")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if err := config.Load(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
		return
	}

	if viper.GetBool("no_color") {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	closeLog()
	_, logCloser = telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file"))
}

func closeLog() {
	if logCloser == nil {
		return
	}
	if err := logCloser.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
	}
	logCloser = nil
}
