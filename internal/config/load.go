package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. PLAYERBENCH_TRIALS=5.
const EnvPrefix = "PLAYERBENCH"

// SetDefaults registers the default value of every known key.
func SetDefaults() {
	viper.SetDefault("stat", "ppg")
	viper.SetDefault("descending", true)
	viper.SetDefault("trials", 3)
	viper.SetDefault("sizes", []int{100, 500, 1000})
	viper.SetDefault("algorithms", []string{"reference", "insertion", "heap"})
	viper.SetDefault("baseline", "")
	viper.SetDefault("seed", 0)
	viper.SetDefault("format", "table")
	viper.SetDefault("width", 0)
	viper.SetDefault("metrics_file", "")
	viper.SetDefault("log_file", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("no_color", false)
}

// Load initializes the configuration from file and environment variables.
// A missing config.yaml in the working directory is not an error; a missing
// file named explicitly through cfgFile is.
func Load(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		if cfgFile == "" && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	return nil
}
