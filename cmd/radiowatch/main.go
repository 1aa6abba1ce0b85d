package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillsenselab/radiowatch/config"
	"github.com/skillsenselab/radiowatch/logger"
)

var (
	configFile string
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:   "radiowatch",
	Short: "Monitor radio dispatch channels for alert keywords",
	Long: `radiowatch polls the Broadcastify calls API for new transmissions on
subscribed channels, transcribes the audio and raises alerts when the
transcript matches configured keywords.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(runCmd, discoverCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", ".env file path")
}

// loadConfig loads the configuration tree and initializes logging from it.
func loadConfig() (*config.Config, error) {
	var cfg config.Config
	opts := []config.LoaderOption{}
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	if envFile != "" {
		opts = append(opts, config.WithEnvFile(envFile))
	}
	if err := config.Load(&cfg, opts...); err != nil {
		return nil, err
	}
	logger.Init(cfg.Logger)
	return &cfg, nil
}
