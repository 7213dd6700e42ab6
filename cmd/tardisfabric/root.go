package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// configEnv names the environment variable that points at a config file.
const configEnv = "TARDIS_CONFIG"

var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tardisfabric",
	Short: "tardisfabric assembles the coherence fabric of the tardis protocol.",
	Long: `tardisfabric builds the L1, directory, DMA and I/O controllers of the ` +
		`tardis protocol, binds their channels and arranges them into a ` +
		`topology. The result can be printed, recorded into SQLite or served ` +
		`for inspection.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if configPath == "" {
			configPath = os.Getenv(configEnv)
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"YAML file with the options, defaults to $"+configEnv)
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
