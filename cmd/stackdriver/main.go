package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stackdriver/stackdriver-go/cmd/stackdriver/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "stackdriver",
	Short: "Stackdriver API CLI",
	Long: `A command-line interface for the Stackdriver monitoring and alerting API.

Query users, groups, instances and alert policies, resolve resource names,
and manage groups, authenticated with your Stackdriver API key.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.stackdriver/config.yml)")
	rootCmd.PersistentFlags().StringP("api", "a", "", "API endpoint URL")
	rootCmd.PersistentFlags().StringP("apikey", "k", "", "Stackdriver API key")
	rootCmd.PersistentFlags().String("output", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("api", rootCmd.PersistentFlags().Lookup("api"))
	_ = viper.BindPFlag("apikey", rootCmd.PersistentFlags().Lookup("apikey"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewUsersCommand())
	rootCmd.AddCommand(commands.NewGroupsCommand())
	rootCmd.AddCommand(commands.NewInstancesCommand())
	rootCmd.AddCommand(commands.NewAlertPoliciesCommand())
	rootCmd.AddCommand(commands.NewResolveCommand())
}

func initConfig() {
	configFile, _ := rootCmd.PersistentFlags().GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".stackdriver"))
			viper.SetConfigName("config")
			viper.SetConfigType("yml")
		}
	}

	viper.SetEnvPrefix("STACKDRIVER")
	viper.AutomaticEnv()

	// Config file is optional
	_ = viper.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
