package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/stackdriver/stackdriver-go/internal/constants"
)

// ErrAPIKeyEmpty is returned when login gets an empty key.
var ErrAPIKeyEmpty = errors.New("API key must not be empty")

// NewLoginCommand creates the login command. It prompts for the API key
// without echoing and stores it in the CLI config file.
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Store an API key for later commands",
		Long:  "Prompt for a Stackdriver API key and save it to the CLI configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print("API key: ")

			keyBytes, err := term.ReadPassword(int(syscall.Stdin))

			fmt.Println()

			if err != nil {
				return fmt.Errorf("reading API key: %w", err)
			}

			apiKey := strings.TrimSpace(string(keyBytes))
			if apiKey == "" {
				return ErrAPIKeyEmpty
			}

			viper.Set("apikey", apiKey)

			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("resolving home directory: %w", err)
			}

			configDir := filepath.Join(home, ".stackdriver")

			err = os.MkdirAll(configDir, constants.ConfigDirPerm)
			if err != nil {
				return fmt.Errorf("creating config directory: %w", err)
			}

			configPath := filepath.Join(configDir, "config.yml")

			err = viper.WriteConfigAs(configPath)
			if err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Printf("API key saved to %s\n", configPath)

			return nil
		},
	}
}
