package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"campusmap/pkg/api"
	"campusmap/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a sample configuration file",
	Long: `Write a configuration file populated with defaults.

By default the file is created at $XDG_CONFIG_HOME/campusmap/config.yaml.
Use --config to choose a different path.

Examples:
  # Initialize with default location
  campusmap config init

  # Initialize with custom path
  campusmap config init --config /etc/campusmap/config.yaml

  # Force overwrite existing config
  campusmap config init --force`,
	RunE: runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load applies defaults and runs full validation.
		if _, err := config.Load(GetConfigFile()); err != nil {
			return err
		}
		fmt.Println("Configuration is valid")
		return nil
	},
}

var configForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Force overwrite existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := GetConfigFile()
	if path == "" {
		path = config.GetDefaultConfigPath()
	}

	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	cfg := config.GetDefaultConfig()

	// Generate a random development JWT secret so a fresh install works out
	// of the box. Production deployments should set it via environment.
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return fmt.Errorf("failed to generate JWT secret: %w", err)
	}
	cfg.Server.JWT.Secret = hex.EncodeToString(secret)

	if err := config.SaveConfig(cfg, path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Configuration file created at: %s\n", path)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Edit the configuration file to customize your setup")
	fmt.Println("  2. Create an admin account with: campusmap admin create")
	fmt.Println("  3. Start the server with: campusmap serve")
	fmt.Println("\nSecurity note:")
	fmt.Println("  A random JWT secret has been generated for development use.")
	fmt.Println("  For production, set a secure secret via an environment variable:")
	fmt.Printf("    export %s=$(openssl rand -hex 32)\n", api.EnvJWTSecret)

	return nil
}
