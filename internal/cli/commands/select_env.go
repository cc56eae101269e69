package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/biogleam/biogleam/internal/cli/config"
	"github.com/biogleam/biogleam/internal/cli/envselect"
	"github.com/biogleam/biogleam/internal/cli/userconfig"
)

// NewSelectEnvCmd creates the select-env command
func NewSelectEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select-env",
		Short: "Choose which environment subsequent commands talk to",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelectEnv()
		},
	}
}

func runSelectEnv() error {
	cfg, err := config.LoadFromCurrentDir()
	if err != nil {
		return fmt.Errorf("failed to load config: %w\nRun 'biogleam init' to create a configuration file", err)
	}

	env, err := envselect.PromptEnvironmentSelection(cfg)
	if err != nil {
		return err
	}

	if err := userconfig.SetSelectedEnvironment(env.Name); err != nil {
		return fmt.Errorf("failed to save selected environment: %w", err)
	}

	fmt.Printf("✓ Selected environment '%s' (%s)\n", env.Name, env.URL)
	return nil
}
