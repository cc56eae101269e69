package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/biogleam/biogleam/internal/api"
	"github.com/biogleam/biogleam/internal/auth"
	"github.com/biogleam/biogleam/internal/cli/config"
	"github.com/biogleam/biogleam/internal/cli/envselect"
)

// newClient resolves the environment and builds the API client with the
// keyring token store. A backend-invalidated session prints a login hint
// instead of redirecting anywhere; the CLI has no login surface to go to.
func newClient(cmd *cobra.Command) (*api.Client, *config.Environment, error) {
	envName, _ := cmd.Flags().GetString("env")

	cfg, err := config.LoadFromCurrentDir()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w\nRun 'biogleam init' to create a configuration file", err)
	}

	env, err := envselect.ResolveEnvironment(cfg, envName)
	if err != nil {
		return nil, nil, err
	}

	if env.URL == "" {
		return nil, nil, fmt.Errorf("environment URL is empty. Please edit %s and add a backend URL", config.ConfigFileName)
	}

	client := api.New(env.URL, auth.KeyringStore{}, api.WithOnUnauthorized(func() {
		fmt.Fprintln(os.Stderr, "Session expired. Please run 'biogleam login' again.")
	}))

	return client, env, nil
}

// confirm asks before destructive operations.
func confirm(label string) bool {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		return false
	}
	return true
}

// parseID converts a positional argument into a numeric resource ID.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ID '%s': must be a number", arg)
	}
	return id, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
