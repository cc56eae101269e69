package commands

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/biogleam/biogleam/internal/models"
)

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the Biogleam backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (or set BIOGLEAM_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set BIOGLEAM_PASSWORD, will prompt if not provided)")

	return cmd
}

func runLogin(cmd *cobra.Command, email, password string) error {
	// Environment variables are useful for CI/CD
	if email == "" {
		email = os.Getenv("BIOGLEAM_EMAIL")
	}
	if password == "" {
		password = os.Getenv("BIOGLEAM_PASSWORD")
	}

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or BIOGLEAM_EMAIL env var)")
	}

	client, env, err := newClient(cmd)
	if err != nil {
		return err
	}

	// Prompt for password if not provided via flag or env var
	if password == "" {
		if term.IsTerminal(int(syscall.Stdin)) {
			fmt.Print("Password: ")
			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = string(bytePassword)
			fmt.Println()
		} else {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag or BIOGLEAM_PASSWORD env var)")
		}
	}

	fmt.Printf("Logging in to %s (%s)...\n", env.Name, env.URL)

	// Login persists the token as a side effect
	payload, err := client.Login(cmd.Context(), email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Println("✓ Login successful!")
	if payload.User != nil {
		fmt.Printf("  User: %s (%s)\n", payload.User.Name, payload.User.Email)
		if payload.User.Role == models.RoleAdmin {
			fmt.Println("  Role: Admin")
		}
	}

	return nil
}
