package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/biogleam/biogleam/internal/auth"
	"github.com/biogleam/biogleam/internal/session"
)

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the identity behind the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami(cmd)
		},
	}
}

func runWhoami(cmd *cobra.Command) error {
	client, env, err := newClient(cmd)
	if err != nil {
		return err
	}

	mgr := session.NewManager(auth.KeyringStore{}, client)
	mgr.Initialize(cmd.Context())

	if !mgr.IsAuthenticated() {
		return fmt.Errorf("not authenticated. Please run 'biogleam login' first")
	}

	sess := mgr.Current()
	fmt.Printf("Environment: %s (%s)\n", env.Name, env.URL)
	fmt.Printf("User:        %s (%s)\n", sess.Name, sess.Email)
	fmt.Printf("Role:        %s\n", sess.Role)
	if mgr.IsAdmin() {
		fmt.Println("Admin area:  accessible")
	}
	return nil
}
