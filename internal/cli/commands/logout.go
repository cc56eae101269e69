package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLogoutCmd creates the logout command
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session and discard the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout(cmd)
		},
	}
}

func runLogout(cmd *cobra.Command) error {
	client, _, err := newClient(cmd)
	if err != nil {
		return err
	}

	// Best-effort server call; the local token is discarded regardless
	client.Logout(cmd.Context())

	fmt.Println("✓ Logged out")
	return nil
}
