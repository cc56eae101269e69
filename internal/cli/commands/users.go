package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/biogleam/biogleam/internal/api"
	"github.com/biogleam/biogleam/internal/models"
)

// NewUsersCmd creates the users command group (admin only)
func NewUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage accounts (admin only)",
	}

	cmd.AddCommand(newUsersListCmd())
	cmd.AddCommand(newUsersCreateCmd())
	cmd.AddCommand(newUsersUpdateCmd())
	cmd.AddCommand(newUsersDeleteCmd())

	return cmd
}

func newUsersListCmd() *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			list, err := client.ListUsers(cmd.Context(), api.ListParams{Page: page, Limit: limit})
			if err != nil {
				return err
			}

			if len(list.Users) == 0 {
				fmt.Println("No users found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tCREATED")
			for _, u := range list.Users {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role, u.CreatedAt)
			}
			w.Flush()

			if list.Pagination != nil {
				fmt.Printf("\nPage %d of %d (%d total)\n",
					list.Pagination.Page, list.Pagination.TotalPages, list.Pagination.Total)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 0, "Results per page")

	return cmd
}

func newUsersCreateCmd() *cobra.Command {
	var input models.UserInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			u, err := client.CreateUser(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Printf("✓ User '%s' created (#%d)\n", u.Email, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "Full name (required)")
	cmd.Flags().StringVar(&input.Email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&input.Password, "password", "", "Password (required)")
	cmd.Flags().StringVar(&input.Role, "role", models.RoleUser, "Role (user or admin)")

	return cmd
}

func newUsersUpdateCmd() *cobra.Command {
	var update models.UserUpdate

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			u, err := client.UpdateUser(cmd.Context(), id, update)
			if err != nil {
				return err
			}

			fmt.Printf("✓ User '%s' updated\n", u.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&update.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&update.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&update.Password, "password", "", "New password")
	cmd.Flags().StringVar(&update.Role, "role", "", "Role (user or admin)")

	return cmd
}

func newUsersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !confirm(fmt.Sprintf("Delete user #%d", id)) {
				fmt.Println("Aborted.")
				return nil
			}

			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			if err := client.DeleteUser(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Printf("✓ User #%d deleted\n", id)
			return nil
		},
	}
}
