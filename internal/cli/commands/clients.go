package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/biogleam/biogleam/internal/api"
	"github.com/biogleam/biogleam/internal/models"
)

// NewClientsCmd creates the clients command group
func NewClientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Manage customer records",
	}

	cmd.AddCommand(newClientsListCmd())
	cmd.AddCommand(newClientsCreateCmd())
	cmd.AddCommand(newClientsUpdateCmd())
	cmd.AddCommand(newClientsDeleteCmd())

	return cmd
}

func newClientsListCmd() *cobra.Command {
	var page, limit int
	var search string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List customer records",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			list, err := apiClient.ListClients(cmd.Context(), api.ListParams{Page: page, Limit: limit, Search: search})
			if err != nil {
				return err
			}

			if len(list.Clients) == 0 {
				fmt.Println("No clients found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCOMPANY\tCITY\tSTATUS")
			for _, c := range list.Clients {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Company, c.City, c.Status)
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
	cmd.Flags().StringVar(&search, "search", "", "Search term")

	return cmd
}

func newClientsCreateCmd() *cobra.Command {
	var input models.ClientInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer record",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			c, err := apiClient.CreateClient(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Client '%s' created (#%d)\n", c.Name, c.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "Client name (required)")
	cmd.Flags().StringVar(&input.Company, "company", "", "Company name")
	cmd.Flags().StringVar(&input.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&input.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&input.Address, "address", "", "Street address")
	cmd.Flags().StringVar(&input.City, "city", "", "City")
	cmd.Flags().StringVar(&input.State, "state", "", "State or region")
	cmd.Flags().StringVar(&input.Country, "country", "", "Country")
	cmd.Flags().StringVar(&input.Website, "website", "", "Website URL")
	cmd.Flags().StringVar(&input.Notes, "notes", "", "Internal notes")
	cmd.Flags().StringVar(&input.Status, "status", "", "Status")

	return cmd
}

func newClientsUpdateCmd() *cobra.Command {
	var update models.ClientUpdate

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a customer record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			apiClient, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			c, err := apiClient.UpdateClient(cmd.Context(), id, update)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Client '%s' updated\n", c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&update.Name, "name", "", "Client name")
	cmd.Flags().StringVar(&update.Company, "company", "", "Company name")
	cmd.Flags().StringVar(&update.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&update.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&update.Address, "address", "", "Street address")
	cmd.Flags().StringVar(&update.City, "city", "", "City")
	cmd.Flags().StringVar(&update.State, "state", "", "State or region")
	cmd.Flags().StringVar(&update.Country, "country", "", "Country")
	cmd.Flags().StringVar(&update.Website, "website", "", "Website URL")
	cmd.Flags().StringVar(&update.Notes, "notes", "", "Internal notes")
	cmd.Flags().StringVar(&update.Status, "status", "", "Status")

	return cmd
}

func newClientsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a customer record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !confirm(fmt.Sprintf("Delete client #%d", id)) {
				fmt.Println("Aborted.")
				return nil
			}

			apiClient, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			if err := apiClient.DeleteClient(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Printf("✓ Client #%d deleted\n", id)
			return nil
		},
	}
}
