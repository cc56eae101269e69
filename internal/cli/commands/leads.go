package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/biogleam/biogleam/internal/api"
	"github.com/biogleam/biogleam/internal/models"
)

// NewLeadsCmd creates the leads command group
func NewLeadsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leads",
		Short: "Manage contact requests",
	}

	cmd.AddCommand(newLeadsListCmd())
	cmd.AddCommand(newLeadsGetCmd())
	cmd.AddCommand(newLeadsStatusCmd())
	cmd.AddCommand(newLeadsDeleteCmd())

	return cmd
}

func newLeadsListCmd() *cobra.Command {
	var page, limit int
	var status, search string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List contact requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			params := api.ListParams{Page: page, Limit: limit, Status: status, Search: search}
			list, err := client.ListLeads(cmd.Context(), params)
			if err != nil {
				return err
			}

			if len(list.Leads) == 0 {
				fmt.Println("No leads found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPHONE\tPROJECT\tSTATUS\tCREATED")
			for _, lead := range list.Leads {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					lead.ID, lead.Name, lead.Phone, lead.ProjectType, lead.Status, lead.CreatedAt)
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
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (created, contacted, qualified, converted, closed)")
	cmd.Flags().StringVar(&search, "search", "", "Search term")

	return cmd
}

func newLeadsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one contact request",
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

			lead, err := client.GetLead(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Printf("Lead #%d\n", lead.ID)
			fmt.Printf("  Name:    %s\n", lead.Name)
			if lead.Email != "" {
				fmt.Printf("  Email:   %s\n", lead.Email)
			}
			fmt.Printf("  Phone:   %s\n", lead.Phone)
			fmt.Printf("  Project: %s\n", lead.ProjectType)
			if lead.PackageType != "" {
				fmt.Printf("  Package: %s\n", lead.PackageType)
			}
			fmt.Printf("  Status:  %s\n", lead.Status)
			fmt.Printf("  Message: %s\n", lead.Message)
			return nil
		},
	}
}

func newLeadsStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move a contact request along the pipeline",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			lead, err := client.UpdateLead(cmd.Context(), id, models.LeadUpdate{Status: args[1]})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Lead #%d is now '%s'\n", lead.ID, lead.Status)
			return nil
		},
	}
}

func newLeadsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a contact request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !confirm(fmt.Sprintf("Delete lead #%d", id)) {
				fmt.Println("Aborted.")
				return nil
			}

			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			if err := client.DeleteLead(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Printf("✓ Lead #%d deleted\n", id)
			return nil
		},
	}
}
