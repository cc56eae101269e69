package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/biogleam/biogleam/internal/api"
	"github.com/biogleam/biogleam/internal/models"
)

// NewProjectsCmd creates the projects command group
func NewProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage portfolio projects",
	}

	cmd.AddCommand(newProjectsListCmd())
	cmd.AddCommand(newProjectsGetCmd())
	cmd.AddCommand(newProjectsCreateCmd())
	cmd.AddCommand(newProjectsUpdateCmd())
	cmd.AddCommand(newProjectsDeleteCmd())

	return cmd
}

func newProjectsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List portfolio projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			projects, err := client.ListProjects(cmd.Context(), api.ListParams{})
			if err != nil {
				return err
			}

			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tSLUG\tCLIENT\tPUBLISHED")
			for _, p := range projects {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					p.ID, truncate(p.Title, 40), p.Slug, p.Client, p.PublishedAt)
			}
			w.Flush()
			return nil
		},
	}
}

func newProjectsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <slug>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			p, err := client.GetProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Project #%d %s\n", p.ID, p.Title)
			fmt.Printf("  Slug:      %s\n", p.Slug)
			if p.Client != "" {
				fmt.Printf("  Client:    %s\n", p.Client)
			}
			if p.PublishedAt != "" {
				fmt.Printf("  Published: %s\n", p.PublishedAt)
			}
			if p.Summary != "" {
				fmt.Printf("  Summary:   %s\n", p.Summary)
			}
			return nil
		},
	}
}

func newProjectsCreateCmd() *cobra.Command {
	var input models.ProjectInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a portfolio project",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			p, err := client.CreateProject(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Project '%s' created (#%d)\n", p.Slug, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Title, "title", "", "Project title (required)")
	cmd.Flags().StringVar(&input.Slug, "slug", "", "URL slug (required)")
	cmd.Flags().StringVar(&input.Summary, "summary", "", "Short summary")
	cmd.Flags().StringVar(&input.Content, "content", "", "Full description")
	cmd.Flags().StringVar(&input.Client, "client", "", "Client name")
	cmd.Flags().StringVar(&input.CoverImage, "cover-image", "", "Cover image URL")
	cmd.Flags().StringVar(&input.PublishedAt, "published-at", "", "Publish date")

	return cmd
}

func newProjectsUpdateCmd() *cobra.Command {
	var update models.ProjectUpdate

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a portfolio project",
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

			p, err := client.UpdateProject(cmd.Context(), id, update)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Project '%s' updated\n", p.Slug)
			return nil
		},
	}

	cmd.Flags().StringVar(&update.Title, "title", "", "Project title")
	cmd.Flags().StringVar(&update.Slug, "slug", "", "URL slug")
	cmd.Flags().StringVar(&update.Summary, "summary", "", "Short summary")
	cmd.Flags().StringVar(&update.Content, "content", "", "Full description")
	cmd.Flags().StringVar(&update.Client, "client", "", "Client name")
	cmd.Flags().StringVar(&update.CoverImage, "cover-image", "", "Cover image URL")
	cmd.Flags().StringVar(&update.PublishedAt, "published-at", "", "Publish date")

	return cmd
}

func newProjectsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a portfolio project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !confirm(fmt.Sprintf("Delete project #%d", id)) {
				fmt.Println("Aborted.")
				return nil
			}

			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			if err := client.DeleteProject(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Printf("✓ Project #%d deleted\n", id)
			return nil
		},
	}
}
