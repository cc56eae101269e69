package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/biogleam/biogleam/internal/api"
	"github.com/biogleam/biogleam/internal/models"
)

// NewPostsCmd creates the blog posts command group
func NewPostsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "posts",
		Aliases: []string{"blog"},
		Short:   "Manage blog posts",
	}

	cmd.AddCommand(newPostsListCmd())
	cmd.AddCommand(newPostsGetCmd())
	cmd.AddCommand(newPostsCreateCmd())
	cmd.AddCommand(newPostsUpdateCmd())
	cmd.AddCommand(newPostsDeleteCmd())

	return cmd
}

func newPostsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List blog posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			posts, err := client.ListBlogPosts(cmd.Context(), api.ListParams{})
			if err != nil {
				return err
			}

			if len(posts) == 0 {
				fmt.Println("No posts found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tSLUG\tTAGS\tPUBLISHED")
			for _, p := range posts {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					p.ID, truncate(p.Title, 40), p.Slug, strings.Join(p.Tags, ","), p.PublishedAt)
			}
			w.Flush()
			return nil
		},
	}
}

func newPostsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <slug>",
		Short: "Show one blog post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			p, err := client.GetBlogPost(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Post #%d %s\n", p.ID, p.Title)
			fmt.Printf("  Slug:      %s\n", p.Slug)
			if len(p.Tags) > 0 {
				fmt.Printf("  Tags:      %s\n", strings.Join(p.Tags, ", "))
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

func newPostsCreateCmd() *cobra.Command {
	var input models.BlogPostInput
	var tags string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a blog post",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			if tags != "" {
				input.Tags = strings.Split(tags, ",")
			}

			p, err := client.CreateBlogPost(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Post '%s' created (#%d)\n", p.Slug, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Title, "title", "", "Post title (required)")
	cmd.Flags().StringVar(&input.Slug, "slug", "", "URL slug (required)")
	cmd.Flags().StringVar(&input.Summary, "summary", "", "Short summary")
	cmd.Flags().StringVar(&input.Content, "content", "", "Post body")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&input.PublishedAt, "published-at", "", "Publish date")

	return cmd
}

func newPostsUpdateCmd() *cobra.Command {
	var update models.BlogPostUpdate
	var tags string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a blog post",
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

			if tags != "" {
				update.Tags = strings.Split(tags, ",")
			}

			p, err := client.UpdateBlogPost(cmd.Context(), id, update)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Post '%s' updated\n", p.Slug)
			return nil
		},
	}

	cmd.Flags().StringVar(&update.Title, "title", "", "Post title")
	cmd.Flags().StringVar(&update.Slug, "slug", "", "URL slug")
	cmd.Flags().StringVar(&update.Summary, "summary", "", "Short summary")
	cmd.Flags().StringVar(&update.Content, "content", "", "Post body")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&update.PublishedAt, "published-at", "", "Publish date")

	return cmd
}

func newPostsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a blog post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !confirm(fmt.Sprintf("Delete post #%d", id)) {
				fmt.Println("Aborted.")
				return nil
			}

			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			if err := client.DeleteBlogPost(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Printf("✓ Post #%d deleted\n", id)
			return nil
		},
	}
}
