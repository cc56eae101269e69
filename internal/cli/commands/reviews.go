package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/biogleam/biogleam/internal/api"
	"github.com/biogleam/biogleam/internal/models"
)

// NewReviewsCmd creates the reviews command group
func NewReviewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Manage customer testimonials",
	}

	cmd.AddCommand(newReviewsListCmd())
	cmd.AddCommand(newReviewsCreateCmd())
	cmd.AddCommand(newReviewsFeatureCmd())
	cmd.AddCommand(newReviewsDeleteCmd())

	return cmd
}

func newReviewsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List testimonials",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			list, err := client.ListReviews(cmd.Context(), api.ListParams{})
			if err != nil {
				return err
			}

			if len(list.Reviews) == 0 {
				fmt.Println("No reviews found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCOMPANY\tRATING\tFEATURED\tTEXT")
			for _, r := range list.Reviews {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%t\t%s\n",
					r.ID, r.Name, r.Company, r.Rating, r.Featured, truncate(r.ReviewText, 50))
			}
			w.Flush()
			return nil
		},
	}
}

func newReviewsCreateCmd() *cobra.Command {
	var input models.ReviewInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a testimonial",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			r, err := client.CreateReview(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Review #%d created\n", r.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "Reviewer name (required)")
	cmd.Flags().StringVar(&input.Position, "position", "", "Reviewer job title")
	cmd.Flags().StringVar(&input.Company, "company", "", "Company name")
	cmd.Flags().IntVar(&input.Rating, "rating", 0, "Rating 1-5 (required)")
	cmd.Flags().StringVar(&input.ReviewText, "text", "", "Review text (required)")
	cmd.Flags().StringVar(&input.AvatarURL, "avatar", "", "Avatar image URL")
	cmd.Flags().BoolVar(&input.Featured, "featured", false, "Feature on the home page")
	cmd.Flags().IntVar(&input.DisplayOrder, "order", 0, "Display order")

	return cmd
}

// reviewFeatureClient is the slice of the API client the feature toggle
// needs, so tests can run the toggle against a mock.
type reviewFeatureClient interface {
	GetReview(ctx context.Context, id int64) (*models.Review, error)
	UpdateReview(ctx context.Context, id int64, update models.ReviewUpdate) (*models.Review, error)
}

// toggleReviewFeatured flips the featured flag. Review updates are
// full-record PUTs, so the current record is fetched first and sent back
// with only the flag changed.
func toggleReviewFeatured(ctx context.Context, client reviewFeatureClient, id int64, featured bool) (*models.Review, error) {
	current, err := client.GetReview(ctx, id)
	if err != nil {
		return nil, err
	}

	update := models.ReviewUpdateFrom(current)
	update.Featured = featured
	return client.UpdateReview(ctx, id, update)
}

func newReviewsFeatureCmd() *cobra.Command {
	var featured bool

	cmd := &cobra.Command{
		Use:   "feature <id>",
		Short: "Toggle whether a testimonial is featured",
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

			r, err := toggleReviewFeatured(cmd.Context(), client, id, featured)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Review #%d featured=%t\n", r.ID, r.Featured)
			return nil
		},
	}

	cmd.Flags().BoolVar(&featured, "on", true, "Feature (true) or unfeature (false)")

	return cmd
}

func newReviewsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a testimonial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !confirm(fmt.Sprintf("Delete review #%d", id)) {
				fmt.Println("Aborted.")
				return nil
			}

			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			if err := client.DeleteReview(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Printf("✓ Review #%d deleted\n", id)
			return nil
		},
	}
}
