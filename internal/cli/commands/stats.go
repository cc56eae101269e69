package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewStatsCmd creates the stats command
func NewStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the admin dashboard summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd)
		},
	}
}

func runStats(cmd *cobra.Command) error {
	client, env, err := newClient(cmd)
	if err != nil {
		return err
	}

	stats, err := client.GetAdminStats(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Stats for %s:\n\n", env.Name)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LEADS\tPROJECTS\tPOSTS\tCLIENTS\tUSERS")
	fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\n", stats.Leads, stats.Projects, stats.Blogs, stats.Clients, stats.Users)
	w.Flush()

	if len(stats.LeadsByStatus) > 0 {
		fmt.Println("\nLeads by status:")
		for _, status := range []string{"created", "contacted", "qualified", "converted", "closed"} {
			if n, ok := stats.LeadsByStatus[status]; ok {
				fmt.Printf("  %-10s %d\n", status, n)
			}
		}
	}

	if len(stats.RecentLeads) > 0 {
		fmt.Println("\nRecent leads:")
		for _, lead := range stats.RecentLeads {
			fmt.Printf("  #%d %s (%s) - %s\n", lead.ID, lead.Name, lead.ProjectType, lead.Status)
		}
	}

	return nil
}
