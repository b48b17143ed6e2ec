package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"crashkit/internal/domain"
)

func reportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reports",
		Short: "List prepared reports, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			reports := appCtx.Reports.List()
			if len(reports) == 0 {
				fmt.Println("No prepared reports.")
				return nil
			}
			for _, r := range reports {
				fmt.Printf("%-36s  %-8s  %7d B  %-8s  %s\n",
					r.SessionID, r.Kind, r.Size,
					age(r.ModTime), r.Fingerprint)
			}
			return nil
		},
	}
}

func rmReportCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "rm-report <session-id>",
		Short: "Delete a prepared report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.SessionID(args[0])
			if all {
				n := appCtx.Reports.RemoveAll(id)
				fmt.Printf("Removed %d report file(s) for %s.\n", n, id)
				return nil
			}
			if !appCtx.Reports.Remove(id) {
				return fmt.Errorf("no report file named %q", args[0])
			}
			fmt.Printf("Removed report %s.\n", id)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "also remove priority/native variants")
	return cmd
}

func trimCmd() *cobra.Command {
	var keep int
	cmd := &cobra.Command{
		Use:   "trim",
		Short: "Trim the report queue to a maximum count, dropping the oldest",
		RunE: func(cmd *cobra.Command, args []string) error {
			n := appCtx.Reports.TrimToCount(keep)
			fmt.Printf("Trimmed %d report(s).\n", n)
			return nil
		},
	}
	cmd.Flags().IntVar(&keep, "keep", 8, "number of newest reports to keep")
	return cmd
}

func age(t time.Time) string {
	return time.Since(t).Truncate(time.Second).String()
}
