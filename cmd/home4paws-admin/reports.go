// cmd/home4paws-admin/reports.go
package main

import (
	"context"
	"fmt"
	"os"

	"home4paws-cli/internal/filter"
	"home4paws-cli/internal/models"
	"home4paws-cli/internal/render"

	"github.com/spf13/cobra"
)

var reportStatuses = map[string]models.ReportStatus{
	"pending":     models.ReportPending,
	"took-action": models.ReportTookAction,
	"resolved":    models.ReportResolved,
}

func newReportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Moderate lost and injured dog reports",
	}
	cmd.AddCommand(newReportsListCmd(), newReportsStatusCmd(), newReportsDeleteCmd())
	return cmd
}

func newReportsListCmd() *cobra.Command {
	var (
		search string
		status string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every report",
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			reports, err := client.Admin.ListReports(context.Background())
			if err != nil {
				client.Prompter.Error("Could not load reports. Please try again.")
				return err
			}
			f := filter.ReportFilter{Search: search, Status: models.ReportStatus(status)}
			render.Reports(os.Stdout, filter.Reports(reports, f), f.Active(), false)
			return nil
		}),
	}
	cmd.Flags().StringVar(&search, "search", "", "free-text match on name, description, location and phone")
	cmd.Flags().StringVar(&status, "status", "", "PENDING, TOOK_ACTION or RESOLVED")
	return cmd
}

func newReportsStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <pending|took-action|resolved>",
		Short: "Update a report's handling status",
		Args:  cobra.ExactArgs(2),
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			status, ok := reportStatuses[args[1]]
			if !ok {
				return fmt.Errorf("unknown status %q, expected pending, took-action or resolved", args[1])
			}
			updated, err := client.Admin.SetReportStatus(context.Background(), id, models.ReportStatusUpdate{Status: status})
			if err != nil {
				client.Prompter.Error("Could not update the report. Please try again.")
				return err
			}
			client.Prompter.Notify(fmt.Sprintf("Report #%d is now %s.", updated.ID, updated.Status))
			return nil
		}),
	}
}

func newReportsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a report",
		Args:  cobra.ExactArgs(1),
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ok, err := client.Prompter.Confirm(fmt.Sprintf("Delete report #%d? This cannot be undone.", id))
			if err != nil {
				return err
			}
			if !ok {
				client.Prompter.Notify("Cancelled.")
				return nil
			}
			if err := client.Admin.DeleteReport(context.Background(), id); err != nil {
				client.Prompter.Error("Could not delete the report. Please try again.")
				return err
			}
			client.Prompter.Notify(fmt.Sprintf("Report #%d deleted.", id))
			return nil
		}),
	}
}
