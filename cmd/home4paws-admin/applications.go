// cmd/home4paws-admin/applications.go
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

func newApplicationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "applications",
		Short: "Review adoption and purchase applications",
	}
	cmd.AddCommand(
		newApplicationsListCmd(),
		newApplicationsApproveCmd(),
		newApplicationsRejectCmd(),
		newApplicationsDeleteCmd(),
	)
	return cmd
}

func newApplicationsListCmd() *cobra.Command {
	var (
		search  string
		status  string
		appType string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every application",
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			apps, err := client.Admin.ListApplications(context.Background())
			if err != nil {
				client.Prompter.Error("Could not load applications. Please try again.")
				return err
			}
			f := filter.ApplicationFilter{
				Search: search,
				Status: models.ApplicationStatus(status),
				Type:   models.ApplicationType(appType),
			}
			render.Applications(os.Stdout, filter.Applications(apps, f), f.Active())
			return nil
		}),
	}
	cmd.Flags().StringVar(&search, "search", "", "free-text match on applicant and dog fields")
	cmd.Flags().StringVar(&status, "status", "", "PENDING, APPROVED or REJECTED")
	cmd.Flags().StringVar(&appType, "type", "", "ADOPTION or PURCHASE")
	return cmd
}

// setApplicationStatus drives both the approve and reject commands.
func setApplicationStatus(id int64, status models.ApplicationStatus, notes string) error {
	updated, err := client.Admin.SetApplicationStatus(context.Background(), id, models.ApplicationStatusUpdate{
		Status:     status,
		AdminNotes: notes,
	})
	if err != nil {
		client.Prompter.Error("Could not update the application. Please try again.")
		return err
	}
	client.Prompter.Notify(fmt.Sprintf("Application #%d is now %s.", updated.ID, updated.Status))
	return nil
}

func newApplicationsApproveCmd() *cobra.Command {
	var notes string
	cmd := &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve an application",
		Args:  cobra.ExactArgs(1),
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return setApplicationStatus(id, models.ApplicationApproved, notes)
		}),
	}
	cmd.Flags().StringVar(&notes, "notes", "", "note for the applicant")
	return cmd
}

func newApplicationsRejectCmd() *cobra.Command {
	var notes string
	cmd := &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject an application",
		Args:  cobra.ExactArgs(1),
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return setApplicationStatus(id, models.ApplicationRejected, notes)
		}),
	}
	cmd.Flags().StringVar(&notes, "notes", "", "note for the applicant")
	return cmd
}

func newApplicationsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an application",
		Args:  cobra.ExactArgs(1),
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ok, err := client.Prompter.Confirm(fmt.Sprintf("Delete application #%d? This cannot be undone.", id))
			if err != nil {
				return err
			}
			if !ok {
				client.Prompter.Notify("Cancelled.")
				return nil
			}
			if err := client.Admin.DeleteApplication(context.Background(), id); err != nil {
				client.Prompter.Error("Could not delete the application. Please try again.")
				return err
			}
			client.Prompter.Notify(fmt.Sprintf("Application #%d deleted.", id))
			return nil
		}),
	}
}
