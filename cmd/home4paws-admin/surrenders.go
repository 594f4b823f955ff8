// cmd/home4paws-admin/surrenders.go
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

var surrenderStatuses = map[string]models.SurrenderStatus{
	"pending":   models.SurrenderPending,
	"approved":  models.SurrenderApproved,
	"rejected":  models.SurrenderRejected,
	"completed": models.SurrenderComplete,
}

func newSurrendersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "surrenders",
		Short: "Moderate surrender submissions",
	}
	cmd.AddCommand(newSurrendersListCmd(), newSurrendersStatusCmd(), newSurrendersDeleteCmd())
	return cmd
}

func newSurrendersListCmd() *cobra.Command {
	var (
		search string
		status string
		urgent bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every surrender submission",
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			requests, err := client.Admin.ListSurrenders(context.Background())
			if err != nil {
				client.Prompter.Error("Could not load surrender submissions. Please try again.")
				return err
			}
			f := filter.SurrenderFilter{Search: search, Status: models.SurrenderStatus(status), UrgentOnly: urgent}
			render.Surrenders(os.Stdout, filter.Surrenders(requests, f), f.Active(), false)
			return nil
		}),
	}
	cmd.Flags().StringVar(&search, "search", "", "free-text match on owner, dog and reason fields")
	cmd.Flags().StringVar(&status, "status", "", "PENDING, APPROVED, REJECTED or COMPLETED")
	cmd.Flags().BoolVar(&urgent, "urgent", false, "only urgent submissions")
	return cmd
}

func newSurrendersStatusCmd() *cobra.Command {
	var notes string
	cmd := &cobra.Command{
		Use:   "status <id> <pending|approved|rejected|completed>",
		Short: "Update a submission's status",
		Args:  cobra.ExactArgs(2),
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			status, ok := surrenderStatuses[args[1]]
			if !ok {
				return fmt.Errorf("unknown status %q, expected pending, approved, rejected or completed", args[1])
			}
			updated, err := client.Admin.SetSurrenderStatus(context.Background(), id, models.SurrenderStatusUpdate{
				RequestStatus: status,
				AdminNotes:    notes,
			})
			if err != nil {
				client.Prompter.Error("Could not update the submission. Please try again.")
				return err
			}
			client.Prompter.Notify(fmt.Sprintf("Surrender submission #%d is now %s.", updated.SurrenderID, updated.RequestStatus))
			return nil
		}),
	}
	cmd.Flags().StringVar(&notes, "notes", "", "note for the owner")
	return cmd
}

func newSurrendersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a surrender submission",
		Args:  cobra.ExactArgs(1),
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ok, err := client.Prompter.Confirm(fmt.Sprintf("Delete surrender submission #%d? This cannot be undone.", id))
			if err != nil {
				return err
			}
			if !ok {
				client.Prompter.Notify("Cancelled.")
				return nil
			}
			if err := client.Admin.DeleteSurrender(context.Background(), id); err != nil {
				client.Prompter.Error("Could not delete the submission. Please try again.")
				return err
			}
			client.Prompter.Notify(fmt.Sprintf("Surrender submission #%d deleted.", id))
			return nil
		}),
	}
}
