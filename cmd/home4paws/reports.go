// cmd/home4paws/reports.go
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	apierrors "home4paws-cli/internal/common/errors"
	"home4paws-cli/internal/filter"
	"home4paws-cli/internal/forms"
	"home4paws-cli/internal/models"
	"home4paws-cli/internal/render"

	"github.com/spf13/cobra"
)

func newReportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Lost and injured dog reports",
	}
	cmd.AddCommand(
		newReportsListCmd(),
		newReportsCreateCmd(),
		newReportsEditCmd(),
		newReportsDeleteCmd(),
	)
	return cmd
}

func newReportsListCmd() *cobra.Command {
	var (
		search string
		status string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, stale, err := client.Reports.Mine(context.Background(), client.UserKey())
			if err != nil {
				client.Prompter.Error("Could not load your reports. Please try again.")
				return err
			}
			f := filter.ReportFilter{Search: search, Status: models.ReportStatus(status)}
			render.Reports(os.Stdout, filter.Reports(reports, f), f.Active(), stale)
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "free-text match on name, description, location and phone")
	cmd.Flags().StringVar(&status, "status", "", "PENDING, TOOK_ACTION or RESOLVED")
	return cmd
}

func newReportsCreateCmd() *cobra.Command {
	var photoPaths []string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Report a lost or injured dog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			form := forms.NewReportForm(client.Reports, client.Log)
			form.OpenCreate()

			if err := fillReportForm(form, photoPaths); err != nil {
				form.Cancel()
				return err
			}

			created, err := form.Submit(ctx)
			if err != nil {
				client.Prompter.Error(form.LastError)
				return err
			}
			client.Reports.InvalidateMine(ctx, client.UserKey())
			client.Prompter.Notify(fmt.Sprintf("Report #%d submitted with %d photo(s).", created.ID, len(created.PhotoURLs)))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&photoPaths, "photo", nil, "photo file to attach (repeatable, max 5)")
	return cmd
}

// fillReportForm prompts for every field not already set, applying the live
// phone rule, and stages the photos.
func fillReportForm(form *forms.ReportForm, photoPaths []string) error {
	p := client.Prompter
	var err error

	if form.Payload.Name == "" {
		if form.Payload.Name, err = p.Line("Your name"); err != nil {
			return err
		}
	}
	phone, err := promptPhone(p, "Phone", true)
	if err != nil {
		return err
	}
	form.SetPhone(phone)
	if form.Payload.Description == "" {
		if form.Payload.Description, err = p.Line("Description"); err != nil {
			return err
		}
	}
	if form.Payload.Location == "" {
		if form.Payload.Location, err = p.Line("Location (optional)"); err != nil {
			return err
		}
	}

	for _, path := range photoPaths {
		if err := form.Photos.AddFile(path); err != nil {
			if apiErr, ok := apierrors.AsAPIError(err); ok {
				p.Error(apiErr.Message)
				return err
			}
			return err
		}
	}
	return nil
}

func newReportsEditCmd() *cobra.Command {
	var photoPaths []string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit one of your pending reports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid report id %q", args[0])
			}

			reports, _, err := client.Reports.Mine(ctx, client.UserKey())
			if err != nil {
				client.Prompter.Error("Could not load your reports. Please try again.")
				return err
			}
			var editing *models.Report
			for i := range reports {
				if reports[i].ID == id {
					editing = &reports[i]
					break
				}
			}
			if editing == nil {
				client.Prompter.Error(fmt.Sprintf("Report #%d not found among your reports.", id))
				return nil
			}

			p := client.Prompter
			form := forms.NewReportForm(client.Reports, client.Log)
			form.OpenEdit(*editing)

			if form.Payload.Name, err = p.LineDefault("Your name", form.Payload.Name); err != nil {
				return err
			}
			phone, err := p.LineDefault("Phone", form.Payload.Phone)
			if err != nil {
				return err
			}
			if msg := form.SetPhone(phone); msg != "" {
				p.Error(msg)
			}
			if form.Payload.Description, err = p.LineDefault("Description", form.Payload.Description); err != nil {
				return err
			}
			if form.Payload.Location, err = p.LineDefault("Location", form.Payload.Location); err != nil {
				return err
			}
			for _, path := range photoPaths {
				if err := form.Photos.AddFile(path); err != nil {
					if apiErr, ok := apierrors.AsAPIError(err); ok {
						p.Error(apiErr.Message)
					}
					return err
				}
			}

			updated, err := form.Submit(ctx)
			if err != nil {
				if apierrors.IsNotFound(err) {
					// Stale edit: drop the local copy and reload the list.
					p.Error("That report no longer exists. Reloading your reports.")
					client.Reports.InvalidateMine(ctx, client.UserKey())
					fresh, stale, listErr := client.Reports.Mine(ctx, client.UserKey())
					if listErr == nil {
						render.Reports(os.Stdout, fresh, false, stale)
					}
					return nil
				}
				p.Error(form.LastError)
				return err
			}
			client.Reports.InvalidateMine(ctx, client.UserKey())
			p.Notify(fmt.Sprintf("Report #%d updated.", updated.ID))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&photoPaths, "photo", nil, "additional photo to attach (repeatable, max 5)")
	return cmd
}

func newReportsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of your reports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid report id %q", args[0])
			}

			ok, err := client.Prompter.Confirm(fmt.Sprintf("Delete report #%d? This cannot be undone.", id))
			if err != nil {
				return err
			}
			if !ok {
				client.Prompter.Notify("Cancelled.")
				return nil
			}
			if err := client.Reports.Delete(ctx, id); err != nil {
				client.Prompter.Error("Could not delete the report. Please try again.")
				return err
			}
			client.Reports.InvalidateMine(ctx, client.UserKey())
			client.Prompter.Notify(fmt.Sprintf("Report #%d deleted.", id))
			return nil
		},
	}
}
