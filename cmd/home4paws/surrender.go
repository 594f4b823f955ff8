// cmd/home4paws/surrender.go
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	apierrors "home4paws-cli/internal/common/errors"
	"home4paws-cli/internal/filter"
	"home4paws-cli/internal/forms"
	"home4paws-cli/internal/models"
	"home4paws-cli/internal/render"

	"github.com/spf13/cobra"
)

func newSurrenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "surrender",
		Short: "Dog surrender requests",
	}
	cmd.AddCommand(
		newSurrenderListCmd(),
		newSurrenderCreateCmd(),
		newSurrenderEditCmd(),
		newSurrenderDeleteCmd(),
	)
	return cmd
}

func newSurrenderListCmd() *cobra.Command {
	var (
		search string
		status string
		urgent bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your surrender requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			requests, stale, err := client.Surrenders.Mine(context.Background(), client.UserKey())
			if err != nil {
				client.Prompter.Error("Could not load your surrender requests. Please try again.")
				return err
			}
			f := filter.SurrenderFilter{Search: search, Status: models.SurrenderStatus(status), UrgentOnly: urgent}
			render.Surrenders(os.Stdout, filter.Surrenders(requests, f), f.Active(), stale)
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "free-text match on owner, dog and reason fields")
	cmd.Flags().StringVar(&status, "status", "", "PENDING, APPROVED, REJECTED or COMPLETED")
	cmd.Flags().BoolVar(&urgent, "urgent", false, "only urgent requests")
	return cmd
}

func newSurrenderCreateCmd() *cobra.Command {
	var photoPaths []string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Ask the shelter to take in a dog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			form := forms.NewSurrenderForm(client.Surrenders, client.Log)
			form.OpenCreate()

			if err := fillSurrenderForm(form, photoPaths); err != nil {
				form.Cancel()
				return err
			}

			created, err := form.Submit(ctx)
			if err != nil {
				client.Prompter.Error(form.LastError)
				return err
			}
			client.Surrenders.InvalidateMine(ctx, client.UserKey())
			client.Prompter.Notify(fmt.Sprintf("Surrender request #%d submitted. The shelter will contact you at %s.",
				created.SurrenderID, created.OwnerPhone))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&photoPaths, "photo", nil, "dog photo to attach (repeatable, max 5)")
	return cmd
}

func fillSurrenderForm(form *forms.SurrenderForm, photoPaths []string) error {
	p := client.Prompter
	var err error

	if form.Payload.OwnerName, err = p.Line("Your name"); err != nil {
		return err
	}
	phone, err := promptPhone(p, "Your phone", true)
	if err != nil {
		return err
	}
	form.SetOwnerPhone(phone)
	if form.Payload.OwnerEmail, err = p.Line("Your email (optional)"); err != nil {
		return err
	}
	if form.Payload.OwnerAddress, err = p.Line("Your address (optional)"); err != nil {
		return err
	}
	if form.Payload.DogName, err = p.Line("Dog's name"); err != nil {
		return err
	}
	if form.Payload.DogBreed, err = p.Line("Breed (optional)"); err != nil {
		return err
	}
	if err = promptDogAge(form, ""); err != nil {
		return err
	}
	if form.Payload.DogGender, err = p.Line("Gender (optional)"); err != nil {
		return err
	}
	if form.Payload.DogSize, err = p.Line("Size (optional)"); err != nil {
		return err
	}
	if form.Payload.IsVaccinated, err = p.Confirm("Is the dog vaccinated?"); err != nil {
		return err
	}
	if form.Payload.IsNeutered, err = p.Confirm("Is the dog neutered?"); err != nil {
		return err
	}
	if form.Payload.MedicalHistory, err = p.Line("Medical history (optional)"); err != nil {
		return err
	}
	if form.Payload.SurrenderReason, err = p.Line("Why are you surrendering the dog?"); err != nil {
		return err
	}
	if form.Payload.IsUrgent, err = p.Confirm("Is this urgent?"); err != nil {
		return err
	}
	if form.Payload.PreferredDate, err = p.Line("Preferred hand-over date (YYYY-MM-DD, optional)"); err != nil {
		return err
	}

	return stageSurrenderPhotos(form, photoPaths)
}

// promptDogAge re-asks until the age parses as a positive number.
func promptDogAge(form *forms.SurrenderForm, fallback string) error {
	p := client.Prompter
	for {
		var (
			raw string
			err error
		)
		if fallback != "" {
			raw, err = p.LineDefault("Dog's age in years", fallback)
		} else {
			raw, err = p.Line("Dog's age in years")
		}
		if err != nil {
			return err
		}
		if msg := form.SetDogAge(raw); msg != "" {
			p.Error(msg)
			continue
		}
		return nil
	}
}

func stageSurrenderPhotos(form *forms.SurrenderForm, photoPaths []string) error {
	for _, path := range photoPaths {
		if err := form.Photos.AddFile(path); err != nil {
			if apiErr, ok := apierrors.AsAPIError(err); ok {
				client.Prompter.Error(apiErr.Message)
			}
			return err
		}
	}
	return nil
}

func newSurrenderEditCmd() *cobra.Command {
	var photoPaths []string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit one of your pending surrender requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid surrender request id %q", args[0])
			}

			requests, _, err := client.Surrenders.Mine(ctx, client.UserKey())
			if err != nil {
				client.Prompter.Error("Could not load your surrender requests. Please try again.")
				return err
			}
			var editing *models.SurrenderRequest
			for i := range requests {
				if requests[i].SurrenderID == id {
					editing = &requests[i]
					break
				}
			}
			if editing == nil {
				client.Prompter.Error(fmt.Sprintf("Surrender request #%d not found among your requests.", id))
				return nil
			}

			p := client.Prompter
			form := forms.NewSurrenderForm(client.Surrenders, client.Log)
			form.OpenEdit(*editing)

			if form.Payload.OwnerName, err = p.LineDefault("Your name", form.Payload.OwnerName); err != nil {
				return err
			}
			phone, err := p.LineDefault("Your phone", form.Payload.OwnerPhone)
			if err != nil {
				return err
			}
			if msg := form.SetOwnerPhone(phone); msg != "" {
				p.Error(msg)
			}
			if form.Payload.DogName, err = p.LineDefault("Dog's name", form.Payload.DogName); err != nil {
				return err
			}
			if err = promptDogAge(form, strconv.Itoa(form.Payload.DogAge)); err != nil {
				return err
			}
			reason, err := p.LineDefault("Why are you surrendering the dog?", form.Payload.SurrenderReason)
			if err != nil {
				return err
			}
			form.Payload.SurrenderReason = reason
			if err = stageSurrenderPhotos(form, photoPaths); err != nil {
				return err
			}

			updated, err := form.Submit(ctx)
			if err != nil {
				if apierrors.IsNotFound(err) {
					// Stale edit: drop the local copy and reload the list.
					p.Error("That surrender request no longer exists. Reloading your requests.")
					client.Surrenders.InvalidateMine(ctx, client.UserKey())
					fresh, stale, listErr := client.Surrenders.Mine(ctx, client.UserKey())
					if listErr == nil {
						render.Surrenders(os.Stdout, fresh, false, stale)
					}
					return nil
				}
				p.Error(form.LastError)
				return err
			}
			client.Surrenders.InvalidateMine(ctx, client.UserKey())
			urgency := ""
			if updated.IsUrgent {
				urgency = " (urgent)"
			}
			p.Notify(fmt.Sprintf("Surrender request #%d updated%s.", updated.SurrenderID, urgency))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&photoPaths, "photo", nil, "additional photo to attach (repeatable, max 5)")
	return cmd
}

func newSurrenderDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Withdraw one of your surrender requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
			if err != nil {
				return fmt.Errorf("invalid surrender request id %q", args[0])
			}

			ok, err := client.Prompter.Confirm(fmt.Sprintf("Withdraw surrender request #%d? This cannot be undone.", id))
			if err != nil {
				return err
			}
			if !ok {
				client.Prompter.Notify("Cancelled.")
				return nil
			}
			if err := client.Surrenders.Delete(ctx, id); err != nil {
				client.Prompter.Error("Could not withdraw the request. Please try again.")
				return err
			}
			client.Surrenders.InvalidateMine(ctx, client.UserKey())
			client.Prompter.Notify(fmt.Sprintf("Surrender request #%d withdrawn.", id))
			return nil
		},
	}
}
