// cmd/home4paws/dogs.go
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"home4paws-cli/internal/filter"
	"home4paws-cli/internal/models"
	"home4paws-cli/internal/render"

	"github.com/spf13/cobra"
)

func newDogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dogs",
		Short: "Browse the dog catalog",
	}
	cmd.AddCommand(newDogsListCmd(), newDogsShowCmd())
	return cmd
}

func newDogsListCmd() *cobra.Command {
	var (
		adoptOnly bool
		buyOnly   bool
		search    string
		breed     string
		status    string
		maxPrice  float64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List dogs with optional client-side filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var (
				dogs []models.Dog
				err  error
			)
			switch {
			case adoptOnly:
				dogs, err = client.Dogs.ListForAdoption(ctx)
			case buyOnly:
				dogs, err = client.Dogs.ListForSale(ctx)
			default:
				dogs, err = client.Dogs.List(ctx)
			}
			if err != nil {
				client.Prompter.Error("Could not load dogs. Please try again.")
				return err
			}

			f := filter.DogFilter{
				Search:   search,
				Breed:    breed,
				Status:   models.DogStatus(status),
				MaxPrice: maxPrice,
			}
			render.Dogs(os.Stdout, filter.Dogs(dogs, f), f.Active())
			return nil
		},
	}

	cmd.Flags().BoolVar(&adoptOnly, "adopt", false, "only adoption-flow (stray) dogs")
	cmd.Flags().BoolVar(&buyOnly, "buy", false, "only purchase-flow dogs")
	cmd.Flags().StringVar(&search, "search", "", "free-text match on name, breed and description")
	cmd.Flags().StringVar(&breed, "breed", "", "exact breed (case-insensitive)")
	cmd.Flags().StringVar(&status, "status", "", "AVAILABLE, SOLD or ADOPTED")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "price ceiling (0 = no ceiling)")
	cmd.MarkFlagsMutuallyExclusive("adopt", "buy")
	return cmd
}

func newDogsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one dog with adoption or purchase framing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid dog id %q", args[0])
			}
			dog, err := client.Dogs.Get(context.Background(), id)
			if err != nil {
				client.Prompter.Error("Could not load that dog. Please try again.")
				return err
			}
			render.DogDetail(os.Stdout, dog)
			return nil
		},
	}
}

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <dog-id>",
		Short: "Apply to adopt or buy a dog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid dog id %q", args[0])
			}

			dog, err := client.Dogs.Get(ctx, id)
			if err != nil {
				client.Prompter.Error("Could not load that dog. Please try again.")
				return err
			}
			if !dog.Available() {
				client.Prompter.Error(fmt.Sprintf("%s is currently %s and cannot be applied for.", dog.Name, dog.Status))
				return nil
			}

			p := client.Prompter
			req := models.NewApplicationRequest{DogID: dog.ID, Type: dog.FlowType()}
			if dog.IsStray {
				p.Notify(fmt.Sprintf("Starting an adoption application for %s.", dog.Name))
			} else {
				p.Notify(fmt.Sprintf("Starting a purchase application for %s (Rs. %.0f).", dog.Name, dog.Price))
			}

			if req.ApplicantName, err = p.Line("Your name"); err != nil {
				return err
			}
			if req.ApplicantEmail, err = p.Line("Email"); err != nil {
				return err
			}
			if req.ApplicantPhone, err = promptPhone(p, "Phone", true); err != nil {
				return err
			}
			if req.Address, err = p.Line("Address (optional)"); err != nil {
				return err
			}
			if req.Message, err = p.Line("Message (optional)"); err != nil {
				return err
			}

			created, err := client.Applications.Submit(ctx, req)
			if err != nil {
				client.Prompter.Error("Could not submit the application. Please try again.")
				return err
			}
			p.Notify(fmt.Sprintf("Application #%d submitted (%s).", created.ID, created.Status))
			return nil
		},
	}
}

func newApplicationsCmd() *cobra.Command {
	var (
		search string
		status string
	)
	cmd := &cobra.Command{
		Use:   "applications",
		Short: "List your applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			apps, err := client.Applications.Mine(context.Background())
			if err != nil {
				client.Prompter.Error("Could not load your applications. Please try again.")
				return err
			}
			f := filter.ApplicationFilter{Search: search, Status: models.ApplicationStatus(status)}
			render.Applications(os.Stdout, filter.Applications(apps, f), f.Active())
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "free-text match on applicant and dog")
	cmd.Flags().StringVar(&status, "status", "", "PENDING, APPROVED or REJECTED")
	return cmd
}
