// cmd/home4paws-admin/dogs.go
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
		Short: "Manage the dog catalog",
	}
	cmd.AddCommand(newDogsListCmd(), newDogsAddCmd(), newDogsEditCmd(), newDogsDeleteCmd())
	return cmd
}

func newDogsListCmd() *cobra.Command {
	var (
		search string
		breed  string
		status string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every dog, including sold and adopted ones",
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			dogs, err := client.Admin.ListDogs(context.Background())
			if err != nil {
				client.Prompter.Error("Could not load the catalog. Please try again.")
				return err
			}
			f := filter.DogFilter{Search: search, Breed: breed, Status: models.DogStatus(status)}
			render.Dogs(os.Stdout, filter.Dogs(dogs, f), f.Active())
			return nil
		}),
	}
	cmd.Flags().StringVar(&search, "search", "", "free-text match on name, breed and description")
	cmd.Flags().StringVar(&breed, "breed", "", "exact breed match")
	cmd.Flags().StringVar(&status, "status", "", "AVAILABLE, SOLD or ADOPTED")
	return cmd
}

func newDogsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Add a dog to the catalog",
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			dog, err := promptDog(models.Dog{Status: models.DogAvailable})
			if err != nil {
				return err
			}
			created, err := client.Admin.CreateDog(context.Background(), dog)
			if err != nil {
				client.Prompter.Error("Could not add the dog. Please try again.")
				return err
			}
			client.Prompter.Notify(fmt.Sprintf("Dog #%d (%s) added.", created.ID, created.Name))
			return nil
		}),
	}
}

// promptDog collects the catalog fields, prefilled from defaults when
// editing. A stray dog carries no price; its listing reads as free adoption.
func promptDog(defaults models.Dog) (models.Dog, error) {
	p := client.Prompter
	dog := defaults
	var err error

	if dog.Name, err = p.LineDefault("Name", defaults.Name); err != nil {
		return dog, err
	}
	if dog.Breed, err = p.LineDefault("Breed", defaults.Breed); err != nil {
		return dog, err
	}
	for {
		raw, err := p.LineDefault("Age in years", strconv.Itoa(defaults.Age))
		if err != nil {
			return dog, err
		}
		age, err := strconv.Atoi(raw)
		if err != nil || age <= 0 {
			p.Error("Age must be a positive number.")
			continue
		}
		dog.Age = age
		break
	}
	if dog.Description, err = p.LineDefault("Description", defaults.Description); err != nil {
		return dog, err
	}
	if dog.IsStray, err = p.Confirm("Is this a stray (free adoption)?"); err != nil {
		return dog, err
	}
	if dog.IsStray {
		dog.Price = 0
	} else {
		for {
			raw, err := p.LineDefault("Price (Rs.)", strconv.FormatFloat(defaults.Price, 'f', -1, 64))
			if err != nil {
				return dog, err
			}
			price, err := strconv.ParseFloat(raw, 64)
			if err != nil || price < 0 {
				p.Error("Price must be a non-negative number.")
				continue
			}
			dog.Price = price
			break
		}
	}
	if dog.ImageURL, err = p.LineDefault("Image URL (optional)", defaults.ImageURL); err != nil {
		return dog, err
	}
	return dog, nil
}

func newDogsEditCmd() *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			current, err := client.Dogs.Get(ctx, id)
			if err != nil {
				client.Prompter.Error(fmt.Sprintf("Dog #%d not found.", id))
				return err
			}

			dog := *current
			if status != "" {
				dog.Status = models.DogStatus(status)
			} else {
				edited, err := promptDog(*current)
				if err != nil {
					return err
				}
				dog = edited
				dog.ID = current.ID
				dog.Status = current.Status
			}

			updated, err := client.Admin.UpdateDog(ctx, id, dog)
			if err != nil {
				client.Prompter.Error("Could not update the dog. Please try again.")
				return err
			}
			client.Prompter.Notify(fmt.Sprintf("Dog #%d (%s) updated, status %s.", updated.ID, updated.Name, updated.Status))
			return nil
		}),
	}
	cmd.Flags().StringVar(&status, "status", "", "set the status directly (AVAILABLE, SOLD or ADOPTED) without editing other fields")
	return cmd
}

func newDogsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a dog from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ok, err := client.Prompter.Confirm(fmt.Sprintf("Remove dog #%d from the catalog? This cannot be undone.", id))
			if err != nil {
				return err
			}
			if !ok {
				client.Prompter.Notify("Cancelled.")
				return nil
			}
			if err := client.Admin.DeleteDog(context.Background(), id); err != nil {
				client.Prompter.Error("Could not remove the dog. Please try again.")
				return err
			}
			client.Prompter.Notify(fmt.Sprintf("Dog #%d removed.", id))
			return nil
		}),
	}
}
