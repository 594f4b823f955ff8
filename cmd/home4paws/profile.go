// cmd/home4paws/profile.go
package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	apierrors "home4paws-cli/internal/common/errors"
	"home4paws-cli/internal/forms"
	"home4paws-cli/internal/models"
	"home4paws-cli/internal/prompt"

	"github.com/spf13/cobra"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage your account",
	}
	cmd.AddCommand(
		newProfileShowCmd(),
		newProfileUpdateCmd(),
		newProfilePasswordCmd(),
		newProfileDeleteCmd(),
	)
	return cmd
}

func newProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := client.Users.Me(context.Background())
			if err != nil {
				if apierrors.IsUnauthorized(err) {
					client.Prompter.Error("Your session has expired. Please log in again.")
					return err
				}
				client.Prompter.Error("Could not load your profile. Please try again.")
				return err
			}
			printProfile(user)
			return nil
		},
	}
}

func printProfile(user *models.User) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Username:\t%s\n", user.Username)
	fmt.Fprintf(w, "Email:\t%s\n", user.Email)
	if user.FirstName != "" || user.LastName != "" {
		fmt.Fprintf(w, "Name:\t%s %s\n", user.FirstName, user.LastName)
	}
	if user.Phone != "" {
		fmt.Fprintf(w, "Phone:\t%s\n", user.Phone)
	}
	if user.CreatedAt != "" {
		fmt.Fprintf(w, "Member since:\t%s\n", user.CreatedAt)
	}
	w.Flush()
}

func newProfileUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Edit your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p := client.Prompter

			current, err := client.Users.Me(ctx)
			if err != nil {
				p.Error("Could not load your profile. Please try again.")
				return err
			}

			var update models.ProfileUpdate
			if update.Email, err = p.LineDefault("Email", current.Email); err != nil {
				return err
			}
			if update.FirstName, err = p.LineDefault("First name", current.FirstName); err != nil {
				return err
			}
			if update.LastName, err = p.LineDefault("Last name", current.LastName); err != nil {
				return err
			}
			phone, err := promptPhoneDefault(p, "Phone", current.Phone)
			if err != nil {
				return err
			}
			update.Phone = phone

			updated, err := client.Users.UpdateProfile(ctx, update)
			if err != nil {
				if apiErr, ok := apierrors.AsAPIError(err); ok && len(apiErr.FieldErrors) > 0 {
					p.Error(apiErr.FlattenFieldErrors())
				} else {
					p.Error("Could not save your profile. Please try again.")
				}
				return err
			}
			p.Notify("Profile updated.")
			printProfile(updated)
			return nil
		},
	}
}

// promptPhoneDefault is promptPhone with a prefilled value for edit flows.
func promptPhoneDefault(p *prompt.Prompter, label, fallback string) (string, error) {
	for {
		raw, err := p.LineDefault(label, fallback)
		if err != nil {
			return "", err
		}
		phone, msg := forms.NormalizePhone(raw)
		if msg != "" {
			p.Error(msg)
			continue
		}
		return phone, nil
	}
}

func newProfilePasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "password",
		Short: "Change your password",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := client.Prompter

			current, err := p.Password("Current password")
			if err != nil {
				return err
			}
			next, err := p.Password("New password")
			if err != nil {
				return err
			}
			confirm, err := p.Password("Repeat new password")
			if err != nil {
				return err
			}
			if next != confirm {
				p.Error("Passwords do not match.")
				return fmt.Errorf("password confirmation mismatch")
			}

			err = client.Users.ChangePassword(context.Background(), models.PasswordChange{
				CurrentPassword: current,
				NewPassword:     next,
			})
			if err != nil {
				if apierrors.IsUnauthorized(err) || apierrors.IsValidation(err) {
					p.Error("Current password is incorrect.")
				} else {
					p.Error("Could not change your password. Please try again.")
				}
				return err
			}
			p.Notify("Password changed.")
			return nil
		},
	}
}

func newProfileDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-account",
		Short: "Permanently delete your account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p := client.Prompter

			ok, err := p.Confirm("Delete your account and all of your submissions? This cannot be undone.")
			if err != nil {
				return err
			}
			if !ok {
				p.Notify("Cancelled.")
				return nil
			}
			if err := client.Users.DeleteAccount(ctx); err != nil {
				p.Error("Could not delete your account. Please try again.")
				return err
			}
			// The server-side account is gone; drop the local session and
			// anything cached under it.
			if err := client.Auth.Logout(ctx); err != nil {
				client.Log.Warn("failed to clear session after account deletion", map[string]interface{}{"error": err.Error()})
			}
			p.Notify("Account deleted. We're sorry to see you go.")
			return nil
		},
	}
}
