// cmd/home4paws-admin/users.go
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"home4paws-cli/internal/filter"
	"home4paws-cli/internal/render"

	"github.com/spf13/cobra"
)

// parseID converts a positional id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(newUsersListCmd(), newUsersDeleteCmd())
	return cmd
}

func newUsersListCmd() *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered users",
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			users, err := client.Admin.ListUsers(context.Background())
			if err != nil {
				client.Prompter.Error("Could not load users. Please try again.")
				return err
			}
			render.Users(os.Stdout, filter.Users(users, search), search != "")
			return nil
		}),
	}
	cmd.Flags().StringVar(&search, "search", "", "free-text match on username, email and name")
	return cmd
}

func newUsersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ok, err := client.Prompter.Confirm(fmt.Sprintf("Delete user #%d and their submissions? This cannot be undone.", id))
			if err != nil {
				return err
			}
			if !ok {
				client.Prompter.Notify("Cancelled.")
				return nil
			}
			if err := client.Admin.DeleteUser(context.Background(), id); err != nil {
				client.Prompter.Error("Could not delete the user. Please try again.")
				return err
			}
			client.Prompter.Notify(fmt.Sprintf("User #%d deleted.", id))
			return nil
		}),
	}
}
