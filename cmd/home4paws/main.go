// cmd/home4paws/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"home4paws-cli/internal/app"

	"github.com/spf13/cobra"
)

var client *app.App

func main() {
	root := &cobra.Command{
		Use:           "home4paws",
		Short:         "Home4Paws terminal client",
		Long:          "Browse dogs, file adoption and purchase applications, report lost or injured dogs, request surrenders and contact the Home4Paws team.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			client, err = app.New()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if client != nil {
				client.Close()
			}
		},
	}

	root.AddCommand(
		newLoginCmd(),
		newRegisterCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newDogsCmd(),
		newApplyCmd(),
		newApplicationsCmd(),
		newReportsCmd(),
		newSurrenderCmd(),
		newContactCmd(),
		newProfileCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login [username]",
		Short: "Log in and store the session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var (
				username string
				err      error
			)
			if len(args) == 1 {
				username = args[0]
			} else {
				username, err = client.Prompter.Line("Username or email")
				if err != nil {
					return err
				}
			}
			password, err := client.Prompter.Password("Password")
			if err != nil {
				return err
			}

			result, err := client.Auth.Login(ctx, username, password)
			if err != nil {
				client.Prompter.Error(result.Error)
				return err
			}
			if result.IsAdmin {
				client.Prompter.Notify("Logged in as admin. Use home4paws-admin for the management commands.")
				return nil
			}
			client.Prompter.Notify(fmt.Sprintf("Logged in as %s.", username))
			return nil
		},
	}
}

func newRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p := client.Prompter

			req, err := promptRegistration(p)
			if err != nil {
				return err
			}

			message, err := client.Auth.Register(ctx, req)
			if err != nil {
				client.Prompter.Error(message)
				return err
			}
			p.Notify(message)
			return nil
		},
	}
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored user session and its caches",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Auth.Logout(context.Background()); err != nil {
				return err
			}
			client.Prompter.Notify("Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := client.Auth.Me(context.Background())
			if err != nil {
				client.Prompter.Error("Not logged in.")
				return err
			}
			client.Prompter.Notify(fmt.Sprintf("%s <%s> (id %d)", user.Username, user.Email, user.ID))
			return nil
		},
	}
}
