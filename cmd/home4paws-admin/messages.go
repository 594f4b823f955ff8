// cmd/home4paws-admin/messages.go
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

func newMessagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Handle contact messages",
	}
	cmd.AddCommand(newMessagesListCmd(), newMessagesRespondCmd(), newMessagesCloseCmd(), newMessagesDeleteCmd())
	return cmd
}

func newMessagesListCmd() *cobra.Command {
	var (
		search string
		status string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every contact message",
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			msgs, err := client.Admin.ListMessages(context.Background())
			if err != nil {
				client.Prompter.Error("Could not load messages. Please try again.")
				return err
			}
			f := filter.MessageFilter{Search: search, Status: models.MessageStatus(status)}
			render.Messages(os.Stdout, filter.Messages(msgs, f), f.Active())
			return nil
		}),
	}
	cmd.Flags().StringVar(&search, "search", "", "free-text match on name, email and message")
	cmd.Flags().StringVar(&status, "status", "", "PENDING, RESPONDED or CLOSED")
	return cmd
}

func newMessagesRespondCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "respond <id>",
		Short: "Respond to a message",
		Args:  cobra.ExactArgs(1),
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			response, err := client.Prompter.Line("Response")
			if err != nil {
				return err
			}
			if response == "" {
				client.Prompter.Error("Response cannot be empty.")
				return fmt.Errorf("empty response")
			}
			updated, err := client.Admin.RespondToMessage(context.Background(), id, models.MessageResponse{
				AdminResponse: response,
				Status:        models.MessageResponded,
			})
			if err != nil {
				client.Prompter.Error("Could not send the response. Please try again.")
				return err
			}
			client.Prompter.Notify(fmt.Sprintf("Responded to message #%d from %s.", updated.ID, updated.Name))
			return nil
		}),
	}
}

func newMessagesCloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close <id>",
		Short: "Close a message without a response",
		Args:  cobra.ExactArgs(1),
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			updated, err := client.Admin.RespondToMessage(context.Background(), id, models.MessageResponse{
				Status: models.MessageClosed,
			})
			if err != nil {
				client.Prompter.Error("Could not close the message. Please try again.")
				return err
			}
			client.Prompter.Notify(fmt.Sprintf("Message #%d closed.", updated.ID))
			return nil
		}),
	}
}

func newMessagesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a message",
		Args:  cobra.ExactArgs(1),
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ok, err := client.Prompter.Confirm(fmt.Sprintf("Delete message #%d? This cannot be undone.", id))
			if err != nil {
				return err
			}
			if !ok {
				client.Prompter.Notify("Cancelled.")
				return nil
			}
			if err := client.Admin.DeleteMessage(context.Background(), id); err != nil {
				client.Prompter.Error("Could not delete the message. Please try again.")
				return err
			}
			client.Prompter.Notify(fmt.Sprintf("Message #%d deleted.", id))
			return nil
		}),
	}
}
