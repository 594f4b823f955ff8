// cmd/home4paws/contact.go
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	apierrors "home4paws-cli/internal/common/errors"
	"home4paws-cli/internal/filter"
	"home4paws-cli/internal/models"
	"home4paws-cli/internal/render"

	"github.com/spf13/cobra"
)

func newContactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Contact the shelter team",
	}
	cmd.AddCommand(
		newContactSendCmd(),
		newContactListCmd(),
		newContactEditCmd(),
		newContactDeleteCmd(),
	)
	return cmd
}

func newContactSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send",
		Short: "Send a message to the shelter",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := client.Prompter
			msg, err := promptContactMessage(models.NewContactMessage{})
			if err != nil {
				return err
			}
			created, err := client.Messages.Send(context.Background(), msg)
			if err != nil {
				p.Error("Could not send your message. Please try again.")
				return err
			}
			p.Notify(fmt.Sprintf("Message #%d sent. We'll get back to you at %s.", created.ID, created.Email))
			return nil
		},
	}
}

// promptContactMessage collects the contact form fields, prefilling from the
// session profile when possible.
func promptContactMessage(defaults models.NewContactMessage) (models.NewContactMessage, error) {
	p := client.Prompter
	if defaults.Name == "" {
		if sess := client.UserSessions.Current(); sess != nil {
			defaults.Name = sess.Username
			defaults.Email = sess.Email
		}
	}

	var (
		msg models.NewContactMessage
		err error
	)
	if defaults.Name != "" {
		msg.Name, err = p.LineDefault("Your name", defaults.Name)
	} else {
		msg.Name, err = p.Line("Your name")
	}
	if err != nil {
		return msg, err
	}
	if defaults.Email != "" {
		msg.Email, err = p.LineDefault("Your email", defaults.Email)
	} else {
		msg.Email, err = p.Line("Your email")
	}
	if err != nil {
		return msg, err
	}
	if defaults.Message != "" {
		msg.Message, err = p.LineDefault("Message", defaults.Message)
	} else {
		msg.Message, err = p.Line("Message")
	}
	return msg, err
}

func newContactListCmd() *cobra.Command {
	var (
		search string
		status string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your messages and any responses",
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := client.Messages.Mine(context.Background())
			if err != nil {
				client.Prompter.Error("Could not load your messages. Please try again.")
				return err
			}
			f := filter.MessageFilter{Search: search, Status: models.MessageStatus(status)}
			render.Messages(os.Stdout, filter.Messages(msgs, f), f.Active())
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "free-text match on name, email and message")
	cmd.Flags().StringVar(&status, "status", "", "PENDING, RESPONDED or CLOSED")
	return cmd
}

func newContactEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit one of your pending messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid message id %q", args[0])
			}

			msgs, err := client.Messages.Mine(ctx)
			if err != nil {
				client.Prompter.Error("Could not load your messages. Please try again.")
				return err
			}
			var editing *models.ContactMessage
			for i := range msgs {
				if msgs[i].ID == id {
					editing = &msgs[i]
					break
				}
			}
			if editing == nil {
				client.Prompter.Error(fmt.Sprintf("Message #%d not found among your messages.", id))
				return nil
			}

			msg, err := promptContactMessage(models.NewContactMessage{
				Name:    editing.Name,
				Email:   editing.Email,
				Message: editing.Message,
			})
			if err != nil {
				return err
			}
			updated, err := client.Messages.Update(ctx, id, msg)
			if err != nil {
				if apierrors.IsNotFound(err) {
					// Stale edit: drop the local copy and reload the list.
					client.Prompter.Error("That message no longer exists. Reloading your messages.")
					fresh, listErr := client.Messages.Mine(ctx)
					if listErr == nil {
						render.Messages(os.Stdout, fresh, false)
					}
					return nil
				}
				client.Prompter.Error("Could not update the message. Please try again.")
				return err
			}
			client.Prompter.Notify(fmt.Sprintf("Message #%d updated.", updated.ID))
			return nil
		},
	}
}

func newContactDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of your messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid message id %q", args[0])
			}

			ok, err := client.Prompter.Confirm(fmt.Sprintf("Delete message #%d? This cannot be undone.", id))
			if err != nil {
				return err
			}
			if !ok {
				client.Prompter.Notify("Cancelled.")
				return nil
			}
			if err := client.Messages.Delete(context.Background(), id); err != nil {
				client.Prompter.Error("Could not delete the message. Please try again.")
				return err
			}
			client.Prompter.Notify(fmt.Sprintf("Message #%d deleted.", id))
			return nil
		},
	}
}
